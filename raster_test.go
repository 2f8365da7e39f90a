package quditvis

import (
	"context"
	"image"
	"image/color"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/image/vector"
)

func countPixels(img *image.RGBA, want color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestFigureImage(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	Convey("Given a rendered figure", t, func() {
		fig, err := Render(context.Background(), Ket{1, 0}, WithResolution(24), WithSize(240, 180), WithQuditDim(1))
		So(err, ShouldBeNil)

		img := fig.Image()

		Convey("The raster has the figure's size", func() {
			So(img.Bounds(), ShouldResemble, image.Rect(0, 0, 240, 180))
		})

		Convey("The corners keep the background", func() {
			So(img.RGBAAt(0, 0), ShouldResemble, white)
			So(img.RGBAAt(239, 179), ShouldResemble, white)
		})

		Convey("The sphere covers the center", func() {
			So(img.RGBAAt(120, 90), ShouldNotResemble, white)
		})

		Convey("The labels are drawn", func() {
			So(countPixels(img, black), ShouldBeGreaterThan, 0)
		})

		Convey("Rasterizing twice gives the same pixels", func() {
			So(fig.Image().Pix, ShouldResemble, img.Pix)
		})
	})

	Convey("Given a figure without labels", t, func() {
		fig, err := Render(context.Background(), Ket{1, 0}, WithResolution(24), WithSize(240, 180))
		So(err, ShouldBeNil)

		Convey("No text pixels are drawn", func() {
			So(countPixels(fig.Image(), black), ShouldEqual, 0)
		})
	})

	Convey("Given an empty figure", t, func() {
		fig := NewFigure(32, 16)

		Convey("Only the background is painted", func() {
			img := fig.Image()
			So(countPixels(img, white), ShouldEqual, 32*16)
		})
	})
}

func TestFillQuad(t *testing.T) {
	Convey("Given a quad hanging off the top-left corner", t, func() {
		dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
		red := color.NRGBA{255, 0, 0, 255}

		fillQuad(dst, &vector.Rasterizer{}, [4]float32{-5, 5, 5, -5}, [4]float32{-5, -5, 5, 5}, red)

		Convey("The part inside the image is painted", func() {
			So(dst.RGBAAt(0, 0), ShouldResemble, color.RGBA{255, 0, 0, 255})
			So(dst.RGBAAt(4, 4), ShouldResemble, color.RGBA{255, 0, 0, 255})
		})

		Convey("Nothing spills past the quad", func() {
			So(dst.RGBAAt(5, 5), ShouldResemble, color.RGBA{})
			So(dst.RGBAAt(9, 0), ShouldResemble, color.RGBA{})
		})
	})

	Convey("Given a quad entirely outside the image", t, func() {
		dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
		fillQuad(dst, &vector.Rasterizer{}, [4]float32{20, 30, 30, 20}, [4]float32{0, 0, 5, 5}, color.NRGBA{255, 0, 0, 255})

		So(countPixels(dst, color.RGBA{}), ShouldEqual, 100)
	})

	Convey("Given a figure smaller than the sphere's seams", t, func() {
		fig, err := Render(context.Background(), Ket{1, 0}, WithResolution(6), WithSize(3, 3))
		So(err, ShouldBeNil)

		Convey("The sphere still covers the center pixel", func() {
			So(fig.Image().RGBAAt(1, 1), ShouldNotResemble, color.RGBA{255, 255, 255, 255})
		})
	})
}

func TestShade(t *testing.T) {
	Convey("Given a face lit head-on", t, func() {
		c := color.NRGBA{200, 100, 50, 255}
		So(shade(c, lightDir), ShouldResemble, c)
	})

	Convey("Given a face turned away from the light", t, func() {
		c := color.NRGBA{200, 100, 50, 255}
		So(shade(c, lightDir.Mul(-1)), ShouldResemble, color.NRGBA{60, 30, 15, 255})
	})
}
