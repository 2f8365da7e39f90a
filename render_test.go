package quditvis

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"
)

func TestRenderer(t *testing.T) {
	Convey("Given a renderer", t, func() {
		ctx := context.Background()
		r := NewRenderer(ctx, NewConfig())

		Reset(func() {
			r.Close()
		})

		Convey("When rendering a basis state with a qudit dimension", func() {
			fig, err := r.Render(ctx, Ket{1, 0}, WithResolution(10), WithQuditDim(1))
			So(err, ShouldBeNil)

			Convey("Then the density field is 10x10", func() {
				rows, cols := fig.Density.Dims()
				So(rows, ShouldEqual, 10)
				So(cols, ShouldEqual, 10)
				So(fig.Stats.Samples, ShouldEqual, 100)
				So(fig.Stats.JobCount, ShouldEqual, int64(10))
			})

			Convey("Then the mesh is 10x10x3 and lies on the unit sphere", func() {
				rows, cols := fig.Mesh.Dims()
				So(rows, ShouldEqual, 10)
				So(cols, ShouldEqual, 10)
				for i := 0; i < rows; i++ {
					for j := 0; j < cols; j++ {
						So(fig.Mesh.At(i, j).Len(), ShouldAlmostEqual, 1, tolerance)
					}
				}
			})

			Convey("Then the poles carry two labels", func() {
				t.Log(spew.Sdump(fig.Annotations))
				So(fig.Annotations, ShouldResemble, []Annotation{
					{Position: Point3{Z: -1.3}, Text: "|0⟩"},
					{Position: Point3{Z: 1.2}, Text: "|1⟩"},
				})
			})

			Convey("Then the default view and palette are used", func() {
				So(fig.View, ShouldResemble, DefaultView())
				So(fig.FaceColors[0][0], ShouldResemble, CoolWarm.At(1))
				So(fig.FaceColors[9][0], ShouldResemble, CoolWarm.At(0))
			})
		})

		Convey("When no qudit dimension is given", func() {
			fig, err := r.Render(ctx, Ket{1, 0}, WithResolution(10))
			So(err, ShouldBeNil)

			Convey("Then no labels are added", func() {
				So(fig.Annotations, ShouldBeEmpty)
			})
		})

		Convey("When the field is normalized", func() {
			state := CoherentState(3, 1.1, 2.3)
			fig, err := r.Render(ctx, state, WithResolution(24))
			So(err, ShouldBeNil)

			Convey("Then the minimum maps to 0 and the maximum to 1", func() {
				So(fig.Norm.At(mat.Min(fig.Density)), ShouldEqual, 0)
				So(fig.Norm.At(mat.Max(fig.Density)), ShouldEqual, 1)
			})
		})

		Convey("When a custom palette and view are given", func() {
			grey := ColormapFunc(func(t float64) color.Color {
				return color.Gray{Y: uint8(255 * t)}
			})
			fig, err := r.Render(ctx, Ket{0, 1}, WithResolution(8), WithColormap(grey), WithView(45, 10))
			So(err, ShouldBeNil)

			Convey("Then colors come from the palette", func() {
				So(fig.FaceColors[0][0], ShouldResemble, color.NRGBA{0, 0, 0, 255})
				So(fig.FaceColors[7][3], ShouldResemble, color.NRGBA{255, 255, 255, 255})
			})

			Convey("Then the camera follows the angles", func() {
				So(fig.View, ShouldResemble, View{Azim: 45, Elev: 10})
			})
		})

		Convey("When only the azimuth is given", func() {
			fig, err := r.Render(ctx, Ket{1, 0}, WithResolution(4), WithAzim(100))
			So(err, ShouldBeNil)
			So(fig.View, ShouldResemble, View{Azim: 100, Elev: 30})
		})

		Convey("When rendering twice with the same arguments", func() {
			state := Ket{0.5, complex(0, 0.5), 0.5, -0.5}
			a, err := r.Render(ctx, state, WithResolution(16))
			So(err, ShouldBeNil)
			b, err := r.Render(ctx, state, WithResolution(16))
			So(err, ShouldBeNil)

			Convey("Then fields, meshes and colors are identical", func() {
				So(mat.Equal(a.Density, b.Density), ShouldBeTrue)
				So(mat.Equal(a.Mesh.X, b.Mesh.X), ShouldBeTrue)
				So(mat.Equal(a.Mesh.Y, b.Mesh.Y), ShouldBeTrue)
				So(mat.Equal(a.Mesh.Z, b.Mesh.Z), ShouldBeTrue)
				So(a.FaceColors, ShouldResemble, b.FaceColors)
			})

			Convey("Then a sequential computation agrees", func() {
				grid, _ := NewAngularGrid(16)
				density, _, _, err := SpinQFunction(state, grid.Thetas, grid.Phis)
				So(err, ShouldBeNil)
				So(mat.Equal(a.Density, density), ShouldBeTrue)
			})
		})

		Convey("When the arguments are invalid", func() {
			_, err := r.Render(ctx, Ket{}, WithResolution(4))
			So(err, ShouldEqual, ErrEmptyState)

			_, err = r.Render(ctx, nil)
			So(err, ShouldEqual, ErrEmptyState)

			_, err = r.Render(ctx, Ket{1, 0}, WithResolution(0))
			So(err, ShouldEqual, ErrInvalidResolution)

			_, err = r.Render(ctx, Ket{1, 0}, WithColormap(nil))
			So(err, ShouldEqual, ErrNilColormap)

			_, err = r.Render(ctx, Ket{1, 0}, WithQuditDim(-2))
			So(err, ShouldEqual, ErrInvalidQuditDim)

			_, err = r.Render(ctx, Ket{1, 0}, WithSize(0, 10))
			So(err, ShouldEqual, ErrInvalidSize)
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := r.Render(cctx, Ket{1, 0}, WithResolution(32))
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Given the one-shot helper", t, func() {
		fig, err := Render(context.Background(), Ket{1, 0, 0}, WithResolution(12), WithQuditDim(2), WithWorkers(2))
		So(err, ShouldBeNil)

		Convey("It should produce a labelled figure", func() {
			So(fig.Annotations, ShouldHaveLength, 2)
			So(fig.Annotations[1].Text, ShouldEqual, "|2⟩")
			So(fig.Width, ShouldEqual, DefaultWidth)
			So(fig.Height, ShouldEqual, DefaultHeight)
		})
	})

	Convey("Given different worker counts", t, func() {
		state := CoherentState(5, 0.7, 4.0)
		one, err := Render(context.Background(), state, WithResolution(20), WithWorkers(1))
		So(err, ShouldBeNil)
		many, err := Render(context.Background(), state, WithResolution(20), WithWorkers(8))
		So(err, ShouldBeNil)

		So(mat.Equal(one.Density, many.Density), ShouldBeTrue)
	})
}
