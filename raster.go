package quditvis

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// sceneExtent is the half-width of scene space that fits the image; it
// leaves room for the pole labels beyond the unit sphere.
const sceneExtent = 1.45

// seamGrow pushes quad corners outward so neighbours overlap and the
// antialiased edges do not let the background through.
const seamGrow = 0.5

var (
	// light direction of a default 3D light source, azimuth 225°, altitude 19.47°
	lightDir = Point3{-2, -2, 1}.Norm()

	labelGlyphs = strings.NewReplacer("⟩", ">", "⟨", "<")
)

type face struct {
	corners [4]Point3 // view space
	depth   float64
	color   color.NRGBA
}

/*
Image rasterizes the figure. Quads facing away from the camera are
dropped and the rest are painted back to front; labels go on top.
*/
func (f *Figure) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))

	bg := f.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	cam := NewCamera(f.View)
	scale := math.Min(float64(f.Width), float64(f.Height)) / 2 / sceneExtent
	toPixel := func(p Point3) (float32, float32) {
		return float32(float64(f.Width)/2 + p.X*scale), float32(float64(f.Height)/2 - p.Y*scale)
	}

	faces := f.faces(cam)
	sort.SliceStable(faces, func(a, b int) bool {
		return faces[a].depth < faces[b].depth
	})

	var z vector.Rasterizer
	for _, fc := range faces {
		var xs, ys [4]float32
		var cx, cy float32
		for k, p := range fc.corners {
			xs[k], ys[k] = toPixel(p)
			cx += xs[k] / 4
			cy += ys[k] / 4
		}
		for k := range xs {
			xs[k], ys[k] = grow(xs[k], ys[k], cx, cy)
		}
		fillQuad(img, &z, xs, ys, fc.color)
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for _, a := range f.Annotations {
		x, y := toPixel(cam.Project(a.Position))
		d.Dot = fixed.P(int(x), int(y))
		d.DrawString(labelGlyphs.Replace(a.Text))
	}

	return img
}

func (f *Figure) faces(cam Camera) []face {
	if f.Mesh == nil {
		return nil
	}

	rows, cols := f.Mesh.Dims()
	if rows < 2 || cols < 2 {
		return nil
	}

	faces := make([]face, 0, (rows-1)*cols)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols; j++ {
			jn := (j + 1) % cols // close the phi seam

			world := [4]Point3{
				f.Mesh.At(i, j),
				f.Mesh.At(i, jn),
				f.Mesh.At(i+1, jn),
				f.Mesh.At(i+1, j),
			}

			var fc face
			visible := false
			var center Point3
			for k, p := range world {
				fc.corners[k] = cam.Project(p)
				fc.depth += fc.corners[k].Z / 4
				center = center.Add(p.Mul(0.25))
				if fc.corners[k].Z >= 0 {
					visible = true
				}
			}
			if !visible {
				continue
			}

			fc.color = f.FaceColors[i][j]
			if f.Shade {
				fc.color = shade(fc.color, center.Norm())
			}
			faces = append(faces, fc)
		}
	}

	return faces
}

// shade dims c by how much normal faces away from the light.
func shade(c color.NRGBA, normal Point3) color.NRGBA {
	k := 0.3 + 0.7*(normal.Dot(lightDir)+1)/2
	mul := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * k))
	}
	return color.NRGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func grow(x, y, cx, cy float32) (float32, float32) {
	dx, dy := x-cx, y-cy
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return x, y
	}
	return x + dx/l*seamGrow, y + dy/l*seamGrow
}

// fillQuad rasterizes only the quad's bounding box, not the whole image.
func fillQuad(dst *image.RGBA, z *vector.Rasterizer, xs, ys [4]float32, c color.NRGBA) {
	minX, minY := xs[0], ys[0]
	maxX, maxY := xs[0], ys[0]
	for k := 1; k < 4; k++ {
		minX = min(minX, xs[k])
		minY = min(minY, ys[k])
		maxX = max(maxX, xs[k])
		maxY = max(maxY, ys[k])
	}

	box := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	// The mask is addressed relative to clip; the rasterizer drops
	// coverage that falls outside it.
	clip := box.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	ox, oy := float32(clip.Min.X), float32(clip.Min.Y)
	z.Reset(clip.Dx(), clip.Dy())
	z.MoveTo(xs[0]-ox, ys[0]-oy)
	for k := 1; k < 4; k++ {
		z.LineTo(xs[k]-ox, ys[k]-oy)
	}
	z.ClosePath()
	z.Draw(dst, clip, image.NewUniform(c), image.Point{})
}
