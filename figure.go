package quditvis

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Annotation is a text label anchored at a scene position.
type Annotation struct {
	Position Point3
	Text     string
}

/*
Figure is the render artifact. It is owned entirely by the caller: there
is no figure registry, so figures from concurrent renders never touch.
The surface data stays available for inspection, and Image rasterizes it.
*/
type Figure struct {
	Width      int
	Height     int
	Background color.Color
	Shade      bool

	Grid       AngularGrid
	Density    *mat.Dense
	Mesh       *Mesh
	Norm       Normalize
	FaceColors [][]color.NRGBA

	Annotations []Annotation
	View        View
	Stats       Stats
}

func NewFigure(width, height int) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		Background: color.White,
		Shade:      true,
		View:       DefaultView(),
	}
}

/*
PlotSurface attaches a colored surface. Colors are given per grid point
and are tied to the data, not to the Cartesian position.
*/
func (f *Figure) PlotSurface(mesh *Mesh, colors [][]color.NRGBA) {
	f.Mesh = mesh
	f.FaceColors = colors
}

// Text adds a label at p.
func (f *Figure) Text(p Point3, text string) {
	f.Annotations = append(f.Annotations, Annotation{Position: p, Text: text})
}

func (f *Figure) ViewInit(azim, elev float64) {
	f.View = View{Azim: azim, Elev: elev}
}
