package quditvis

import "gonum.org/v1/gonum/mat"

/*
Normalize maps [Vmin, Vmax] linearly onto [0, 1]. Nothing is clipped:
values outside the bounds map outside the unit interval.
*/
type Normalize struct {
	Vmin, Vmax float64
}

// NewNormalize takes its bounds from the observed extremes of the whole field.
func NewNormalize(field mat.Matrix) Normalize {
	return Normalize{Vmin: mat.Min(field), Vmax: mat.Max(field)}
}

// At returns 0 for every value when the bounds coincide.
func (n Normalize) At(v float64) float64 {
	if n.Vmax == n.Vmin {
		return 0
	}
	return (v - n.Vmin) / (n.Vmax - n.Vmin)
}
