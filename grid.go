package quditvis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
AngularGrid samples the sphere: Thetas covers [0, π] including both
poles, Phis covers [0, 2π) without repeating the seam.
*/
type AngularGrid struct {
	Thetas []float64
	Phis   []float64
}

func NewAngularGrid(n int) (AngularGrid, error) {
	if n < 1 {
		return AngularGrid{}, ErrInvalidResolution
	}

	if n == 1 {
		return AngularGrid{Thetas: []float64{0}, Phis: []float64{0}}, nil
	}

	thetas := floats.Span(make([]float64, n), 0, math.Pi)
	// Span is inclusive; drop the 2π endpoint.
	phis := floats.Span(make([]float64, n+1), 0, 2*math.Pi)[:n]

	return AngularGrid{Thetas: thetas, Phis: phis}, nil
}

func (g AngularGrid) Len() int { return len(g.Thetas) }
