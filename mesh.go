package quditvis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point3 is a position or direction in scene space.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Mul(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }
func (p Point3) Dot(q Point3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }
func (p Point3) Len() float64 { return math.Sqrt(p.Dot(p)) }

// Norm returns a unit-length copy, or p itself when it has zero length.
func (p Point3) Norm() Point3 {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Mul(1 / l)
}

/*
Mesh is the Cartesian form of an AngularGrid: X, Y and Z share the shape
of the density field, row i for thetas[i] and column j for phis[j].
Every point lies on the unit sphere.
*/
type Mesh struct {
	X, Y, Z *mat.Dense
}

func NewSphereMesh(grid AngularGrid) *Mesh {
	r, c := len(grid.Thetas), len(grid.Phis)
	m := &Mesh{
		X: mat.NewDense(r, c, nil),
		Y: mat.NewDense(r, c, nil),
		Z: mat.NewDense(r, c, nil),
	}

	for i, theta := range grid.Thetas {
		sinT, cosT := math.Sincos(theta)
		for j, phi := range grid.Phis {
			sinP, cosP := math.Sincos(phi)
			m.X.Set(i, j, sinT*cosP)
			m.Y.Set(i, j, sinT*sinP)
			m.Z.Set(i, j, cosT)
		}
	}

	return m
}

func (m *Mesh) Dims() (r, c int) { return m.X.Dims() }

func (m *Mesh) At(i, j int) Point3 {
	return Point3{m.X.At(i, j), m.Y.At(i, j), m.Z.At(i, j)}
}
