package quditvis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

/*
State is a qudit state seen through its density matrix. Index 0 is the
highest-weight basis state, the one the Q function places at the north
pole.
*/
type State interface {
	Dim() int
	At(i, j int) complex128
}

/*
Ket is a pure state vector. The density matrix is never materialized;
At computes ψ_i ψ_j* on demand. Amplitudes are used as given, without
normalization.
*/
type Ket []complex128

func (k Ket) Dim() int { return len(k) }

func (k Ket) At(i, j int) complex128 {
	return k[i] * cmplx.Conj(k[j])
}

// Norm returns the Euclidean norm of the amplitudes.
func (k Ket) Norm() float64 {
	var sum float64
	for _, amplitude := range k {
		a := cmplx.Abs(amplitude)
		sum += a * a
	}
	return math.Sqrt(sum)
}

// DensityMatrix returns |ψ⟩⟨ψ| as a dense matrix.
func (k Ket) DensityMatrix() *DensityMatrix {
	n := len(k)
	if n == 0 {
		return &DensityMatrix{}
	}
	rho := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rho.Set(i, j, k.At(i, j))
		}
	}
	return &DensityMatrix{rho: rho}
}

// DensityMatrix is a mixed (or pure) state given as an operator.
type DensityMatrix struct {
	rho *mat.CDense
}

func NewDensityMatrix(rho *mat.CDense) (*DensityMatrix, error) {
	if rho == nil {
		return nil, ErrEmptyState
	}
	r, c := rho.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensionMismatch, r, c)
	}
	if r == 0 {
		return nil, ErrEmptyState
	}
	return &DensityMatrix{rho: rho}, nil
}

func (d *DensityMatrix) Dim() int {
	if d == nil || d.rho == nil {
		return 0
	}
	r, _ := d.rho.Dims()
	return r
}

func (d *DensityMatrix) At(i, j int) complex128 {
	return d.rho.At(i, j)
}

// Trace is the sum of the diagonal; 1 for a normalized state.
func (d *DensityMatrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < d.Dim(); i++ {
		tr += d.rho.At(i, i)
	}
	return tr
}

/*
CoherentState returns the spin coherent state |θ,φ⟩ of the given
dimension. Its Q function reaches its maximum of 1 at (theta, phi), which
makes it a handy reference for where a field points.
*/
func CoherentState(dim int, theta, phi float64) Ket {
	if dim < 1 {
		return nil
	}

	w := make([]float64, dim)
	coherentWeights(logBinomials(dim-1), theta, w)

	k := make(Ket, dim)
	for i := range k {
		k[i] = cmplx.Rect(w[i], float64(i)*phi)
	}
	return k
}
