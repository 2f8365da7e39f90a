package quditvis

import (
	"context"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

/*
SpinQFunction evaluates the spin Husimi Q function of state over every
(theta, phi) pair. A state of dimension D is treated as a spin j = (D-1)/2,
and Q is its overlap with the spin coherent state |θ,φ⟩:

	Q(θ,φ) = Σ_kl w_k w_l e^{-i(k-l)φ} ρ_kl,  w_k = √C(N,k) cos(θ/2)^(N-k) sin(θ/2)^k

with N = D-1. Row i of the returned matrices belongs to thetas[i] and
column j to phis[j]. The second and third results are the meshgrids of
the angles, mirroring what the field was evaluated on.
*/
func SpinQFunction(state State, thetas, phis []float64) (density, thetaGrid, phiGrid *mat.Dense, err error) {
	if density, err = spinQField(context.Background(), nil, state, thetas, phis); err != nil {
		return nil, nil, nil, err
	}

	thetaGrid, phiGrid = meshgrid(thetas, phis)
	return density, thetaGrid, phiGrid, nil
}

/*
spinQField fills the density field one theta row at a time. With a pool
the rows run concurrently; every row is written by exactly one job, so the
result does not depend on scheduling.
*/
func spinQField(ctx context.Context, q *Q, state State, thetas, phis []float64, opts ...JobOption) (*mat.Dense, error) {
	if state == nil || state.Dim() == 0 {
		return nil, ErrEmptyState
	}
	if len(thetas) == 0 || len(phis) == 0 {
		return nil, ErrInvalidResolution
	}

	logBinom := logBinomials(state.Dim() - 1)
	density := mat.NewDense(len(thetas), len(phis), nil)

	row := func(i int) error {
		spinQRow(state, logBinom, thetas[i], phis, density.RawRowView(i))
		return nil
	}

	if q == nil {
		for i := range thetas {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			_ = row(i)
		}
		return density, nil
	}

	if err := q.ForEach(ctx, len(thetas), row, opts...); err != nil {
		return nil, err
	}
	return density, nil
}

// logBinomials returns log √C(n,k) for k = 0..n. C(n,k) itself overflows
// a float64 once n passes about 1030.
func logBinomials(n int) []float64 {
	lb := make([]float64, n+1)
	for k := range lb {
		lb[k] = 0.5 * combin.LogGeneralizedBinomial(float64(n), float64(k))
	}
	return lb
}

/*
coherentWeights fills w with √C(n,k) cos(θ/2)^(n-k) sin(θ/2)^k, where n is
len(logBinom)-1. Each weight is summed in log space and exponentiated
once. Its square is a binomial probability, so |w[k]| never exceeds 1 and
the powers cannot underflow against an overflowing binomial.
*/
func coherentWeights(logBinom []float64, theta float64, w []float64) {
	n := len(logBinom) - 1
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	lc, ls := math.Log(math.Abs(c)), math.Log(math.Abs(s))

	for k := range w {
		nc, ns := n-k, k
		if (c == 0 && nc > 0) || (s == 0 && ns > 0) {
			w[k] = 0
			continue
		}

		e := logBinom[k]
		if nc > 0 {
			e += float64(nc) * lc
		}
		if ns > 0 {
			e += float64(ns) * ls
		}

		w[k] = math.Exp(e)
		if (c < 0 && nc%2 == 1) != (s < 0 && ns%2 == 1) {
			w[k] = -w[k]
		}
	}
}

func spinQRow(state State, logBinom []float64, theta float64, phis []float64, dst []float64) {
	n := len(logBinom) - 1
	w := make([]float64, n+1)
	coherentWeights(logBinom, theta, w)

	if ket, ok := state.(Ket); ok {
		for j, phi := range phis {
			var amp complex128
			for k, psi := range ket {
				amp += complex(w[k], 0) * psi * cmplx.Rect(1, -float64(k)*phi)
			}
			a := cmplx.Abs(amp)
			dst[j] = a * a
		}
		return
	}

	for j, phi := range phis {
		var q float64
		for k := 0; k <= n; k++ {
			q += w[k] * w[k] * real(state.At(k, k))
			for l := k + 1; l <= n; l++ {
				phase := cmplx.Rect(1, -float64(k-l)*phi)
				term := phase*state.At(k, l) + cmplx.Conj(phase)*state.At(l, k)
				q += w[k] * w[l] * real(term)
			}
		}
		dst[j] = q
	}
}

func meshgrid(thetas, phis []float64) (thetaGrid, phiGrid *mat.Dense) {
	thetaGrid = mat.NewDense(len(thetas), len(phis), nil)
	phiGrid = mat.NewDense(len(thetas), len(phis), nil)
	for i, theta := range thetas {
		for j, phi := range phis {
			thetaGrid.Set(i, j, theta)
			phiGrid.Set(i, j, phi)
		}
	}
	return thetaGrid, phiGrid
}
