/*
Package series evaluates truncated Fourier series

	S(x) = Σ_{n=0}^{N-1} a_n·cos(n·x) + Σ_{m=0}^{M-1} b_m·sin((m+1)·x)

and projects functions onto them.

The cosine coefficients start at frequency 0 (a constant term), the sine
coefficients at frequency 1, as sin(0·x) vanishes.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package series

import (
	"math"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/quadrature"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// Evaluate returns the partial sum with cosine coefficients cos and sine
// coefficients sin at x. Empty slices contribute 0.
//
// Evaluate is the inner loop of both integration and plotting; it does not
// allocate.
func Evaluate(x float64, cos, sin []float64) float64 {
	var s float64
	for n, a := range cos {
		s += a * math.Cos(float64(n)*x)
	}
	for m, b := range sin {
		s += b * math.Sin(float64(m+1)*x)
	}
	return s
}

// PartialSum returns the partial sum as a function of x. The slices are not
// copied; changing them changes the function.
func PartialSum(cos, sin []float64) fseries.Func {
	return func(x float64) float64 {
		return Evaluate(x, cos, sin)
	}
}

// Project computes the first nCos cosine and nSin sine coefficients of the
// Fourier series of f on [-π, π]:
//
//	a_0 = 1/(2π) ∫ f(x) dx
//	a_n = 1/π ∫ f(x)·cos(n·x) dx
//	b_m = 1/π ∫ f(x)·sin((m+1)·x) dx
//
// A partial sum with these coefficients is the best approximation of f in
// the L2 sense among all partial sums of the same size. If integ is nil,
// quadrature.Default() is used.
func Project(f fseries.Func, nCos, nSin int, integ quadrature.Integrator) (cos, sin []float64) {
	if integ == nil {
		integ = quadrature.Default()
	}
	iv := fseries.SymmetricPi
	cos = make([]float64, max(nCos, 0))
	sin = make([]float64, max(nSin, 0))
	for n := range cos {
		k := float64(n)
		r := integ.Integrate(func(x float64) float64 { return f(x) * math.Cos(k*x) }, iv)
		if n == 0 {
			cos[n] = r.Value / (2 * math.Pi)
		} else {
			cos[n] = r.Value / math.Pi
		}
	}
	for m := range sin {
		k := float64(m + 1)
		r := integ.Integrate(func(x float64) float64 { return f(x) * math.Sin(k*x) }, iv)
		sin[m] = r.Value / math.Pi
	}
	tracer().Debugf("projected onto %d cosine and %d sine terms", len(cos), len(sin))
	return cos, sin
}
