/*
Package quadrature integrates real functions numerically.

The default integrator is an adaptive Gauss–Kronrod scheme: each interval is
integrated with a 7-point Gauss rule embedded in a 15-point Kronrod rule, the
difference of both serving as the error estimate. The interval with the
largest error estimate is bisected until the sum of estimates drops below an
absolute tolerance or a fixed number of subdivisions is used up. Bounding
the subdivisions keeps the cost per call fixed, which matters as integrals
are recomputed on every render tick.

A fixed-order Gauss–Legendre rule, backed by gonum, is available as an
alternative Integrator.

Neither integrator special-cases discontinuities or non-finite values: a NaN
or ±Inf produced by the integrand shows up in the result.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package quadrature

import (
	"math"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/integrate/quad"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// Result is the outcome of a numerical integration.
type Result struct {
	Value        float64 // approximation of the integral
	AbsErr       float64 // estimate of the absolute error
	Subdivisions int     // bisections performed
}

// Integrator integrates a function over an interval.
type Integrator interface {
	Integrate(f fseries.Func, iv fseries.Interval) Result
}

// Default settings of the adaptive integrator.
const (
	DefaultTolerance       = 1e-16
	DefaultMaxSubdivisions = 10
)

// GaussKronrod is an adaptive integrator using a G7/K15 rule pair.
//
// Tolerance is an absolute error target; it may be set far below what
// float64 arithmetic can deliver, in which case the integrator simply uses
// all MaxSubdivisions bisections.
type GaussKronrod struct {
	Tolerance       float64
	MaxSubdivisions int
}

// Default returns the adaptive integrator with default settings.
func Default() GaussKronrod {
	return GaussKronrod{
		Tolerance:       DefaultTolerance,
		MaxSubdivisions: DefaultMaxSubdivisions,
	}
}

// segment is a sub-interval together with its partial result.
type segment struct {
	a, b   float64
	value  float64
	abserr float64
}

// Integrate is part of interface Integrator.
func (gk GaussKronrod) Integrate(f fseries.Func, iv fseries.Interval) Result {
	value, abserr := kronrod15(f, iv.Min, iv.Max)
	if gk.MaxSubdivisions <= 0 || !fseries.IsFinite(value) {
		return Result{Value: value, AbsErr: abserr}
	}
	segs := make([]segment, 1, gk.MaxSubdivisions+1)
	segs[0] = segment{a: iv.Min, b: iv.Max, value: value, abserr: abserr}
	n := 0
	for ; n < gk.MaxSubdivisions && abserr > gk.Tolerance; n++ {
		worst := 0
		for i := range segs {
			if segs[i].abserr > segs[worst].abserr {
				worst = i
			}
		}
		s := segs[worst]
		mid := 0.5 * (s.a + s.b)
		v1, e1 := kronrod15(f, s.a, mid)
		v2, e2 := kronrod15(f, mid, s.b)
		segs[worst] = segment{a: s.a, b: mid, value: v1, abserr: e1}
		segs = append(segs, segment{a: mid, b: s.b, value: v2, abserr: e2})
		value, abserr = sum(segs)
		if !fseries.IsFinite(value) {
			n++
			break
		}
	}
	tracer().Debugf("integrated over %v: %g ± %g, %d subdivisions", iv, value, abserr, n)
	return Result{Value: value, AbsErr: abserr, Subdivisions: n}
}

func sum(segs []segment) (value, abserr float64) {
	for _, s := range segs {
		value += s.value
		abserr += s.abserr
	}
	return
}

// Nodes and weights of the 15-point Kronrod rule and the embedded 7-point
// Gauss rule on [-1, 1]. xgk[1], xgk[3], xgk[5] and xgk[7] are the Gauss
// nodes. Only non-negative nodes are listed, the rules are symmetric.
var xgk = [8]float64{
	0.991455371120812639206854697526329,
	0.949107912342758524526189684047851,
	0.864864423359769072789712788640926,
	0.741531185599394439863864773280788,
	0.586087235467691130294144845693013,
	0.405845151377397166906606412076961,
	0.207784955007898467600689403773245,
	0.000000000000000000000000000000000,
}

var wgk = [8]float64{
	0.022935322010529224963732008058970,
	0.063092092629978553290700663189204,
	0.104790010322250183839876322541518,
	0.140653259715525918745189590510238,
	0.169004726639267902826583426598550,
	0.190350578064785409913256402421014,
	0.204432940075298892414161999234649,
	0.209482141084727828012999174891714,
}

var wg = [4]float64{
	0.129484966168869693270611432679082,
	0.279705391489276667901467771423780,
	0.381830050505118944950369775488975,
	0.417959183673469387755102040816327,
}

// kronrod15 applies the G7/K15 pair to [a, b]. It returns the Kronrod
// approximation and |K15 - G7| as error estimate.
func kronrod15(f fseries.Func, a, b float64) (float64, float64) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)
	fc := f(center)
	resK := fc * wgk[7]
	resG := fc * wg[3]
	for j := 0; j < 7; j++ {
		dx := half * xgk[j]
		pair := f(center-dx) + f(center+dx)
		resK += wgk[j] * pair
		if j%2 == 1 {
			resG += wg[j/2] * pair
		}
	}
	return resK * half, math.Abs((resK - resG) * half)
}

// Legendre is a fixed-order Gauss–Legendre integrator with N nodes.
// The error estimate compares against the rule with N/2 nodes.
type Legendre struct {
	N int
}

// Integrate is part of interface Integrator.
func (l Legendre) Integrate(f fseries.Func, iv fseries.Interval) Result {
	n := l.N
	if n < 2 {
		n = 2
	}
	g := func(x float64) float64 { return f(x) }
	value := quad.Fixed(g, iv.Min, iv.Max, n, quad.Legendre{}, 0)
	coarse := quad.Fixed(g, iv.Min, iv.Max, n/2, quad.Legendre{}, 0)
	return Result{Value: value, AbsErr: math.Abs(value - coarse)}
}

var _ Integrator = GaussKronrod{}
var _ Integrator = Legendre{}
