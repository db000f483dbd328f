/*
Package fseries implements an engine for approximating a function of one real
variable by a truncated Fourier series.

Clients type an expression f(x), tune two sets of coefficients (cosine terms
and sine terms) and receive, once per render tick, the L2 error between f and
the partial sum together with dense samples of both curves. The root package
holds the numeric vocabulary shared by the sub-packages: real functions,
intervals, 2D points and affine transforms.

	expression   parse text into a real function of x
	coeff        bounded, resizable coefficient sets
	series       partial Fourier sums and coefficient projection
	quadrature   numerical integration
	l2           L2 error between two functions on [-π, π]
	sampler      point sequences for plotting
	approx       the approximation state, driven once per tick
	render       adapters drawing a tick to PNG or to a character grid

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fseries

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Functions and Intervals ===============================================

// Func is a real function of one real variable.
//
// Implementations must not panic. Values which are not defined, e.g. 1/x at
// x=0, are reported as NaN or ±Inf.
type Func func(float64) float64

// Zero is the constant-zero function.
func Zero(float64) float64 { return 0 }

// Const returns the constant function x ↦ c.
func Const(c float64) Func {
	return func(float64) float64 { return c }
}

// Sub returns the pointwise difference f - g.
func Sub(f, g Func) Func {
	return func(x float64) float64 { return f(x) - g(x) }
}

// Interval is a closed interval [Min, Max] on the real line.
type Interval struct {
	Min, Max float64
}

// SymmetricPi is the interval [-π, π], the period the series is fitted on.
var SymmetricPi = Interval{Min: -math.Pi, Max: math.Pi}

// Width returns Max - Min.
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// Contains is a predicate: is Min ≤ x ≤ Max ?
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Min && x <= iv.Max
}

// Clamp returns x restricted to the interval.
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g,%g]", iv.Min, iv.Max)
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, used for (x, f(x)) samples.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs, up to ε.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}
