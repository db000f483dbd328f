/*
Package l2 measures how well a partial Fourier sum approximates a target
function. The measure is the L2 distance on [-π, π],

	‖f - g‖ = sqrt( ∫_{-π}^{π} (f(x) - g(x))² dx )

independent of the domain a client plots on. The distance is recomputed in
full on every call; there is no caching between ticks.

Non-finite values are not hidden: if f or g evaluate to NaN or ±Inf, the
error is NaN or +Inf, and Format renders it verbatim.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package l2

import (
	"fmt"
	"math"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/quadrature"
)

// Metric computes L2 distances with a given integrator over a given domain.
type Metric struct {
	Integrator quadrature.Integrator
	Domain     fseries.Interval
}

// Default returns the metric over [-π, π] using adaptive Gauss–Kronrod
// integration with default tolerance and subdivisions.
func Default() Metric {
	return Metric{
		Integrator: quadrature.Default(),
		Domain:     fseries.SymmetricPi,
	}
}

// Norm returns the L2 norm of f.
func (m Metric) Norm(f fseries.Func) float64 {
	integ := m.Integrator
	if integ == nil {
		integ = quadrature.Default()
	}
	r := integ.Integrate(func(x float64) float64 {
		y := f(x)
		return y * y
	}, m.Domain)
	return math.Sqrt(r.Value)
}

// Error returns the L2 distance between target and approx.
func (m Metric) Error(target, approx fseries.Func) float64 {
	return m.Norm(fseries.Sub(target, approx))
}

// Norm returns the L2 norm of f on [-π, π].
func Norm(f fseries.Func) float64 {
	return Default().Norm(f)
}

// Error returns the L2 distance between target and approx on [-π, π].
func Error(target, approx fseries.Func) float64 {
	return Default().Error(target, approx)
}

// Format renders an error value for display. Non-finite values are shown as
// they are ("NaN", "+Inf").
func Format(v float64) string {
	if !fseries.IsFinite(v) {
		return fmt.Sprintf("L2 error: %v", v)
	}
	return fmt.Sprintf("L2 error: %.8f", v)
}
