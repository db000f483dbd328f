/*
Package render draws the output of an approximation tick.

It is the thin adapter between the engine and whatever shows the curves:
PNG writes an image using gonum/plot, Text draws into a character grid for
terminals. Both take an approx.Frame and nothing else from the engine.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"fmt"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/approx"
	"github.com/npillmayer/fseries/l2"
	"github.com/npillmayer/fseries/sampler"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// View is the world rectangle shown by a renderer.
type View struct {
	X, Y fseries.Interval
}

// DefaultView shows one period, [-π, π] × [-5, 5].
func DefaultView() View {
	return View{
		X: fseries.SymmetricPi,
		Y: fseries.Interval{Min: -5, Max: 5},
	}
}

// Contains is a predicate: is p inside the view?
func (v View) Contains(p fseries.Pair) bool {
	return v.X.Contains(p.X()) && v.Y.Contains(p.Y())
}

// Options control PNG output.
type Options struct {
	View   View
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the default view at 8 × 4 inches.
func DefaultOptions() Options {
	return Options{
		View:   DefaultView(),
		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// finite drops samples which cannot be drawn. Plotters refuse NaN and ±Inf.
func finite(pts sampler.Points) sampler.Points {
	out := make(sampler.Points, 0, len(pts))
	for _, p := range pts {
		if fseries.IsFinite(p.X()) && fseries.IsFinite(p.Y()) {
			out = append(out, p)
		}
	}
	return out
}

// Plot builds a gonum plot of the target function and the partial sum.
// The title shows the L2 error, verbatim if it is not finite.
func Plot(frame approx.Frame, view View) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("f(x) = %s    %s", frame.Text, l2.Format(frame.L2Error))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = view.X.Min, view.X.Max
	p.Y.Min, p.Y.Max = view.Y.Min, view.Y.Max
	p.Add(plotter.NewGrid())
	var curves []interface{}
	if pts := finite(frame.Target); len(pts) > 1 {
		curves = append(curves, "f(x)", pts)
	}
	if pts := finite(frame.Approximation); len(pts) > 1 {
		curves = append(curves, "Fourier sum", pts)
	}
	if err := plotutil.AddLines(p, curves...); err != nil {
		return nil, fmt.Errorf("failed to add curves: %w", err)
	}
	// AddLines may have widened the axes to the data range
	p.X.Min, p.X.Max = view.X.Min, view.X.Max
	p.Y.Min, p.Y.Max = view.Y.Min, view.Y.Max
	return p, nil
}

// PNG renders frame to an image file. The format follows the file
// extension, as with plot.Save.
func PNG(frame approx.Frame, path string, opts Options) error {
	p, err := Plot(frame, opts.View)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	tracer().Infof("wrote plot to %s", path)
	return nil
}
