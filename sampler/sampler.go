// Package sampler produces point sequences of functions for plotting.
package sampler

import "github.com/npillmayer/fseries"

// Points is a sequence of (x, f(x)) samples, ordered by x.
//
// Points satisfies gonum's plotter.XYer, so it may be handed to a plotter
// without conversion.
type Points []fseries.Pair

// Len returns the number of samples.
func (pts Points) Len() int {
	return len(pts)
}

// XY returns the coordinates of sample i.
func (pts Points) XY(i int) (float64, float64) {
	return pts[i].F()
}

// Ys returns the y-values of the samples.
func (pts Points) Ys() []float64 {
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y()
	}
	return ys
}

// Sample evaluates f at count evenly spaced positions across domain. Both
// ends of the domain are included: the first sample is at domain.Min, the
// last at domain.Max. For count == 1 the single sample is at domain.Min; for
// count <= 0 the result is empty.
//
// Sample keeps no state; calling it again with the same arguments yields the
// same points.
func Sample(f fseries.Func, domain fseries.Interval, count int) Points {
	if count <= 0 {
		return Points{}
	}
	pts := make(Points, count)
	if count == 1 {
		pts[0] = fseries.P(domain.Min, f(domain.Min))
		return pts
	}
	step := domain.Width() / float64(count-1)
	for i := range pts {
		x := domain.Min + float64(i)*step
		if i == count-1 {
			x = domain.Max
		}
		pts[i] = fseries.P(x, f(x))
	}
	return pts
}
