/*
Package coeff holds the tunable coefficients of a partial Fourier sum.

A Set is an ordered, index-addressed collection of Coefficient records.
There is one set for the cosine terms a₀, a₁, … and one for the sine terms
b₁, b₂, …. Every Coefficient carries its value, an inclusive range
[Min, Max] for slider widgets, and the texts of Min and Max as typed by the
user. Bound texts are kept apart from the numeric bounds: an edit of a bound
text does not touch the numeric bound until the text parses.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coeff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// Default range of a freshly appended coefficient.
const (
	DefaultMin float64 = -10
	DefaultMax float64 = 10
)

var (
	// ErrIndex indicates a coefficient index outside of a set.
	ErrIndex = errors.New("coefficient index out of range")
	// ErrBound indicates a bound text which is not a number.
	ErrBound = errors.New("bound is not a number")
)

// Kind tells the cosine set from the sine set.
type Kind int8

// Set kinds. Cosine index n contributes a_n·cos(n·x), sine index m
// contributes b_m·sin((m+1)·x).
const (
	Cosine Kind = iota
	Sine
)

func (k Kind) String() string {
	if k == Sine {
		return "sin"
	}
	return "cos"
}

// Bound selects the lower or upper bound of a coefficient.
type Bound int8

// Bounds of a coefficient range.
const (
	Min Bound = iota
	Max
)

func (b Bound) String() string {
	if b == Max {
		return "max"
	}
	return "min"
}

// Coefficient is one tunable scalar together with its slider range.
type Coefficient struct {
	Value   float64
	Min     float64
	Max     float64
	MinText string // lower bound as typed
	MaxText string // upper bound as typed
}

// New creates a coefficient with value v and range [min, max]. The bound
// texts are derived from the numeric bounds.
func New(v, min, max float64) Coefficient {
	return Coefficient{
		Value:   v,
		Min:     min,
		Max:     max,
		MinText: FormatBound(min),
		MaxText: FormatBound(max),
	}
}

// Range returns [Min, Max] as an interval.
func (c Coefficient) Range() fseries.Interval {
	return fseries.Interval{Min: c.Min, Max: c.Max}
}

// DragSpeed is the value change per pixel a drag widget should use:
// one percent of the range.
func (c Coefficient) DragSpeed() float64 {
	return (c.Max - c.Min) * 0.01
}

// FormatBound formats a numeric bound the way it is shown in a text field.
func FormatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseBound parses a bound text. Surrounding white space is ignored.
func ParseBound(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBound, text)
	}
	return v, nil
}

func (c *Coefficient) bound(which Bound) (*float64, *string) {
	if which == Max {
		return &c.Max, &c.MaxText
	}
	return &c.Min, &c.MinText
}

// commitBound parses the text of bound which. On failure the numeric bound
// is left unchanged and the text stays as it is.
func (c *Coefficient) commitBound(which Bound) error {
	num, text := c.bound(which)
	return fseries.CommitOrKeep(num, *text, ParseBound)
}
