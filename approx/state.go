/*
Package approx holds the state of an approximation session and drives it
once per render tick.

A State owns the target expression and the two coefficient sets. A host
(a GUI render loop, a CLI, a test) feeds it commands between ticks:

	st := approx.New(approx.DefaultConfig())
	st.CommitExpression("abs(x)")  // on text field losing focus
	st.Cos().Append()              // "+" button
	st.Cos().SetValue(0, 1.5)      // slider
	frame := st.Tick()             // once per frame

and renders the Frame each tick returns. Nothing in here knows about widgets
or windows.

A State is not safe for concurrent use. It is meant to be owned by the one
goroutine driving the render loop.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package approx

import (
	"errors"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/coeff"
	"github.com/npillmayer/fseries/expression"
	"github.com/npillmayer/fseries/l2"
	"github.com/npillmayer/fseries/sampler"
	"github.com/npillmayer/fseries/series"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// ErrNotFinite indicates that fitting produced coefficients which are NaN or
// infinite. Those coefficients are left unchanged.
var ErrNotFinite = errors.New("fitted coefficient is not finite")

// State is the approximation state of a session.
type State struct {
	cfg    Config
	text   string                 // expression text as last committed
	expr   *expression.Expression // last expression which parsed
	target fseries.Func
	cos    *coeff.Set
	sin    *coeff.Set
	l2err  float64
	metric l2.Metric
	cosBuf []float64 // coefficient values, re-filled every tick
	sinBuf []float64
}

// New creates a state with empty coefficient sets and the expression of cfg.
// If cfg.Expression does not parse, the target is the zero function. Hosts
// should Validate cfg beforehand; an unknown integration rule is traced and
// replaced by the adaptive rule.
func New(cfg Config) *State {
	st := &State{
		cfg:    cfg,
		target: fseries.Zero,
		cos:    coeff.NewSet(coeff.Cosine),
		sin:    coeff.NewSet(coeff.Sine),
		metric: l2.Metric{
			Integrator: cfg.integrator(),
			Domain:     fseries.SymmetricPi,
		},
	}
	if err := cfg.Validate(); err != nil {
		tracer().Errorf("%v", err)
	}
	if err := st.CommitExpression(cfg.Expression); err != nil {
		tracer().Errorf("initial expression: %v", err)
	}
	return st
}

// Config returns the configuration the state has been created with.
func (st *State) Config() Config {
	return st.cfg
}

// CommitExpression is the commit event for the expression text. If text
// parses, it becomes the new target function. Otherwise the previous target
// stays in effect and an error wrapping expression.ErrParse is returned.
// In both cases Text reports text as typed.
func (st *State) CommitExpression(text string) error {
	st.text = text
	if err := fseries.CommitOrKeep(&st.expr, text, expression.Parse); err != nil {
		return err
	}
	st.target = st.expr.Bind()
	tracer().Infof("target function is now f(x) = %s", st.expr)
	return nil
}

// Text returns the expression text as last committed, which may not parse.
func (st *State) Text() string {
	return st.text
}

// Expression returns the expression in effect. It is nil if no expression
// has parsed so far.
func (st *State) Expression() *expression.Expression {
	return st.expr
}

// Target returns the target function in effect.
func (st *State) Target() fseries.Func {
	return st.target
}

// Cos returns the set of cosine coefficients a₀, a₁, ….
func (st *State) Cos() *coeff.Set {
	return st.cos
}

// Sin returns the set of sine coefficients b₁, b₂, ….
func (st *State) Sin() *coeff.Set {
	return st.sin
}

// L2Error returns the error computed by the last tick.
func (st *State) L2Error() float64 {
	return st.l2err
}

// Approximation returns the partial sum for the current coefficient values.
// The function works on a copy of the values and does not follow later
// changes.
func (st *State) Approximation() fseries.Func {
	return series.PartialSum(st.cos.Values(nil), st.sin.Values(nil))
}

// Frame is the output of one tick.
type Frame struct {
	Text          string         // expression text
	L2Error       float64        // may be NaN or ±Inf
	Target        sampler.Points // samples of the target function
	Approximation sampler.Points // samples of the partial sum
	Cos           []coeff.Row
	Sin           []coeff.Row
}

// Tick brings the state up to date and returns what is to be rendered:
// bound texts are committed, the L2 error is recomputed from scratch and both
// curves are sampled.
func (st *State) Tick() Frame {
	if n := st.cos.CommitBounds() + st.sin.CommitBounds(); n > 0 {
		tracer().Debugf("%d bound texts do not parse, keeping numeric bounds", n)
	}
	st.cosBuf = st.cos.Values(st.cosBuf)
	st.sinBuf = st.sin.Values(st.sinBuf)
	approx := series.PartialSum(st.cosBuf, st.sinBuf)
	st.l2err = st.metric.Error(st.target, approx)
	tracer().Debugf("tick: %d cos, %d sin terms, %s", len(st.cosBuf), len(st.sinBuf), l2.Format(st.l2err))
	return Frame{
		Text:          st.text,
		L2Error:       st.l2err,
		Target:        sampler.Sample(st.target, st.cfg.Domain, st.cfg.Samples),
		Approximation: sampler.Sample(approx, st.cfg.Domain, st.cfg.Samples),
		Cos:           st.cos.Rows(),
		Sin:           st.sin.Rows(),
	}
}

// Fit sets every coefficient to the corresponding coefficient of the Fourier
// series of the target, which minimizes the L2 error for the current number
// of terms. Ranges are widened where a fitted value falls outside. Values
// which come out NaN or infinite are not applied and ErrNotFinite is
// returned.
func (st *State) Fit() error {
	cos, sin := series.Project(st.target, st.cos.Len(), st.sin.Len(), st.cfg.integrator())
	skipped := apply(st.cos, cos) + apply(st.sin, sin)
	if skipped > 0 {
		tracer().Errorf("fit: %d coefficients are not finite", skipped)
		return ErrNotFinite
	}
	tracer().Infof("fitted %d cosine and %d sine coefficients", len(cos), len(sin))
	return nil
}

func apply(set *coeff.Set, values []float64) (skipped int) {
	for i, v := range values {
		if !fseries.IsFinite(v) {
			skipped++
			continue
		}
		_ = set.Widen(i, v)
		_ = set.SetValue(i, v)
	}
	return skipped
}
