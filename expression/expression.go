/*
Package expression turns user-typed text into a real function of one variable.

Expressions use infix arithmetic with the usual precedence, `^` (or `**`) for
exponentiation grouping to the right, parentheses, decimal literals with an
optional exponent (`1.5e-3`), the constants `pi` and `e`, and the functions
listed by FunctionNames. Anything else, comparisons or string literals for
example, is a parse error. The single free variable is `x`:

	e, err := expression.Parse("x^2 - 2*cos(pi*x)")
	f := e.Bind()
	y := f(0.5)

Parsing is meant to happen on commit events only (a text field losing focus),
not on every keystroke. If parsing fails, clients keep the expression they
already have; see fseries.CommitOrKeep.

Binding never fails. An expression referencing a variable other than x binds
to the zero function, and evaluation problems show up as NaN, never as an
error on the render path.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package expression

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/npillmayer/fseries"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fseries'
func tracer() tracing.Trace {
	return tracing.Select("fseries")
}

// Variable is the name of the free variable.
const Variable = "x"

var (
	// ErrParse indicates malformed expression text.
	ErrParse = errors.New("cannot parse expression")
	// ErrEmptyExpression indicates an expression text without any content.
	ErrEmptyExpression = fmt.Errorf("%w: expression is empty", ErrParse)
)

// Expression is an immutable, parsed single-variable expression.
type Expression struct {
	source string
	parsed *govaluate.EvaluableExpression
	vars   []string // free variables besides named constants, sorted
}

// Parse parses text into an Expression. All errors returned wrap ErrParse.
func Parse(text string) (*Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyExpression
	}
	normalized, err := normalize(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, text, err)
	}
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, evaluators)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, text, err)
	}
	if err := checkTokens(parsed); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, text, err)
	}
	e := &Expression{
		source: text,
		parsed: parsed,
		vars:   freeVariables(parsed),
	}
	tracer().Debugf("parsed expression %q as %s, variables %v", text, normalized, e.vars)
	return e, nil
}

// MustParse is like Parse, but panics if text cannot be parsed.
// It is intended for expressions known at compile time.
func MustParse(text string) *Expression {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

func freeVariables(parsed *govaluate.EvaluableExpression) []string {
	seen := make(map[string]bool)
	for _, tok := range parsed.Tokens() {
		if tok.Kind != govaluate.VARIABLE {
			continue
		}
		if name, ok := tok.Value.(string); ok {
			if _, isConst := constants[name]; !isConst {
				seen[name] = true
			}
		}
	}
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}

// Source returns the text the expression has been parsed from.
func (e *Expression) Source() string {
	if e == nil {
		return ""
	}
	return e.source
}

func (e *Expression) String() string {
	return e.Source()
}

// Variables returns the free variables the expression references,
// excluding the named constants.
func (e *Expression) Variables() []string {
	if e == nil {
		return nil
	}
	return append([]string(nil), e.vars...)
}

// IsBindable is a predicate: does the expression reference no free variable
// except x ?
func (e *Expression) IsBindable() bool {
	if e == nil {
		return false
	}
	for _, v := range e.vars {
		if v != Variable {
			return false
		}
	}
	return true
}

// Bind returns the expression as a function of x.
//
// A nil expression, or one referencing a variable other than x, binds to the
// zero function. Evaluation errors evaluate to NaN.
func (e *Expression) Bind() fseries.Func {
	if !e.IsBindable() {
		if e != nil {
			tracer().Errorf("expression %q has unexpected variables %v, using f(x)=0",
				e.source, e.vars)
		}
		return fseries.Zero
	}
	parsed := e.parsed
	return func(x float64) (y float64) {
		defer func() {
			if r := recover(); r != nil {
				y = math.NaN()
			}
		}()
		v, err := parsed.Eval(binding(x))
		if err != nil {
			return math.NaN()
		}
		if y, err = toFloat(v); err != nil {
			return math.NaN()
		}
		return y
	}
}

// binding resolves variable names during evaluation.
type binding float64

// Get is part of interface govaluate.Parameters.
func (b binding) Get(name string) (interface{}, error) {
	if name == Variable {
		return float64(b), nil
	}
	if c, ok := constants[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no such variable: %s", name)
}

var _ govaluate.Parameters = binding(0)
