package expression

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBound(t *testing.T, text string, x, expected, tol float64) {
	t.Helper()
	e, err := Parse(text)
	require.NoError(t, err, "cannot parse %q", text)
	got := e.Bind()(x)
	if math.Abs(got-expected) > tol {
		t.Errorf("%s at x=%v = %v, want %v (tol=%v)", text, x, got, expected, tol)
	}
}

func TestParseArithmetic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assertBound(t, "x", 5, 5, 0)
	assertBound(t, "x^2", 3, 9, 1e-12)
	assertBound(t, "x**2", -3, 9, 1e-12)
	assertBound(t, "2*x^2", 3, 18, 1e-12)
	assertBound(t, "2*x + 1", 4, 9, 0)
	assertBound(t, "(x - 1) / 4", 3, 0.5, 1e-15)
	assertBound(t, "-x", 2.5, -2.5, 0)
	assertBound(t, "0.5 * x", 3, 1.5, 0)
}

func TestParseFunctionsAndConstants(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assertBound(t, "sin(x)", math.Pi/2, 1, 1e-15)
	assertBound(t, "cos(pi*x)", 1, -1, 1e-15)
	assertBound(t, "ln(e)", 0, 1, 1e-15)
	assertBound(t, "log(x)", math.E, 1, 1e-15)
	assertBound(t, "sqrt(abs(x))", -16, 4, 1e-15)
	assertBound(t, "exp(-x^2)", 0, 1, 0)
	assertBound(t, "max(x, 1)", -3, 1, 0)
	assertBound(t, "signum(x)", -0.1, -1, 0)
	assertBound(t, "floor(x) + ceil(x)", 1.5, 3, 0)
}

func TestParseFailure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, text := range []string{"x^^", "sin(x", "2 +", "x )", "(x", "x^", "*x"} {
		_, err := Parse(text)
		assert.Error(t, err, "expected %q to be rejected", text)
		assert.True(t, errors.Is(err, ErrParse), "error for %q should wrap ErrParse: %v", text, err)
	}
	_, err := Parse("   ")
	assert.True(t, errors.Is(err, ErrEmptyExpression))
	assert.True(t, errors.Is(err, ErrParse))
}

func TestUnexpectedVariableBindsToZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, err := Parse("x + y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, e.Variables())
	assert.False(t, e.IsBindable())
	f := e.Bind()
	for _, x := range []float64{-1, 0, 3.7} {
		assert.Equal(t, 0.0, f(x))
	}
}

func TestConstantsAreNotVariables(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, err := Parse("pi * e")
	require.NoError(t, err)
	assert.Empty(t, e.Variables())
	assert.True(t, e.IsBindable())
	assert.InDelta(t, math.Pi*math.E, e.Bind()(0), 1e-14)
}

func TestEvaluationProblemsYieldNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, err := Parse("sqrt(x)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Bind()(-1)))
	e, err = Parse("ln(x) + 1")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Bind()(-2)))
}

func TestPrecedence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assertBound(t, "-x^2", 3, -9, 1e-12)
	assertBound(t, "-x**2", 3, -9, 1e-12)
	assertBound(t, "-2^2", 0, -4, 1e-12)
	assertBound(t, "(-x)^2", 3, 9, 1e-12)
	assertBound(t, "2^3^2", 0, 512, 1e-9)
	assertBound(t, "2^-1", 0, 0.5, 1e-15)
	assertBound(t, "1 - x^2", 3, -8, 1e-12)
	assertBound(t, "2*x^2", 3, 18, 1e-12)
	assertBound(t, "1 - 2 - 3", 0, -4, 0)
	assertBound(t, "8 / 4 / 2", 0, 1, 0)
	assertBound(t, "7 % 4 * 2", 0, 6, 0)
	assertBound(t, "--x", 2, 2, 0)
	assertBound(t, "+x - +1", 2, 1, 0)
	assertBound(t, "-sin(x)^2", math.Pi/2, -1, 1e-12)
}

func TestScientificLiterals(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assertBound(t, "1e-3*x", 1000, 1, 1e-12)
	assertBound(t, "2.5E+2", 0, 250, 0)
	assertBound(t, "x*1e2", 0.5, 50, 1e-12)
	assertBound(t, ".5*x", 4, 2, 0)
	assertBound(t, "2*e", 0, 2*math.E, 1e-15)
}

func TestNonArithmeticIsRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, text := range []string{
		"x ? 1", "x ? 1 : 2", "!x", "~x", "x in (1,2)", "x =~ 'a'", "'a'",
		"'2024-01-01'", "x > 1", "x && 1", "()", "sin()", "sin(x, 1)", "max(x)",
		"foo(x)", "sin", "pi(2)", "2e", "2x", "1.2.3", "x x", ".", "x,1",
	} {
		_, err := Parse(text)
		assert.True(t, errors.Is(err, ErrParse), "expected %q to be rejected, got %v", text, err)
	}
}

func TestNilExpressionBindsToZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var e *Expression
	assert.Equal(t, "", e.Source())
	assert.Equal(t, 0.0, e.Bind()(12))
}

func TestSourceIsKeptAsTyped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := MustParse("x^3")
	assert.Equal(t, "x^3", e.Source())
	assert.Equal(t, "x^3", e.String())
	assert.Contains(t, FunctionNames(), "sin")
}
