package expression

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Named constants an expression may use besides the free variable x.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// function is an entry of the function table.
type function struct {
	arity int
	eval  govaluate.ExpressionFunction
}

// functions is the table of mathematical functions available in expressions.
var functions = map[string]function{
	"sqrt":   unary(math.Sqrt),
	"exp":    unary(math.Exp),
	"ln":     unary(math.Log),
	"log":    unary(math.Log),
	"abs":    unary(math.Abs),
	"sin":    unary(math.Sin),
	"cos":    unary(math.Cos),
	"tan":    unary(math.Tan),
	"asin":   unary(math.Asin),
	"acos":   unary(math.Acos),
	"atan":   unary(math.Atan),
	"sinh":   unary(math.Sinh),
	"cosh":   unary(math.Cosh),
	"tanh":   unary(math.Tanh),
	"asinh":  unary(math.Asinh),
	"acosh":  unary(math.Acosh),
	"atanh":  unary(math.Atanh),
	"floor":  unary(math.Floor),
	"ceil":   unary(math.Ceil),
	"round":  unary(math.Round),
	"signum": unary(signum),
	"min":    binary(math.Min),
	"max":    binary(math.Max),
	"atan2":  binary(math.Atan2),
	"pow":    binary(math.Pow),
}

// FunctionNames returns the names of the functions usable in expressions.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}

// evaluators is the function table in the form govaluate expects.
var evaluators = func() map[string]govaluate.ExpressionFunction {
	m := make(map[string]govaluate.ExpressionFunction, len(functions))
	for name, f := range functions {
		m[name] = f.eval
	}
	return m
}()

func signum(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func unary(f func(float64) float64) function {
	return function{arity: 1, eval: func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("function expects 1 argument, got %d", len(args))
		}
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return f(x), nil
	}}
}

func binary(f func(float64, float64) float64) function {
	return function{arity: 2, eval: func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("function expects 2 arguments, got %d", len(args))
		}
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		y, err := toFloat(args[1])
		if err != nil {
			return nil, err
		}
		return f(x, y), nil
	}}
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	}
	return math.NaN(), fmt.Errorf("not a number: %v (%T)", v, v)
}
