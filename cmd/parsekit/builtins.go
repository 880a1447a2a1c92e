package main

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ava12/parsekit/examples/formula"
)

func numbers(args []any, atLeast int) ([]float64, error) {
	if len(args) < atLeast {
		return nil, fmt.Errorf("at least %d arguments expected, got %d", atLeast, len(args))
	}
	res := make([]float64, len(args))
	for i, a := range args {
		x, valid := a.(float64)
		if !valid {
			return nil, fmt.Errorf("argument #%d is not a number", i+1)
		}
		res[i] = x
	}
	return res, nil
}

func unaryMath(f func(float64) float64) formula.Func {
	return func(args []any) (any, error) {
		xs, e := numbers(args, 1)
		if e != nil {
			return nil, e
		}
		return f(xs[0]), nil
	}
}

func fold(f func(a, b float64) float64) formula.Func {
	return func(args []any) (any, error) {
		xs, e := numbers(args, 1)
		if e != nil {
			return nil, e
		}
		res := xs[0]
		for _, x := range xs[1:] {
			res = f(res, x)
		}
		return res, nil
	}
}

func length(args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("1 argument expected, got %d", len(args))
	}
	switch x := args[0].(type) {
	case string:
		return float64(utf8.RuneCountInString(x)), nil
	case []any:
		return float64(len(x)), nil
	case map[string]any:
		return float64(len(x)), nil
	default:
		return nil, fmt.Errorf("length of %T is undefined", x)
	}
}

// builtins returns functions and constants available to evaluated formulas.
func builtins() formula.Env {
	return formula.Env{
		"pi":    math.Pi,
		"e":     math.E,
		"abs":   unaryMath(math.Abs),
		"sqrt":  unaryMath(math.Sqrt),
		"floor": unaryMath(math.Floor),
		"ceil":  unaryMath(math.Ceil),
		"round": unaryMath(math.Round),
		"min":   fold(math.Min),
		"max":   fold(math.Max),
		"len":   formula.Func(length),
	}
}
