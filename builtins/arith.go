/*
File    : logomix/builtins/arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"math"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerArith(t *proc.Table) {
	variadic := func(min int, fn func(nums []float64) float64) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			run := rt(r)
			nums := make([]float64, len(args))
			for i, a := range args {
				n, err := asNumber(run, a)
				if err != nil {
					return nil, err
				}
				nums[i] = n
			}
			return value.NewNumber(fn(nums)), nil
		}
	}
	binary := func(fn func(a, b float64) (float64, error)) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			run := rt(r)
			a, err := asNumber(run, args[0])
			if err != nil {
				return nil, err
			}
			b, err := asNumber(run, args[1])
			if err != nil {
				return nil, err
			}
			n, err := fn(a, b)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(n), nil
		}
	}
	unary := func(fn func(a float64) float64) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			n, err := asNumber(rt(r), args[0])
			if err != nil {
				return nil, err
			}
			return value.NewNumber(fn(n)), nil
		}
	}

	t.RegisterPrimitive("sum", proc.Arity{Min: 2, Default: 2, Max: -1}, variadic(2, func(ns []float64) float64 {
		total := 0.0
		for _, n := range ns {
			total += n
		}
		return total
	}))
	t.RegisterPrimitive("product", proc.Arity{Min: 2, Default: 2, Max: -1}, variadic(2, func(ns []float64) float64 {
		total := 1.0
		for _, n := range ns {
			total *= n
		}
		return total
	}))
	t.RegisterPrimitive("difference", proc.FixedArity(2), binary(func(a, b float64) (float64, error) { return a - b, nil }))
	t.RegisterPrimitive("quotient", proc.FixedArity(2), binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return a / b, nil
	}))
	t.RegisterPrimitive("remainder", proc.FixedArity(2), binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return math.Mod(a, b), nil
	}))
	t.RegisterPrimitive("modulo", proc.FixedArity(2), binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		m := math.Mod(a, b)
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return m, nil
	}))
	t.RegisterPrimitive("power", proc.FixedArity(2), binary(func(a, b float64) (float64, error) { return math.Pow(a, b), nil }))
	t.RegisterPrimitive("minus", proc.FixedArity(1), unary(func(a float64) float64 { return -a }))
	t.RegisterPrimitive("abs", proc.FixedArity(1), unary(math.Abs))
	t.RegisterPrimitive("sqrt", proc.FixedArity(1), unary(math.Sqrt))
	t.RegisterPrimitive("int", proc.FixedArity(1), unary(math.Trunc))
	t.RegisterPrimitive("round", proc.FixedArity(1), unary(math.Round))
	t.RegisterPrimitive("sin", proc.FixedArity(1), unary(func(a float64) float64 { return math.Sin(a * math.Pi / 180) }))
	t.RegisterPrimitive("cos", proc.FixedArity(1), unary(func(a float64) float64 { return math.Cos(a * math.Pi / 180) }))
	t.RegisterPrimitive("arctan", proc.FixedArity(1), unary(func(a float64) float64 { return math.Atan(a) * 180 / math.Pi }))
	t.RegisterPrimitive("ln", proc.FixedArity(1), unary(math.Log))
	t.RegisterPrimitive("log10", proc.FixedArity(1), unary(math.Log10))
	t.RegisterPrimitive("exp", proc.FixedArity(1), unary(math.Exp))
	t.RegisterPrimitive("pi", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(math.Pi), nil
	})

	t.RegisterPrimitive("random", proc.Arity{Min: 1, Default: 1, Max: 2}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		lo, err := asNumber(run, args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return value.NewNumber(float64(run.Env().Prng.IntN(int64(lo)))), nil
		}
		hi, err := asNumber(run, args[1])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(lo + float64(run.Env().Prng.IntN(int64(hi-lo+1)))), nil
	})
	t.RegisterPrimitive("rerandom", proc.Arity{Min: 0, Default: 0, Max: 2}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		var s1, s2 uint64 = 1, 1
		if len(args) > 0 {
			n, err := asNumber(run, args[0])
			if err != nil {
				return nil, err
			}
			s1 = uint64(n)
		}
		run.Env().Prng.Reseed(s1, s2)
		return nil, nil
	})
	// numberwang: a joke primitive from the source this was distilled
	// from, returning 0 or 1 at random (spec.md §9 — preserved as-is).
	t.RegisterPrimitive("numberwang", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(float64(rt(r).Env().Prng.IntN(2))), nil
	})
}

var errDivByZero = &value.Error{Message: "Division by zero"}
