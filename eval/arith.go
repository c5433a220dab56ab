/*
File    : logomix/eval/arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/logomix/value"
)

func boolWord(b bool) value.Value {
	if b {
		return value.NewWord("true")
	}
	return value.NewWord("false")
}

// applyArith implements the Additive/Multiplicative/Power operators
// (spec.md §4.3). Division and modulo by zero always raise rather than
// producing infinity or NaN, per spec.md §8's testable property.
func (e *Evaluator) applyArith(op string, a, b value.Value) (value.Value, error) {
	an, aok := value.AsNumber(a)
	if !aok {
		return nil, e.NewError("%s doesn't like %s as input", op, a.Show())
	}
	bn, bok := value.AsNumber(b)
	if !bok {
		return nil, e.NewError("%s doesn't like %s as input", op, b.Show())
	}
	switch op {
	case "+":
		return value.NewNumber(an + bn), nil
	case "-":
		return value.NewNumber(an - bn), nil
	case "*":
		return value.NewNumber(an * bn), nil
	case "/":
		if bn == 0 {
			return nil, e.NewError("Division by zero")
		}
		return value.NewNumber(an / bn), nil
	case "%":
		if bn == 0 {
			return nil, e.NewError("Division by zero")
		}
		return value.NewNumber(math.Mod(an, bn)), nil
	case "^":
		return value.NewNumber(math.Pow(an, bn)), nil
	}
	return nil, e.NewError("unknown operator %s", op)
}

// applyRelational implements the Relational operators, which compare
// numerically for ordering and by value.Equal for (in)equality (so that
// "=" still matches word-vs-number and list-vs-list per spec.md §3).
func (e *Evaluator) applyRelational(op string, a, b value.Value) (value.Value, error) {
	switch op {
	case "=":
		return boolWord(value.Equal(a, b)), nil
	case "<>":
		return boolWord(!value.Equal(a, b)), nil
	}
	an, aok := value.AsNumber(a)
	bn, bok := value.AsNumber(b)
	if !aok || !bok {
		return nil, e.NewError("%s doesn't like a non-numeric input", op)
	}
	switch op {
	case "<":
		return boolWord(an < bn), nil
	case ">":
		return boolWord(an > bn), nil
	case "<=":
		return boolWord(an <= bn), nil
	case ">=":
		return boolWord(an >= bn), nil
	}
	return nil, e.NewError("unknown operator %s", op)
}
