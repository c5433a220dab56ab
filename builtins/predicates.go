/*
File    : logomix/builtins/predicates.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerPredicates(t *proc.Table) {
	typeTest := func(fn func(v value.Value) bool) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			return boolWord(fn(args[0])), nil
		}
	}

	t.RegisterPrimitive("numberp", proc.FixedArity(1), typeTest(func(v value.Value) bool {
		w, ok := v.(*value.Word)
		return ok && w.IsNumber()
	}))
	t.RegisterPrimitive("wordp", proc.FixedArity(1), typeTest(func(v value.Value) bool {
		_, ok := v.(*value.Word)
		return ok
	}))
	t.RegisterPrimitive("listp", proc.FixedArity(1), typeTest(func(v value.Value) bool {
		_, ok := v.(*value.List)
		return ok
	}))
	t.RegisterPrimitive("arrayp", proc.FixedArity(1), typeTest(func(v value.Value) bool {
		_, ok := v.(*value.Array)
		return ok
	}))
	t.RegisterPrimitive("emptyp", proc.FixedArity(1), typeTest(func(v value.Value) bool {
		switch tv := v.(type) {
		case *value.Word:
			return tv.Text() == ""
		case *value.List:
			return len(tv.Items) == 0
		}
		return false
	}))

	t.RegisterPrimitive("equalp", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		return boolWord(value.Equal(args[0], args[1])), nil
	})
	t.RegisterPrimitive("notequalp", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		return boolWord(!value.Equal(args[0], args[1])), nil
	})
	t.RegisterPrimitive(".eq", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		aArr, aok := args[0].(*value.Array)
		bArr, bok := args[1].(*value.Array)
		if aok && bok {
			return boolWord(aArr == bArr), nil
		}
		return boolWord(value.Equal(args[0], args[1])), nil
	})

	numericRel := func(fn func(a, b float64) bool) proc.NativeFunc {
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
			return boolWord(fn(a, b)), nil
		}
	}
	t.RegisterPrimitive("lessp", proc.FixedArity(2), numericRel(func(a, b float64) bool { return a < b }))
	t.RegisterPrimitive("greaterp", proc.FixedArity(2), numericRel(func(a, b float64) bool { return a > b }))
	t.RegisterPrimitive("zerop", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		n, err := asNumber(rt(r), args[0])
		if err != nil {
			return nil, err
		}
		return boolWord(n == 0), nil
	})

	t.RegisterPrimitive("beforep", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		a, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asText(run, args[1])
		if err != nil {
			return nil, err
		}
		return boolWord(strings.Compare(a, b) < 0), nil
	})

	t.RegisterPrimitive("memberp", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		l, err := asList(rt(r), args[1])
		if err != nil {
			return nil, err
		}
		for _, item := range l.Items {
			if value.Equal(args[0], item) {
				return boolWord(true), nil
			}
		}
		return boolWord(false), nil
	})
}
