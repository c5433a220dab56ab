/*
File    : logomix/builtins/words_lists.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerWordsAndLists(t *proc.Table) {
	t.RegisterPrimitive("word", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		var b strings.Builder
		for _, a := range args {
			text, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			b.WriteString(text)
		}
		return value.NewWord(b.String()), nil
	})

	t.RegisterPrimitive("list", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		items := make([]value.Value, len(args))
		copy(items, args)
		return value.NewList(items...), nil
	})

	flattenInto := func(v value.Value, out *[]value.Value) {
		if l, ok := v.(*value.List); ok {
			*out = append(*out, l.Items...)
		} else {
			*out = append(*out, v)
		}
	}
	t.RegisterPrimitive("sentence", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		var items []value.Value
		for _, a := range args {
			flattenInto(a, &items)
		}
		return value.NewList(items...), nil
	})
	t.RegisterPrimitive("se", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		var items []value.Value
		for _, a := range args {
			flattenInto(a, &items)
		}
		return value.NewList(items...), nil
	})

	t.RegisterPrimitive("fput", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		l, err := asList(rt(r), args[1])
		if err != nil {
			return nil, err
		}
		items := append([]value.Value{args[0]}, l.Items...)
		return value.NewList(items...), nil
	})
	t.RegisterPrimitive("lput", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		l, err := asList(rt(r), args[1])
		if err != nil {
			return nil, err
		}
		items := append(append([]value.Value{}, l.Items...), args[0])
		return value.NewList(items...), nil
	})

	t.RegisterPrimitive("first", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			if v.Text() == "" {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return value.NewWord(string([]rune(v.Text())[0])), nil
		case *value.List:
			if len(v.Items) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return v.Items[0], nil
		case *value.Array:
			if len(v.Items) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return v.Items[0], nil
		}
		return nil, run.NewError("first doesn't like its input")
	})

	t.RegisterPrimitive("last", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			runes := []rune(v.Text())
			if len(runes) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return value.NewWord(string(runes[len(runes)-1])), nil
		case *value.List:
			if len(v.Items) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return v.Items[len(v.Items)-1], nil
		}
		return nil, run.NewError("last doesn't like its input")
	})

	butfirst := func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			runes := []rune(v.Text())
			if len(runes) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return value.NewWord(string(runes[1:])), nil
		case *value.List:
			if len(v.Items) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			items := append([]value.Value{}, v.Items[1:]...)
			return value.NewList(items...), nil
		}
		return nil, run.NewError("butfirst doesn't like its input")
	}
	t.RegisterPrimitive("butfirst", proc.FixedArity(1), butfirst)
	t.RegisterPrimitive("bf", proc.FixedArity(1), butfirst)

	butlast := func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			runes := []rune(v.Text())
			if len(runes) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			return value.NewWord(string(runes[:len(runes)-1])), nil
		case *value.List:
			if len(v.Items) == 0 {
				return nil, run.NewError("%s doesn't like %s as input", run.CurrentProc(), v.Show())
			}
			items := append([]value.Value{}, v.Items[:len(v.Items)-1]...)
			return value.NewList(items...), nil
		}
		return nil, run.NewError("butlast doesn't like its input")
	}
	t.RegisterPrimitive("butlast", proc.FixedArity(1), butlast)
	t.RegisterPrimitive("bl", proc.FixedArity(1), butlast)

	t.RegisterPrimitive("item", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := asNumber(run, args[0])
		if err != nil {
			return nil, err
		}
		idx := int(n)
		switch v := args[1].(type) {
		case *value.Word:
			runes := []rune(v.Text())
			if idx < 1 || idx > len(runes) {
				return nil, run.NewError("%s doesn't like %v as input", run.CurrentProc(), n)
			}
			return value.NewWord(string(runes[idx-1])), nil
		case *value.List:
			if idx < 1 || idx > len(v.Items) {
				return nil, run.NewError("%s doesn't like %v as input", run.CurrentProc(), n)
			}
			return v.Items[idx-1], nil
		case *value.Array:
			pos := idx - v.Origin
			if pos < 0 || pos >= len(v.Items) {
				return nil, run.NewError("%s doesn't like %v as input", run.CurrentProc(), n)
			}
			return v.Items[pos], nil
		}
		return nil, run.NewError("item doesn't like its input")
	})

	t.RegisterPrimitive("setitem", proc.FixedArity(3), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := asNumber(run, args[0])
		if err != nil {
			return nil, err
		}
		arr, err := asArray(run, args[1])
		if err != nil {
			return nil, err
		}
		if value.ContainsIdentity(args[2], arr) {
			return nil, run.NewError("SETITEM can't create a circular array")
		}
		pos := int(n) - arr.Origin
		if pos < 0 || pos >= len(arr.Items) {
			return nil, run.NewError("%s doesn't like %v as input", run.CurrentProc(), n)
		}
		arr.Items[pos] = args[2]
		return nil, nil
	})

	t.RegisterPrimitive("count", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			return value.NewNumber(float64(len([]rune(v.Text())))), nil
		case *value.List:
			return value.NewNumber(float64(len(v.Items))), nil
		case *value.Array:
			return value.NewNumber(float64(len(v.Items))), nil
		}
		return nil, run.NewError("count doesn't like its input")
	})

	t.RegisterPrimitive("reverse", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		switch v := args[0].(type) {
		case *value.Word:
			runes := []rune(v.Text())
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return value.NewWord(string(runes)), nil
		case *value.List:
			items := make([]value.Value, len(v.Items))
			for i, it := range v.Items {
				items[len(items)-1-i] = it
			}
			return value.NewList(items...), nil
		}
		return nil, run.NewError("reverse doesn't like its input")
	})

	t.RegisterPrimitive("combine", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		if _, ok := args[1].(*value.List); ok {
			l, _ := asList(rt(r), args[1])
			items := append([]value.Value{args[0]}, l.Items...)
			return value.NewList(items...), nil
		}
		run := rt(r)
		a, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asText(run, args[1])
		if err != nil {
			return nil, err
		}
		return value.NewWord(a + b), nil
	})

	t.RegisterPrimitive("array", proc.Arity{Min: 1, Default: 1, Max: 2}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := asNumber(run, args[0])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, run.NewError("ARRAY size must be positive, not %v", n)
		}
		origin := 1
		if len(args) == 2 {
			o, err := asNumber(run, args[1])
			if err != nil {
				return nil, err
			}
			origin = int(o)
		}
		items := make([]value.Value, int(n))
		for i := range items {
			items[i] = value.NewList()
		}
		return value.NewArray(items, origin), nil
	})

	t.RegisterPrimitive("listtoarray", proc.Arity{Min: 1, Default: 1, Max: 2}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		l, err := asList(run, args[0])
		if err != nil {
			return nil, err
		}
		origin := 1
		if len(args) == 2 {
			o, err := asNumber(run, args[1])
			if err != nil {
				return nil, err
			}
			origin = int(o)
		}
		items := append([]value.Value{}, l.Items...)
		return value.NewArray(items, origin), nil
	})

	t.RegisterPrimitive("arraytolist", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		a, err := asArray(rt(r), args[0])
		if err != nil {
			return nil, err
		}
		items := append([]value.Value{}, a.Items...)
		return value.NewList(items...), nil
	})
}
