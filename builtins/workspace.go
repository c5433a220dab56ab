/*
File    : logomix/builtins/workspace.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerWorkspace(t *proc.Table) {
	t.RegisterPrimitive("trace", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		return nil, forEachName(rt(r), args, func(run eval.Runtime, n string) { run.SetProcTrace(n, true) })
	})
	t.RegisterPrimitive("notrace", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		return nil, forEachName(rt(r), args, func(run eval.Runtime, n string) { run.SetProcTrace(n, false) })
	})
	t.RegisterPrimitive("step", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		return nil, forEachName(rt(r), args, func(run eval.Runtime, n string) { run.SetProcStep(n, true) })
	})
	t.RegisterPrimitive("unstep", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		return nil, forEachName(rt(r), args, func(run eval.Runtime, n string) { run.SetProcStep(n, false) })
	})

	t.RegisterPrimitive("bury", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, a := range args {
			name, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			run.Env().GlobalDecl(name)
			b, _ := run.Env().Lookup(name)
			b.Buried = true
		}
		return nil, nil
	})
	t.RegisterPrimitive("unbury", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, a := range args {
			name, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			if b, ok := run.Env().Lookup(name); ok {
				b.Buried = false
			}
		}
		return nil, nil
	})
	t.RegisterPrimitive("buriedp", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		b, ok := run.Env().Lookup(name)
		return boolWord(ok && b.Buried), nil
	})

	t.RegisterPrimitive("erase", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, a := range args {
			name, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			run.Procs().Erase(name)
		}
		return nil, nil
	})
	t.RegisterPrimitive("erns", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, name := range run.Env().Global().Names() {
			run.Env().EraseName(name)
		}
		return nil, nil
	})
	t.RegisterPrimitive("erps", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, name := range run.Procs().UserNames() {
			run.Procs().Erase(name)
		}
		return nil, nil
	})
	t.RegisterPrimitive("erall", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, name := range run.Procs().UserNames() {
			run.Procs().Erase(name)
		}
		for _, name := range run.Env().Global().Names() {
			run.Env().EraseName(name)
		}
		return nil, nil
	})

	t.RegisterPrimitive("pprop", proc.FixedArity(3), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		plistName, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		prop, err := asText(run, args[1])
		if err != nil {
			return nil, err
		}
		run.Env().Plist(plistName)[prop] = args[2]
		return nil, nil
	})
	t.RegisterPrimitive("gprop", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		plistName, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		prop, err := asText(run, args[1])
		if err != nil {
			return nil, err
		}
		if v, ok := run.Env().Plist(plistName)[prop]; ok {
			return v, nil
		}
		return value.NewList(), nil
	})
	t.RegisterPrimitive("remprop", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		plistName, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		prop, err := asText(run, args[1])
		if err != nil {
			return nil, err
		}
		delete(run.Env().Plist(plistName), prop)
		return nil, nil
	})
	t.RegisterPrimitive("plist", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		plistName, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		p := run.Env().Plist(plistName)
		items := make([]value.Value, 0, len(p)*2)
		for k, v := range p {
			items = append(items, value.NewWord(k), v)
		}
		return value.NewList(items...), nil
	})

	t.RegisterPrimitive("def", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		routine, ok := run.Procs().Lookup(name)
		if !ok || routine.Strategy != proc.User {
			return nil, run.NewError("%s has no definition", name)
		}
		return value.NewWord(routine.Source), nil
	})
}

// forEachName resolves each argument to a procedure-name word and applies
// fn, used by the TRACE/NOTRACE/STEP/UNSTEP family.
func forEachName(run eval.Runtime, args []value.Value, fn func(run eval.Runtime, name string)) error {
	for _, a := range args {
		name, err := asText(run, a)
		if err != nil {
			return err
		}
		fn(run, name)
	}
	return nil
}
