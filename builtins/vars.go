/*
File    : logomix/builtins/vars.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerVars(t *proc.Table) {
	t.RegisterPrimitive("make", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Env().Make(name, args[1])
		return nil, nil
	})

	t.RegisterPrimitive("local", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, a := range args {
			name, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			run.Env().Local(name)
		}
		return nil, nil
	})

	t.RegisterPrimitive("localmake", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Env().LocalMake(name, args[1])
		return nil, nil
	})

	t.RegisterPrimitive("global", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		for _, a := range args {
			name, err := asText(run, a)
			if err != nil {
				return nil, err
			}
			run.Env().GlobalDecl(name)
		}
		return nil, nil
	})

	t.RegisterPrimitive("thing", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		b, ok := run.Env().Lookup(name)
		if !ok || b.Value == nil {
			return nil, run.NewError("Don't know about variable %s", name)
		}
		return b.Value, nil
	})
}
