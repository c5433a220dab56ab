/*
File    : logomix/builtins/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/value"
)

func registerIO(t *proc.Table) {
	t.RegisterPrimitive("print", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Print()
		}
		rt(r).Stream().Write(strings.Join(parts, " "))
		return nil, nil
	})
	t.RegisterPrimitive("pr", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Print()
		}
		rt(r).Stream().Write(strings.Join(parts, " "))
		return nil, nil
	})

	t.RegisterPrimitive("type", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Print()
		}
		rt(r).Stream().Write(strings.Join(parts, ""))
		return nil, nil
	})

	t.RegisterPrimitive("show", proc.Arity{Min: 1, Default: 1, Max: -1}, func(r interface{}, args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Show()
		}
		rt(r).Stream().Write(strings.Join(parts, " "))
		return nil, nil
	})
}
