/*
File    : logomix/builtins/define.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/value"
)

// rebuildSource reconstructs the textual "to name :f1 :f2 ... end" form of
// a user procedure, used as Routine.Source for DEF/PO-style introspection.
func rebuildSource(name string, formals []string, body []token.Atom) string {
	var b strings.Builder
	b.WriteString("to ")
	b.WriteString(name)
	for _, f := range formals {
		b.WriteString(" :")
		b.WriteString(f)
	}
	b.WriteString("\n")
	parts := make([]string, len(body))
	for i, a := range body {
		parts[i] = a.Literal()
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\nend")
	return b.String()
}

func registerDefine(t *proc.Table) {
	t.RegisterSpecial("to", proc.Arity{Min: 1}, func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		nameAtom, ok := cur.Next()
		if !ok || nameAtom.Kind != token.Word {
			return nil, run.NewError("TO needs a procedure name")
		}
		nameWord, ok := nameAtom.Val.(*value.Word)
		if !ok {
			return nil, run.NewError("TO needs a procedure name")
		}
		name := nameWord.Text()

		var formals []string
		for {
			peek, ok := cur.Peek()
			if !ok {
				return nil, run.NewError("TO %s is missing END", name)
			}
			w, isWord := peek.Val.(*value.Word)
			if peek.Kind == token.Word && isWord && strings.HasPrefix(w.Text(), ":") {
				cur.Next()
				formals = append(formals, w.Text()[1:])
				continue
			}
			break
		}

		start := cur.Pos
		for {
			a, ok := cur.Next()
			if !ok {
				return nil, run.NewError("TO %s is missing END", name)
			}
			if a.Kind == token.Word {
				if w, isWord := a.Val.(*value.Word); isWord && !w.IsNumber() && strings.EqualFold(w.Text(), "end") {
					break
				}
			}
		}
		body := append([]token.Atom{}, cur.Atoms[start:cur.Pos-1]...)
		source := rebuildSource(name, formals, body)
		if err := run.Procs().DefineUser(name, formals, body, source); err != nil {
			return nil, run.NewError("%s", err.Error())
		}
		return nil, nil
	})

	// DEFINE builds a procedure from data: name plus [[formals][line...]...],
	// the non-special counterpart to TO (spec.md §6 supplement).
	t.RegisterPrimitive("define", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		name, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		spec, err := asList(run, args[1])
		if err != nil {
			return nil, err
		}
		if len(spec.Items) < 1 {
			return nil, run.NewError("DEFINE expects [[formals] body...]")
		}
		formalsList, ok := spec.Items[0].(*value.List)
		if !ok {
			return nil, run.NewError("DEFINE expects a formals list first")
		}
		var formals []string
		for _, f := range formalsList.Items {
			text, _ := value.AsText(f)
			formals = append(formals, strings.TrimPrefix(text, ":"))
		}
		var bodyItems []value.Value
		for _, line := range spec.Items[1:] {
			if ll, ok := line.(*value.List); ok {
				bodyItems = append(bodyItems, ll.Items...)
			} else {
				bodyItems = append(bodyItems, line)
			}
		}
		bodyCur, err := reparseList(value.NewList(bodyItems...))
		if err != nil {
			return nil, err
		}
		source := rebuildSource(name, formals, bodyCur.Atoms)
		if err := run.Procs().DefineUser(name, formals, bodyCur.Atoms, source); err != nil {
			return nil, run.NewError("%s", err.Error())
		}
		return nil, nil
	})
}
