/*
File    : logomix/builtins/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins is the primitive procedure library (was std/ in the
// teacher): arithmetic, list/word constructors and selectors, predicates,
// workspace queries, control structures, and turtle/stream delegation
// (spec.md §4.6, §6, SPEC_FULL.md §4). Every routine here is registered
// against a proc.Table by Register, the same table-of-name-to-function
// shape the teacher's std package uses for its Builtins slice, adapted
// since Logo routines carry a dispatch Strategy instead of one uniform
// calling convention.
package builtins

import (
	"strings"

	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/value"
)

func rt(r interface{}) eval.Runtime { return r.(eval.Runtime) }

func asNumber(r eval.Runtime, v value.Value) (float64, error) {
	n, ok := value.AsNumber(v)
	if !ok {
		return 0, r.NewError("%s doesn't like %s as input", r.CurrentProc(), v.Show())
	}
	return n, nil
}

func asWord(r eval.Runtime, v value.Value) (*value.Word, error) {
	w, ok := v.(*value.Word)
	if !ok {
		return nil, r.NewError("%s doesn't like %s as input", r.CurrentProc(), v.Show())
	}
	return w, nil
}

func asText(r eval.Runtime, v value.Value) (string, error) {
	w, err := asWord(r, v)
	if err != nil {
		return "", err
	}
	return w.Text(), nil
}

func asList(r eval.Runtime, v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, r.NewError("%s doesn't like %s as input, expected a list", r.CurrentProc(), v.Show())
	}
	return l, nil
}

func asArray(r eval.Runtime, v value.Value) (*value.Array, error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, r.NewError("%s doesn't like %s as input, expected an array", r.CurrentProc(), v.Show())
	}
	return a, nil
}

// truthy reports whether v is Logo's "true" word, erroring on anything
// that isn't one of the two boolean words.
func truthy(r eval.Runtime, v value.Value) (bool, error) {
	w, ok := v.(*value.Word)
	if !ok || (!strings.EqualFold(w.Text(), "true") && !strings.EqualFold(w.Text(), "false")) {
		return false, r.NewError("%s doesn't like %s as input, expected TRUE or FALSE", r.CurrentProc(), v.Show())
	}
	return w.Truthy(), nil
}

// sign returns -1, 0, or 1, matching FOR's step/limit comparison (spec.md
// §4.6's "sign(current - limit) == sign(step)").
func sign(n float64) float64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func boolWord(b bool) value.Value {
	if b {
		return value.NewWord("true")
	}
	return value.NewWord("false")
}
