/*
File    : logomix/builtins/testutil_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"testing"

	"github.com/akashmaji946/logomix/env"
	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/lexer"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/stretchr/testify/require"
)

// newTestRuntime wires a full evaluator with every registered primitive,
// for unit-testing one builtin at a time rather than only end-to-end
// through the driver package.
func newTestRuntime(t *testing.T) (*eval.Evaluator, *iostream.Stub, *turtle.Stub) {
	t.Helper()
	e := env.New()
	p := proc.NewTable()
	Register(p)
	tu := turtle.NewStub()
	s := iostream.NewStub()
	return eval.NewEvaluator(e, p, tu, s, nil), s, tu
}

func tokenize(t *testing.T, src string) *token.Cursor {
	t.Helper()
	atoms, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	return token.NewCursor(atoms)
}

func evalText(t *testing.T, ev *eval.Evaluator, src string) string {
	t.Helper()
	v, err := ev.EvalExpression(tokenize(t, src))
	require.NoError(t, err)
	return v.Show()
}
