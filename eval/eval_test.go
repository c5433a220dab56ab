/*
File    : logomix/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/logomix/env"
	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/lexer"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/akashmaji946/logomix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEvaluator wires a fresh Evaluator with a minimal hand-registered
// set of routines (SUM, PR, FD, OUTPUT), independent of the builtins
// package, so eval can be unit tested without an import cycle.
func newTestEvaluator(t *testing.T) (*Evaluator, *iostream.Stub, *proc.Table) {
	t.Helper()
	e := env.New()
	p := proc.NewTable()
	stub := turtle.NewStub()
	stream := iostream.NewStub()
	ev := NewEvaluator(e, p, stub, stream, nil)

	p.RegisterPrimitive("sum", proc.Arity{Min: 2, Default: 2, Max: -1}, func(rt interface{}, args []value.Value) (value.Value, error) {
		total := 0.0
		for _, a := range args {
			n, ok := value.AsNumber(a)
			if !ok {
				return nil, rt.(Runtime).NewError("sum expects numbers")
			}
			total += n
		}
		return value.NewNumber(total), nil
	})
	p.RegisterPrimitive("pr", proc.FixedArity(1), func(rt interface{}, args []value.Value) (value.Value, error) {
		rt.(Runtime).Stream().Write(args[0].Print())
		return nil, nil
	})
	p.RegisterPrimitive("fd", proc.FixedArity(1), func(rt interface{}, args []value.Value) (value.Value, error) {
		n, ok := value.AsNumber(args[0])
		if !ok {
			return nil, rt.(Runtime).NewError("fd expects a number")
		}
		rt.(Runtime).Turtle().Move(n)
		return nil, nil
	})
	p.RegisterSpecial("output", proc.FixedArity(1), func(rt interface{}, cur *token.Cursor) (value.Value, error) {
		v, err := rt.(Runtime).EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		return nil, &value.Signal{Kind: value.OutputSignal, Value: v}
	})
	return ev, stream, p
}

func tokenize(t *testing.T, src string) *token.Cursor {
	t.Helper()
	atoms, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	return token.NewCursor(atoms)
}

func TestArithmeticPrecedence(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	v, err := ev.EvalExpression(tokenize(t, "3 + 4 * 2"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, 11.0, n)
}

func TestPowerRightFolds(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	v, err := ev.EvalExpression(tokenize(t, "2 ^ 3 ^ 2"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, 512.0, n, "2^(3^2) = 512, not (2^3)^2 = 64")
}

func TestUnspacedMinusSubtracts(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	v, err := ev.EvalExpression(tokenize(t, "3-4"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, -1.0, n)
}

func TestParenthesizedSubexpression(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	v, err := ev.EvalExpression(tokenize(t, "(- 4)"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, -4.0, n)
}

func TestDivisionByZeroErrors(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	_, err := ev.EvalExpression(tokenize(t, "5 / 0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

// Natural arity consumes exactly SUM's declared default arity (2); an
// explicit parenthesized call instead consumes every expression up to
// the matching ')'. A natural-arity call followed by a third argument
// atom would leave that atom dangling as its own top-level statement
// (spec.md §9's family of observed-but-ambiguous behaviors; not asserted
// here — see DESIGN.md).
func TestNaturalArityVsExplicitArity(t *testing.T) {
	ev, stream, _ := newTestEvaluator(t)
	cur := tokenize(t, "pr sum 1 2")
	_, err := ev.RunSequence(cur, false)
	require.NoError(t, err)

	cur2 := tokenize(t, "pr (sum 1 2 3)")
	_, err = ev.RunSequence(cur2, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "6"}, stream.Buffer)
}

func TestUnknownProcedureErrors(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	_, err := ev.EvalExpression(tokenize(t, "bogus 1"))
	require.Error(t, err)
}

func TestNeedSpaceBetweenDiagnostic(t *testing.T) {
	ev, _, _ := newTestEvaluator(t)
	_, err := ev.EvalExpression(tokenize(t, "fd90"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Need a space between")
}

func TestUserProcedureOutputSignalUnwrapsToValue(t *testing.T) {
	ev, _, p := newTestEvaluator(t)
	bodyCur := tokenize(t, "output sum :n :n")
	require.NoError(t, p.DefineUser("double", []string{"n"}, bodyCur.Rest(), "to double :n  output sum :n :n  end"))

	v, err := ev.EvalExpression(tokenize(t, "double 21"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, 42.0, n)
}

func TestDynamicScopeAcrossUserProcedures(t *testing.T) {
	ev, _, p := newTestEvaluator(t)
	ev.Env().Make("x", value.NewNumber(5))

	fBody := tokenize(t, "output :x").Rest()
	require.NoError(t, p.DefineUser("f", nil, fBody, "to f  output :x  end"))

	gBody := tokenize(t, `local "x  make "x 9  output f`).Rest()
	require.NoError(t, p.DefineUser("g", nil, gBody, `to g  local "x  make "x 9  output f  end`))

	p.RegisterSpecial("local", proc.Arity{Min: 1, Max: 1}, func(rt interface{}, cur *token.Cursor) (value.Value, error) {
		v, err := rt.(Runtime).EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		w, ok := v.(*value.Word)
		if !ok {
			return nil, rt.(Runtime).NewError("local expects a word")
		}
		rt.(Runtime).Env().Local(w.Text())
		return nil, nil
	})
	p.RegisterPrimitive("make", proc.FixedArity(2), func(rt interface{}, args []value.Value) (value.Value, error) {
		w, ok := args[0].(*value.Word)
		if !ok {
			return nil, rt.(Runtime).NewError("make expects a word name")
		}
		rt.(Runtime).Env().Make(w.Text(), args[1])
		return nil, nil
	})

	v, err := ev.EvalExpression(tokenize(t, "g"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, 9.0, n, "f must see g's dynamic binding of x, not the global one")
}
