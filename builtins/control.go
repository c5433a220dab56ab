/*
File    : logomix/builtins/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"
	"time"

	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/lexer"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/value"
)

// reparseList turns an instruction list back into a fresh Cursor by
// re-lexing its printed form. A list body is stored as plain value.Value
// items (spec.md §4.2's bracket-folding grammar), so control structures
// that re-run a body more than once (REPEAT, FOR, WHILE...) reconstruct
// source text and re-tokenize rather than caching a single-use Cursor,
// which also re-derives operator/unary-minus classification the same way
// the original source would have.
func reparseList(l *value.List) (*token.Cursor, error) {
	atoms, err := lexer.New(l.Print()).Tokenize()
	if err != nil {
		return nil, err
	}
	return token.NewCursor(atoms), nil
}

// runBody runs an instruction list as a plain statement sequence, the way
// REPEAT/FOR/IF/WHILE and friends run their bracketed bodies: a statement
// that produces a value with nothing to consume it is rejected (spec.md
// §4.7), exactly as it would be at the top level or inside a user
// procedure. OUTPUT/STOP/BYE signals still propagate unchanged through the
// returned error so the nearest enclosing user-procedure call (or the
// top-level driver, for BYE) is the one that interprets them — control
// structures are transparent to non-local exits.
func runBody(run eval.Runtime, l *value.List) (value.Value, error) {
	cur, err := reparseList(l)
	if err != nil {
		return nil, err
	}
	return run.RunSequence(cur, false)
}

// evalListAsExpr runs an instruction list the way RUN/RUNRESULT and
// WHILE/UNTIL's re-evaluated condition list do: as a value-producing
// expression sequence rather than a statement body, so a dangling result
// (the condition's truth value, or RUN's bare expression result) is
// captured instead of rejected.
func evalListAsExpr(run eval.Runtime, l *value.List) (value.Value, error) {
	cur, err := reparseList(l)
	if err != nil {
		return nil, err
	}
	return run.RunSequence(cur, true)
}

// execRunList runs l the way RUN does: OUTPUT becomes an ordinary result,
// STOP becomes no result, any other signal or error still propagates.
func execRunList(run eval.Runtime, l *value.List) (value.Value, bool, error) {
	v, err := evalListAsExpr(run, l)
	if err != nil {
		if sig, ok := err.(*value.Signal); ok {
			switch sig.Kind {
			case value.OutputSignal:
				return sig.Value, true, nil
			case value.StopSignal:
				return nil, false, nil
			}
		}
		return nil, false, err
	}
	return v, v != nil, nil
}

// evalClauseRemainder runs a matched CASE clause's remainder as an
// expression (spec.md §4.6: "the remainder of the clause is evaluated as
// an expression"), the same reparse-and-evaluate path every other control
// structure uses to run a bracketed body, rather than returning the
// clause's first remaining atom verbatim.
func evalClauseRemainder(run eval.Runtime, items []value.Value) (value.Value, error) {
	cur, err := reparseList(value.NewList(items...))
	if err != nil {
		return nil, err
	}
	return run.EvalExpression(cur)
}

func evalAsList(run eval.Runtime, cur *token.Cursor) (*value.List, error) {
	v, err := run.EvalExpression(cur)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, run.NewError("%s doesn't like %s as input, expected a list", run.CurrentProc(), v.Show())
	}
	return l, nil
}

func peekIsList(cur *token.Cursor) bool {
	a, ok := cur.Peek()
	if !ok || a.Kind != token.Word {
		return false
	}
	_, isList := a.Val.(*value.List)
	return isList
}

func registerControl(t *proc.Table) {
	t.RegisterSpecial("if", proc.Arity{Min: 2, Max: 3}, func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		cond, err := run.EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		truth, err := truthy(run, cond)
		if err != nil {
			return nil, err
		}
		thenList, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		var elseList *value.List
		if peekIsList(cur) {
			elseList, err = evalAsList(run, cur)
			if err != nil {
				return nil, err
			}
		}
		if truth {
			return runBody(run, thenList)
		}
		if elseList != nil {
			return runBody(run, elseList)
		}
		return nil, nil
	})

	t.RegisterSpecial("ifelse", proc.FixedArity(3), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		cond, err := run.EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		truth, err := truthy(run, cond)
		if err != nil {
			return nil, err
		}
		thenList, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		elseList, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		if truth {
			return runBody(run, thenList)
		}
		return runBody(run, elseList)
	})

	t.RegisterPrimitive("test", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		b, err := truthy(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Env().SetTest(b)
		return nil, nil
	})

	t.RegisterSpecial("ift", proc.FixedArity(1), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		l, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		b, ok := run.Env().GetTest()
		if !ok {
			return nil, run.NewError("%s used without TEST", run.CurrentProc())
		}
		if b {
			return runBody(run, l)
		}
		return nil, nil
	})

	t.RegisterSpecial("iff", proc.FixedArity(1), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		l, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		b, ok := run.Env().GetTest()
		if !ok {
			return nil, run.NewError("%s used without TEST", run.CurrentProc())
		}
		if !b {
			return runBody(run, l)
		}
		return nil, nil
	})

	t.RegisterSpecial("repeat", proc.FixedArity(2), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		nVal, err := run.EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		n, err := asNumber(run, nVal)
		if err != nil {
			return nil, err
		}
		body, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		run.PushRepCount(0)
		defer run.PopRepCount()
		for i := 1; i <= int(n); i++ {
			run.SetRepCount(i)
			if _, err := runBody(run, body); err != nil {
				return nil, err
			}
			run.Yield()
		}
		return nil, nil
	})

	t.RegisterSpecial("forever", proc.FixedArity(1), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		body, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		run.PushRepCount(0)
		defer run.PopRepCount()
		for i := 1; ; i++ {
			run.SetRepCount(i)
			if _, err := runBody(run, body); err != nil {
				return nil, err
			}
			run.Yield()
		}
	})

	t.RegisterSpecial("for", proc.FixedArity(2), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		ctrl, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		body, err := evalAsList(run, cur)
		if err != nil {
			return nil, err
		}
		if len(ctrl.Items) < 3 {
			return nil, run.NewError("FOR needs a variable, start, and end")
		}
		ctrlCur, err := reparseList(ctrl)
		if err != nil {
			return nil, err
		}
		varAtom, ok := ctrlCur.Next()
		if !ok {
			return nil, run.NewError("FOR needs a variable, start, and end")
		}
		varName, ok := value.AsText(varAtom.Val)
		if !ok {
			return nil, run.NewError("FOR expects a variable name")
		}
		startVal, err := run.EvalExpression(ctrlCur)
		if err != nil {
			return nil, err
		}
		start, err := asNumber(run, startVal)
		if err != nil {
			return nil, err
		}
		endVal, err := run.EvalExpression(ctrlCur)
		if err != nil {
			return nil, err
		}
		end, err := asNumber(run, endVal)
		if err != nil {
			return nil, err
		}
		// The remaining atoms, if any, are the step expression (spec.md
		// §4.6): re-evaluated from this same saved slice every iteration,
		// via a fresh Cursor, so a step that reads a variable sees its
		// current value each time rather than being evaluated once.
		stepAtoms := ctrlCur.Rest()
		nextStep := func() (float64, error) {
			if len(stepAtoms) == 0 {
				return sign(end - start), nil
			}
			v, err := run.EvalExpression(ctrlCur.Sub(stepAtoms))
			if err != nil {
				return 0, err
			}
			return asNumber(run, v)
		}
		run.PushRepCount(0)
		defer run.PopRepCount()
		i := 1
		v := start
		for {
			step, err := nextStep()
			if err != nil {
				return nil, err
			}
			// Terminate when sign(current - limit) == sign(step) (spec.md
			// §4.6); step == 0 would otherwise never satisfy that and loop
			// forever, so it terminates after one run at the start value.
			if sign(v-end) == sign(step) && (step != 0 || v != start) {
				break
			}
			run.Env().Make(varName, value.NewNumber(v))
			run.SetRepCount(i)
			i++
			if _, err := runBody(run, body); err != nil {
				return nil, err
			}
			run.Yield()
			if step == 0 {
				break
			}
			v += step
		}
		return nil, nil
	})

	t.RegisterNoeval("while", proc.FixedArity(2), func(r interface{}, thunks []proc.Thunk) (value.Value, error) {
		return runWhileLoop(rt(r), thunks, true)
	})
	t.RegisterNoeval("until", proc.FixedArity(2), func(r interface{}, thunks []proc.Thunk) (value.Value, error) {
		return runWhileLoop(rt(r), thunks, false)
	})

	t.RegisterSpecial("do.while", proc.FixedArity(2), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		return runDoLoop(rt(r), cur, true)
	})
	t.RegisterSpecial("do.until", proc.FixedArity(2), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		return runDoLoop(rt(r), cur, false)
	})

	t.RegisterNoeval("and", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, thunks []proc.Thunk) (value.Value, error) {
		run := rt(r)
		for _, th := range thunks {
			v, err := th()
			if err != nil {
				return nil, err
			}
			b, err := truthy(run, v)
			if err != nil {
				return nil, err
			}
			if !b {
				return boolWord(false), nil
			}
		}
		return boolWord(true), nil
	})
	t.RegisterNoeval("or", proc.Arity{Min: 2, Default: 2, Max: -1}, func(r interface{}, thunks []proc.Thunk) (value.Value, error) {
		run := rt(r)
		for _, th := range thunks {
			v, err := th()
			if err != nil {
				return nil, err
			}
			b, err := truthy(run, v)
			if err != nil {
				return nil, err
			}
			if b {
				return boolWord(true), nil
			}
		}
		return boolWord(false), nil
	})

	repcount := func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(float64(rt(r).RepCount())), nil
	}
	t.RegisterPrimitive("repcount", proc.FixedArity(0), repcount)
	t.RegisterPrimitive("#", proc.FixedArity(0), repcount)

	// WAIT suspends for n/60ths of a second, the only primitive whose
	// pending result (spec.md §5) is genuine wall-clock time rather than a
	// host-driven turtle/stream round trip.
	t.RegisterPrimitive("wait", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := asNumber(run, args[0])
		if err != nil {
			return nil, err
		}
		if n > 0 {
			time.Sleep(time.Duration(n/60.0*1000) * time.Millisecond)
		}
		run.Yield()
		return nil, nil
	})

	t.RegisterPrimitive("case", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		clauses, err := asList(run, args[1])
		if err != nil {
			return nil, err
		}
		for _, c := range clauses.Items {
			clause, ok := c.(*value.List)
			if !ok || len(clause.Items) < 2 {
				continue
			}
			key := clause.Items[0]
			if kw, ok := key.(*value.Word); ok && strings.EqualFold(kw.Text(), "else") {
				return evalClauseRemainder(run, clause.Items[1:])
			}
			if kl, ok := key.(*value.List); ok {
				for _, k := range kl.Items {
					if value.Equal(k, args[0]) {
						return evalClauseRemainder(run, clause.Items[1:])
					}
				}
			} else if value.Equal(key, args[0]) {
				return evalClauseRemainder(run, clause.Items[1:])
			}
		}
		return value.NewList(), nil
	})

	t.RegisterPrimitive("run", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		l, err := asList(run, args[0])
		if err != nil {
			return nil, err
		}
		v, _, err := execRunList(run, l)
		return v, err
	})
	t.RegisterPrimitive("runresult", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		l, err := asList(run, args[0])
		if err != nil {
			return nil, err
		}
		v, ok, err := execRunList(run, l)
		if err != nil {
			return nil, err
		}
		if ok {
			return value.NewList(v), nil
		}
		return value.NewList(), nil
	})

	t.RegisterSpecial("stop", proc.FixedArity(0), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		return nil, &value.Signal{Kind: value.StopSignal}
	})
	t.RegisterSpecial("output", proc.FixedArity(1), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		v, err := run.EvalExpression(cur)
		if err != nil {
			return nil, err
		}
		return nil, &value.Signal{Kind: value.OutputSignal, Value: v}
	})
	t.RegisterSpecial("bye", proc.FixedArity(0), func(r interface{}, cur *token.Cursor) (value.Value, error) {
		run := rt(r)
		run.SetForceBye(true)
		return nil, &value.Signal{Kind: value.ByeSignal}
	})
}

func runWhileLoop(run eval.Runtime, thunks []proc.Thunk, whileTrue bool) (value.Value, error) {
	testVal, err := thunks[0]()
	if err != nil {
		return nil, err
	}
	testList, ok := testVal.(*value.List)
	if !ok {
		return nil, run.NewError("WHILE/UNTIL expects a list test")
	}
	bodyVal, err := thunks[1]()
	if err != nil {
		return nil, err
	}
	bodyList, ok := bodyVal.(*value.List)
	if !ok {
		return nil, run.NewError("WHILE/UNTIL expects a list body")
	}
	for {
		tv, err := evalListAsExpr(run, testList)
		if err != nil {
			return nil, err
		}
		b, err := truthy(run, tv)
		if err != nil {
			return nil, err
		}
		if b != whileTrue {
			return nil, nil
		}
		if _, err := runBody(run, bodyList); err != nil {
			return nil, err
		}
		run.Yield()
	}
}

func runDoLoop(run eval.Runtime, cur *token.Cursor, whileTrue bool) (value.Value, error) {
	body, err := evalAsList(run, cur)
	if err != nil {
		return nil, err
	}
	testList, err := evalAsList(run, cur)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := runBody(run, body); err != nil {
			return nil, err
		}
		run.Yield()
		tv, err := evalListAsExpr(run, testList)
		if err != nil {
			return nil, err
		}
		b, err := truthy(run, tv)
		if err != nil {
			return nil, err
		}
		if b != whileTrue {
			return nil, nil
		}
	}
}
