/*
File    : logomix/eval/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/value"
)

// RunSequence runs a flat atom slice as a statement sequence, per
// spec.md §4.7: each iteration parses and evaluates one Expression; a
// non-nil result is an error unless returnResult is true, in which case
// it is remembered and returned once the cursor is exhausted. The driver
// package wraps this with BYE/FIFO top-level semantics; user-procedure
// bodies call it directly with returnResult == false.
func (e *Evaluator) RunSequence(cur *token.Cursor, returnResult bool) (value.Value, error) {
	var last value.Value
	for {
		if e.forceBye {
			return nil, &value.Signal{Kind: value.ByeSignal}
		}
		if cur.Done() {
			return last, nil
		}
		th, err := e.ParseExpression(cur)
		if err != nil {
			return nil, err
		}
		v, err := th()
		if err != nil {
			return nil, err
		}
		if v != nil {
			if !returnResult {
				return nil, e.NewError("Don't know what to do with %s", v.Show())
			}
			last = v
		}
		e.Yield()
	}
}

// callUser invokes a TO-defined routine: pushes a fresh dynamic frame,
// binds formals to args (missing args left undefined, extras ignored per
// spec.md §4.4), runs the body, and translates Output/Stop signals into
// an ordinary return while letting Bye propagate to the caller.
func (e *Evaluator) callUser(routine *proc.Routine, args []value.Value) (value.Value, error) {
	traced := e.IsProcTraced(routine.Name)
	stepped := e.IsProcStepped(routine.Name)
	if traced || stepped {
		shown := make([]string, len(args))
		for i, a := range args {
			shown[i] = a.Show()
		}
		if traced {
			e.tracer.Call(routine.Name, shown)
		}
		if stepped {
			e.tracer.Step(routine.Name, shown)
		}
	}

	e.env.Push()
	for i, formal := range routine.Formals {
		if i < len(args) {
			e.env.BindFormal(formal, args[i])
		} else {
			e.env.Local(formal)
		}
	}
	e.PushProc(routine.Name)
	result, err := e.RunSequence(token.NewCursor(routine.Body), false)
	e.PopProc()
	e.env.Pop()
	e.Yield()

	if traced {
		if err == nil && result != nil {
			e.tracer.Return(routine.Name, result.Show())
		} else {
			e.tracer.Return(routine.Name, "")
		}
	}

	if err != nil {
		if sig, ok := err.(*value.Signal); ok {
			switch sig.Kind {
			case value.OutputSignal:
				return sig.Value, nil
			case value.StopSignal:
				return nil, nil
			}
		}
		return nil, err
	}
	return result, nil
}
