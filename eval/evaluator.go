/*
File    : logomix/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the expression evaluator and procedure dispatcher
// (spec.md §4.3-§4.4): recursive-descent precedence climbing over a
// mutable token.Cursor, natural-arity argument gathering, and the
// special/noeval/eager/user dispatch protocol. It plays the role the
// teacher's eval.Evaluator plays for Go-Mix's AST, but walks a flat atom
// stream instead of a pre-built tree, since Logo's grammar is resolved
// against live routine arity rather than fixed at parse time.
package eval

import (
	"strings"

	"github.com/akashmaji946/logomix/env"
	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/trace"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/akashmaji946/logomix/value"
)

// Runtime is the callback surface builtins use to reach back into the
// evaluator, mirroring the teacher's std.Runtime. proc.NativeFunc and
// friends receive it as interface{} to keep proc free of an eval import
// cycle; builtins type-assert to Runtime immediately.
type Runtime interface {
	Env() *env.Env
	Procs() *proc.Table
	Turtle() turtle.Turtle
	Stream() iostream.Stream
	Tracer() *trace.Tracer

	ParseExpression(cur *token.Cursor) (proc.Thunk, error)
	EvalExpression(cur *token.Cursor) (value.Value, error)
	RunSequence(cur *token.Cursor, returnResult bool) (value.Value, error)

	PushProc(name string)
	PopProc()
	CurrentProc() string

	SetProcTrace(name string, on bool)
	IsProcTraced(name string) bool
	SetProcStep(name string, on bool)
	IsProcStepped(name string) bool

	PushRepCount(n int)
	PopRepCount()
	SetRepCount(n int)
	RepCount() int

	ForceBye() bool
	SetForceBye(b bool)

	NewError(format string, args ...interface{}) *value.Error
	Yield()
}

// Evaluator is the concrete Runtime implementation wiring one interpreter
// instance's environment, procedure table, and external collaborators
// together.
type Evaluator struct {
	env     *env.Env
	procs   *proc.Table
	turtle  turtle.Turtle
	stream  iostream.Stream
	tracer  *trace.Tracer
	onYield func()

	procStack []string
	repcounts []int
	forceBye  bool

	tracedProcs  map[string]bool
	steppedProcs map[string]bool
}

// NewEvaluator wires an Evaluator over the given collaborators. t and s
// may be nil stubs (turtle.NewStub / iostream.NewStub) for headless use.
func NewEvaluator(e *env.Env, p *proc.Table, t turtle.Turtle, s iostream.Stream, tr *trace.Tracer) *Evaluator {
	return &Evaluator{env: e, procs: p, turtle: t, stream: s, tracer: tr}
}

func (e *Evaluator) Env() *env.Env         { return e.env }
func (e *Evaluator) Procs() *proc.Table    { return e.procs }
func (e *Evaluator) Turtle() turtle.Turtle { return e.turtle }
func (e *Evaluator) Stream() iostream.Stream {
	return e.stream
}
func (e *Evaluator) Tracer() *trace.Tracer { return e.tracer }

// SetYield installs the host hook invoked at every cooperative suspension
// point (spec.md §5): between statements, between loop iterations, and at
// the end of a user procedure body. A nil hook (the default) makes Yield
// a no-op, which is correct for a straight-through, non-animated run.
func (e *Evaluator) SetYield(fn func()) { e.onYield = fn }

// Yield calls the host yield hook, if any.
func (e *Evaluator) Yield() {
	if e.onYield != nil {
		e.onYield()
	}
}

// PushProc records entry into a routine for error-message substitution
// and TRACE indentation (spec.md §3's "current stack of in-flight
// procedure names").
func (e *Evaluator) PushProc(name string) { e.procStack = append(e.procStack, name) }

// PopProc records exit from the innermost routine.
func (e *Evaluator) PopProc() {
	if len(e.procStack) > 0 {
		e.procStack = e.procStack[:len(e.procStack)-1]
	}
}

// CurrentProc returns the name of the innermost active routine, or "" at
// top level.
func (e *Evaluator) CurrentProc() string {
	if len(e.procStack) == 0 {
		return ""
	}
	return e.procStack[len(e.procStack)-1]
}

// PushRepCount opens a new REPEAT/FOREVER nesting level with the given
// starting count (spec.md §4.6 — REPCOUNT/# read the innermost one).
func (e *Evaluator) PushRepCount(n int) { e.repcounts = append(e.repcounts, n) }

// PopRepCount closes the innermost REPEAT/FOREVER nesting level.
func (e *Evaluator) PopRepCount() {
	if len(e.repcounts) > 0 {
		e.repcounts = e.repcounts[:len(e.repcounts)-1]
	}
}

// SetRepCount overwrites the innermost nesting level's counter, used
// between REPEAT/FOREVER iterations.
func (e *Evaluator) SetRepCount(n int) {
	if len(e.repcounts) > 0 {
		e.repcounts[len(e.repcounts)-1] = n
	}
}

// RepCount reads the innermost REPEAT/FOREVER counter, or -1 outside any
// loop (matching logo dialects that report -1 for REPCOUNT at top level).
func (e *Evaluator) RepCount() int {
	if len(e.repcounts) == 0 {
		return -1
	}
	return e.repcounts[len(e.repcounts)-1]
}

// SetProcTrace turns TRACE/NOTRACE on or off for one routine name
// (spec.md §8.6).
func (e *Evaluator) SetProcTrace(name string, on bool) {
	if e.tracedProcs == nil {
		e.tracedProcs = make(map[string]bool)
	}
	key := strings.ToUpper(name)
	if on {
		e.tracedProcs[key] = true
	} else {
		delete(e.tracedProcs, key)
	}
}

// IsProcTraced reports whether name is currently TRACEd.
func (e *Evaluator) IsProcTraced(name string) bool {
	return e.tracedProcs[strings.ToUpper(name)]
}

// SetProcStep turns STEP/UNSTEP on or off for one routine name.
func (e *Evaluator) SetProcStep(name string, on bool) {
	if e.steppedProcs == nil {
		e.steppedProcs = make(map[string]bool)
	}
	key := strings.ToUpper(name)
	if on {
		e.steppedProcs[key] = true
	} else {
		delete(e.steppedProcs, key)
	}
}

// IsProcStepped reports whether name is currently STEPped.
func (e *Evaluator) IsProcStepped(name string) bool {
	return e.steppedProcs[strings.ToUpper(name)]
}

// ForceBye reports whether a BYE unwind has been requested.
func (e *Evaluator) ForceBye() bool { return e.forceBye }

// SetForceBye requests (or clears) a BYE unwind at the next statement
// boundary (spec.md §4.7, §5).
func (e *Evaluator) SetForceBye(b bool) { e.forceBye = b }

// stripTrailingDigits splits name into a letters prefix and a trailing
// run of digits, used by the "Need a space between X and N" diagnostic
// (spec.md §4.3 dispatch protocol).
func stripTrailingDigits(name string) (prefix, digits string, ok bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 {
		return "", "", false
	}
	return name[:i], name[i:], true
}

// dispatch resolves name against the procedure table and builds a Thunk
// implementing the dispatch protocol of spec.md §4.3. cur is positioned
// just past the name atom; parenArity is true when the call was written
// with explicit parentheses ("(name args...)").
func (e *Evaluator) dispatch(name string, cur *token.Cursor, parenArity bool) (proc.Thunk, error) {
	routine, ok := e.procs.Lookup(name)
	if !ok {
		if prefix, digits, hasSplit := stripTrailingDigits(name); hasSplit {
			if _, known := e.procs.Lookup(prefix); known {
				return nil, e.NewError("Need a space between %s and %s", prefix, digits)
			}
		}
		return nil, e.NewError("I don't know how to %s", strings.ToLower(name))
	}

	switch routine.Strategy {
	case proc.Special:
		e.PushProc(routine.Name)
		result, err := routine.Special(Runtime(e), cur)
		e.PopProc()
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) { return result, nil }, nil

	case proc.Noeval:
		thunks, err := e.gatherArgs(cur, routine.Arity, parenArity)
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) {
			e.PushProc(routine.Name)
			defer e.PopProc()
			return routine.Noeval(Runtime(e), thunks)
		}, nil

	case proc.Eager:
		thunks, err := e.gatherArgs(cur, routine.Arity, parenArity)
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) {
			args, err := resolveArgs(thunks)
			if err != nil {
				return nil, err
			}
			e.PushProc(routine.Name)
			defer e.PopProc()
			return routine.Native(Runtime(e), args)
		}, nil

	case proc.User:
		thunks, err := e.gatherArgs(cur, routine.Arity, parenArity)
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) {
			args, err := resolveArgs(thunks)
			if err != nil {
				return nil, err
			}
			return e.callUser(routine, args)
		}, nil
	}
	return nil, e.NewError("unreachable dispatch strategy for %s", name)
}

func resolveArgs(thunks []proc.Thunk) ([]value.Value, error) {
	args := make([]value.Value, len(thunks))
	for i, th := range thunks {
		v, err := th()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// gatherArgs parses routine.Arity.Default expressions in natural-arity
// mode, or parses expressions until ')' in explicit-parenthesized mode
// (spec.md §4.3 dispatch protocol, third and fourth bullets).
func (e *Evaluator) gatherArgs(cur *token.Cursor, arity proc.Arity, parenArity bool) ([]proc.Thunk, error) {
	if parenArity {
		var thunks []proc.Thunk
		for {
			peek, ok := cur.Peek()
			if !ok {
				return nil, e.NewError("unexpected end of input, expected ')'")
			}
			if peek.Kind == token.RParen {
				cur.Next()
				break
			}
			th, err := e.ParseExpression(cur)
			if err != nil {
				return nil, err
			}
			thunks = append(thunks, th)
		}
		if len(thunks) < arity.Min {
			return nil, e.NewError("not enough inputs")
		}
		if arity.Max >= 0 && len(thunks) > arity.Max {
			return nil, e.NewError("too many inputs")
		}
		return thunks, nil
	}
	thunks := make([]proc.Thunk, 0, arity.Default)
	for i := 0; i < arity.Default; i++ {
		th, err := e.ParseExpression(cur)
		if err != nil {
			return nil, err
		}
		thunks = append(thunks, th)
	}
	return thunks, nil
}
