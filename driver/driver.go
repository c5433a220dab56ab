/*
File    : logomix/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package driver is the cooperative top-level execution loop: it owns the
// single logical thread spec.md §5 requires, serializing concurrent Run
// calls one at a time behind a mutex (the order in which waiting callers
// proceed is not defined; it is not first-in first-out) and translating a
// BYE unwind into a clean stop rather than an error surfaced to the caller. It plays the role the teacher's repl
// package plays for Go-Mix's line-at-a-time REPL loop, but this module
// never reads from a terminal: callers submit whole programs.
package driver

import (
	"sync"

	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/lexer"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/value"
)

// Driver serializes Run calls against one Evaluator so that two goroutines
// submitting programs concurrently never interleave mutations to the
// shared dynamic environment or procedure table (spec.md §5's single-
// logical-thread guarantee, extended to handle multiple submitters).
type Driver struct {
	ev *eval.Evaluator
	mu sync.Mutex
	// bye latches once a BYE has unwound a run; every later submission is
	// rejected rather than silently executed on a "dead" interpreter.
	bye bool
}

// New wraps ev in a Driver.
func New(ev *eval.Evaluator) *Driver { return &Driver{ev: ev} }

// ErrStopped is returned by Run once BYE has shut the interpreter down.
type ErrStopped struct{}

func (ErrStopped) Error() string { return "interpreter has exited (BYE was called)" }

// Run lexes and executes one program to completion, queuing behind any
// Run already in flight (spec.md §5). A BYE anywhere in src latches the
// Driver closed; the caller sees a nil error for the BYE call itself, but
// every Run after it returns ErrStopped without touching the evaluator.
func (d *Driver) Run(src string) (value.Value, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.bye {
		return nil, ErrStopped{}
	}

	atoms, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	// returnResult is false at top level (spec.md §4.7): a statement that
	// produces a value with nothing to consume it, e.g. a stray `sum 1 2`
	// or `(sum 1 2 3)` at top level, is rejected with "Don't know what to
	// do with X" rather than silently handed back to the caller, and a
	// top-level OUTPUT surfaces as an error. A successful Run therefore
	// always returns a nil value.
	result, err := d.ev.RunSequence(token.NewCursor(atoms), false)
	if err != nil {
		if sig, ok := err.(*value.Signal); ok && sig.Kind == value.ByeSignal {
			d.bye = true
			d.ev.SetForceBye(false)
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

// Stopped reports whether BYE has already shut this Driver down.
func (d *Driver) Stopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bye
}
