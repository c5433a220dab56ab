/*
File    : logomix/logomix.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package logomix wires one interpreter instance together: environment,
// procedure table (pre-loaded with every primitive), evaluator, and the
// cooperative top-level driver, over caller-supplied turtle and stream
// backends. This is the single entry point embedders use; everything
// else (env, proc, eval, builtins, driver, turtle, iostream, trace) is
// assembled here the way the teacher's main.go wires its own Lexer,
// Parser, and Evaluator together for one Go-Mix run.
package logomix

import (
	"io"

	"github.com/akashmaji946/logomix/builtins"
	"github.com/akashmaji946/logomix/driver"
	"github.com/akashmaji946/logomix/env"
	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/trace"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/akashmaji946/logomix/value"
)

// Interpreter is one independent Logo session: its own dynamic scope,
// procedure table, and turtle/stream bindings. Nothing here is process-
// global, so embedding two Interpreters in the same process never lets
// one's TO/MAKE/ERASE leak into the other.
type Interpreter struct {
	env    *env.Env
	procs  *proc.Table
	eval   *eval.Evaluator
	driver *driver.Driver
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter, *turtle.Turtle, *iostream.Stream, *io.Writer)

// WithTurtle installs a caller-supplied turtle backend in place of the
// default no-op Stub.
func WithTurtle(t turtle.Turtle) Option {
	return func(_ *Interpreter, tptr *turtle.Turtle, _ *iostream.Stream, _ *io.Writer) { *tptr = t }
}

// WithStream installs a caller-supplied text stream in place of the
// default buffering Stub.
func WithStream(s iostream.Stream) Option {
	return func(_ *Interpreter, _ *turtle.Turtle, sptr *iostream.Stream, _ *io.Writer) { *sptr = s }
}

// WithTraceOutput turns on TRACE/STEP diagnostics, written to w.
func WithTraceOutput(w io.Writer) Option {
	return func(_ *Interpreter, _ *turtle.Turtle, _ *iostream.Stream, wptr *io.Writer) { *wptr = w }
}

// New builds a ready-to-run Interpreter: a fresh dynamic environment, a
// procedure table pre-loaded with every primitive (builtins.Register),
// and a Driver serializing Run calls against it.
func New(opts ...Option) *Interpreter {
	var t turtle.Turtle = turtle.NewStub()
	var s iostream.Stream = iostream.NewStub()
	var traceWriter io.Writer

	in := &Interpreter{}
	for _, opt := range opts {
		opt(in, &t, &s, &traceWriter)
	}

	in.env = env.New()
	in.procs = proc.NewTable()
	builtins.Register(in.procs)
	in.eval = eval.NewEvaluator(in.env, in.procs, t, s, trace.NewTracer(traceWriter))
	in.driver = driver.New(in.eval)
	return in
}

// Run executes one program to completion through the underlying Driver,
// per spec.md §5's single-logical-thread guarantee.
func (in *Interpreter) Run(src string) (value.Value, error) {
	return in.driver.Run(src)
}

// Stopped reports whether a prior Run called BYE.
func (in *Interpreter) Stopped() bool { return in.driver.Stopped() }

// Env exposes the dynamic environment for host code that wants to seed
// or inspect global variables directly (e.g. an embedding REPL's :LAST).
func (in *Interpreter) Env() *env.Env { return in.env }

// Procs exposes the procedure table for host code that wants to query or
// pre-register additional routines before the first Run.
func (in *Interpreter) Procs() *proc.Table { return in.procs }
