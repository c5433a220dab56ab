/*
File    : logomix/trace/trace.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package trace prints TRACE/STEP diagnostics the way the teacher's repl
// package colorizes REPL output, but driven from the evaluator's
// per-procedure trace and step flags (spec.md §8.6 TRACE/NOTRACE/STEP/
// UNSTEP) rather than from echoing every line typed at a prompt — this
// module never runs a REPL. Only user-procedure calls are reported; the
// interpreter never calls VarAssign, so variable assignments are not traced.
package trace

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	callColor  = color.New(color.FgCyan)
	varColor   = color.New(color.FgYellow)
	stepColor  = color.New(color.FgMagenta)
)

// Tracer writes colorized call/variable trace lines to Writer. A nil
// Writer silences output entirely (the default, zero-cost state).
type Tracer struct {
	Writer io.Writer
	depth  int
}

// NewTracer creates a Tracer writing to w. Pass nil to build a no-op
// tracer (every method becomes a cheap nil check).
func NewTracer(w io.Writer) *Tracer { return &Tracer{Writer: w} }

// Call reports entry into a traced procedure, indented by call depth.
func (t *Tracer) Call(name string, args []string) {
	if t == nil || t.Writer == nil {
		return
	}
	callColor.Fprintf(t.Writer, "%s%s %s\n", strings.Repeat("  ", t.depth), name, strings.Join(args, " "))
	t.depth++
}

// Return reports exit from a traced procedure.
func (t *Tracer) Return(name string, result string) {
	if t == nil || t.Writer == nil {
		return
	}
	if t.depth > 0 {
		t.depth--
	}
	if result == "" {
		return
	}
	callColor.Fprintf(t.Writer, "%s%s outputs %s\n", strings.Repeat("  ", t.depth), name, result)
}

// VarAssign reports a MAKE/LOCALMAKE on a traced variable.
func (t *Tracer) VarAssign(name, value string) {
	if t == nil || t.Writer == nil {
		return
	}
	varColor.Fprintf(t.Writer, "%s <- %s\n", name, value)
}

// Step reports one STEPped procedure call about to run.
func (t *Tracer) Step(name string, args []string) {
	if t == nil || t.Writer == nil {
		return
	}
	stepColor.Fprintf(t.Writer, "%s %s\n", name, strings.Join(args, " "))
}
