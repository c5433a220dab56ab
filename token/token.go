/*
File    : logomix/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package token defines the flat atom stream produced by the lexer/parser
// stage (spec.md §4.1-4.2) and the Cursor the evaluator advances while
// recursively parsing expressions out of it (spec.md §4.3). List and array
// bodies are already nested into value.List / value.Array atoms by the
// time they reach this stream; only operators, grouping parentheses, and
// plain words remain as flat atoms.
package token

import "github.com/akashmaji946/logomix/value"

// Kind classifies an Atom the way spec.md §3's Token definition does:
// either a carried value.Value, or one of the reserved marker kinds.
type Kind int

const (
	// Word wraps a value.Value: a number, a quoted ("name) or colon
	// (:name) word, a plain identifier, or a nested list/array literal.
	Word Kind = iota
	// Operator is one of + - * / % ^ = < > <= >= <>.
	Operator
	// LParen and RParen are the two grouping tokens that survive into the
	// flat stream (brackets and braces are consumed during lexing).
	LParen
	RParen
	// UnaryMinus is the sentinel emitted instead of the "-" Operator atom
	// when '-' is disambiguated as a unary prefix (spec.md §4.2).
	UnaryMinus
)

// Atom is one element of the flat token stream.
type Atom struct {
	Kind   Kind
	Op     string // operator text, set when Kind == Operator
	Val    value.Value
	Line   int
	Column int
}

// Literal renders the atom back to source text, used when re-emitting a
// procedure body textually (spec.md §6 persisted definition format).
func (a Atom) Literal() string {
	switch a.Kind {
	case Operator:
		return a.Op
	case LParen:
		return "("
	case RParen:
		return ")"
	case UnaryMinus:
		return "-"
	default:
		return a.Val.Show()
	}
}

// IsOperator reports whether the atom is the given operator symbol.
func (a Atom) IsOperator(op string) bool {
	return a.Kind == Operator && a.Op == op
}

// Cursor is an index-advancing view over an atom slice. Sub-expression
// parsing during dispatch advances the same cursor a caller is holding,
// matching spec.md §4.2's "arena-allocated vector of atoms" guidance
// instead of a linked list of shared references.
type Cursor struct {
	Atoms []Atom
	Pos   int
}

// NewCursor wraps atoms for evaluation.
func NewCursor(atoms []Atom) *Cursor { return &Cursor{Atoms: atoms} }

// Done reports whether the cursor has consumed every atom.
func (c *Cursor) Done() bool { return c.Pos >= len(c.Atoms) }

// Peek returns the next atom without consuming it, and whether one exists.
func (c *Cursor) Peek() (Atom, bool) {
	if c.Done() {
		return Atom{}, false
	}
	return c.Atoms[c.Pos], true
}

// PeekAt returns the atom offset ahead of the cursor without consuming
// anything, and whether one exists.
func (c *Cursor) PeekAt(offset int) (Atom, bool) {
	i := c.Pos + offset
	if i < 0 || i >= len(c.Atoms) {
		return Atom{}, false
	}
	return c.Atoms[i], true
}

// Next consumes and returns the next atom.
func (c *Cursor) Next() (Atom, bool) {
	a, ok := c.Peek()
	if ok {
		c.Pos++
	}
	return a, ok
}

// Rest returns the remaining unconsumed atoms without advancing.
func (c *Cursor) Rest() []Atom { return c.Atoms[c.Pos:] }

// Sub returns a fresh cursor at position 0 over the given atoms, with its
// own Pos independent of c — used when a special form wants its own scratch
// cursor over a saved atom slice (e.g. FOR re-evaluating its step clause).
// The slice is not copied.
func (c *Cursor) Sub(atoms []Atom) *Cursor { return &Cursor{Atoms: atoms} }
