/*
File    : logomix/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/token"
	"github.com/akashmaji946/logomix/value"
)

// ParseExpression builds a Thunk for one Expression per the grammar in
// spec.md §4.3, without invoking it. Every precedence level below
// delegates to the next tighter one and folds in its own operators.
func (e *Evaluator) ParseExpression(cur *token.Cursor) (proc.Thunk, error) {
	return e.parseRelational(cur)
}

// EvalExpression parses and immediately invokes one Expression.
func (e *Evaluator) EvalExpression(cur *token.Cursor) (value.Value, error) {
	th, err := e.ParseExpression(cur)
	if err != nil {
		return nil, err
	}
	return th()
}

var relOps = map[string]bool{"=": true, "<": true, ">": true, "<=": true, ">=": true, "<>": true}
var addOps = map[string]bool{"+": true, "-": true}
var mulOps = map[string]bool{"*": true, "/": true, "%": true}

func combineBinary(left, right proc.Thunk, apply func(a, b value.Value) (value.Value, error)) proc.Thunk {
	return func() (value.Value, error) {
		av, err := left()
		if err != nil {
			return nil, err
		}
		bv, err := right()
		if err != nil {
			return nil, err
		}
		return apply(av, bv)
	}
}

func (e *Evaluator) parseRelational(cur *token.Cursor) (proc.Thunk, error) {
	left, err := e.parseAdditive(cur)
	if err != nil {
		return nil, err
	}
	for {
		at, ok := cur.Peek()
		if !ok || at.Kind != token.Operator || !relOps[at.Op] {
			return left, nil
		}
		cur.Next()
		right, err := e.parseAdditive(cur)
		if err != nil {
			return nil, err
		}
		op := at.Op
		left = combineBinary(left, right, func(a, b value.Value) (value.Value, error) {
			return e.applyRelational(op, a, b)
		})
	}
}

func (e *Evaluator) parseAdditive(cur *token.Cursor) (proc.Thunk, error) {
	left, err := e.parseMultiplicative(cur)
	if err != nil {
		return nil, err
	}
	for {
		at, ok := cur.Peek()
		if !ok || at.Kind != token.Operator || !addOps[at.Op] {
			return left, nil
		}
		cur.Next()
		right, err := e.parseMultiplicative(cur)
		if err != nil {
			return nil, err
		}
		op := at.Op
		left = combineBinary(left, right, func(a, b value.Value) (value.Value, error) {
			return e.applyArith(op, a, b)
		})
	}
}

func (e *Evaluator) parseMultiplicative(cur *token.Cursor) (proc.Thunk, error) {
	left, err := e.parsePower(cur)
	if err != nil {
		return nil, err
	}
	for {
		at, ok := cur.Peek()
		if !ok || at.Kind != token.Operator || !mulOps[at.Op] {
			return left, nil
		}
		cur.Next()
		right, err := e.parsePower(cur)
		if err != nil {
			return nil, err
		}
		op := at.Op
		left = combineBinary(left, right, func(a, b value.Value) (value.Value, error) {
			return e.applyArith(op, a, b)
		})
	}
}

// parsePower right-folds: repeated '^' re-enters Power on the right side
// so that 2^3^2 evaluates as 2^(3^2), per spec.md §4.3.
func (e *Evaluator) parsePower(cur *token.Cursor) (proc.Thunk, error) {
	left, err := e.parseUnary(cur)
	if err != nil {
		return nil, err
	}
	at, ok := cur.Peek()
	if !ok || !at.IsOperator("^") {
		return left, nil
	}
	cur.Next()
	right, err := e.parsePower(cur)
	if err != nil {
		return nil, err
	}
	return combineBinary(left, right, func(a, b value.Value) (value.Value, error) {
		return e.applyArith("^", a, b)
	}), nil
}

func (e *Evaluator) parseUnary(cur *token.Cursor) (proc.Thunk, error) {
	at, ok := cur.Peek()
	if ok && at.Kind == token.UnaryMinus {
		cur.Next()
		operand, err := e.parseUnary(cur)
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) {
			v, err := operand()
			if err != nil {
				return nil, err
			}
			n, isNum := value.AsNumber(v)
			if !isNum {
				return nil, e.NewError("%s doesn't like %s as input", "-", v.Show())
			}
			return value.NewNumber(-n), nil
		}, nil
	}
	return e.parseFinal(cur)
}

// parseFinal implements spec.md §4.3's Final production, the intricate
// procedure-dispatch entry point.
func (e *Evaluator) parseFinal(cur *token.Cursor) (proc.Thunk, error) {
	at, ok := cur.Next()
	if !ok {
		return nil, e.NewError("unexpected end of input")
	}

	switch at.Kind {
	case token.LParen:
		return e.parseParenthesized(cur)

	case token.RParen:
		return nil, e.NewError("unexpected ')'")

	case token.Operator:
		return nil, e.NewError("unexpected operator %s", at.Op)

	case token.UnaryMinus:
		// Reached only for a stray leading '-' not consumed by parseUnary
		// (e.g. immediately after a LParen the caller already special-cased).
		operand, err := e.parseUnary(cur)
		if err != nil {
			return nil, err
		}
		return func() (value.Value, error) {
			v, err := operand()
			if err != nil {
				return nil, err
			}
			n, isNum := value.AsNumber(v)
			if !isNum {
				return nil, e.NewError("expected number")
			}
			return value.NewNumber(-n), nil
		}, nil

	case token.Word:
		return e.parseWordAtom(at, cur)
	}
	return nil, e.NewError("unexpected token")
}

func (e *Evaluator) parseWordAtom(at token.Atom, cur *token.Cursor) (proc.Thunk, error) {
	switch v := at.Val.(type) {
	case *value.List, *value.Array:
		literal := v
		return func() (value.Value, error) { return literal, nil }, nil
	case *value.Word:
		text := v.Text()
		switch {
		case v.IsNumber():
			return func() (value.Value, error) { return v, nil }, nil
		case strings.HasPrefix(text, `"`):
			lit := value.NewWord(text[1:])
			return func() (value.Value, error) { return lit, nil }, nil
		case strings.HasPrefix(text, ":"):
			name := text[1:]
			return func() (value.Value, error) {
				b, ok := e.env.Lookup(name)
				if !ok {
					return nil, e.NewError("Don't know about variable %s", strings.ToUpper(name))
				}
				return b.Value, nil
			}, nil
		default:
			// Plain identifier: a procedure name, dispatched in
			// natural-arity mode (spec.md §4.3 Final, fourth bullet).
			return e.dispatch(text, cur, false)
		}
	}
	return nil, e.NewError("unrecognized atom")
}

// parseParenthesized implements the "atom is '('" branch of Final: either
// a parenthesized procedure call at explicit arity, or a parenthesized
// sub-expression.
func (e *Evaluator) parseParenthesized(cur *token.Cursor) (proc.Thunk, error) {
	peek, ok := cur.Peek()
	if ok && peek.Kind == token.Word {
		if w, isWord := peek.Val.(*value.Word); isWord && isCallableName(w) {
			name := w.Text()
			if _, known := e.procs.Lookup(name); known {
				afterNext, ok2 := cur.PeekAt(1)
				isInfixNext := ok2 && afterNext.Kind == token.Operator
				if !isInfixNext {
					cur.Next() // consume the name atom
					return e.dispatch(name, cur, true)
				}
			}
		}
	}
	inner, err := e.ParseExpression(cur)
	if err != nil {
		return nil, err
	}
	closing, ok3 := cur.Next()
	if !ok3 || closing.Kind != token.RParen {
		return nil, e.NewError("expected ')'")
	}
	return inner, nil
}

// isCallableName reports whether a Word could name a routine: not a
// number, not a quoted literal, not a variable reference.
func isCallableName(w *value.Word) bool {
	if w.IsNumber() {
		return false
	}
	text := w.Text()
	return !strings.HasPrefix(text, `"`) && !strings.HasPrefix(text, ":")
}
