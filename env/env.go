/*
File    : logomix/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements Logo's dynamic (not lexical) variable scope, the
// process-wide property-list table, and the pseudo-random generator, per
// spec.md §3-§4.5. Unlike the teacher's lexical scope.Scope (a parent
// chain captured at closure-creation time), an env.Env is a stack of
// frames walked top-down at lookup time: a procedure sees the dynamic
// caller's bindings, not its own definition-site bindings.
package env

import (
	"math/rand/v2"
	"strings"

	"github.com/akashmaji946/logomix/value"
)

// Binding is a mutable cell reachable by a case-insensitive name within
// one scope frame, with the sidecar flags spec.md §3 attaches to it.
type Binding struct {
	Value   value.Value
	Buried  bool
	Traced  bool
	Stepped bool
}

// Frame is a single level of the dynamic environment stack: a mapping
// from uppercased name to Binding, plus the hidden TEST sidecar slot that
// IFT/IFF consult (spec.md §4.6, §9 — "not inside the cell").
type Frame struct {
	names map[string]*Binding
	test  *bool
}

func newFrame() *Frame { return &Frame{names: make(map[string]*Binding)} }

func fold(name string) string { return strings.ToUpper(name) }

// Env is the interpreter-wide dynamic scope stack. Index 0 is the global
// frame and is never popped.
type Env struct {
	frames []*Frame
	plists map[string]map[string]value.Value
	Prng   *Prng
}

// New creates an Env with only the permanent global frame.
func New() *Env {
	return &Env{
		frames: []*Frame{newFrame()},
		plists: make(map[string]map[string]value.Value),
		Prng:   NewPrng(),
	}
}

// Global returns the permanent bottom frame.
func (e *Env) Global() *Frame { return e.frames[0] }

// Current returns the innermost (most recently pushed) frame.
func (e *Env) Current() *Frame { return e.frames[len(e.frames)-1] }

// Push opens a new scope frame, used when a user procedure is invoked.
func (e *Env) Push() *Frame {
	f := newFrame()
	e.frames = append(e.frames, f)
	return f
}

// Pop closes the innermost scope frame. The global frame is never popped;
// calling Pop with only the global frame present is a no-op, matching the
// invariant that the scope stack is never empty (spec.md §3).
func (e *Env) Pop() {
	if len(e.frames) > 1 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// Depth reports how many frames are currently pushed (including global).
func (e *Env) Depth() int { return len(e.frames) }

// Lookup walks the scope stack from the top down and returns the first
// binding found for name, implementing Logo's dynamic scoping.
func (e *Env) Lookup(name string) (*Binding, bool) {
	key := fold(name)
	for i := len(e.frames) - 1; i >= 0; i-- {
		if b, ok := e.frames[i].names[key]; ok {
			return b, true
		}
	}
	return nil, false
}

// Make assigns to the binding found by Lookup, or creates a new binding
// in the global frame if none exists (spec.md §4.5 MAKE semantics).
// List values are deep-copied; arrays are aliased.
func (e *Env) Make(name string, v value.Value) {
	key := fold(name)
	if b, ok := e.Lookup(key); ok {
		b.Value = v.DeepCopy()
		return
	}
	e.Global().names[key] = &Binding{Value: v.DeepCopy()}
}

// Local creates an uninitialized binding in the current (innermost) frame.
func (e *Env) Local(name string) {
	key := fold(name)
	if _, exists := e.Current().names[key]; !exists {
		e.Current().names[key] = &Binding{}
	}
}

// LocalMake creates a binding in the current frame and assigns v to it.
func (e *Env) LocalMake(name string, v value.Value) {
	key := fold(name)
	e.Current().names[key] = &Binding{Value: v.DeepCopy()}
}

// GlobalDecl creates an uninitialized binding in the global frame.
func (e *Env) GlobalDecl(name string) {
	key := fold(name)
	if _, exists := e.Global().names[key]; !exists {
		e.Global().names[key] = &Binding{}
	}
}

// BindFormal binds a procedure input in the current frame at call time,
// leaving it undefined if no binding value is supplied (spec.md §4.4 —
// "missing args leave the binding undefined").
func (e *Env) BindFormal(name string, v value.Value) {
	e.Current().names[fold(name)] = &Binding{Value: v}
}

// SetTest stores TEST's boolean sidecar on the current frame.
func (e *Env) SetTest(b bool) { v := b; e.Current().test = &v }

// GetTest retrieves the nearest TEST sidecar by walking the scope stack
// the same way variable lookup does, since IFT/IFF must see the dynamic
// caller's TEST the way any other dynamically-scoped state would.
func (e *Env) GetTest() (bool, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if e.frames[i].test != nil {
			return *e.frames[i].test, true
		}
	}
	return false, false
}

// EraseName deletes name's binding from every scope frame, including
// buried bindings. spec.md §9 flags this as an observed-but-ambiguous
// behavior for ERNS/ERN; it is preserved here rather than special-cased.
func (e *Env) EraseName(name string) {
	key := fold(name)
	for _, f := range e.frames {
		delete(f.names, key)
	}
}

// Names returns the case-folded names bound in this frame,
// snapshotted up front so callers may safely delete while iterating
// (spec.md §5 — "iteration-during-mutation must snapshot keys").
func (f *Frame) Names() []string {
	out := make([]string, 0, len(f.names))
	for k := range f.names {
		out = append(out, k)
	}
	return out
}

// PlistTable exposes the property-list table directly for the PPROP
// family of primitives (spec.md §4 supplement in SPEC_FULL.md §4).
func (e *Env) PlistTable() map[string]map[string]value.Value { return e.plists }

// Plist returns (creating if necessary) the named property list.
func (e *Env) Plist(name string) map[string]value.Value {
	key := fold(name)
	p, ok := e.plists[key]
	if !ok {
		p = make(map[string]value.Value)
		e.plists[key] = p
	}
	return p
}

// Prng wraps math/rand/v2 for RANDOM/RERANDOM/numberwang (SPEC_FULL.md §2
// — no PRNG library appears anywhere in the retrieval pack, so this one
// ambient concern stays on the standard library).
type Prng struct {
	src *rand.Rand
}

// NewPrng seeds from a fixed default the way RERANDOM with no arguments
// reseeds deterministically in most Logo dialects.
func NewPrng() *Prng {
	return &Prng{src: rand.New(rand.NewPCG(1, 1))}
}

// Reseed reseeds the generator, used by RERANDOM.
func (p *Prng) Reseed(seed1, seed2 uint64) {
	p.src = rand.New(rand.NewPCG(seed1, seed2))
}

// IntN returns a pseudo-random integer in [0, n).
func (p *Prng) IntN(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return p.src.Int64N(n)
}

// Float64 returns a pseudo-random float in [0, 1).
func (p *Prng) Float64() float64 { return p.src.Float64() }
