// Package scope implements the code generator's scope stack (spec.md §3.5):
// an ordered mapping per frame from identifier to a Binding that carries a
// flow-sensitive isProvenOk bit alongside the declared type. This
// generalizes the teacher's scope.Scope/symbols.SymbolInfo pair (push/pop
// via an Outer chain, Define rejecting same-scope redeclaration, Lookup
// walking Outer) — the difference is that Lookup here returns the live
// binding, not a defensive copy, because Invalidate mutates the nearest
// binding in place on every assignment (spec.md §9's "consulting and
// mutating the nearest binding"). An isOk(v) guard does not mutate it:
// Refine shadows it with a refined copy in the then-branch frame.
package scope

import (
	"fmt"

	"github.com/roxlang/roxc/internal/compiler/types"
)

// Binding is the per-name metadata the code generator tracks.
type Binding struct {
	Type       *types.Type
	IsProvenOk bool
	IsConst    bool
}

// Scope is one frame of the stack; Outer is nil for the global frame.
type Scope struct {
	vars  map[string]*Binding
	outer *Scope
}

// New creates a scope frame nested inside outer (nil for the global frame).
func New(outer *Scope) *Scope {
	return &Scope{vars: make(map[string]*Binding), outer: outer}
}

// Outer returns the enclosing frame, or nil at the global frame.
func (s *Scope) Outer() *Scope {
	return s.outer
}

// Define adds a binding to this frame only; redeclaring a name already
// present in this same frame is an error (shadowing an outer frame is
// fine and is not checked here).
func (s *Scope) Define(name string, b *Binding) error {
	if _, exists := s.vars[name]; exists {
		return fmt.Errorf("'%s' already declared in this scope", name)
	}
	s.vars[name] = b
	return nil
}

// Lookup walks outward from s and returns the live binding for name.
func (s *Scope) Lookup(name string) (*Binding, bool) {
	for frame := s; frame != nil; frame = frame.outer {
		if b, ok := frame.vars[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// LookupLocal checks only this frame.
func (s *Scope) LookupLocal(name string) (*Binding, bool) {
	b, ok := s.vars[name]
	return b, ok
}

// Refine shadows name in this frame with a copy of its nearest outer
// binding marked isProvenOk=true. It must be called on a freshly pushed
// frame (the then-branch frame), so the refinement is visible only for
// that frame's lifetime and never leaks into the else branch or outward —
// mirroring the original implementation's `scopes.back()[name] = {type,
// true}` rather than mutating the outer binding directly.
func (s *Scope) Refine(name string) {
	if outer, ok := s.Lookup(name); ok {
		s.vars[name] = &Binding{Type: outer.Type, IsProvenOk: true, IsConst: outer.IsConst}
	}
}

// Invalidate clears isProvenOk on the nearest binding for name, if any.
// Used on every assignment to name (spec.md §3.5).
func (s *Scope) Invalidate(name string) {
	if b, ok := s.Lookup(name); ok {
		b.IsProvenOk = false
	}
}
