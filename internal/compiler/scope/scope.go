package scope

import (
	"slices"

	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
)

// --- Scope ---

// Scope maps names to the most recently defined symbol ID. Records
// themselves live in the session arena; a redefinition only moves the
// name to the newer ID, so earlier records stay in place (shadowed).
type Scope struct {
	Name   string
	Outer  *Scope
	ids    []symbols.ID // definition order
	latest map[string]symbols.ID
}

func NewScope(outer *Scope, name string) *Scope {
	return &Scope{
		Outer:  outer,
		Name:   name,
		latest: make(map[string]symbols.ID),
	}
}

// Define adds a symbol to the current scope level. Redefining a name
// shadows the earlier symbol for lookup.
func (s *Scope) Define(name string, id symbols.ID) {
	s.ids = append(s.ids, id)
	s.latest[name] = id
}

// Lookup searches for a symbol starting from the current scope and traversing outwards.
func (s *Scope) Lookup(name string) (symbols.ID, bool) {
	for scope := s; scope != nil; scope = scope.Outer {
		if id, ok := scope.latest[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// LookupCurrentScope checks ONLY the current scope level.
func (s *Scope) LookupCurrentScope(name string) (symbols.ID, bool) {
	id, ok := s.latest[name]
	return id, ok
}

// IDs returns every symbol defined at this level, most recent first.
func (s *Scope) IDs() []symbols.ID {
	out := slices.Clone(s.ids)
	slices.Reverse(out)
	return out
}

// Len returns the number of definitions at this level, shadowed ones included.
func (s *Scope) Len() int {
	return len(s.ids)
}

// Clone copies this level and attaches it to outer.
func (s *Scope) Clone(outer *Scope) *Scope {
	c := NewScope(outer, s.Name)
	c.ids = slices.Clone(s.ids)
	for name, id := range s.latest {
		c.latest[name] = id
	}
	return c
}
