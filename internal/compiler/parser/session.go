package parser

import (
	"slices"

	"github.com/arnavsurve/tinyc/internal/compiler/scope"
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
)

// Session is the mutable state one parse evaluates against: the symbol and
// function arenas, the scope chain, the active function and the shared
// return slot. A Session is owned by a single parser at a time.
type Session struct {
	syms  []symbols.Symbol
	funcs []symbols.Function

	globals   *scope.Scope
	funcNames map[string]symbols.FuncID
	params    []*scope.Scope // per function, Outer is globals
	locals    []*scope.Scope // per function, Outer is the params scope

	inFunc  bool
	current symbols.FuncID

	// ReturnValue is the single process-wide return slot, written by every
	// return statement and reset by call statements.
	ReturnValue int
}

func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset empties every table.
func (s *Session) Reset() {
	s.syms = nil
	s.funcs = nil
	s.globals = scope.NewScope(nil, "global")
	s.funcNames = make(map[string]symbols.FuncID)
	s.params = nil
	s.locals = nil
	s.inFunc = false
	s.current = 0
	s.ReturnValue = 0
}

// Clone returns a deep copy that can be mutated without touching s.
func (s *Session) Clone() *Session {
	c := &Session{
		syms:        slices.Clone(s.syms),
		funcs:       make([]symbols.Function, len(s.funcs)),
		globals:     s.globals.Clone(nil),
		funcNames:   make(map[string]symbols.FuncID, len(s.funcNames)),
		params:      make([]*scope.Scope, len(s.params)),
		locals:      make([]*scope.Scope, len(s.locals)),
		inFunc:      s.inFunc,
		current:     s.current,
		ReturnValue: s.ReturnValue,
	}
	for i, fn := range s.funcs {
		fn.Params = slices.Clone(fn.Params)
		fn.Locals = slices.Clone(fn.Locals)
		c.funcs[i] = fn
	}
	for name, id := range s.funcNames {
		c.funcNames[name] = id
	}
	for i := range s.params {
		c.params[i] = s.params[i].Clone(c.globals)
		c.locals[i] = s.locals[i].Clone(c.params[i])
	}
	return c
}

// Symbol returns the arena record for id. The pointer is only valid until
// the next declaration.
func (s *Session) Symbol(id symbols.ID) *symbols.Symbol {
	return &s.syms[id]
}

// InFunction reports whether declarations currently go to a function's locals.
func (s *Session) InFunction() bool {
	return s.inFunc
}

func (s *Session) activeScope() *scope.Scope {
	if s.inFunc {
		return s.locals[s.current]
	}
	return s.globals
}

func (s *Session) newSymbol(name, typ string) symbols.ID {
	s.syms = append(s.syms, symbols.Symbol{Name: name, Type: typ})
	return symbols.ID(len(s.syms) - 1)
}

// Declare inserts a variable into the active scope: the current function's
// locals inside a function body, the globals otherwise.
func (s *Session) Declare(name, typ string, value int) symbols.ID {
	id := s.newSymbol(name, typ)
	s.syms[id].Store(value)
	s.activeScope().Define(name, id)
	if s.inFunc {
		fn := &s.funcs[s.current]
		fn.Locals = append(fn.Locals, id)
	}
	return id
}

// DeclaredHere reports whether name already has a declaration in the active
// scope level itself. Outer levels are not consulted.
func (s *Session) DeclaredHere(name string) bool {
	_, ok := s.activeScope().LookupCurrentScope(name)
	return ok
}

// Resolve finds the visible symbol for name: locals, then parameters of the
// active function, then globals.
func (s *Session) Resolve(name string) (symbols.ID, bool) {
	return s.activeScope().Lookup(name)
}

// DeclareFunction registers a function with fresh parameter symbols. A
// later function with the same name shadows this one.
func (s *Session) DeclareFunction(name, returnType string, params []symbols.Param) symbols.FuncID {
	fid := symbols.FuncID(len(s.funcs))
	paramScope := scope.NewScope(s.globals, name)

	fn := symbols.Function{Name: name, ReturnType: returnType}
	for _, p := range params {
		id := s.newSymbol(p.Name, p.Type)
		paramScope.Define(p.Name, id)
		fn.Params = append(fn.Params, id)
	}

	s.funcs = append(s.funcs, fn)
	s.params = append(s.params, paramScope)
	s.locals = append(s.locals, scope.NewScope(paramScope, name))
	s.funcNames[name] = fid
	return fid
}

// Function looks up the latest function registered under name.
func (s *Session) Function(name string) (symbols.FuncID, bool) {
	fid, ok := s.funcNames[name]
	return fid, ok
}

// FunctionAt returns the record for fid.
func (s *Session) FunctionAt(fid symbols.FuncID) *symbols.Function {
	return &s.funcs[fid]
}

// Enter makes fid the active function and returns a func restoring the
// previous scope.
func (s *Session) Enter(fid symbols.FuncID) (restore func()) {
	prevIn, prevCur := s.inFunc, s.current
	s.inFunc, s.current = true, fid
	return func() {
		s.inFunc, s.current = prevIn, prevCur
	}
}

// Snapshot copies the tables in dump order, most recent first. Globals
// whose type carries no value are left out.
func (s *Session) Snapshot() symbols.Snapshot {
	snap := symbols.Snapshot{
		Globals: make([]symbols.Symbol, 0, s.globals.Len()),
	}

	for _, id := range s.globals.IDs() {
		sym := s.syms[id]
		if !sym.HasValue() {
			continue
		}
		snap.Globals = append(snap.Globals, sym)
	}

	for i := len(s.funcs) - 1; i >= 0; i-- {
		fn := s.funcs[i]
		sig := symbols.Signature{ReturnType: fn.ReturnType, Name: fn.Name}
		for _, id := range fn.Params {
			sym := s.syms[id]
			sig.Params = append(sig.Params, symbols.Param{Type: sym.Type, Name: sym.Name})
		}
		snap.Functions = append(snap.Functions, sig)
	}
	return snap
}
