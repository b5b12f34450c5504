package symbols

import "github.com/arnavsurve/tinyc/internal/compiler/lib"

// ID indexes a Symbol in a session's symbol arena.
type ID int

// FuncID indexes a Function in a session's function arena.
type FuncID int

// Scalar type names that carry a value.
const (
	TypeInt   = "int"
	TypeFloat = "float"
	TypeChar  = "char"
)

// WrapInt keeps the low 32 bits of v, as storing into a C int does.
func WrapInt(v int) int {
	return int(int32(v))
}

// Symbol is a declared variable or parameter. Only the slot matching Type
// holds a meaningful value.
type Symbol struct {
	Name string
	Type string // declared type keyword

	Int   int
	Float float32
	Char  int8
}

// HasValue reports whether the declared type is one of int, float, char.
func (s *Symbol) HasValue() bool {
	switch s.Type {
	case TypeInt, TypeFloat, TypeChar:
		return true
	}
	return false
}

// Store converts v into the slot for the declared type.
func (s *Symbol) Store(v int) {
	switch s.Type {
	case TypeInt:
		s.Int = WrapInt(v)
	case TypeFloat:
		s.Float = float32(v)
	case TypeChar:
		s.Char = int8(v)
	}
}

// Load reads the value as a 32-bit int; floats truncate toward zero.
func (s *Symbol) Load() int {
	switch s.Type {
	case TypeInt:
		return s.Int
	case TypeFloat:
		return WrapInt(int(s.Float))
	case TypeChar:
		return int(s.Char)
	}
	return 0
}

// FormatValue renders the value the way the table dump prints it.
func (s *Symbol) FormatValue() string {
	switch s.Type {
	case TypeInt:
		return lib.FormatInt(s.Int)
	case TypeFloat:
		return lib.FormatFloat(s.Float)
	case TypeChar:
		return lib.FormatChar(s.Char)
	}
	return ""
}

// Function is a declared function. Params and Locals list symbol IDs in
// declaration order. Params are shared by every call.
type Function struct {
	Name       string
	ReturnType string
	Params     []ID
	Locals     []ID
}

// --- Snapshot ---

// Snapshot is a read-only copy of a session's tables in dump order
// (most recent declaration first).
type Snapshot struct {
	Globals   []Symbol
	Functions []Signature
}

// Param is one declared parameter of a Signature.
type Param struct {
	Type string
	Name string
}

// Signature describes a function for the table dump.
type Signature struct {
	ReturnType string
	Name       string
	Params     []Param
}

// Global returns the visible global named name: the first match in dump
// order, i.e. the latest declaration.
func (s Snapshot) Global(name string) (Symbol, bool) {
	for _, sym := range s.Globals {
		if sym.Name == name {
			return sym, true
		}
	}
	return Symbol{}, false
}

// Function returns the latest function named name.
func (s Snapshot) Function(name string) (Signature, bool) {
	for _, fn := range s.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return Signature{}, false
}
