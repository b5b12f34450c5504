package parser

import (
	"testing"

	"github.com/arnavsurve/tinyc/internal/compiler/lexer"
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
)

func TestDeclareUsesActiveScope(t *testing.T) {
	s := NewSession()
	s.Declare("g", symbols.TypeInt, 1)

	fid := s.DeclareFunction("f", "void", []symbols.Param{{Type: symbols.TypeInt, Name: "p"}})
	restore := s.Enter(fid)
	s.Declare("l", symbols.TypeInt, 2)

	for _, name := range []string{"l", "p", "g"} {
		if _, ok := s.Resolve(name); !ok {
			t.Errorf("Resolve(%s) inside f should succeed", name)
		}
	}
	restore()

	if _, ok := s.Resolve("l"); ok {
		t.Errorf("local 'l' visible outside f")
	}
	if _, ok := s.Resolve("p"); ok {
		t.Errorf("parameter 'p' visible outside f")
	}
	if got := len(s.Snapshot().Globals); got != 1 {
		t.Errorf("expected 1 global, got %d", got)
	}
}

func TestDeclaredHereChecksOnlyActiveLevel(t *testing.T) {
	s := NewSession()
	s.Declare("g", symbols.TypeInt, 1)
	if !s.DeclaredHere("g") {
		t.Errorf("DeclaredHere(g) at global level should be true")
	}

	fid := s.DeclareFunction("f", "void", []symbols.Param{{Type: symbols.TypeInt, Name: "p"}})
	restore := s.Enter(fid)
	defer restore()

	for _, name := range []string{"g", "p"} {
		if s.DeclaredHere(name) {
			t.Errorf("DeclaredHere(%s) inside f should not see outer levels", name)
		}
	}
	s.Declare("l", symbols.TypeInt, 2)
	if !s.DeclaredHere("l") {
		t.Errorf("DeclaredHere(l) inside f should be true")
	}
}

func TestLaterFunctionShadowsEarlier(t *testing.T) {
	s := NewSession()
	first := s.DeclareFunction("f", "int", nil)
	second := s.DeclareFunction("f", "void", nil)

	fid, ok := s.Function("f")
	if !ok || fid != second || fid == first {
		t.Errorf("Function(f) expected=%d, got=%d", second, fid)
	}
	if n := len(s.Snapshot().Functions); n != 2 {
		t.Errorf("both records stay in the table, got %d", n)
	}
}

func TestCloneDoesNotShareState(t *testing.T) {
	s := NewSession()
	p := New(lexer.NewLexer(`int a = 1; int f(int x) { int y = 2; return 3; }`), s)
	if err := p.ParseProgram(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := s.Clone()
	cp := New(lexer.NewLexer(`a = 10; int b = 2; f(5);`), c)
	if err := cp.ParseProgram(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a, _ := s.Snapshot().Global("a"); a.Int != 1 {
		t.Errorf("original a changed to %d", a.Int)
	}
	if _, ok := s.Snapshot().Global("b"); ok {
		t.Errorf("original sees clone's global b")
	}
	if s.ReturnValue != 3 || c.ReturnValue != 0 {
		t.Errorf("ReturnValue original=%d clone=%d, expected 3 and 0", s.ReturnValue, c.ReturnValue)
	}

	fid, _ := s.Function("f")
	if x := s.Symbol(s.FunctionAt(fid).Params[0]).Int; x != 0 {
		t.Errorf("original parameter x changed to %d", x)
	}
}

func TestReset(t *testing.T) {
	s := NewSession()
	s.Declare("a", symbols.TypeInt, 1)
	s.DeclareFunction("f", "void", nil)
	s.ReturnValue = 4

	s.Reset()

	snap := s.Snapshot()
	if len(snap.Globals) != 0 || len(snap.Functions) != 0 || s.ReturnValue != 0 {
		t.Errorf("Reset left state behind: %+v, return=%d", snap, s.ReturnValue)
	}
}
