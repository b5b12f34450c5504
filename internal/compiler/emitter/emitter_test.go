package emitter

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
)

func sampleSnapshot() symbols.Snapshot {
	return symbols.Snapshot{
		Globals: []symbols.Symbol{
			{Name: "c", Type: symbols.TypeChar, Char: 'A'},
			{Name: "f", Type: symbols.TypeFloat, Float: 2.5},
			{Name: "x", Type: symbols.TypeInt, Int: 5},
		},
		Functions: []symbols.Signature{
			{ReturnType: "void", Name: "noop"},
			{ReturnType: "int", Name: "add", Params: []symbols.Param{{Type: "int", Name: "a"}, {Type: "char", Name: "b"}}},
		},
	}
}

func checkEmitterErrors(t *testing.T, e *Emitter) {
	t.Helper()
	if errs := e.Errors(); len(errs) > 0 {
		t.Fatalf("emitter errors: %v", errs)
	}
}

func TestEmitText(t *testing.T) {
	e := NewEmitter(FormatText)
	got := e.Emit(sampleSnapshot())
	checkEmitterErrors(t, e)

	want := "\nGlobal Symbol Table:\n" +
		"\nType\tID\tValue\n" +
		"----\t--\t----\n" +
		"char\tc\tA\n" +
		"float\tf\t2.50\n" +
		"int\tx\t5\n" +
		"\nFunction Table:\n" +
		"Return\tName\tParams\n" +
		"------\t----\t------\n" +
		"void\tnoop\t\n" +
		"int\tadd\tint a, char b\n"

	if got != want {
		t.Errorf("text dump mismatch.\nexpected=\n%q\ngot=\n%q", want, got)
	}
}

func TestEmitTextEmptyTables(t *testing.T) {
	got := NewEmitter(FormatText).Emit(symbols.Snapshot{})
	if !strings.HasSuffix(got, "------\t----\t------\n") {
		t.Errorf("empty dump should end with the function table header, got %q", got)
	}
}

func TestEmitYAML(t *testing.T) {
	e := NewEmitter(FormatYAML)
	out := e.Emit(sampleSnapshot())
	checkEmitterErrors(t, e)

	var doc tables
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, out)
	}
	if len(doc.Globals) != 3 || doc.Globals[1].Value != "2.50" {
		t.Errorf("unexpected globals: %+v", doc.Globals)
	}
	if len(doc.Functions) != 2 || len(doc.Functions[1].Params) != 2 {
		t.Errorf("unexpected functions: %+v", doc.Functions)
	}
}

func TestEmitJSON(t *testing.T) {
	e := NewEmitter(FormatJSON)
	out := e.Emit(sampleSnapshot())
	checkEmitterErrors(t, e)

	var doc tables
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, out)
	}
	if doc.Globals[0].Name != "c" || doc.Globals[0].Value != "A" {
		t.Errorf("unexpected first global: %+v", doc.Globals[0])
	}
	if doc.Functions[0].Params == nil {
		t.Errorf("params should encode as an empty list, not null")
	}
}

func TestEmitPretty(t *testing.T) {
	e := NewEmitter(FormatPretty)
	out := e.Emit(sampleSnapshot())
	checkEmitterErrors(t, e)

	for _, want := range []string{"Global Symbol Table", "Function Table", "2.50", "int a, char b"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"YAML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"pretty", FormatPretty, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) expected=%q, got=%q", tt.in, tt.want, got)
		}
	}
}
