package emitter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/arnavsurve/tinyc/internal/compiler/lib"
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
)

// Format selects how the tables are rendered.
type Format string

const (
	FormatText   Format = "text"   // tab separated, the classic dump
	FormatPretty Format = "pretty" // bordered tables
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatPretty, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, pretty, yaml or json)", name)
}

// --- Document rows (yaml/json) ---

type globalRow struct {
	Type  string `yaml:"type" json:"type"`
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

type paramRow struct {
	Type string `yaml:"type" json:"type"`
	Name string `yaml:"name" json:"name"`
}

type functionRow struct {
	Return string     `yaml:"return" json:"return"`
	Name   string     `yaml:"name" json:"name"`
	Params []paramRow `yaml:"params" json:"params"`
}

type tables struct {
	Globals   []globalRow   `yaml:"globals" json:"globals"`
	Functions []functionRow `yaml:"functions" json:"functions"`
}

func toTables(snap symbols.Snapshot) tables {
	doc := tables{
		Globals:   make([]globalRow, 0, len(snap.Globals)),
		Functions: make([]functionRow, 0, len(snap.Functions)),
	}
	for i := range snap.Globals {
		sym := &snap.Globals[i]
		doc.Globals = append(doc.Globals, globalRow{Type: sym.Type, Name: sym.Name, Value: sym.FormatValue()})
	}
	for _, fn := range snap.Functions {
		row := functionRow{Return: fn.ReturnType, Name: fn.Name, Params: make([]paramRow, 0, len(fn.Params))}
		for _, p := range fn.Params {
			row.Params = append(row.Params, paramRow{Type: p.Type, Name: p.Name})
		}
		doc.Functions = append(doc.Functions, row)
	}
	return doc
}

// --- Emitter ---

type Emitter struct {
	builder strings.Builder
	errors  []string
	format  Format
}

func NewEmitter(format Format) *Emitter {
	if format == "" {
		format = FormatText
	}
	return &Emitter{
		errors: []string{},
		format: format,
	}
}

func (e *Emitter) addError(format string, args ...any) {
	errMsg := fmt.Sprintf(format, args...)
	e.errors = append(e.errors, errMsg)
}

func (e *Emitter) Errors() []string {
	return e.errors
}

// Emit renders the global and function tables of snap.
func (e *Emitter) Emit(snap symbols.Snapshot) string {
	e.builder.Reset()

	switch e.format {
	case FormatText:
		e.emitText(snap)
	case FormatPretty:
		e.emitPretty(snap)
	case FormatYAML:
		e.emitYAML(snap)
	case FormatJSON:
		e.emitJSON(snap)
	default:
		e.addError("unknown output format %q", e.format)
	}
	return e.builder.String()
}

// --- Emit Helpers ---

func (e *Emitter) emitf(format string, args ...any) {
	fmt.Fprintf(&e.builder, format, args...)
}

func params(fn symbols.Signature) string {
	types := make([]string, 0, len(fn.Params))
	names := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		types = append(types, p.Type)
		names = append(names, p.Name)
	}
	return lib.JoinParams(types, names)
}

func (e *Emitter) emitText(snap symbols.Snapshot) {
	e.emitf("\nGlobal Symbol Table:\n")
	e.emitf("\nType\tID\tValue\n")
	e.emitf("----\t--\t----\n")
	for i := range snap.Globals {
		sym := &snap.Globals[i]
		e.emitf("%s\t%s\t%s\n", sym.Type, sym.Name, sym.FormatValue())
	}

	e.emitf("\nFunction Table:\n")
	e.emitf("Return\tName\tParams\n")
	e.emitf("------\t----\t------\n")
	for _, fn := range snap.Functions {
		e.emitf("%s\t%s\t%s\n", fn.ReturnType, fn.Name, params(fn))
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func (e *Emitter) emitPretty(snap symbols.Snapshot) {
	globals := newTable("Type", "ID", "Value")
	for i := range snap.Globals {
		sym := &snap.Globals[i]
		globals.Row(sym.Type, sym.Name, sym.FormatValue())
	}

	funcs := newTable("Return", "Name", "Params")
	for _, fn := range snap.Functions {
		funcs.Row(fn.ReturnType, fn.Name, params(fn))
	}

	e.emitf("%s\n%s\n", titleStyle.Render("Global Symbol Table"), globals.Render())
	e.emitf("%s\n%s\n", titleStyle.Render("Function Table"), funcs.Render())
}

func (e *Emitter) emitYAML(snap symbols.Snapshot) {
	enc := yaml.NewEncoder(&e.builder)
	enc.SetIndent(2)
	if err := enc.Encode(toTables(snap)); err != nil {
		e.addError("yaml: %v", err)
		return
	}
	if err := enc.Close(); err != nil {
		e.addError("yaml: %v", err)
	}
}

func (e *Emitter) emitJSON(snap symbols.Snapshot) {
	b, err := json.MarshalIndent(toTables(snap), "", "  ")
	if err != nil {
		e.addError("json: %v", err)
		return
	}
	e.builder.Write(b)
	e.builder.WriteByte('\n')
}
