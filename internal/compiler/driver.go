package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arnavsurve/tinyc/internal/compiler/emitter"
	"github.com/arnavsurve/tinyc/internal/compiler/lexer"
	"github.com/arnavsurve/tinyc/internal/compiler/parser"
	"github.com/arnavsurve/tinyc/internal/compiler/symbols"
	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

// Options tunes a parse run.
type Options struct {
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is the outcome of parsing one source.
type Result struct {
	OK          bool
	Diagnostics []parser.Diagnostic
	Warnings    []string
	Snapshot    symbols.Snapshot

	// Halted is set when the tokenizer stopped at an unrecognized character.
	Halted bool
}

// Err returns the diagnostic that failed the parse, or nil.
func (r *Result) Err() error {
	if r.OK || len(r.Diagnostics) == 0 {
		return nil
	}
	return &r.Diagnostics[0]
}

// ParseFile parses the file at srcPath into a fresh session. The error is
// non-nil only when the file cannot be read; parse failures are reported
// through the Result.
func ParseFile(srcPath string, opts Options) (*Result, error) {
	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	opts.logger().Debug("parsing", "path", srcPath, "bytes", len(content))
	return ParseSource(content, parser.NewSession(), opts), nil
}

// ParseSource parses src, evaluating into sess.
func ParseSource(src string, sess *parser.Session, opts Options) *Result {
	logger := opts.logger()

	lex := lexer.NewLexer(src)
	p := parser.New(lex, sess, parser.WithLogger(logger))
	err := p.ParseProgram()

	ch, line, halted := lex.Stray()
	if halted {
		logger.Warn("input ends at unrecognized character", "char", string(ch), "line", line)
	}
	for _, w := range p.Warnings() {
		logger.Warn(w)
	}

	return &Result{
		OK:          err == nil,
		Diagnostics: p.Diagnostics(),
		Warnings:    p.Warnings(),
		Snapshot:    sess.Snapshot(),
		Halted:      halted,
	}
}

// Tokens lexes src completely, stopping after the EOF token.
func Tokens(src string) []token.Token {
	lex := lexer.NewLexer(src)
	var toks []token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks
		}
	}
}

// Render produces the console report for res: diagnostics, the pass/fail
// banner and, on success, the tables. banner may decorate the banner line;
// nil leaves it plain.
func Render(res *Result, format emitter.Format, banner func(ok bool, text string) string) (string, error) {
	if banner == nil {
		banner = func(_ bool, text string) string { return text }
	}

	var b strings.Builder
	for i := range res.Diagnostics {
		b.WriteString(res.Diagnostics[i].Error())
		b.WriteByte('\n')
	}

	if !res.OK {
		b.WriteString(banner(false, "Parsing failed"))
		b.WriteByte('\n')
		return b.String(), nil
	}

	b.WriteString(banner(true, "Parsing successful"))
	b.WriteByte('\n')

	tables, err := emitTables(res.Snapshot, format)
	if err != nil {
		return "", err
	}
	b.WriteString(tables)
	return b.String(), nil
}

func emitTables(snap symbols.Snapshot, format emitter.Format) (string, error) {
	em := emitter.NewEmitter(format)
	out := em.Emit(snap)
	if errs := em.Errors(); len(errs) > 0 {
		return "", fmt.Errorf("emitter errors: %v", errs)
	}
	return out, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open source: %w", err)
	}
	return string(b), nil
}
