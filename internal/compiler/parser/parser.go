package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arnavsurve/tinyc/internal/compiler/lexer"
	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

// Parser recognizes the grammar one production at a time and evaluates
// what it recognizes against its Session as it goes.
type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token
	s       *Session

	diagnostics []Diagnostic
	warnings    []string // non-fatal findings

	logger *slog.Logger
}

type Option func(*Parser)

// WithLogger routes the parser's debug events to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser over l that evaluates into s. The first token is
// read immediately.
func New(l *lexer.Lexer, s *Session, opts ...Option) *Parser {
	p := &Parser{
		l:      l,
		s:      s,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.nextToken()
	p.nextToken()
	return p
}

// --- Token Handling ---
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

// expectOperator consumes the operator lit or fails with msg.
func (p *Parser) expectOperator(lit, msg string) error {
	if !p.curTok.IsOperator(lit) {
		return p.errorf("%s", msg)
	}
	p.nextToken()
	return nil
}

func (p *Parser) curIsOneOf(ops ...string) bool {
	if p.curTok.Type != token.TokenOperator {
		return false
	}
	for _, op := range ops {
		if p.curTok.Literal == op {
			return true
		}
	}
	return false
}

// --- Error/Warning Handling ---

// errorf records a diagnostic at the current token and returns it.
func (p *Parser) errorf(format string, args ...any) error {
	d := Diagnostic{
		Line:    p.curTok.Line,
		Message: fmt.Sprintf(format, args...),
		AtEOF:   p.curTok.IsEOF(),
	}
	p.diagnostics = append(p.diagnostics, d)
	p.logger.Debug("parse aborted", "line", d.Line, "message", d.Message, "token", p.curTok.Literal)
	return &d
}

func (p *Parser) addWarning(tok token.Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.warnings = append(p.warnings, fmt.Sprintf("line %d: %s", tok.Line, msg))
}

// Diagnostics returns the errors reported so far. A failed parse reports
// exactly one.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// Errors returns the diagnostics as printable lines.
func (p *Parser) Errors() []string {
	out := make([]string, 0, len(p.diagnostics))
	for i := range p.diagnostics {
		out = append(out, p.diagnostics[i].Error())
	}
	return out
}

// Warnings returns non-fatal findings such as reads of undeclared names.
func (p *Parser) Warnings() []string {
	return p.warnings
}

// Session returns the session the parser evaluates into.
func (p *Parser) Session() *Session {
	return p.s
}

// --- Program Parsing ---

// ParseProgram parses statements until end of input. It stops at the first
// error and returns it as a *Diagnostic.
func (p *Parser) ParseProgram() error {
	for !p.curTok.IsEOF() {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}
