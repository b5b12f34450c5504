package lexer

import (
	"math"
	"strconv"

	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char
	eof          bool

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)

	// Set once an unclassifiable character ends the stream.
	halted    bool
	stray     byte
	strayLine int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer by one character. Leaving a newline bumps
// the line counter, so every consumed '\n' is counted exactly once.
func (l *Lexer) readChar() {
	if l.ch == '\n' && !l.eof {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.eof = true
		l.position = len(l.input)
		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// AtEOF reports whether the character stream is exhausted, either because
// the input ended or because a stray character halted it.
func (l *Lexer) AtEOF() bool {
	return l.eof || l.halted
}

// Stray returns the character that halted the stream, if any.
func (l *Lexer) Stray() (ch byte, line int, ok bool) {
	return l.stray, l.strayLine, l.halted
}

func (l *Lexer) NextToken() token.Token {
	if l.halted {
		return l.eofToken(l.strayLine, l.column)
	}

	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	if l.eof {
		return l.eofToken(startLine, startCol)
	}

	switch {
	case isDigit(l.ch):
		return l.readNumber(startLine, startCol)
	case l.ch == '"':
		return l.readString(startLine, startCol)
	case l.ch == '\'':
		return l.readCharLiteral(startLine, startCol)
	case l.ch == '/' && l.peekChar() == '/':
		l.readComment()
		return l.NextToken()
	case l.ch == '/' && l.peekChar() == '*':
		if !l.readBlockComment() {
			return l.eofToken(l.line, l.column)
		}
		return l.NextToken()
	case isLetter(l.ch):
		ident := l.readIdentifier()
		return l.newToken(token.LookupIdent(ident), ident, startLine, startCol)
	case isOperator(l.ch):
		return l.readOperator(startLine, startCol)
	}

	// Nothing matches: the stream ends here.
	l.halted = true
	l.stray = l.ch
	l.strayLine = startLine
	return l.eofToken(startLine, startCol)
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	if len(literal) > token.MaxLiteral {
		literal = literal[:token.MaxLiteral]
	}
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) eofToken(line, col int) token.Token {
	return token.Token{Type: token.TokenEOF, Literal: "EOF", Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && (l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r') {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for !l.eof && l.ch != '\n' {
		l.readChar()
	}
}

// readBlockComment consumes a /* ... */ comment. It returns false when the
// input ends before the closing delimiter.
func (l *Lexer) readBlockComment() bool {
	l.readChar() // Consume '/'
	l.readChar() // Consume '*'

	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // Consume '*'
			l.readChar() // Consume '/'
			return true
		}
		l.readChar()
	}
	return false
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.eof && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads digits with at most one decimal point. A second point
// ends the literal and is left for the next token.
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	decimal := false
	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if decimal {
				break
			}
			decimal = true
		}
		l.readChar()
	}
	literal := l.input[start:l.position]

	if decimal {
		tok := l.newToken(token.TokenFloat, literal, startLine, startCol)
		f, _ := strconv.ParseFloat(literal, 32)
		tok.FloatValue = float32(f)
		return tok
	}

	tok := l.newToken(token.TokenInteger, literal, startLine, startCol)
	// Like (int)strtol: saturate at 64 bits, then keep the low 32.
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		n = math.MaxInt64
	}
	tok.IntValue = int(int32(n))
	return tok
}

func (l *Lexer) readString(startLine, startCol int) token.Token {
	l.readChar() // Consume opening "
	start := l.position

	for !l.eof && l.ch != '"' {
		l.readChar()
	}

	if l.eof {
		// Unterminated string
		return l.eofToken(l.line, l.column)
	}

	lit := l.input[start:l.position]
	l.readChar() // Consume closing "
	return l.newToken(token.TokenString, lit, startLine, startCol)
}

// readCharLiteral reads 'c'. Without a closing quote the quote and the
// character are dropped and lexing resumes from the current position.
func (l *Lexer) readCharLiteral(startLine, startCol int) token.Token {
	l.readChar() // Consume opening '
	if l.eof {
		return l.eofToken(l.line, l.column)
	}

	c := l.ch
	l.readChar()
	if l.eof || l.ch != '\'' {
		return l.NextToken()
	}
	l.readChar() // Consume closing '

	tok := l.newToken(token.TokenChar, string(c), startLine, startCol)
	tok.IntValue = int(c)
	return tok
}

// readOperator consumes one character, or two when the pair forms a
// compound operator.
func (l *Lexer) readOperator(startLine, startCol int) token.Token {
	pair := string([]byte{l.ch, l.peekChar()})
	if twoCharOperators[pair] {
		l.readChar()
		l.readChar()
		return l.newToken(token.TokenOperator, pair, startLine, startCol)
	}

	lit := string(l.ch)
	l.readChar()
	return l.newToken(token.TokenOperator, lit, startLine, startCol)
}

var twoCharOperators = map[string]bool{
	"==": true, "!=": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"++": true, "--": true,
	">=": true, "<=": true,
	"&&": true, "||": true,
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '(', ')', '{', '}', ';', ',', '=', '<', '>', '!', '&', '|', '%':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
