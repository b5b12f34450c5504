package token

import "fmt"

type TokenType string

const (
	// Literals
	TokenInteger TokenType = "INTEGER" // 42
	TokenFloat   TokenType = "FLOAT"   // 4.2
	TokenString  TokenType = "STRING"  // "..."
	TokenChar    TokenType = "CHAR"    // 'c'

	// Never handed to the parser; the lexer skips past comments.
	TokenComment TokenType = "COMMENT"

	// Words
	TokenTypeLiteral TokenType = "TYPE"       // int, float, char, void, ...
	TokenReserved    TokenType = "RESERVED"   // if, while, for, return, ...
	TokenIdent       TokenType = "IDENTIFIER" // Identifier (e.g. variable name)

	TokenOperator TokenType = "OPERATOR" // + - * / ( ) { } ; , = < > ! & | % and two-char forms

	// Special
	TokenEOF TokenType = "EOF"
)

// MaxLiteral bounds the stored lexeme length.
const MaxLiteral = 255

type Token struct {
	Type       TokenType
	Literal    string
	IntValue   int
	FloatValue float32
	Line       int
	Column     int
}

// String renders t the way the tokens command lists it, e.g. "INTEGER: 5 (value: 5)".
func (t Token) String() string {
	switch t.Type {
	case TokenInteger:
		return fmt.Sprintf("%s: %s (value: %d)", t.Type, t.Literal, t.IntValue)
	case TokenFloat:
		return fmt.Sprintf("%s: %s (value: %.2f)", t.Type, t.Literal, t.FloatValue)
	}
	return fmt.Sprintf("%s: %s", t.Type, t.Literal)
}

func (t Token) IsTypeKeyword() bool {
	return t.Type == TokenTypeLiteral
}

// IsOperator reports whether t is the operator lit.
func (t Token) IsOperator(lit string) bool {
	return t.Type == TokenOperator && t.Literal == lit
}

// IsReserved reports whether t is the reserved word w.
func (t Token) IsReserved(w string) bool {
	return t.Type == TokenReserved && t.Literal == w
}

func (t Token) IsEOF() bool {
	return t.Type == TokenEOF
}

// IsAssignOp reports whether t is one of = += -= *= /= %=.
func (t Token) IsAssignOp() bool {
	if t.Type != TokenOperator {
		return false
	}
	switch t.Literal {
	case "=", "+=", "-=", "*=", "/=", "%=":
		return true
	}
	return false
}

var typeKeywords = map[string]bool{
	"boolean":  true,
	"char":     true,
	"const":    true,
	"double":   true,
	"float":    true,
	"int":      true,
	"long":     true,
	"short":    true,
	"void":     true,
	"volatile": true,
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "continue": true, "class": true, "catch": true,
	"do": true, "default": true, "def": true, "else": true, "enum": true,
	"extends": true, "for": true, "false": true, "if": true, "import": true,
	"new": true, "private": true, "public": true, "protected": true,
	"return": true, "static": true, "struct": true, "switch": true,
	"super": true, "this": true, "try": true, "while": true,
}

// LookupIdent classifies a word. Type keywords win over reserved words.
func LookupIdent(ident string) TokenType {
	if typeKeywords[ident] {
		return TokenTypeLiteral
	}
	if reservedWords[ident] {
		return TokenReserved
	}
	return TokenIdent
}
