package lexer

import (
	"testing"

	"github.com/arnavsurve/tinyc/internal/compiler/token"
)

type expectedToken struct {
	typ     token.TokenType
	literal string
}

func checkTokens(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	l := NewLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Fatalf("token %d: type expected=%q, got=%q (literal %q)", i, exp.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != exp.literal {
			t.Fatalf("token %d: literal expected=%q, got=%q", i, exp.literal, tok.Literal)
		}
	}
}

func TestDeclarationTokens(t *testing.T) {
	input := `int x = 5;
float y = 2.5;
char c = 'Z';`

	checkTokens(t, input, []expectedToken{
		{token.TokenTypeLiteral, "int"},
		{token.TokenIdent, "x"},
		{token.TokenOperator, "="},
		{token.TokenInteger, "5"},
		{token.TokenOperator, ";"},
		{token.TokenTypeLiteral, "float"},
		{token.TokenIdent, "y"},
		{token.TokenOperator, "="},
		{token.TokenFloat, "2.5"},
		{token.TokenOperator, ";"},
		{token.TokenTypeLiteral, "char"},
		{token.TokenIdent, "c"},
		{token.TokenOperator, "="},
		{token.TokenChar, "Z"},
		{token.TokenOperator, ";"},
		{token.TokenEOF, "EOF"},
	})
}

func TestOperators(t *testing.T) {
	input := `== != += -= ++ -- >= <= && || %= *= /= + - * / ( ) { } ; , = < > ! & | %`

	expected := []string{
		"==", "!=", "+=", "-=", "++", "--", ">=", "<=", "&&", "||", "%=", "*=", "/=",
		"+", "-", "*", "/", "(", ")", "{", "}", ";", ",", "=", "<", ">", "!", "&", "|", "%",
	}

	var want []expectedToken
	for _, op := range expected {
		want = append(want, expectedToken{token.TokenOperator, op})
	}
	want = append(want, expectedToken{token.TokenEOF, "EOF"})
	checkTokens(t, input, want)
}

func TestAdjacentOperators(t *testing.T) {
	// "+++" is "++" then "+"; "a<=-b" keeps the minus separate.
	checkTokens(t, "a+++b<=-c", []expectedToken{
		{token.TokenIdent, "a"},
		{token.TokenOperator, "++"},
		{token.TokenOperator, "+"},
		{token.TokenIdent, "b"},
		{token.TokenOperator, "<="},
		{token.TokenOperator, "-"},
		{token.TokenIdent, "c"},
		{token.TokenEOF, "EOF"},
	})
}

func TestKeywordClassification(t *testing.T) {
	tests := []struct {
		word string
		typ  token.TokenType
	}{
		{"int", token.TokenTypeLiteral},
		{"void", token.TokenTypeLiteral},
		{"volatile", token.TokenTypeLiteral},
		{"if", token.TokenReserved},
		{"while", token.TokenReserved},
		{"return", token.TokenReserved},
		{"false", token.TokenReserved},
		{"integer", token.TokenIdent},
		{"_tmp1", token.TokenIdent},
	}

	for _, tt := range tests {
		tok := NewLexer(tt.word).NextToken()
		if tok.Type != tt.typ {
			t.Errorf("%q: type expected=%q, got=%q", tt.word, tt.typ, tok.Type)
		}
	}
}

func TestNumericValues(t *testing.T) {
	l := NewLexer("42 3.75 7.")

	tok := l.NextToken()
	if tok.Type != token.TokenInteger || tok.IntValue != 42 {
		t.Fatalf("expected INTEGER 42, got %s", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.TokenFloat || tok.FloatValue != 3.75 {
		t.Fatalf("expected FLOAT 3.75, got %s", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.TokenFloat || tok.FloatValue != 7 {
		t.Fatalf("expected FLOAT 7., got %s", tok)
	}
}

func TestIntegerLiteralsWrapToInt32(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2147483647", 2147483647},
		{"2147483648", -2147483648},
		{"4294967296", 0},
		{"4294967297", 1},
		{"99999999999999999999", -1}, // saturates at 64 bits first
	}

	for _, tt := range tests {
		tok := NewLexer(tt.input).NextToken()
		if tok.Type != token.TokenInteger || tok.IntValue != tt.want {
			t.Errorf("%s: expected INTEGER value %d, got %s", tt.input, tt.want, tok)
		}
		if tok.Literal != tt.input {
			t.Errorf("%s: literal changed to %q", tt.input, tok.Literal)
		}
	}
}

func TestSecondDecimalPointEndsNumber(t *testing.T) {
	// The second '.' starts a new token, and '.' alone is not lexable.
	l := NewLexer("1.2.3")

	tok := l.NextToken()
	if tok.Type != token.TokenFloat || tok.Literal != "1.2" {
		t.Fatalf("expected FLOAT 1.2, got %s", tok)
	}
	if tok = l.NextToken(); tok.Type != token.TokenEOF {
		t.Fatalf("expected EOF after stray '.', got %s", tok)
	}
	ch, _, ok := l.Stray()
	if !ok || ch != '.' {
		t.Errorf("expected stray '.', got %q (ok=%v)", ch, ok)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `// leading comment
int /* inline */ a; /* multi
line */ a = 1; // trailing`

	checkTokens(t, input, []expectedToken{
		{token.TokenTypeLiteral, "int"},
		{token.TokenIdent, "a"},
		{token.TokenOperator, ";"},
		{token.TokenIdent, "a"},
		{token.TokenOperator, "="},
		{token.TokenInteger, "1"},
		{token.TokenOperator, ";"},
		{token.TokenEOF, "EOF"},
	})
}

func TestUnterminatedBlockCommentIsEOF(t *testing.T) {
	l := NewLexer("int a; /* never closed")
	for i := 0; i < 3; i++ {
		l.NextToken()
	}
	if tok := l.NextToken(); tok.Type != token.TokenEOF {
		t.Fatalf("expected EOF, got %s", tok)
	}
	if !l.AtEOF() {
		t.Errorf("AtEOF() expected true")
	}
}

func TestStrings(t *testing.T) {
	checkTokens(t, `"hello world" x`, []expectedToken{
		{token.TokenString, "hello world"},
		{token.TokenIdent, "x"},
		{token.TokenEOF, "EOF"},
	})

	// Unterminated strings degrade to EOF.
	checkTokens(t, `x "open`, []expectedToken{
		{token.TokenIdent, "x"},
		{token.TokenEOF, "EOF"},
	})
}

func TestCharLiteralWithoutClosingQuote(t *testing.T) {
	// 'ab' : the quote and 'a' are dropped, lexing resumes at 'b'.
	checkTokens(t, "'ab' ;", []expectedToken{
		{token.TokenIdent, "b"},
		{token.TokenOperator, ";"},
		{token.TokenEOF, "EOF"},
	})
}

func TestCharLiteralValue(t *testing.T) {
	tok := NewLexer("'A'").NextToken()
	if tok.Type != token.TokenChar || tok.IntValue != 'A' {
		t.Fatalf("expected CHAR 65, got %s (value %d)", tok, tok.IntValue)
	}
}

func TestStrayCharacterHaltsStream(t *testing.T) {
	l := NewLexer("int a;\n@ int b;")
	for i := 0; i < 3; i++ {
		l.NextToken()
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.TokenEOF {
			t.Fatalf("call %d: expected EOF after stray character, got %s", i, tok)
		}
	}
	ch, line, ok := l.Stray()
	if !ok || ch != '@' || line != 2 {
		t.Errorf("Stray() expected ('@', 2, true), got (%q, %d, %v)", ch, line, ok)
	}
}

func TestLineNumbers(t *testing.T) {
	input := "int a;\n\n/* one\ntwo */\nb = 1;"
	l := NewLexer(input)

	want := []int{1, 1, 1, 5, 5, 5, 5}
	for i, line := range want {
		tok := l.NextToken()
		if tok.Line != line {
			t.Errorf("token %d (%q): line expected=%d, got=%d", i, tok.Literal, line, tok.Line)
		}
	}
}

func TestLongLiteralIsBounded(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	tok := NewLexer(string(long)).NextToken()
	if len(tok.Literal) != token.MaxLiteral {
		t.Errorf("literal length expected=%d, got=%d", token.MaxLiteral, len(tok.Literal))
	}
}
