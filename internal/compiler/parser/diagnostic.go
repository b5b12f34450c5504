package parser

import "fmt"

// Diagnostic is a syntax or semantic error found while parsing. The first
// diagnostic aborts the parse.
type Diagnostic struct {
	Line    int
	Message string
	// AtEOF is set when the parser had already run out of tokens, which
	// usually means the input is incomplete rather than wrong.
	AtEOF bool
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Error at line %d: %s", d.Line, d.Message)
}
