package translator

import (
	"errors"
	"fmt"
)

// LexicalError records one illegal character. The lexer skips the character
// and keeps going, so these are warnings rather than failures.
type LexicalError struct {
	Char rune
	Line int
	Col  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("line %d:%d: illegal character %q", e.Line, e.Col, e.Char)
}

// SyntaxError is a token sequence that matches no production. It is fatal
// for the whole translation unit.
type SyntaxError struct {
	Tok      Token
	Expected string // what the parser was looking for, may be empty
	Snippet  string // trimmed source line containing Tok

	// Diagnostics holds the illegal characters skipped before the failure.
	Diagnostics []*LexicalError
}

func (e *SyntaxError) Error() string {
	found := fmt.Sprintf("%s %q", e.Tok.Type.Class(), e.Tok.Lexeme)
	if e.Tok.Type == EOF {
		found = "end of input"
	}
	msg := "unexpected " + found
	if e.Expected != "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, found)
	}
	return fmt.Sprintf("line %d:%d: %s\n  |> %s", e.Tok.Line, e.Tok.Col, msg, e.Snippet)
}

// Incomplete reports whether the input simply ran out before a construct
// was closed, as opposed to containing a wrong token.
func (e *SyntaxError) Incomplete() bool {
	return e.Tok.Type == EOF
}

// IsIncomplete reports whether err is a SyntaxError caused by running out of
// input, e.g. an if without its end.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Incomplete()
}
