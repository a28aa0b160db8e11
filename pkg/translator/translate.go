package translator

import "errors"

// Result is a successful translation.
type Result struct {
	Output      string          // complete C++ program
	Body        []string        // top-level fragments, program order
	Program     *Program        // parsed source
	Symbols     *SymbolTable    // identifiers declared by the translation
	Diagnostics []*LexicalError // illegal characters that were skipped
}

// Translate runs the whole pipeline over src with a fresh symbol table.
// Illegal characters are skipped and reported in the Result; a syntax error
// fails the translation, no Result is returned and the characters skipped so
// far are carried on the *SyntaxError.
func Translate(src string) (*Result, error) {
	return NewSession().Translate(src)
}

// Session translates successive snippets against one symbol table, so an
// identifier declared by an earlier snippet is reassigned by later ones.
type Session struct {
	syms *SymbolTable
	body []string
}

func NewSession() *Session {
	return &Session{syms: NewSymbolTable()}
}

// Translate lexes, parses and generates src. On success the fragments are
// appended to the session body and Output holds the program emitted from
// everything translated so far. On a syntax error the session is unchanged.
func (s *Session) Translate(src string) (*Result, error) {
	lx := NewLexer(src)
	prog, err := NewParser(lx, src).ParseProgram()
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			se.Diagnostics = lx.Diagnostics()
		}
		return nil, err
	}

	// Generate into a copy so a failure leaves the session untouched.
	syms := s.syms.clone()
	body, err := Generate(prog, syms)
	if err != nil {
		return nil, err
	}
	s.syms = syms
	s.body = append(s.body, body...)

	return &Result{
		Output:      Emit(s.body),
		Body:        body,
		Program:     prog,
		Symbols:     s.syms,
		Diagnostics: lx.Diagnostics(),
	}, nil
}

// Symbols returns the session's symbol table.
func (s *Session) Symbols() *SymbolTable {
	return s.syms
}

// Program emits everything translated so far.
func (s *Session) Program() string {
	return Emit(s.body)
}

// Reset forgets all declarations and fragments.
func (s *Session) Reset() {
	s.syms = NewSymbolTable()
	s.body = nil
}
