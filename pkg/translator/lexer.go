package translator

// reserved maps source text to its reserved TokenType. Identifier-shaped
// lexemes are looked up here after the longest identifier match; the
// two-character operators are looked up before falling back to their
// one-character prefixes.
var reserved = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"for":    FOR,
	"end":    END,
	"while":  WHILE,
	"disp":   DISP,
	"mod":    MOD,
	"return": RETURN,
	"break":  BREAK,
	"==":     EQUALS,
	"<=":     LESS_EQ,
	">=":     GREATER_EQ,
}

// single maps one-character operators and punctuation to their TokenType.
var single = map[rune]TokenType{
	'(': LPAREN,
	')': RPAREN,
	',': COMMA,
	';': SEMICOLON,
	':': COLON,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': ASSIGN,
	'<': LESS,
	'>': GREATER,
}

// TokenSource is anything the Parser can pull tokens from.
type TokenSource interface {
	Next() Token
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src       []rune
	pos       int // index of the next rune to consume
	line      int // current 1-based source line
	lineStart int // index of the first rune of the current line
	diags     []*LexicalError
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// Diagnostics returns the illegal characters skipped so far.
func (l *Lexer) Diagnostics() []*LexicalError {
	return l.diags
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.lineStart = l.pos
	}
	return r
}

func (l *Lexer) col() int {
	return l.pos - l.lineStart + 1
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIdent collects a full identifier and reclassifies reserved words.
// The first character must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col()
	start := l.pos
	for l.pos < len(l.src) && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := reserved[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

// scanNumber collects \d+(\.\d+)?. A dot is only consumed when a digit
// follows it. The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col()
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peek2()) {
		l.advance() // .
		for l.pos < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}
}

// scanString collects "..." up to the next quote on the same line. It reports
// false, consuming nothing, when the line ends first.
func (l *Lexer) scanString() (Token, bool) {
	end := l.pos + 1
	for end < len(l.src) && l.src[end] != '"' && l.src[end] != '\n' {
		end++
	}
	if end >= len(l.src) || l.src[end] != '"' {
		return Token{}, false
	}
	line, col := l.line, l.col()
	start := l.pos
	for l.pos <= end {
		l.advance()
	}
	return Token{Type: STRING, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}, true
}

// scanComment collects % up to, not including, the end of the line.
func (l *Lexer) scanComment() Token {
	line, col := l.line, l.col()
	start := l.pos
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
	return Token{Type: COMMENT, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}
}

// Next skips whitespace and returns the next Token. Illegal characters are
// recorded and skipped one at a time; once input is exhausted every call
// returns an EOF token.
func (l *Lexer) Next() Token {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{Type: EOF, Lexeme: "", Line: l.line, Col: l.col()}
		}

		ch := l.peek()
		line, col := l.line, l.col()

		switch {
		case isLetter(ch):
			return l.scanIdent()
		case isDigit(ch):
			return l.scanNumber()
		case ch == '%':
			return l.scanComment()
		case ch == '"':
			if tok, ok := l.scanString(); ok {
				return tok
			}
		default:
			if l.pos+1 < len(l.src) {
				two := string(l.src[l.pos : l.pos+2])
				if tt, ok := reserved[two]; ok {
					l.advance()
					l.advance()
					return Token{Type: tt, Lexeme: two, Line: line, Col: col}
				}
			}
			if tt, ok := single[ch]; ok {
				l.advance()
				return Token{Type: tt, Lexeme: string(ch), Line: line, Col: col}
			}
		}

		l.diags = append(l.diags, &LexicalError{Char: ch, Line: line, Col: col})
		l.advance()
	}
}

// Lex tokenises src and returns all tokens including the final EOF token,
// together with every illegal character that was skipped along the way.
func Lex(src string) ([]Token, []*LexicalError) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, l.Diagnostics()
		}
	}
}

// tokenSlice replays an already lexed token slice as a TokenSource.
type tokenSlice struct {
	tokens []Token
	pos    int
}

func (s *tokenSlice) Next() Token {
	if s.pos >= len(s.tokens) {
		if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == EOF {
			return s.tokens[n-1]
		}
		return Token{Type: EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}
