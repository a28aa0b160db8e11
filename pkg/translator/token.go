package translator

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable name
	NUMBER     // 12 or 3.5
	STRING     // "..." (quotes kept in the lexeme)
	COMMENT    // % to end of line (the % is kept in the lexeme)

	// Keywords
	IF     // "if"
	ELSE   // "else"
	FOR    // "for"
	END    // "end"
	WHILE  // "while"
	DISP   // "disp"
	MOD    // "mod"
	RETURN // "return"
	BREAK  // "break"

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Assignment / comparison  (order matters: ASSIGN before EQUALS)
	ASSIGN     // =
	EQUALS     // ==
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	COMMENT:    "COMMENT",
	IF:         "IF",
	ELSE:       "ELSE",
	FOR:        "FOR",
	END:        "END",
	WHILE:      "WHILE",
	DISP:       "DISP",
	MOD:        "MOD",
	RETURN:     "RETURN",
	BREAK:      "BREAK",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	COLON:      "COLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	ASSIGN:     "ASSIGN",
	EQUALS:     "EQUALS",
	LESS:       "LESS",
	GREATER:    "GREATER",
	LESS_EQ:    "LESS_EQ",
	GREATER_EQ: "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// TokenClass is the coarse kind of a token.
type TokenClass int

const (
	ClassEOF TokenClass = iota
	ClassNumber
	ClassIdentifier
	ClassString
	ClassOperator
	ClassPunctuation
	ClassKeyword
	ClassComment
)

var classNames = [...]string{
	ClassEOF:         "end-of-input",
	ClassNumber:      "number",
	ClassIdentifier:  "identifier",
	ClassString:      "string",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
	ClassKeyword:     "keyword",
	ClassComment:     "comment",
}

func (c TokenClass) String() string {
	if int(c) >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("TokenClass(%d)", int(c))
}

// Class maps a TokenType onto its coarse kind.
func (tt TokenType) Class() TokenClass {
	switch {
	case tt == EOF:
		return ClassEOF
	case tt == NUMBER:
		return ClassNumber
	case tt == IDENTIFIER:
		return ClassIdentifier
	case tt == STRING:
		return ClassString
	case tt == COMMENT:
		return ClassComment
	case tt >= IF && tt <= BREAK:
		return ClassKeyword
	case tt >= LPAREN && tt <= COLON:
		return ClassPunctuation
	default:
		return ClassOperator
	}
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
	Col    int    // 1-based column of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}
