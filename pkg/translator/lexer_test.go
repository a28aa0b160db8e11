package translator

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []Token
		wantDiags []*LexicalError
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1, Col: 1},
			},
		},
		{
			name:  "Operators and Punctuation",
			input: "+ - * / = == < > <= >= ( ) , ; :",
			expected: []Token{
				{Type: PLUS, Lexeme: "+", Line: 1, Col: 1},
				{Type: MINUS, Lexeme: "-", Line: 1, Col: 3},
				{Type: STAR, Lexeme: "*", Line: 1, Col: 5},
				{Type: SLASH, Lexeme: "/", Line: 1, Col: 7},
				{Type: ASSIGN, Lexeme: "=", Line: 1, Col: 9},
				{Type: EQUALS, Lexeme: "==", Line: 1, Col: 11},
				{Type: LESS, Lexeme: "<", Line: 1, Col: 14},
				{Type: GREATER, Lexeme: ">", Line: 1, Col: 16},
				{Type: LESS_EQ, Lexeme: "<=", Line: 1, Col: 18},
				{Type: GREATER_EQ, Lexeme: ">=", Line: 1, Col: 21},
				{Type: LPAREN, Lexeme: "(", Line: 1, Col: 24},
				{Type: RPAREN, Lexeme: ")", Line: 1, Col: 26},
				{Type: COMMA, Lexeme: ",", Line: 1, Col: 28},
				{Type: SEMICOLON, Lexeme: ";", Line: 1, Col: 30},
				{Type: COLON, Lexeme: ":", Line: 1, Col: 32},
				{Type: EOF, Lexeme: "", Line: 1, Col: 33},
			},
		},
		{
			name:  "Keywords and Identifiers",
			input: "if else for end while disp mod return break iffy end_x",
			expected: []Token{
				{Type: IF, Lexeme: "if", Line: 1, Col: 1},
				{Type: ELSE, Lexeme: "else", Line: 1, Col: 4},
				{Type: FOR, Lexeme: "for", Line: 1, Col: 9},
				{Type: END, Lexeme: "end", Line: 1, Col: 13},
				{Type: WHILE, Lexeme: "while", Line: 1, Col: 17},
				{Type: DISP, Lexeme: "disp", Line: 1, Col: 23},
				{Type: MOD, Lexeme: "mod", Line: 1, Col: 28},
				{Type: RETURN, Lexeme: "return", Line: 1, Col: 32},
				{Type: BREAK, Lexeme: "break", Line: 1, Col: 39},
				{Type: IDENTIFIER, Lexeme: "iffy", Line: 1, Col: 45},
				{Type: IDENTIFIER, Lexeme: "end_x", Line: 1, Col: 50},
				{Type: EOF, Lexeme: "", Line: 1, Col: 55},
			},
		},
		{
			name:  "Numbers",
			input: "12 3.5 7. 0.25",
			expected: []Token{
				{Type: NUMBER, Lexeme: "12", Line: 1, Col: 1},
				{Type: NUMBER, Lexeme: "3.5", Line: 1, Col: 4},
				{Type: NUMBER, Lexeme: "7", Line: 1, Col: 8},
				{Type: NUMBER, Lexeme: "0.25", Line: 1, Col: 11},
				{Type: EOF, Lexeme: "", Line: 1, Col: 15},
			},
			wantDiags: []*LexicalError{
				{Char: '.', Line: 1, Col: 9},
			},
		},
		{
			name:  "String and Comment across lines",
			input: "disp(\"hi there\"); % note\nx = 1;",
			expected: []Token{
				{Type: DISP, Lexeme: "disp", Line: 1, Col: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1, Col: 5},
				{Type: STRING, Lexeme: "\"hi there\"", Line: 1, Col: 6},
				{Type: RPAREN, Lexeme: ")", Line: 1, Col: 16},
				{Type: SEMICOLON, Lexeme: ";", Line: 1, Col: 17},
				{Type: COMMENT, Lexeme: "% note", Line: 1, Col: 19},
				{Type: IDENTIFIER, Lexeme: "x", Line: 2, Col: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 2, Col: 3},
				{Type: NUMBER, Lexeme: "1", Line: 2, Col: 5},
				{Type: SEMICOLON, Lexeme: ";", Line: 2, Col: 6},
				{Type: EOF, Lexeme: "", Line: 2, Col: 7},
			},
		},
		{
			name:  "Unterminated String",
			input: "\"abc\nx",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "abc", Line: 1, Col: 2},
				{Type: IDENTIFIER, Lexeme: "x", Line: 2, Col: 1},
				{Type: EOF, Lexeme: "", Line: 2, Col: 2},
			},
			wantDiags: []*LexicalError{
				{Char: '"', Line: 1, Col: 1},
			},
		},
		{
			name:  "Illegal Characters",
			input: "a = 1 $ + @2;",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "a", Line: 1, Col: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 1, Col: 3},
				{Type: NUMBER, Lexeme: "1", Line: 1, Col: 5},
				{Type: PLUS, Lexeme: "+", Line: 1, Col: 9},
				{Type: NUMBER, Lexeme: "2", Line: 1, Col: 12},
				{Type: SEMICOLON, Lexeme: ";", Line: 1, Col: 13},
				{Type: EOF, Lexeme: "", Line: 1, Col: 14},
			},
			wantDiags: []*LexicalError{
				{Char: '$', Line: 1, Col: 7},
				{Char: '@', Line: 1, Col: 11},
			},
		},
		{
			name:  "Comment runs to end of line only",
			input: "%a % b\r\nend",
			expected: []Token{
				{Type: COMMENT, Lexeme: "%a % b\r", Line: 1, Col: 1},
				{Type: END, Lexeme: "end", Line: 2, Col: 1},
				{Type: EOF, Lexeme: "", Line: 2, Col: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Lex(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex() tokens mismatch\ngot:  %v\nwant: %v", got, tt.expected)
			}
			if len(diags) != len(tt.wantDiags) {
				t.Fatalf("Lex() diagnostics = %v, want %v", diags, tt.wantDiags)
			}
			for i := range diags {
				if *diags[i] != *tt.wantDiags[i] {
					t.Errorf("diagnostic %d = %v, want %v", i, diags[i], tt.wantDiags[i])
				}
			}
		})
	}
}

func TestLexer_NextAfterEOF(t *testing.T) {
	l := NewLexer("x")
	if tok := l.Next(); tok.Type != IDENTIFIER {
		t.Fatalf("first token = %v, want IDENTIFIER", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != EOF {
			t.Errorf("call %d after input: got %v, want EOF", i, tok)
		}
	}
}

func TestLexer_LongestMatchFirst(t *testing.T) {
	// "<==" is "<=" followed by "=", never "<" followed by "==".
	got, _ := Lex("a<==b")
	want := []TokenType{IDENTIFIER, LESS_EQ, ASSIGN, IDENTIFIER, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, got[i].Type, tt)
		}
	}
}

func TestTokenType_Class(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want TokenClass
	}{
		{EOF, ClassEOF},
		{NUMBER, ClassNumber},
		{IDENTIFIER, ClassIdentifier},
		{STRING, ClassString},
		{COMMENT, ClassComment},
		{IF, ClassKeyword},
		{BREAK, ClassKeyword},
		{DISP, ClassKeyword},
		{LPAREN, ClassPunctuation},
		{COLON, ClassPunctuation},
		{PLUS, ClassOperator},
		{ASSIGN, ClassOperator},
		{GREATER_EQ, ClassOperator},
	}
	for _, tc := range tests {
		if got := tc.tt.Class(); got != tc.want {
			t.Errorf("%s.Class() = %s, want %s", tc.tt, got, tc.want)
		}
	}
}

func TestTokenType_String(t *testing.T) {
	if got := LESS_EQ.String(); got != "LESS_EQ" {
		t.Errorf("LESS_EQ.String() = %q", got)
	}
	if got := TokenType(999).String(); got != "TokenType(999)" {
		t.Errorf("TokenType(999).String() = %q", got)
	}
}
