package translator

import "strings"

// Parser pulls tokens from a TokenSource on demand and builds an AST.
//
// Grammar:
//
//	program    = body EOF
//	body       = line*
//	line       = statement ";" | expression ";" | if | while | for | COMMENT
//	statement  = IDENTIFIER "=" expression | "return" [expression] | "break"
//	if         = "if" expression body ["else" body] "end"
//	while      = "while" expression body "end"
//	for        = "for" IDENTIFIER "=" expression ":" expression [":" expression] body "end"
//	expression = equality
//	equality   = relational ("==" relational)*
//	relational = additive (("<" | ">" | "<=" | ">=") additive)*
//	additive   = term (("+" | "-") term)*
//	term       = unary (("*" | "/") unary)*
//	unary      = "-" unary | primary
//	primary    = NUMBER | STRING | IDENTIFIER | "(" expression ")"
//	           | "disp" "(" expression ")" | "mod" "(" expression "," expression ")"
type Parser struct {
	src         TokenSource
	buf         []Token // lookahead, filled lazily from src
	sourceLines []string
}

func NewParser(src TokenSource, rawSource string) *Parser {
	return &Parser{src: src, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError builds a SyntaxError for tok with the source line it appears on.
func (p *Parser) fmtError(tok Token, expected string) error {
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return &SyntaxError{Tok: tok, Expected: expected, Snippet: snippet}
}

// peekAt returns the token at the given offset from the current position.
func (p *Parser) peekAt(offset int) Token {
	for len(p.buf) <= offset {
		p.buf = append(p.buf, p.src.Next())
	}
	return p.buf[offset]
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	return p.peekAt(1)
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Type != EOF {
		p.buf = p.buf[1:]
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, p.fmtError(tok, tt.String())
	}
	return p.advance(), nil
}

// ParseProgram parses the whole input. It stops at the first syntax error.
func (p *Parser) ParseProgram() (*Program, error) {
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return &Program{Body: body}, nil
}

// parseBody collects lines until END, ELSE or EOF, none of which it consumes.
func (p *Parser) parseBody() ([]Stmt, error) {
	stmts := []Stmt{}
	for {
		switch p.peek().Type {
		case END, ELSE, EOF:
			return stmts, nil
		}
		stmt, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseLine dispatches to the correct sub-parser based on the leading token.
func (p *Parser) parseLine() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {

	case COMMENT:
		p.advance()
		text := strings.TrimSuffix(strings.TrimPrefix(tok.Lexeme, "%"), "\r")
		return &Comment{Text: text, Line: tok.Line}, nil

	case IF:
		return p.parseIf()

	case WHILE:
		return p.parseWhile()

	case FOR:
		return p.parseFor()

	case RETURN:
		p.advance()
		ret := &ReturnStmt{Line: tok.Line}
		if p.peek().Type != SEMICOLON {
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			ret.Value = val
		}
		return p.terminated(ret)

	case BREAK:
		p.advance()
		return p.terminated(&BreakStmt{Line: tok.Line})

	case IDENTIFIER:
		if p.peekNext().Type == ASSIGN {
			p.advance() // name
			p.advance() // =
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return p.terminated(&Assign{Name: tok.Lexeme, Value: val, Line: tok.Line})
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return p.terminated(&ExprStmt{Expr: expr, Line: tok.Line})
}

// terminated consumes the ';' that ends a simple line.
func (p *Parser) terminated(s Stmt) (Stmt, error) {
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return s, nil
}

// parseIf parses if cond body [else body] end
func (p *Parser) parseIf() (Stmt, error) {
	ifTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Cond: cond, Body: body, Line: ifTok.Line}
	if p.peek().Type == ELSE {
		p.advance()
		stmt.Else, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(END); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseWhile parses while cond body end
func (p *Parser) parseWhile() (Stmt, error) {
	whileTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(END); err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body, Line: whileTok.Line}, nil
}

// parseFor parses for id = start:stop body end and for id = start:step:stop body end
func (p *Parser) parseFor() (Stmt, error) {
	forTok := p.advance()
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}

	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	stop, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var step Expr
	if p.peek().Type == COLON {
		p.advance()
		step = stop
		stop, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(END); err != nil {
		return nil, err
	}
	return &ForStmt{Var: nameTok.Lexeme, Start: start, Step: step, Stop: stop, Body: body, Line: forTok.Line}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseEquality()
}

// parseBinary parses next (op next)* for any op in ops, left-associative.
func (p *Parser) parseBinary(next func() (Expr, error), ops ...TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for matches(p.peek().Type, ops) {
		op := p.advance().Type
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func matches(tt TokenType, set []TokenType) bool {
	for _, s := range set {
		if tt == s {
			return true
		}
	}
	return false
}

// parseEquality handles ==
func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinary(p.parseRelational, EQUALS)
}

// parseRelational handles < > <= >=
func (p *Parser) parseRelational() (Expr, error) {
	return p.parseBinary(p.parseAdditive, LESS, GREATER, LESS_EQ, GREATER_EQ)
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	return p.parseBinary(p.parseTerm, PLUS, MINUS)
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Expr, error) {
	return p.parseBinary(p.parseUnary, STAR, SLASH)
}

// parseUnary handles prefix minus.
func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Right: right}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER, STRING:
		p.advance()
		return &Literal{Kind: tok.Type, Text: tok.Lexeme}, nil

	case IDENTIFIER:
		p.advance()
		return &Identifier{Name: tok.Lexeme}, nil

	case LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return &GroupExpr{Inner: inner}, nil

	case DISP:
		p.advance()
		args, err := p.parseCallArgs(1)
		if err != nil {
			return nil, err
		}
		return &CallExpr{Builtin: DISP, Args: args}, nil

	case MOD:
		p.advance()
		args, err := p.parseCallArgs(2)
		if err != nil {
			return nil, err
		}
		return &CallExpr{Builtin: MOD, Args: args}, nil
	}

	return nil, p.fmtError(tok, "expression")
}

// parseCallArgs parses "(" expr ("," expr)* ")" with exactly n arguments.
func (p *Parser) parseCallArgs(n int) ([]Expr, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	args := make([]Expr, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if _, err := p.expect(COMMA); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// Parse parses an already lexed token slice.
func Parse(tokens []Token, rawSource string) (*Program, error) {
	return NewParser(&tokenSlice{tokens: tokens}, rawSource).ParseProgram()
}
