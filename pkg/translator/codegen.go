package translator

import (
	"fmt"
	"strings"
)

// DeclKeyword introduces a local declaration in the generated C++.
const DeclKeyword = "auto"

const indent = "    "

// opText is the C++ spelling of each binary and unary operator.
var opText = map[TokenType]string{
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	EQUALS:     "==",
	LESS:       "<",
	GREATER:    ">",
	LESS_EQ:    "<=",
	GREATER_EQ: ">=",
}

// C++ binding strength of the rendered forms, loosest first.
const (
	precEquality = iota + 1
	precRelational
	precShift // cout << x << endl
	precAdditive
	precMultiplicative // including %
	precUnary
	precPrimary
)

func binaryPrec(op TokenType) int {
	switch op {
	case EQUALS:
		return precEquality
	case LESS, GREATER, LESS_EQ, GREATER_EQ:
		return precRelational
	case PLUS, MINUS:
		return precAdditive
	default:
		return precMultiplicative
	}
}

// exprPrec is how tightly the rendered text of e binds in C++.
func exprPrec(e Expr) int {
	switch n := e.(type) {
	case *BinaryExpr:
		return binaryPrec(n.Op)
	case *UnaryExpr:
		return precUnary
	case *CallExpr:
		if n.Builtin == DISP {
			return precShift
		}
		return precMultiplicative
	default:
		return precPrimary
	}
}

// CodeGen walks an AST and renders C++ statement fragments.
type CodeGen struct {
	syms *SymbolTable
}

func newCodeGen(syms *SymbolTable) *CodeGen {
	return &CodeGen{syms: syms}
}

// RenderExpr returns the C++ text of a single expression.
func RenderExpr(e Expr) (string, error) {
	return renderExpr(e, 0)
}

// renderExpr renders e, parenthesising it when it binds looser than
// atLeast. Parentheses are only ever added around builtin lowerings; source
// operators keep their source spelling.
func renderExpr(e Expr, atLeast int) (string, error) {
	text, err := renderBare(e)
	if err != nil {
		return "", err
	}
	if exprPrec(e) < atLeast {
		return "(" + text + ")", nil
	}
	return text, nil
}

func renderBare(e Expr) (string, error) {
	switch n := e.(type) {
	case *Literal:
		return n.Text, nil

	case *Identifier:
		return n.Name, nil

	case *GroupExpr:
		inner, err := renderExpr(n.Inner, 0)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case *UnaryExpr:
		right, err := renderExpr(n.Right, precUnary)
		if err != nil {
			return "", err
		}
		if _, nested := n.Right.(*UnaryExpr); nested {
			// "--x" would lex as a decrement
			right = "(" + right + ")"
		}
		return opText[n.Op] + right, nil

	case *BinaryExpr:
		op, ok := opText[n.Op]
		if !ok {
			return "", fmt.Errorf("unsupported binary operator %s", n.Op)
		}
		prec := binaryPrec(n.Op)
		left, err := renderExpr(n.Left, prec)
		if err != nil {
			return "", err
		}
		right, err := renderExpr(n.Right, prec+1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", left, op, right), nil

	case *CallExpr:
		return renderCall(n)
	}
	return "", fmt.Errorf("unsupported expression %T", e)
}

func renderCall(c *CallExpr) (string, error) {
	switch c.Builtin {
	case DISP:
		if len(c.Args) != 1 {
			return "", fmt.Errorf("disp expects 1 argument, got %d", len(c.Args))
		}
		arg, err := renderExpr(c.Args[0], precAdditive)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cout << %s << endl", arg), nil

	case MOD:
		if len(c.Args) != 2 {
			return "", fmt.Errorf("mod expects 2 arguments, got %d", len(c.Args))
		}
		a, err := renderExpr(c.Args[0], precMultiplicative)
		if err != nil {
			return "", err
		}
		b, err := renderExpr(c.Args[1], precUnary)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %% %s", a, b), nil
	}
	return "", fmt.Errorf("unknown builtin %s", c.Builtin)
}

// assignText applies the declaration policy: the first assignment to a name
// declares it, every later one reassigns. A for header counts as an
// assignment to its variable.
func (cg *CodeGen) assignText(name, val string, line int) string {
	if _, exists := cg.syms.Declare(name, line); exists {
		return fmt.Sprintf("%s = %s", name, val)
	}
	return fmt.Sprintf("%s %s = %s", DeclKeyword, name, val)
}

func (cg *CodeGen) genAssign(a *Assign) (string, error) {
	val, err := RenderExpr(a.Value)
	if err != nil {
		return "", err
	}
	return cg.assignText(a.Name, val, a.Line) + ";", nil
}

// genBlock writes each statement of body indented one level.
func (cg *CodeGen) genBlock(sb *strings.Builder, body []Stmt) error {
	for _, s := range body {
		frag, err := cg.genStmt(s)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(frag, "\n") {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return nil
}

func (cg *CodeGen) genFor(f *ForStmt) (string, error) {
	start, err := RenderExpr(f.Start)
	if err != nil {
		return "", err
	}
	stop, err := RenderExpr(f.Stop)
	if err != nil {
		return "", err
	}

	post := f.Var + "++"
	if f.Step != nil {
		step, err := RenderExpr(f.Step)
		if err != nil {
			return "", err
		}
		post = fmt.Sprintf("%s += %s", f.Var, step)
	}

	init := cg.assignText(f.Var, start, f.Line)

	var sb strings.Builder
	// The bound test is <= whatever the sign of the step.
	fmt.Fprintf(&sb, "for (%s; %s <= %s; %s) {\n", init, f.Var, stop, post)
	if err := cg.genBlock(&sb, f.Body); err != nil {
		return "", err
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// genStmt renders one statement. Structured statements span several lines
// joined by "\n", without a trailing newline.
func (cg *CodeGen) genStmt(s Stmt) (string, error) {
	switch n := s.(type) {

	case *Assign:
		return cg.genAssign(n)

	case *ExprStmt:
		expr, err := RenderExpr(n.Expr)
		if err != nil {
			return "", err
		}
		return expr + ";", nil

	case *ReturnStmt:
		if n.Value == nil {
			return "return;", nil
		}
		val, err := RenderExpr(n.Value)
		if err != nil {
			return "", err
		}
		return "return " + val + ";", nil

	case *BreakStmt:
		return "break;", nil

	case *Comment:
		if strings.HasSuffix(strings.TrimRight(n.Text, " \t"), "\\") {
			// a trailing backslash would splice the next line into the comment
			return "//" + n.Text + " //", nil
		}
		return "//" + n.Text, nil

	case *IfStmt:
		cond, err := RenderExpr(n.Cond)
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "if (%s) {\n", cond)
		if err := cg.genBlock(&sb, n.Body); err != nil {
			return "", err
		}
		if n.Else != nil {
			sb.WriteString("} else {\n")
			if err := cg.genBlock(&sb, n.Else); err != nil {
				return "", err
			}
		}
		sb.WriteString("}")
		return sb.String(), nil

	case *WhileStmt:
		cond, err := RenderExpr(n.Cond)
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "while (%s) {\n", cond)
		if err := cg.genBlock(&sb, n.Body); err != nil {
			return "", err
		}
		sb.WriteString("}")
		return sb.String(), nil

	case *ForStmt:
		return cg.genFor(n)
	}
	return "", fmt.Errorf("line %d: unsupported statement %T", s.Pos(), s)
}

// Generate renders the program body in program order, one fragment per
// top-level line, updating syms as assignments are lowered.
func Generate(prog *Program, syms *SymbolTable) ([]string, error) {
	cg := newCodeGen(syms)
	body := make([]string, 0, len(prog.Body))
	for _, s := range prog.Body {
		frag, err := cg.genStmt(s)
		if err != nil {
			return nil, err
		}
		body = append(body, frag)
	}
	return body, nil
}
