package translator

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// Literal is a number or string constant, kept as written.
//
//	x = 3.5;
//	    ^^^  Literal{Kind: NUMBER, Text: "3.5"}
type Literal struct {
	Kind TokenType // NUMBER or STRING
	Text string
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return l.Text }

// Identifier is a read of a named variable.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// GroupExpr is a parenthesised expression. It is kept so the source
// parentheses survive into the output.
type GroupExpr struct {
	Inner Expr
}

func (*GroupExpr) exprNode()        {}
func (g *GroupExpr) String() string { return fmt.Sprintf("Group(%s)", g.Inner) }

// UnaryExpr is -Right.
type UnaryExpr struct {
	Op    TokenType
	Right Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Right) }

// BinaryExpr represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// CallExpr is a builtin call: disp(x) or mod(a, b).
type CallExpr struct {
	Builtin TokenType // DISP or MOD
	Args    []Expr
}

func (*CallExpr) exprNode() {}
func (c *CallExpr) String() string {
	return fmt.Sprintf("Call(%s, args=%v)", c.Builtin, c.Args)
}

//  Statement nodes

// Stmt is implemented by every node that occupies a line of the body.
type Stmt interface {
	stmtNode()
	Pos() int
	String() string
}

// Assign is name = value. Whether it declares is decided at generation time.
type Assign struct {
	Name  string
	Value Expr
	Line  int
}

func (*Assign) stmtNode()        {}
func (a *Assign) Pos() int       { return a.Line }
func (a *Assign) String() string { return fmt.Sprintf("Assign(%s = %s)", a.Name, a.Value) }

// ExprStmt is an expression evaluated for its effect, e.g. disp(x);
type ExprStmt struct {
	Expr Expr
	Line int
}

func (*ExprStmt) stmtNode()        {}
func (e *ExprStmt) Pos() int       { return e.Line }
func (e *ExprStmt) String() string { return fmt.Sprintf("ExprStmt(%s)", e.Expr) }

// ReturnStmt is return [expr]. Value is nil for a bare return.
type ReturnStmt struct {
	Value Expr
	Line  int
}

func (*ReturnStmt) stmtNode()  {}
func (r *ReturnStmt) Pos() int { return r.Line }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "Return"
	}
	return fmt.Sprintf("Return(%s)", r.Value)
}

// BreakStmt leaves the innermost loop.
type BreakStmt struct {
	Line int
}

func (*BreakStmt) stmtNode()      {}
func (b *BreakStmt) Pos() int     { return b.Line }
func (*BreakStmt) String() string { return "Break" }

// Comment is a source line comment. Text excludes the leading %.
type Comment struct {
	Text string
	Line int
}

func (*Comment) stmtNode()        {}
func (c *Comment) Pos() int       { return c.Line }
func (c *Comment) String() string { return fmt.Sprintf("Comment(%q)", c.Text) }

// IfStmt is if Cond Body [else Else] end. Else is nil when the source has
// no else branch, and empty but non-nil for an empty else branch.
type IfStmt struct {
	Cond Expr
	Body []Stmt
	Else []Stmt
	Line int
}

func (*IfStmt) stmtNode()  {}
func (i *IfStmt) Pos() int { return i.Line }
func (i *IfStmt) String() string {
	if i.Else == nil {
		return fmt.Sprintf("If(%s, then=%s)", i.Cond, stmtList(i.Body))
	}
	return fmt.Sprintf("If(%s, then=%s, else=%s)", i.Cond, stmtList(i.Body), stmtList(i.Else))
}

// WhileStmt is while Cond Body end.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Line int
}

func (*WhileStmt) stmtNode()  {}
func (w *WhileStmt) Pos() int { return w.Line }
func (w *WhileStmt) String() string {
	return fmt.Sprintf("While(%s, body=%s)", w.Cond, stmtList(w.Body))
}

// ForStmt is for Var = Start:Stop or for Var = Start:Step:Stop. Step is nil
// for the unit-step form.
type ForStmt struct {
	Var   string
	Start Expr
	Step  Expr
	Stop  Expr
	Body  []Stmt
	Line  int
}

func (*ForStmt) stmtNode()  {}
func (f *ForStmt) Pos() int { return f.Line }
func (f *ForStmt) String() string {
	if f.Step == nil {
		return fmt.Sprintf("For(%s = %s:%s, body=%s)", f.Var, f.Start, f.Stop, stmtList(f.Body))
	}
	return fmt.Sprintf("For(%s = %s:%s:%s, body=%s)", f.Var, f.Start, f.Step, f.Stop, stmtList(f.Body))
}

// Program is the root node: the top-level body.
type Program struct {
	Body []Stmt
}

func (p *Program) String() string { return stmtList(p.Body) }

func stmtList(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
