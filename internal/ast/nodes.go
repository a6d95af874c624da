package ast

import "github.com/lhaig/mjc/internal/lexer"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Program represents a whole MiniJava compilation unit
type Program struct {
	Classes []*ClassDecl
}

func (p *Program) Pos() (int, int) {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return 0, 0
}

// ClassDecl represents a class declaration
type ClassDecl struct {
	Name        string
	Super       string // empty when the class has no extends clause
	SuperLine   int
	SuperColumn int
	Fields      []*VarDecl
	Methods     []*MethodDecl
	Line        int
	Column      int
}

func (c *ClassDecl) Pos() (int, int) { return c.Line, c.Column }

// MethodDecl represents a method declaration. The main method has IsMain set,
// a void ReturnType and a single String[] parameter.
type MethodDecl struct {
	Name       string
	IsMain     bool
	ReturnType *TypeRef
	Params     []*Param
	Body       *Block
	Line       int
	Column     int
}

func (m *MethodDecl) Pos() (int, int) { return m.Line, m.Column }

// Param represents a method parameter
type Param struct {
	Name   string
	Type   *TypeRef
	Line   int
	Column int
}

func (p *Param) Pos() (int, int) { return p.Line, p.Column }

// TypeRef represents a written type: a primitive keyword, String, a class
// name, or one of those followed by [].
type TypeRef struct {
	Name    string
	IsArray bool
	Line    int
	Column  int
}

func (t *TypeRef) Pos() (int, int) { return t.Line, t.Column }

func (t *TypeRef) String() string {
	if t.IsArray {
		return t.Name + "[]"
	}
	return t.Name
}

// Declarator is one name in a variable declaration, with its optional
// initializer.
type Declarator struct {
	Name   string
	Init   Expression
	Line   int
	Column int
}

func (d *Declarator) Pos() (int, int) { return d.Line, d.Column }

// VarDecl represents `type a [= init], b [= init];`. It is used for fields,
// block locals and for-loop initializers.
type VarDecl struct {
	Type        *TypeRef
	Declarators []*Declarator
	Line        int
	Column      int
}

func (v *VarDecl) Pos() (int, int) { return v.Line, v.Column }
func (v *VarDecl) stmtNode()       {}

// Block represents a compound statement
type Block struct {
	Statements []Statement
	Line       int
	Column     int
}

func (b *Block) Pos() (int, int) { return b.Line, b.Column }
func (b *Block) stmtNode()       {}

// ExprStmt represents an expression statement
type ExprStmt struct {
	Expr   Expression
	Line   int
	Column int
}

func (e *ExprStmt) Pos() (int, int) { return e.Line, e.Column }
func (e *ExprStmt) stmtNode()       {}

// IfStmt represents an if statement
type IfStmt struct {
	Condition Expression
	Then      Statement
	Else      Statement
	Line      int
	Column    int
}

func (i *IfStmt) Pos() (int, int) { return i.Line, i.Column }
func (i *IfStmt) stmtNode()       {}

// WhileStmt represents a while statement
type WhileStmt struct {
	Condition Expression
	Body      Statement
	Line      int
	Column    int
}

func (w *WhileStmt) Pos() (int, int) { return w.Line, w.Column }
func (w *WhileStmt) stmtNode()       {}

// ForStmt represents a for statement. Init is nil, a *VarDecl or an
// *ExprStmt; Condition and Post may be nil.
type ForStmt struct {
	Init      Statement
	Condition Expression
	Post      Expression
	Body      Statement
	Line      int
	Column    int
}

func (f *ForStmt) Pos() (int, int) { return f.Line, f.Column }
func (f *ForStmt) stmtNode()       {}

// AssertStmt represents an assert statement
type AssertStmt struct {
	Condition Expression
	Line      int
	Column    int
}

func (a *AssertStmt) Pos() (int, int) { return a.Line, a.Column }
func (a *AssertStmt) stmtNode()       {}

// PrintStmt represents print(e1, e2, ...)
type PrintStmt struct {
	Args   []Expression
	Line   int
	Column int
}

func (p *PrintStmt) Pos() (int, int) { return p.Line, p.Column }
func (p *PrintStmt) stmtNode()       {}

// BreakStmt represents a break statement
type BreakStmt struct {
	Line   int
	Column int
}

func (b *BreakStmt) Pos() (int, int) { return b.Line, b.Column }
func (b *BreakStmt) stmtNode()       {}

// ReturnStmt represents a return statement
type ReturnStmt struct {
	Value  Expression // nil for a bare return
	Line   int
	Column int
}

func (r *ReturnStmt) Pos() (int, int) { return r.Line, r.Column }
func (r *ReturnStmt) stmtNode()       {}

// AssignExpr represents target = value. Assignment is an expression and
// associates to the right.
type AssignExpr struct {
	Target Expression
	Value  Expression
	Line   int
	Column int
}

func (a *AssignExpr) Pos() (int, int) { return a.Line, a.Column }
func (a *AssignExpr) exprNode()       {}

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	Left   Expression
	Op     lexer.TokenType
	Right  Expression
	Line   int
	Column int
}

func (b *BinaryExpr) Pos() (int, int) { return b.Line, b.Column }
func (b *BinaryExpr) exprNode()       {}

// UnaryExpr represents a unary expression
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expression
	Line    int
	Column  int
}

func (u *UnaryExpr) Pos() (int, int) { return u.Line, u.Column }
func (u *UnaryExpr) exprNode()       {}

// MethodCallExpr represents object.method(args)
type MethodCallExpr struct {
	Object Expression
	Method string
	Args   []Expression
	Line   int
	Column int
}

func (m *MethodCallExpr) Pos() (int, int) { return m.Line, m.Column }
func (m *MethodCallExpr) exprNode()       {}

// FieldAccessExpr represents object.field
type FieldAccessExpr struct {
	Object Expression
	Field  string
	Line   int
	Column int
}

func (f *FieldAccessExpr) Pos() (int, int) { return f.Line, f.Column }
func (f *FieldAccessExpr) exprNode()       {}

// LengthExpr represents object.length
type LengthExpr struct {
	Object Expression
	Line   int
	Column int
}

func (l *LengthExpr) Pos() (int, int) { return l.Line, l.Column }
func (l *LengthExpr) exprNode()       {}

// IndexExpr represents array[index]
type IndexExpr struct {
	Array  Expression
	Index  Expression
	Line   int
	Column int
}

func (i *IndexExpr) Pos() (int, int) { return i.Line, i.Column }
func (i *IndexExpr) exprNode()       {}

// Identifier represents a bare name reference
type Identifier struct {
	Name   string
	Line   int
	Column int
}

func (i *Identifier) Pos() (int, int) { return i.Line, i.Column }
func (i *Identifier) exprNode()       {}

// IntLit represents an integer literal. Raw is the source spelling; range
// checking happens in the checker.
type IntLit struct {
	Raw    string
	Line   int
	Column int
}

func (i *IntLit) Pos() (int, int) { return i.Line, i.Column }
func (i *IntLit) exprNode()       {}

// CharLit represents a character literal, Raw including its quotes
type CharLit struct {
	Raw    string
	Line   int
	Column int
}

func (c *CharLit) Pos() (int, int) { return c.Line, c.Column }
func (c *CharLit) exprNode()       {}

// StringLit represents a string literal, Raw including its quotes
type StringLit struct {
	Raw    string
	Line   int
	Column int
}

func (s *StringLit) Pos() (int, int) { return s.Line, s.Column }
func (s *StringLit) exprNode()       {}

// BoolLit represents true or false
type BoolLit struct {
	Value  bool
	Line   int
	Column int
}

func (b *BoolLit) Pos() (int, int) { return b.Line, b.Column }
func (b *BoolLit) exprNode()       {}

// ThisExpr represents the this keyword
type ThisExpr struct {
	Line   int
	Column int
}

func (t *ThisExpr) Pos() (int, int) { return t.Line, t.Column }
func (t *ThisExpr) exprNode()       {}

// NewArrayExpr represents new int[size] or new char[size]
type NewArrayExpr struct {
	Elem   string // "int" or "char"
	Size   Expression
	Line   int
	Column int
}

func (n *NewArrayExpr) Pos() (int, int) { return n.Line, n.Column }
func (n *NewArrayExpr) exprNode()       {}

// NewObjectExpr represents new ClassName()
type NewObjectExpr struct {
	Class  string
	Line   int
	Column int
}

func (n *NewObjectExpr) Pos() (int, int) { return n.Line, n.Column }
func (n *NewObjectExpr) exprNode()       {}

// ArrayLit represents an initializer list {e1, e2, ...}. It only appears
// as a declarator initializer.
type ArrayLit struct {
	Elements []Expression
	Line     int
	Column   int
}

func (a *ArrayLit) Pos() (int, int) { return a.Line, a.Column }
func (a *ArrayLit) exprNode()       {}
