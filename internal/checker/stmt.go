package checker

import (
	"fmt"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
)

func (c *Checker) checkStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		c.checkStatement(stmt)
	}
}

func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(s)
	case *ast.Block:
		c.syms.WithScope(func() {
			c.checkStatements(s.Statements)
		})
	case *ast.ExprStmt:
		c.checkExpression(s.Expr)
	case *ast.IfStmt:
		c.checkCondition(s.Condition, "if")
		c.checkStatement(s.Then)
		if s.Else != nil {
			c.checkStatement(s.Else)
		}
	case *ast.WhileStmt:
		c.checkCondition(s.Condition, "while")
		c.inLoop(func() { c.checkStatement(s.Body) })
	case *ast.ForStmt:
		c.checkForStmt(s)
	case *ast.AssertStmt:
		c.checkCondition(s.Condition, "assert")
	case *ast.PrintStmt:
		c.checkPrintStmt(s)
	case *ast.BreakStmt:
		if c.loopDepth == 0 {
			c.diag.Report(diagnostic.BreakOutsideLoop, s.Line, s.Column,
				"Break statement must be inside a loop")
		}
	case *ast.ReturnStmt:
		c.checkReturnStmt(s)
	default:
		panic(fmt.Sprintf("checker: unexpected statement node %T", stmt))
	}
}

// checkVarDecl resolves the declared type, checks each initializer and
// then declares the name, so an initializer never sees its own variable.
func (c *Checker) checkVarDecl(decl *ast.VarDecl) {
	typ := resolveVarOrReport(c.reg, c.diag, decl.Type)
	for _, d := range decl.Declarators {
		if d.Init != nil {
			c.checkInitializer(d, typ)
		}
		sym := &Symbol{Name: d.Name, Type: typ, Kind: SymLocal, Line: d.Line, Column: d.Column}
		c.declare(sym)
		c.out.Locals[d] = sym
	}
}

// checkInitializer checks d's initializer against the declared type
func (c *Checker) checkInitializer(d *ast.Declarator, declared *Type) {
	if lit, ok := d.Init.(*ast.ArrayLit); ok {
		c.checkArrayInit(lit, declared)
		return
	}
	valueType := c.checkExpression(d.Init)
	if !c.reg.IsAssignable(declared, valueType) {
		line, col := d.Init.Pos()
		c.diag.Report(diagnostic.TypeMismatch, line, col,
			"Cannot assign %s to %s", valueType, declared)
	}
}

// checkArrayInit checks an initializer list. An empty list initializes
// any array; otherwise the elements must be constants of one type.
func (c *Checker) checkArrayInit(lit *ast.ArrayLit, declared *Type) {
	if declared.IsError() {
		c.arrayLitType(lit)
		c.storeExprType(lit, TypeError)
		return
	}
	if !declared.IsArray() {
		c.arrayLitType(lit)
		c.diag.Report(diagnostic.TypeMismatch, lit.Line, lit.Column,
			"Cannot initialize %s with an initializer list", declared)
		c.storeExprType(lit, TypeError)
		return
	}
	if len(lit.Elements) == 0 {
		c.storeExprType(lit, declared)
		return
	}
	litType := c.checkArrayLit(lit)
	if !c.reg.IsAssignable(declared, litType) {
		c.diag.Report(diagnostic.TypeMismatch, lit.Line, lit.Column,
			"Cannot assign %s to %s", litType, declared)
	}
}

// checkCondition requires a boolean controlling expression
func (c *Checker) checkCondition(cond ast.Expression, stmt string) {
	t := c.checkExpression(cond)
	if t.IsError() || t.Kind == KindBoolean {
		return
	}
	line, col := cond.Pos()
	c.diag.Report(diagnostic.ConditionTypeMismatch, line, col,
		"%s condition must be boolean, got %s", stmt, t)
}

// inLoop runs fn with the loop depth raised by one
func (c *Checker) inLoop(fn func()) {
	c.loopDepth++
	defer func() { c.loopDepth-- }()
	fn()
}

// checkForStmt checks a for loop. Its declaration scope spans the whole
// loop.
func (c *Checker) checkForStmt(s *ast.ForStmt) {
	c.syms.WithScope(func() {
		if s.Init != nil {
			c.checkStatement(s.Init)
		}
		if s.Condition != nil {
			c.checkCondition(s.Condition, "for")
		}
		if s.Post != nil {
			c.checkExpression(s.Post)
		}
		c.inLoop(func() { c.checkStatement(s.Body) })
	})
}

func (c *Checker) checkPrintStmt(s *ast.PrintStmt) {
	for _, arg := range s.Args {
		t := c.checkExpression(arg)
		if t.Kind == KindVoid {
			line, col := arg.Pos()
			c.diag.Report(diagnostic.InvalidPrintArgument, line, col,
				"cannot print a value of type void")
		}
	}
}

// checkReturnStmt matches the returned value against the enclosing
// method's return type. main is a void method.
func (c *Checker) checkReturnStmt(s *ast.ReturnStmt) {
	want := c.method.ReturnType

	if s.Value == nil {
		if want.Kind != KindVoid && !want.IsError() {
			c.diag.Report(diagnostic.ReturnTypeMismatch, s.Line, s.Column,
				"method '%s' must return a value of type %s", c.method.Name, want)
		}
		return
	}

	got := c.checkExpression(s.Value)
	if want.Kind == KindVoid {
		c.diag.Report(diagnostic.ReturnTypeMismatch, s.Line, s.Column,
			"void method '%s' cannot return a value", c.method.Name)
		return
	}
	if got.Kind == KindVoid || !c.reg.IsAssignable(want, got) {
		c.diag.Report(diagnostic.ReturnTypeMismatch, s.Line, s.Column,
			"Return of %s is incompatible with %s method definition", got, want)
	}
}
