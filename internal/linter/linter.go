package linter

import (
	"strings"
	"unicode"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
)

// Linter performs style and best-practice checks on an AST program.
// It reports warnings (never errors) using the diagnostic system.
type Linter struct {
	prog    *ast.Program
	diag    *diagnostic.Diagnostics
	classes map[string]*ast.ClassDecl
}

// Lint runs all lint rules on the given program and returns diagnostics.
// It does not require the program to be semantically valid.
func Lint(prog *ast.Program) *diagnostic.Diagnostics {
	l := &Linter{
		prog:    prog,
		diag:    diagnostic.New(),
		classes: make(map[string]*ast.ClassDecl),
	}
	for _, cls := range prog.Classes {
		if _, exists := l.classes[cls.Name]; !exists {
			l.classes[cls.Name] = cls
		}
	}

	for _, cls := range prog.Classes {
		l.lintClass(cls)
	}
	return l.diag
}

func (l *Linter) lintClass(cls *ast.ClassDecl) {
	l.checkClassNaming(cls.Name, cls.Line, cls.Column)
	fields := l.fieldNames(cls)

	for _, m := range cls.Methods {
		if m.Body == nil {
			continue
		}
		qualified := cls.Name + "." + m.Name
		if !m.IsMain {
			l.checkMethodNaming(m.Name, m.Line, m.Column)
			l.checkEmptyMethodBody(qualified, m.Body, m.Line, m.Column)
		}

		usedNames := l.collectUsedNames(m.Body.Statements)
		if !m.IsMain {
			l.checkUnusedParams(qualified, m.Params, usedNames)
		}
		for _, p := range m.Params {
			l.checkShadowsField(cls.Name, p.Name, fields, p.Line, p.Column)
		}
		l.walkDecls(m.Body.Statements, func(d *ast.Declarator) {
			if !usedNames[d.Name] {
				l.diag.Warningf(d.Line, d.Column,
					"variable '%s' is declared but never used", d.Name)
			}
			l.checkShadowsField(cls.Name, d.Name, fields, d.Line, d.Column)
		})
	}
}

// --- Lint rules ---

// checkEmptyMethodBody warns if a method body has no statements.
func (l *Linter) checkEmptyMethodBody(name string, body *ast.Block, line, col int) {
	if len(body.Statements) == 0 {
		l.diag.Warningf(line, col, "method '%s' has an empty body", name)
	}
}

// checkMethodNaming warns if a method name is not camelCase.
func (l *Linter) checkMethodNaming(name string, line, col int) {
	if !isCamelCase(name) {
		l.diag.Warningf(line, col,
			"method '%s' should use camelCase naming", name)
	}
}

// checkClassNaming warns if a class name is not PascalCase.
func (l *Linter) checkClassNaming(name string, line, col int) {
	if !isPascalCase(name) {
		l.diag.Warningf(line, col,
			"class '%s' should use PascalCase naming", name)
	}
}

// checkUnusedParams warns about method parameters that are never read in the body.
func (l *Linter) checkUnusedParams(scopeName string, params []*ast.Param, usedNames map[string]bool) {
	for _, p := range params {
		if !usedNames[p.Name] {
			l.diag.Warningf(p.Line, p.Column,
				"parameter '%s' in '%s' is never used", p.Name, scopeName)
		}
	}
}

// checkShadowsField warns when a local or parameter hides a field of the
// enclosing class.
func (l *Linter) checkShadowsField(className, name string, fields map[string]string, line, col int) {
	owner, ok := fields[name]
	if !ok {
		return
	}
	if owner == className {
		l.diag.WarningWithHint(line, col, "'"+name+"' shadows a field of '"+className+"'",
			"use this."+name+" to refer to the field")
		return
	}
	l.diag.WarningWithHint(line, col, "'"+name+"' shadows a field inherited from '"+owner+"'",
		"use this."+name+" to refer to the field")
}

// --- Name collection helpers ---

// fieldNames maps every field visible in cls, own and inherited, to its
// declaring class. Own fields hide inherited ones.
func (l *Linter) fieldNames(cls *ast.ClassDecl) map[string]string {
	fields := make(map[string]string)
	visited := make(map[string]bool)
	for cur := cls; cur != nil && !visited[cur.Name]; cur = l.classes[cur.Super] {
		visited[cur.Name] = true
		for _, decl := range cur.Fields {
			for _, d := range decl.Declarators {
				if _, exists := fields[d.Name]; !exists {
					fields[d.Name] = cur.Name
				}
			}
		}
	}
	return fields
}

// walkDecls calls fn for every local declarator in stmts, nested blocks
// and loop headers included.
func (l *Linter) walkDecls(stmts []ast.Statement, fn func(*ast.Declarator)) {
	for _, stmt := range stmts {
		l.walkDeclsInStmt(stmt, fn)
	}
}

func (l *Linter) walkDeclsInStmt(stmt ast.Statement, fn func(*ast.Declarator)) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		for _, d := range s.Declarators {
			fn(d)
		}
	case *ast.Block:
		l.walkDecls(s.Statements, fn)
	case *ast.IfStmt:
		l.walkDeclsInStmt(s.Then, fn)
		if s.Else != nil {
			l.walkDeclsInStmt(s.Else, fn)
		}
	case *ast.WhileStmt:
		l.walkDeclsInStmt(s.Body, fn)
	case *ast.ForStmt:
		if s.Init != nil {
			l.walkDeclsInStmt(s.Init, fn)
		}
		l.walkDeclsInStmt(s.Body, fn)
	}
}

// collectUsedNames walks all expressions in a slice of statements and collects
// all identifier names that are read (referenced). This is used to detect
// unused variables and parameters.
func (l *Linter) collectUsedNames(stmts []ast.Statement) map[string]bool {
	used := make(map[string]bool)
	for _, stmt := range stmts {
		l.collectUsedNamesFromStmt(stmt, used)
	}
	return used
}

func (l *Linter) collectUsedNamesFromStmt(stmt ast.Statement, used map[string]bool) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.VarDecl:
		// The initializers read names, but the declared names are not reads
		for _, d := range s.Declarators {
			l.collectUsedNamesFromExpr(d.Init, used)
		}
	case *ast.ReturnStmt:
		l.collectUsedNamesFromExpr(s.Value, used)
	case *ast.IfStmt:
		l.collectUsedNamesFromExpr(s.Condition, used)
		l.collectUsedNamesFromStmt(s.Then, used)
		l.collectUsedNamesFromStmt(s.Else, used)
	case *ast.WhileStmt:
		l.collectUsedNamesFromExpr(s.Condition, used)
		l.collectUsedNamesFromStmt(s.Body, used)
	case *ast.ForStmt:
		l.collectUsedNamesFromStmt(s.Init, used)
		l.collectUsedNamesFromExpr(s.Condition, used)
		l.collectUsedNamesFromExpr(s.Post, used)
		l.collectUsedNamesFromStmt(s.Body, used)
	case *ast.AssertStmt:
		l.collectUsedNamesFromExpr(s.Condition, used)
	case *ast.PrintStmt:
		for _, arg := range s.Args {
			l.collectUsedNamesFromExpr(arg, used)
		}
	case *ast.ExprStmt:
		l.collectUsedNamesFromExpr(s.Expr, used)
	case *ast.Block:
		for _, inner := range s.Statements {
			l.collectUsedNamesFromStmt(inner, used)
		}
	}
}

func (l *Linter) collectUsedNamesFromExpr(expr ast.Expression, used map[string]bool) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		used[e.Name] = true
	case *ast.AssignExpr:
		// A bare name on the left is a write. The base of a field or
		// element target is still read.
		switch target := e.Target.(type) {
		case *ast.Identifier:
		case *ast.FieldAccessExpr:
			l.collectUsedNamesFromExpr(target.Object, used)
		default:
			l.collectUsedNamesFromExpr(target, used)
		}
		l.collectUsedNamesFromExpr(e.Value, used)
	case *ast.BinaryExpr:
		l.collectUsedNamesFromExpr(e.Left, used)
		l.collectUsedNamesFromExpr(e.Right, used)
	case *ast.UnaryExpr:
		l.collectUsedNamesFromExpr(e.Operand, used)
	case *ast.MethodCallExpr:
		l.collectUsedNamesFromExpr(e.Object, used)
		for _, arg := range e.Args {
			l.collectUsedNamesFromExpr(arg, used)
		}
	case *ast.FieldAccessExpr:
		l.collectUsedNamesFromExpr(e.Object, used)
	case *ast.LengthExpr:
		l.collectUsedNamesFromExpr(e.Object, used)
	case *ast.IndexExpr:
		l.collectUsedNamesFromExpr(e.Array, used)
		l.collectUsedNamesFromExpr(e.Index, used)
	case *ast.NewArrayExpr:
		l.collectUsedNamesFromExpr(e.Size, used)
	case *ast.ArrayLit:
		for _, elem := range e.Elements {
			l.collectUsedNamesFromExpr(elem, used)
		}
	}
}

// --- Naming convention helpers ---

// isCamelCase returns true if the name starts with a lowercase letter and
// contains no underscores.
func isCamelCase(name string) bool {
	if len(name) == 0 {
		return false
	}
	runes := []rune(name)
	if !unicode.IsLower(runes[0]) {
		return false
	}
	return !strings.ContainsRune(name, '_')
}

// isPascalCase returns true if the name starts with an uppercase letter
// and contains no underscores.
func isPascalCase(name string) bool {
	if len(name) == 0 {
		return false
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return !strings.ContainsRune(name, '_')
}
