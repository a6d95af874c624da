package checker

import (
	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
)

// Config controls how a program is checked
type Config struct {
	// Workers is the number of classes whose bodies are checked
	// concurrently. 0 and 1 check sequentially.
	Workers int
}

// Result holds the results of checking for use by later pipeline stages.
// Every map is keyed by AST node identity and each node is written once.
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Registry    *Registry
	// ExprTypes is the resolved type of every checked expression
	ExprTypes map[ast.Expression]*Type
	// Refs maps identifiers and field accesses to their declaration
	Refs map[ast.Expression]*Symbol
	// Calls maps method calls to the method they invoke
	Calls map[*ast.MethodCallExpr]*MethodDescriptor
	// Locals maps each *ast.Declarator and *ast.Param of a method body to
	// the symbol it declares
	Locals map[ast.Node]*Symbol
}

// OK reports whether the program is semantically valid
func (r *Result) OK() bool {
	return !r.Diagnostics.HasErrors()
}

func newResult(diag *diagnostic.Diagnostics, reg *Registry) *Result {
	return &Result{
		Diagnostics: diag,
		Registry:    reg,
		ExprTypes:   make(map[ast.Expression]*Type),
		Refs:        make(map[ast.Expression]*Symbol),
		Calls:       make(map[*ast.MethodCallExpr]*MethodDescriptor),
		Locals:      make(map[ast.Node]*Symbol),
	}
}

// merge copies the annotations of other into r and appends its
// diagnostics
func (r *Result) merge(other *Result) {
	r.Diagnostics.Append(other.Diagnostics)
	for k, v := range other.ExprTypes {
		r.ExprTypes[k] = v
	}
	for k, v := range other.Refs {
		r.Refs[k] = v
	}
	for k, v := range other.Calls {
		r.Calls[k] = v
	}
	for k, v := range other.Locals {
		r.Locals[k] = v
	}
}

// Checker performs semantic analysis of class bodies against a frozen
// registry
type Checker struct {
	reg  *Registry
	diag *diagnostic.Diagnostics
	syms *SymbolTable
	out  *Result

	// Context tracking
	class     *ClassDescriptor
	method    *MethodDescriptor // nil while checking field initializers
	loopDepth int
}

func newChecker(reg *Registry, out *Result) *Checker {
	return &Checker{
		reg:  reg,
		diag: out.Diagnostics,
		syms: NewSymbolTable(),
		out:  out,
	}
}

// Check performs semantic analysis on an AST program
func Check(prog *ast.Program) *diagnostic.Diagnostics {
	return CheckWithResult(prog).Diagnostics
}

// CheckWithResult performs semantic analysis and returns results for
// downstream stages
func CheckWithResult(prog *ast.Program) *Result {
	return CheckWithConfig(prog, Config{})
}

// CheckWithConfig registers every class, resolves the hierarchy, then
// checks every class body. All state is created per call.
func CheckWithConfig(prog *ast.Program, cfg Config) *Result {
	diag := diagnostic.New()
	reg := ResolveHierarchy(prog, diag)
	res := newResult(diag, reg)

	classes := bodiesToCheck(prog, reg)
	if cfg.Workers > 1 && len(classes) > 1 {
		checkParallel(reg, classes, cfg.Workers, res)
		return res
	}

	c := newChecker(reg, res)
	for _, cls := range classes {
		c.checkClass(cls)
	}
	return res
}

// bodiesToCheck returns the registered classes in declaration order.
// Redeclared classes are skipped entirely.
func bodiesToCheck(prog *ast.Program, reg *Registry) []*ClassDescriptor {
	var out []*ClassDescriptor
	for _, decl := range prog.Classes {
		if cls, ok := reg.Lookup(decl.Name); ok && cls.Decl == decl {
			out = append(out, cls)
		}
	}
	return out
}

// checkClass checks field initializers and every registered method of cls
func (c *Checker) checkClass(cls *ClassDescriptor) {
	c.class = cls
	c.method = nil
	c.syms.SetClass(cls)
	defer c.syms.SetClass(nil)

	for _, decl := range cls.Decl.Fields {
		for _, d := range decl.Declarators {
			f, ok := cls.Fields[d.Name]
			if !ok || f.Decl != d || d.Init == nil {
				continue
			}
			c.checkInitializer(d, f.Type)
		}
	}

	for _, m := range cls.Decl.Methods {
		desc := c.registeredMethod(cls, m)
		if desc == nil {
			continue
		}
		c.checkMethod(desc)
	}
}

// registeredMethod returns the descriptor created for m, or nil when m
// was a rejected redeclaration
func (c *Checker) registeredMethod(cls *ClassDescriptor, m *ast.MethodDecl) *MethodDescriptor {
	if m.IsMain {
		if cls.Main != nil && cls.Main.Decl == m {
			return cls.Main
		}
		return nil
	}
	if desc, ok := cls.Methods[m.Name]; ok && desc.Decl == m {
		return desc
	}
	return nil
}

// checkMethod declares the parameters and checks the body in one scope, so
// a local may not redeclare a parameter.
func (c *Checker) checkMethod(m *MethodDescriptor) {
	c.method = m
	c.loopDepth = 0
	defer func() { c.method = nil }()

	c.syms.WithScope(func() {
		for i, p := range m.Params {
			sym := &Symbol{Name: p.Name, Type: p.Type, Kind: SymParam, Line: p.Line, Column: p.Column}
			c.declare(sym)
			c.out.Locals[m.Decl.Params[i]] = sym
		}
		c.checkStatements(m.Body.Statements)
	})
}

// declare adds sym to the innermost scope, reporting a redeclaration
func (c *Checker) declare(sym *Symbol) {
	if prev, ok := c.syms.Declare(sym); !ok {
		c.diag.Report(diagnostic.DuplicateDeclaration, sym.Line, sym.Column,
			"'%s' already declared in this scope at line %d", sym.Name, prev.Line)
	}
}

func (c *Checker) storeExprType(expr ast.Expression, t *Type) *Type {
	c.out.ExprTypes[expr] = t
	return t
}
