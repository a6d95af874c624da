package checker

import (
	"fmt"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
	"github.com/lhaig/mjc/internal/lexer"
)

// checkExpression infers the type of expr, records it and returns it. A
// failed check yields TypeError, which suppresses follow-on diagnostics.
func (c *Checker) checkExpression(expr ast.Expression) *Type {
	switch e := expr.(type) {
	case *ast.IntLit:
		return c.checkIntLit(e, false)
	case *ast.CharLit:
		if _, err := CharValue(e.Raw); err != nil {
			c.diag.Report(diagnostic.InvalidLiteral, e.Line, e.Column, "%v", err)
			return c.storeExprType(e, TypeError)
		}
		return c.storeExprType(e, TypeChar)
	case *ast.StringLit:
		if _, err := StringValue(e.Raw); err != nil {
			c.diag.Report(diagnostic.InvalidLiteral, e.Line, e.Column, "%v", err)
			return c.storeExprType(e, TypeError)
		}
		return c.storeExprType(e, TypeString)
	case *ast.BoolLit:
		return c.storeExprType(e, TypeBoolean)
	case *ast.ThisExpr:
		return c.checkThis(e)
	case *ast.Identifier:
		return c.checkIdentifier(e)
	case *ast.NewArrayExpr:
		return c.checkNewArray(e)
	case *ast.NewObjectExpr:
		return c.checkNewObject(e)
	case *ast.BinaryExpr:
		return c.checkBinary(e)
	case *ast.UnaryExpr:
		return c.checkUnary(e)
	case *ast.FieldAccessExpr:
		return c.checkFieldAccess(e)
	case *ast.MethodCallExpr:
		return c.checkMethodCall(e)
	case *ast.LengthExpr:
		return c.checkLength(e)
	case *ast.IndexExpr:
		return c.checkIndex(e)
	case *ast.AssignExpr:
		return c.checkAssign(e)
	case *ast.ArrayLit:
		c.diag.Report(diagnostic.TypeMismatch, e.Line, e.Column,
			"an initializer list may only initialize an array declaration")
		c.arrayLitType(e)
		return c.storeExprType(e, TypeError)
	default:
		panic(fmt.Sprintf("checker: unexpected expression node %T", expr))
	}
}

func (c *Checker) checkIntLit(lit *ast.IntLit, negated bool) *Type {
	if _, err := IntValue(lit.Raw, negated); err != nil {
		c.diag.Report(diagnostic.InvalidLiteral, lit.Line, lit.Column, "%v", err)
		return c.storeExprType(lit, TypeError)
	}
	return c.storeExprType(lit, TypeInt)
}

// inStaticContext reports whether there is no receiver object
func (c *Checker) inStaticContext() bool {
	return c.method != nil && c.method.IsMain
}

func (c *Checker) checkThis(e *ast.ThisExpr) *Type {
	if c.method == nil || c.method.IsMain {
		c.diag.Report(diagnostic.InvalidThisUsage, e.Line, e.Column,
			"'this' cannot be used outside an instance method")
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, ClassType(c.class.Name))
}

func (c *Checker) checkIdentifier(e *ast.Identifier) *Type {
	sym, ok := c.syms.Lookup(e.Name)
	if !ok {
		c.diag.Report(diagnostic.UndeclaredIdentifier, e.Line, e.Column,
			"'%s' is not defined", e.Name)
		return c.storeExprType(e, TypeError)
	}
	c.out.Refs[e] = sym
	if sym.Kind == SymField && c.inStaticContext() {
		c.diag.Report(diagnostic.InvalidThisUsage, e.Line, e.Column,
			"field '%s' cannot be referenced from a static context", e.Name)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, sym.Type)
}

func (c *Checker) checkNewArray(e *ast.NewArrayExpr) *Type {
	size := c.checkExpression(e.Size)
	if !size.IsError() && size.Kind != KindInt {
		line, col := e.Size.Pos()
		c.diag.Report(diagnostic.TypeMismatch, line, col,
			"array size must be int, got %s", size)
	}
	if e.Elem == "char" {
		return c.storeExprType(e, TypeCharArray)
	}
	return c.storeExprType(e, TypeIntArray)
}

func (c *Checker) checkNewObject(e *ast.NewObjectExpr) *Type {
	cls, ok := c.reg.Lookup(e.Class)
	if !ok {
		c.diag.Report(diagnostic.UnknownType, e.Line, e.Column, "unknown type '%s'", e.Class)
		return c.storeExprType(e, TypeError)
	}
	if cls.Cyclic {
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, ClassType(cls.Name))
}

func (c *Checker) checkBinary(e *ast.BinaryExpr) *Type {
	left := c.checkExpression(e.Left)
	right := c.checkExpression(e.Right)
	result, ok := c.reg.BinaryResult(e.Op, left, right)
	if !ok {
		c.diag.Report(diagnostic.InvalidOperandTypes, e.Line, e.Column,
			"operator '%s' cannot be applied to '%s' and '%s'", e.Op.Symbol(), left, right)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, result)
}

func (c *Checker) checkUnary(e *ast.UnaryExpr) *Type {
	var operand *Type
	if lit, ok := e.Operand.(*ast.IntLit); ok && e.Op == lexer.MINUS {
		operand = c.checkIntLit(lit, true)
	} else {
		operand = c.checkExpression(e.Operand)
	}
	result, ok := UnaryResult(e.Op, operand)
	if !ok {
		c.diag.Report(diagnostic.InvalidOperandTypes, e.Line, e.Column,
			"operator '%s' cannot be applied to '%s'", e.Op.Symbol(), operand)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, result)
}

// receiverClass resolves the class of a member access base. ok is false
// when the base is not an object; a diagnostic has been reported unless
// the base was already erroneous.
func (c *Checker) receiverClass(base *Type, member string, line, col int) (*ClassDescriptor, bool) {
	if base.IsError() {
		return nil, false
	}
	if !base.IsClass() {
		c.diag.Report(diagnostic.InvalidMemberAccess, line, col,
			"cannot access member '%s' of non-object type %s", member, base)
		return nil, false
	}
	cls, ok := c.reg.Lookup(base.Class)
	if !ok || cls.Cyclic {
		return nil, false
	}
	return cls, true
}

func (c *Checker) checkFieldAccess(e *ast.FieldAccessExpr) *Type {
	base := c.checkExpression(e.Object)
	cls, ok := c.receiverClass(base, e.Field, e.Line, e.Column)
	if !ok {
		return c.storeExprType(e, TypeError)
	}
	f, ok := cls.LookupField(e.Field)
	if !ok {
		c.diag.Report(diagnostic.UndeclaredIdentifier, e.Line, e.Column,
			"class '%s' has no field '%s'", cls.Name, e.Field)
		return c.storeExprType(e, TypeError)
	}
	c.out.Refs[e] = f.Symbol
	return c.storeExprType(e, f.Type)
}

func (c *Checker) checkMethodCall(e *ast.MethodCallExpr) *Type {
	base := c.checkExpression(e.Object)
	args := make([]*Type, len(e.Args))
	for i, arg := range e.Args {
		args[i] = c.checkExpression(arg)
	}

	cls, ok := c.receiverClass(base, e.Method, e.Line, e.Column)
	if !ok {
		return c.storeExprType(e, TypeError)
	}
	m, ok := cls.LookupMethod(e.Method)
	if !ok {
		c.diag.Report(diagnostic.UndeclaredIdentifier, e.Line, e.Column,
			"class '%s' has no method '%s'", cls.Name, e.Method)
		return c.storeExprType(e, TypeError)
	}
	c.out.Calls[e] = m

	if len(args) != len(m.Params) {
		c.diag.Report(diagnostic.ArgumentCountMismatch, e.Line, e.Column,
			"method '%s' expects %d arguments, got %d", m.Name, len(m.Params), len(args))
		return c.storeExprType(e, m.ReturnType)
	}
	for i, arg := range args {
		want := m.Params[i].Type
		if arg.Kind == KindVoid || !c.reg.IsAssignable(want, arg) {
			line, col := e.Args[i].Pos()
			c.diag.Report(diagnostic.ArgumentTypeMismatch, line, col,
				"argument %d of '%s': cannot pass %s as %s", i+1, m.Name, arg, want)
		}
	}
	return c.storeExprType(e, m.ReturnType)
}

func (c *Checker) checkLength(e *ast.LengthExpr) *Type {
	base := c.checkExpression(e.Object)
	if base.IsError() {
		return c.storeExprType(e, TypeError)
	}
	if !base.IsArray() && base.Kind != KindString {
		c.diag.Report(diagnostic.InvalidMemberAccess, e.Line, e.Column,
			"length is not defined on %s", base)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, TypeInt)
}

func (c *Checker) checkIndex(e *ast.IndexExpr) *Type {
	base := c.checkExpression(e.Array)
	index := c.checkExpression(e.Index)

	if !index.IsError() && index.Kind != KindInt {
		line, col := e.Index.Pos()
		c.diag.Report(diagnostic.IndexTypeMismatch, line, col,
			"array index must be int, got %s", index)
	}
	if base.IsError() {
		return c.storeExprType(e, TypeError)
	}
	if !base.IsArray() {
		c.diag.Report(diagnostic.InvalidIndexing, e.Line, e.Column,
			"cannot index a value of type %s", base)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, base.Elem)
}

// checkAssign checks target = value. Only variables, fields and array
// elements are assignable.
func (c *Checker) checkAssign(e *ast.AssignExpr) *Type {
	target := c.checkTarget(e.Target)
	value := c.checkExpression(e.Value)

	if value.Kind == KindVoid || !c.reg.IsAssignable(target, value) {
		c.diag.Report(diagnostic.TypeMismatch, e.Line, e.Column,
			"Cannot assign %s to %s", value, target)
		return c.storeExprType(e, TypeError)
	}
	return c.storeExprType(e, target)
}

// checkTarget types the left side of an assignment
func (c *Checker) checkTarget(target ast.Expression) *Type {
	switch t := target.(type) {
	case *ast.Identifier:
		if _, ok := c.syms.Lookup(t.Name); !ok && c.namesMethodOrClass(t.Name) {
			c.diag.Report(diagnostic.InvalidAssignmentTarget, t.Line, t.Column,
				"'%s' is not a variable", t.Name)
			return c.storeExprType(t, TypeError)
		}
		return c.checkExpression(t)
	case *ast.FieldAccessExpr:
		base := c.checkExpression(t.Object)
		if cls, ok := c.receiverClass(base, t.Field, t.Line, t.Column); ok {
			if _, isField := cls.LookupField(t.Field); !isField {
				if _, isMethod := cls.LookupMethod(t.Field); isMethod {
					c.diag.Report(diagnostic.InvalidAssignmentTarget, t.Line, t.Column,
						"cannot assign to method '%s'", t.Field)
					return c.storeExprType(t, TypeError)
				}
			}
		}
		return c.finishFieldAccess(t, base)
	case *ast.IndexExpr:
		return c.checkExpression(t)
	}

	c.checkExpression(target)
	line, col := target.Pos()
	c.diag.Report(diagnostic.InvalidAssignmentTarget, line, col,
		"left side of assignment is not assignable")
	return c.storeExprType(target, TypeError)
}

// finishFieldAccess resolves the field of an already-typed base without
// checking the base a second time.
func (c *Checker) finishFieldAccess(e *ast.FieldAccessExpr, base *Type) *Type {
	if base.IsError() || !base.IsClass() {
		// receiverClass has already reported a non-object base
		return c.storeExprType(e, TypeError)
	}
	cls, ok := c.reg.Lookup(base.Class)
	if !ok || cls.Cyclic {
		return c.storeExprType(e, TypeError)
	}
	f, ok := cls.LookupField(e.Field)
	if !ok {
		c.diag.Report(diagnostic.UndeclaredIdentifier, e.Line, e.Column,
			"class '%s' has no field '%s'", cls.Name, e.Field)
		return c.storeExprType(e, TypeError)
	}
	c.out.Refs[e] = f.Symbol
	return c.storeExprType(e, f.Type)
}

func (c *Checker) namesMethodOrClass(name string) bool {
	if c.class != nil {
		if _, ok := c.class.LookupMethod(name); ok {
			return true
		}
	}
	_, ok := c.reg.Lookup(name)
	return ok
}

// checkArrayLit types and records an initializer list
func (c *Checker) checkArrayLit(lit *ast.ArrayLit) *Type {
	return c.storeExprType(lit, c.arrayLitType(lit))
}

// arrayLitType types an initializer list from its elements, which must be
// int, char or boolean constants of a single type. The list itself is not
// recorded.
func (c *Checker) arrayLitType(lit *ast.ArrayLit) *Type {
	var elem *Type
	failed := false
	for _, el := range lit.Elements {
		t := c.checkElement(el)
		if t.IsError() {
			failed = true
			continue
		}
		if elem == nil {
			elem = t
			continue
		}
		if !elem.Equal(t) {
			line, col := el.Pos()
			c.diag.Report(diagnostic.TypeMismatch, line, col,
				"initializer element of type %s in a list of %s", t, elem)
			failed = true
		}
	}
	if failed || elem == nil {
		return TypeError
	}
	return ArrayOf(elem)
}

func (c *Checker) checkElement(el ast.Expression) *Type {
	switch e := el.(type) {
	case *ast.IntLit, *ast.CharLit, *ast.BoolLit:
		return c.checkExpression(e)
	case *ast.UnaryExpr:
		if _, ok := e.Operand.(*ast.IntLit); ok && e.Op == lexer.MINUS {
			return c.checkExpression(e)
		}
	}
	c.checkExpression(el)
	line, col := el.Pos()
	c.diag.Report(diagnostic.InvalidLiteral, line, col,
		"initializer list elements must be int, char or boolean constants")
	return TypeError
}
