package checker

import (
	"github.com/lhaig/mjc/internal/lexer"
)

// TypeKind tags the variant of a Type
type TypeKind int

const (
	KindVoid TypeKind = iota
	KindBoolean
	KindInt
	KindChar
	KindString
	KindArray
	KindClass
	KindError
)

// Type represents a MiniJava type. Types are immutable; class types compare
// by name and array types by element type.
type Type struct {
	Kind  TypeKind
	Elem  *Type  // element type when Kind == KindArray
	Class string // class name when Kind == KindClass
}

// Builtin types
var (
	TypeVoid        = &Type{Kind: KindVoid}
	TypeBoolean     = &Type{Kind: KindBoolean}
	TypeInt         = &Type{Kind: KindInt}
	TypeChar        = &Type{Kind: KindChar}
	TypeString      = &Type{Kind: KindString}
	TypeIntArray    = &Type{Kind: KindArray, Elem: TypeInt}
	TypeCharArray   = &Type{Kind: KindArray, Elem: TypeChar}
	TypeStringArray = &Type{Kind: KindArray, Elem: TypeString} // main's parameter only
	TypeError       = &Type{Kind: KindError}
)

// ClassType returns the type of references to the named class
func ClassType(name string) *Type {
	return &Type{Kind: KindClass, Class: name}
}

// ArrayOf returns the array type with the given element type
func ArrayOf(elem *Type) *Type {
	switch elem.Kind {
	case KindInt:
		return TypeIntArray
	case KindChar:
		return TypeCharArray
	case KindString:
		return TypeStringArray
	}
	return &Type{Kind: KindArray, Elem: elem}
}

// String returns the source spelling of the type
func (t *Type) String() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindChar:
		return "char"
	case KindString:
		return "String"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindClass:
		return t.Class
	default:
		return "<error>"
	}
}

// Equal reports structural equality
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindArray:
		return t.Elem.Equal(other.Elem)
	case KindClass:
		return t.Class == other.Class
	}
	return true
}

func (t *Type) IsError() bool { return t.Kind == KindError }
func (t *Type) IsArray() bool { return t.Kind == KindArray }
func (t *Type) IsClass() bool { return t.Kind == KindClass }

// IsSubtypeOf reports whether class sub is sup or one of its descendants.
// The walk is bounded by a visited set so a cycle that escaped hierarchy
// resolution still terminates.
func (r *Registry) IsSubtypeOf(sub, sup string) bool {
	visited := make(map[string]bool)
	for name := sub; name != "" && !visited[name]; {
		if name == sup {
			return true
		}
		visited[name] = true
		cls, ok := r.classes[name]
		if !ok {
			return false
		}
		name = cls.Super
	}
	return false
}

// IsAssignable reports whether a value of type source may be stored in a
// location of type target.
func (r *Registry) IsAssignable(target, source *Type) bool {
	if target.IsError() || source.IsError() {
		return true
	}
	if target.Kind == KindVoid || source.Kind == KindVoid {
		return false
	}
	switch target.Kind {
	case KindClass:
		if !source.IsClass() {
			return false
		}
		if r.inCycle(target.Class) || r.inCycle(source.Class) {
			return true
		}
		return r.IsSubtypeOf(source.Class, target.Class)
	case KindArray:
		if source.Kind == KindString && target.Elem.Kind == KindChar {
			return true
		}
		return target.Equal(source)
	}
	return target.Equal(source)
}

// inCycle reports whether name was marked cyclic. The hierarchy of such a
// class is already reported, so relations involving it are not checked.
func (r *Registry) inCycle(name string) bool {
	cls, ok := r.classes[name]
	return ok && cls.Cyclic
}

// CommonNumericType returns Int when both operands are Int and nil
// otherwise. There is no implicit widening between char and int.
func CommonNumericType(a, b *Type) *Type {
	if a.Kind == KindInt && b.Kind == KindInt {
		return TypeInt
	}
	return nil
}

// BinaryResult returns the result type of applying op to left and right.
// ok is false when the operand types are invalid for op. An ErrorType
// operand is absorbed: the result is ErrorType and ok is true.
func (r *Registry) BinaryResult(op lexer.TokenType, left, right *Type) (result *Type, ok bool) {
	if left.IsError() || right.IsError() {
		return TypeError, true
	}
	switch op {
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		if t := CommonNumericType(left, right); t != nil {
			return t, true
		}
	case lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		if CommonNumericType(left, right) != nil {
			return TypeBoolean, true
		}
	case lexer.AND, lexer.OR:
		if left.Kind == KindBoolean && right.Kind == KindBoolean {
			return TypeBoolean, true
		}
	case lexer.EQ, lexer.NEQ:
		if r.comparable(left, right) {
			return TypeBoolean, true
		}
	}
	return TypeError, false
}

// comparable implements the equality rule: two ints, two booleans, two
// class types related by inheritance, or two identical array types.
func (r *Registry) comparable(left, right *Type) bool {
	switch left.Kind {
	case KindInt, KindBoolean:
		return left.Kind == right.Kind
	case KindClass:
		if !right.IsClass() {
			return false
		}
		if r.inCycle(left.Class) || r.inCycle(right.Class) {
			return true
		}
		return r.IsSubtypeOf(left.Class, right.Class) || r.IsSubtypeOf(right.Class, left.Class)
	case KindArray:
		return left.Equal(right)
	}
	return false
}

// UnaryResult returns the result type of applying a prefix operator
func UnaryResult(op lexer.TokenType, operand *Type) (result *Type, ok bool) {
	if operand.IsError() {
		return TypeError, true
	}
	switch op {
	case lexer.NOT:
		if operand.Kind == KindBoolean {
			return TypeBoolean, true
		}
	case lexer.PLUS, lexer.MINUS:
		if operand.Kind == KindInt {
			return TypeInt, true
		}
	}
	return TypeError, false
}
