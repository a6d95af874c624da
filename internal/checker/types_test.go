package checker

import (
	"testing"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/lexer"
	"github.com/nalgeon/be"
)

// registryOf builds a registry from bare class/superclass pairs
func registryOf(t *testing.T, pairs ...[2]string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, p := range pairs {
		r.add(newClassDescriptor(&ast.ClassDecl{Name: p[0], Super: p[1]}))
	}
	for _, cls := range r.Classes() {
		cls.Super = cls.DeclaredSuper
	}
	return r
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{TypeVoid, "void"},
		{TypeBoolean, "boolean"},
		{TypeInt, "int"},
		{TypeChar, "char"},
		{TypeString, "String"},
		{TypeIntArray, "int[]"},
		{TypeCharArray, "char[]"},
		{TypeStringArray, "String[]"},
		{ClassType("Shape"), "Shape"},
		{TypeError, "<error>"},
	}
	for _, tt := range tests {
		be.Equal(t, tt.typ.String(), tt.want)
	}
}

func TestTypeEqual(t *testing.T) {
	be.True(t, ClassType("A").Equal(ClassType("A")))
	be.True(t, !ClassType("A").Equal(ClassType("B")))
	be.True(t, ArrayOf(TypeInt).Equal(TypeIntArray))
	be.True(t, !TypeIntArray.Equal(TypeCharArray))
	be.True(t, !TypeInt.Equal(TypeChar))
	be.True(t, TypeError.Equal(TypeError))
}

func TestIsSubtypeOf(t *testing.T) {
	r := registryOf(t, [2]string{"Shape", ""}, [2]string{"Circle", "Shape"}, [2]string{"Unit", "Circle"})

	be.True(t, r.IsSubtypeOf("Unit", "Shape"))
	be.True(t, r.IsSubtypeOf("Circle", "Circle"))
	be.True(t, !r.IsSubtypeOf("Shape", "Circle"))
	be.True(t, !r.IsSubtypeOf("Missing", "Shape"))
}

func TestIsSubtypeOf_TerminatesOnCycle(t *testing.T) {
	r := registryOf(t, [2]string{"A", "B"}, [2]string{"B", "A"})
	be.True(t, !r.IsSubtypeOf("A", "C"))
}

func TestIsAssignable(t *testing.T) {
	r := registryOf(t, [2]string{"Shape", ""}, [2]string{"Circle", "Shape"}, [2]string{"Other", ""})

	tests := []struct {
		name           string
		target, source *Type
		want           bool
	}{
		{"same primitive", TypeInt, TypeInt, true},
		{"char to int", TypeInt, TypeChar, false},
		{"int to boolean", TypeBoolean, TypeInt, false},
		{"upcast", ClassType("Shape"), ClassType("Circle"), true},
		{"downcast", ClassType("Circle"), ClassType("Shape"), false},
		{"unrelated class", ClassType("Shape"), ClassType("Other"), false},
		{"string to char array", TypeCharArray, TypeString, true},
		{"string to int array", TypeIntArray, TypeString, false},
		{"char array to string", TypeString, TypeCharArray, false},
		{"same array", TypeIntArray, TypeIntArray, true},
		{"int to int array", TypeIntArray, TypeInt, false},
		{"void source", TypeInt, TypeVoid, false},
		{"error source", TypeInt, TypeError, true},
		{"error target", TypeError, TypeBoolean, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, r.IsAssignable(tt.target, tt.source), tt.want)
		})
	}
}

func TestBinaryResult(t *testing.T) {
	r := registryOf(t, [2]string{"Shape", ""}, [2]string{"Circle", "Shape"}, [2]string{"Other", ""})

	tests := []struct {
		name        string
		op          lexer.TokenType
		left, right *Type
		want        *Type
		ok          bool
	}{
		{"int plus", lexer.PLUS, TypeInt, TypeInt, TypeInt, true},
		{"char plus", lexer.PLUS, TypeChar, TypeInt, TypeError, false},
		{"modulo", lexer.PERCENT, TypeInt, TypeInt, TypeInt, true},
		{"less than", lexer.LT, TypeInt, TypeInt, TypeBoolean, true},
		{"less than booleans", lexer.LT, TypeBoolean, TypeBoolean, TypeError, false},
		{"and", lexer.AND, TypeBoolean, TypeBoolean, TypeBoolean, true},
		{"and ints", lexer.AND, TypeInt, TypeBoolean, TypeError, false},
		{"int equality", lexer.EQ, TypeInt, TypeInt, TypeBoolean, true},
		{"mixed equality", lexer.EQ, TypeInt, TypeBoolean, TypeError, false},
		{"related classes", lexer.NEQ, ClassType("Shape"), ClassType("Circle"), TypeBoolean, true},
		{"unrelated classes", lexer.EQ, ClassType("Shape"), ClassType("Other"), TypeError, false},
		{"arrays", lexer.EQ, TypeIntArray, TypeIntArray, TypeBoolean, true},
		{"strings", lexer.EQ, TypeString, TypeString, TypeError, false},
		{"error absorbs", lexer.PLUS, TypeError, TypeBoolean, TypeError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.BinaryResult(tt.op, tt.left, tt.right)
			be.Equal(t, ok, tt.ok)
			be.True(t, got.Equal(tt.want))
		})
	}
}

func TestUnaryResult(t *testing.T) {
	got, ok := UnaryResult(lexer.NOT, TypeBoolean)
	be.True(t, ok)
	be.Equal(t, got, TypeBoolean)

	got, ok = UnaryResult(lexer.MINUS, TypeInt)
	be.True(t, ok)
	be.Equal(t, got, TypeInt)

	_, ok = UnaryResult(lexer.NOT, TypeInt)
	be.True(t, !ok)

	_, ok = UnaryResult(lexer.MINUS, TypeChar)
	be.True(t, !ok)
}

func TestResolveType(t *testing.T) {
	r := registryOf(t, [2]string{"Shape", ""})

	tests := []struct {
		ref  ast.TypeRef
		want *Type
		ok   bool
	}{
		{ast.TypeRef{Name: "int"}, TypeInt, true},
		{ast.TypeRef{Name: "int", IsArray: true}, TypeIntArray, true},
		{ast.TypeRef{Name: "char", IsArray: true}, TypeCharArray, true},
		{ast.TypeRef{Name: "boolean", IsArray: true}, TypeError, false},
		{ast.TypeRef{Name: "Shape"}, ClassType("Shape"), true},
		{ast.TypeRef{Name: "Shape", IsArray: true}, TypeError, false},
		{ast.TypeRef{Name: "Missing"}, TypeError, false},
		{ast.TypeRef{Name: "void"}, TypeVoid, true},
	}
	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			got, ok := r.ResolveType(&tt.ref)
			be.Equal(t, ok, tt.ok)
			be.True(t, got.Equal(tt.want))
		})
	}
}
