package checker

import (
	"github.com/lhaig/mjc/internal/ast"
)

// FieldDescriptor describes a declared field
type FieldDescriptor struct {
	Name   string
	Type   *Type
	Class  string // declaring class
	Decl   *ast.Declarator
	Symbol *Symbol // shared by every reference to the field
	Line   int
	Column int
}

// ParamDescriptor describes one method parameter
type ParamDescriptor struct {
	Name   string
	Type   *Type
	Line   int
	Column int
}

// MethodDescriptor describes a declared method. Body is borrowed from the
// AST.
type MethodDescriptor struct {
	Name       string
	Class      string // declaring class
	ReturnType *Type
	Params     []ParamDescriptor
	Body       *ast.Block
	Decl       *ast.MethodDecl
	IsMain     bool
}

// Signature renders the method as it would be declared
func (m *MethodDescriptor) Signature() string {
	s := m.ReturnType.String() + " " + m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Type.String()
	}
	return s + ")"
}

// ClassDescriptor describes a class. Superclass links are names resolved
// through the owning Registry, never pointers.
type ClassDescriptor struct {
	Name          string
	DeclaredSuper string // as written in the extends clause
	Super         string // resolved superclass; empty for roots, unknown supers and cut cycles
	Decl          *ast.ClassDecl
	Cyclic        bool

	Fields      map[string]*FieldDescriptor
	FieldOrder  []string
	Methods     map[string]*MethodDescriptor
	MethodOrder []string
	Main        *MethodDescriptor

	// Flattened member views: own plus inherited, own taking precedence
	AllFields  map[string]*FieldDescriptor
	AllMethods map[string]*MethodDescriptor
	flattened  bool
}

func newClassDescriptor(decl *ast.ClassDecl) *ClassDescriptor {
	return &ClassDescriptor{
		Name:          decl.Name,
		DeclaredSuper: decl.Super,
		Decl:          decl,
		Fields:        make(map[string]*FieldDescriptor),
		Methods:       make(map[string]*MethodDescriptor),
	}
}

// LookupField resolves a field in the flattened view
func (c *ClassDescriptor) LookupField(name string) (*FieldDescriptor, bool) {
	f, ok := c.AllFields[name]
	return f, ok
}

// LookupMethod resolves a method in the flattened view. main is never
// part of the view.
func (c *ClassDescriptor) LookupMethod(name string) (*MethodDescriptor, bool) {
	m, ok := c.AllMethods[name]
	return m, ok
}

// Registry is the class registry for one analysis run. It is built by
// the hierarchy resolver and read-only afterwards.
type Registry struct {
	classes map[string]*ClassDescriptor
	order   []string
	Main    *MethodDescriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*ClassDescriptor)}
}

// Lookup returns the descriptor registered under name
func (r *Registry) Lookup(name string) (*ClassDescriptor, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Classes returns the registered classes in declaration order
func (r *Registry) Classes() []*ClassDescriptor {
	out := make([]*ClassDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.classes[name])
	}
	return out
}

func (r *Registry) add(c *ClassDescriptor) {
	r.classes[c.Name] = c
	r.order = append(r.order, c.Name)
}

// superOf returns the resolved superclass descriptor, or nil
func (r *Registry) superOf(c *ClassDescriptor) *ClassDescriptor {
	if c.Super == "" {
		return nil
	}
	return r.classes[c.Super]
}

// ResolveType maps a written type to a Type. ok is false when the name is
// not a known type; the caller reports it.
func (r *Registry) ResolveType(ref *ast.TypeRef) (t *Type, ok bool) {
	if ref == nil {
		return TypeError, false
	}
	if ref.IsArray {
		switch ref.Name {
		case "int":
			return TypeIntArray, true
		case "char":
			return TypeCharArray, true
		}
		return TypeError, false
	}
	switch ref.Name {
	case "void":
		return TypeVoid, true
	case "boolean":
		return TypeBoolean, true
	case "int":
		return TypeInt, true
	case "char":
		return TypeChar, true
	case "String":
		return TypeString, true
	}
	if _, exists := r.classes[ref.Name]; exists {
		return ClassType(ref.Name), true
	}
	return TypeError, false
}
