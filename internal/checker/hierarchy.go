package checker

import (
	"strings"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
)

// resolver builds a Registry from the class declarations of a program
type resolver struct {
	reg  *Registry
	diag *diagnostic.Diagnostics
}

// ResolveHierarchy registers every class of prog, links and validates the
// inheritance graph, and computes flattened member views. Problems are
// reported to diag; the returned registry is always usable.
func ResolveHierarchy(prog *ast.Program, diag *diagnostic.Diagnostics) *Registry {
	r := &resolver{reg: NewRegistry(), diag: diag}
	r.declareClasses(prog)
	r.collectMembers()
	r.linkSupers()
	r.detectCycles()
	r.flattenAll()
	return r.reg
}

// declareClasses registers every class name so member types may refer to
// classes declared later. The first declaration of a name wins.
func (r *resolver) declareClasses(prog *ast.Program) {
	for _, cls := range prog.Classes {
		if prev, exists := r.reg.classes[cls.Name]; exists {
			r.diag.Report(diagnostic.DuplicateClass, cls.Line, cls.Column,
				"class '%s' already declared at line %d", cls.Name, prev.Decl.Line)
			continue
		}
		r.reg.add(newClassDescriptor(cls))
	}
}

// collectMembers records each class's own fields and methods
func (r *resolver) collectMembers() {
	for _, cls := range r.reg.Classes() {
		for _, decl := range cls.Decl.Fields {
			typ := r.resolveVarType(decl.Type)
			for _, d := range decl.Declarators {
				if _, exists := cls.Fields[d.Name]; exists {
					r.diag.Report(diagnostic.DuplicateMember, d.Line, d.Column,
						"field '%s' already declared in class '%s'", d.Name, cls.Name)
					continue
				}
				cls.Fields[d.Name] = &FieldDescriptor{
					Name:  d.Name,
					Type:  typ,
					Class: cls.Name,
					Decl:  d,
					Symbol: &Symbol{
						Name:   d.Name,
						Type:   typ,
						Kind:   SymField,
						Class:  cls.Name,
						Line:   d.Line,
						Column: d.Column,
					},
					Line:   d.Line,
					Column: d.Column,
				}
				cls.FieldOrder = append(cls.FieldOrder, d.Name)
			}
		}

		for _, m := range cls.Decl.Methods {
			if m.IsMain {
				r.collectMain(cls, m)
				continue
			}
			if _, exists := cls.Methods[m.Name]; exists {
				r.diag.Report(diagnostic.DuplicateMember, m.Line, m.Column,
					"method '%s' already declared in class '%s'", m.Name, cls.Name)
				continue
			}
			desc := &MethodDescriptor{
				Name:       m.Name,
				Class:      cls.Name,
				ReturnType: r.resolveTypeRef(m.ReturnType),
				Body:       m.Body,
				Decl:       m,
			}
			for _, p := range m.Params {
				desc.Params = append(desc.Params, ParamDescriptor{
					Name:   p.Name,
					Type:   r.resolveVarType(p.Type),
					Line:   p.Line,
					Column: p.Column,
				})
			}
			cls.Methods[m.Name] = desc
			cls.MethodOrder = append(cls.MethodOrder, m.Name)
		}
	}
}

// collectMain registers the program's single main method
func (r *resolver) collectMain(cls *ClassDescriptor, m *ast.MethodDecl) {
	if r.reg.Main != nil {
		r.diag.Report(diagnostic.DuplicateMember, m.Line, m.Column,
			"main method already declared in class '%s'", r.reg.Main.Class)
		return
	}
	desc := &MethodDescriptor{
		Name:       "main",
		Class:      cls.Name,
		ReturnType: TypeVoid,
		Body:       m.Body,
		Decl:       m,
		IsMain:     true,
	}
	for _, p := range m.Params {
		desc.Params = append(desc.Params, ParamDescriptor{
			Name:   p.Name,
			Type:   TypeStringArray,
			Line:   p.Line,
			Column: p.Column,
		})
	}
	cls.Main = desc
	r.reg.Main = desc
}

// resolveTypeRef resolves ref, reporting UnknownType on failure
func (r *resolver) resolveTypeRef(ref *ast.TypeRef) *Type {
	return resolveOrReport(r.reg, r.diag, ref)
}

// resolveVarType resolves the type of a variable, field or parameter,
// which may not be void.
func (r *resolver) resolveVarType(ref *ast.TypeRef) *Type {
	return resolveVarOrReport(r.reg, r.diag, ref)
}

// linkSupers resolves each extends clause against the registry
func (r *resolver) linkSupers() {
	for _, cls := range r.reg.Classes() {
		if cls.DeclaredSuper == "" {
			continue
		}
		if _, ok := r.reg.classes[cls.DeclaredSuper]; !ok {
			r.diag.Report(diagnostic.UnknownSuperclass, cls.Decl.SuperLine, cls.Decl.SuperColumn,
				"class '%s' extends undeclared class '%s'", cls.Name, cls.DeclaredSuper)
			continue
		}
		cls.Super = cls.DeclaredSuper
	}
}

// detectCycles walks every superclass chain once. Each cycle is reported
// a single time, its members are marked Cyclic, and the edge that closes
// it is cut so later walks terminate.
func (r *resolver) detectCycles() {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[string]int, len(r.reg.order))

	for _, start := range r.reg.Classes() {
		var path []*ClassDescriptor
		index := make(map[string]int)

		cur := start
		for cur != nil && state[cur.Name] == unvisited {
			state[cur.Name] = onPath
			index[cur.Name] = len(path)
			path = append(path, cur)
			cur = r.reg.superOf(cur)
		}

		if cur != nil && state[cur.Name] == onPath {
			cycle := path[index[cur.Name]:]
			names := make([]string, 0, len(cycle)+1)
			for _, c := range cycle {
				c.Cyclic = true
				names = append(names, c.Name)
			}
			names = append(names, cur.Name)

			last := cycle[len(cycle)-1]
			r.diag.Report(diagnostic.CyclicInheritance, last.Decl.SuperLine, last.Decl.SuperColumn,
				"cyclic inheritance: %s", strings.Join(names, " -> "))
			last.Super = ""
		}

		for _, c := range path {
			state[c.Name] = done
		}
	}
}

// flattenAll computes member views superclass-first
func (r *resolver) flattenAll() {
	for _, cls := range r.reg.Classes() {
		r.flatten(cls, make(map[string]bool))
	}
}

func (r *resolver) flatten(cls *ClassDescriptor, visiting map[string]bool) {
	if cls.flattened {
		return
	}
	visiting[cls.Name] = true

	cls.AllFields = make(map[string]*FieldDescriptor)
	cls.AllMethods = make(map[string]*MethodDescriptor)

	if sup := r.reg.superOf(cls); sup != nil && !visiting[sup.Name] {
		r.flatten(sup, visiting)
		for name, f := range sup.AllFields {
			cls.AllFields[name] = f
		}
		for name, m := range sup.AllMethods {
			cls.AllMethods[name] = m
		}
	}

	for _, name := range cls.FieldOrder {
		cls.AllFields[name] = cls.Fields[name]
	}
	for _, name := range cls.MethodOrder {
		own := cls.Methods[name]
		if inherited, ok := cls.AllMethods[name]; ok {
			r.checkOverride(own, inherited)
		}
		cls.AllMethods[name] = own
	}
	cls.flattened = true
}

// checkOverride requires an identical parameter type list and a return
// type equal to, or a subclass of, the overridden method's. The
// overriding signature stays authoritative either way.
func (r *resolver) checkOverride(own, inherited *MethodDescriptor) {
	if hasErrorType(own) || hasErrorType(inherited) {
		return
	}
	compatible := len(own.Params) == len(inherited.Params)
	if compatible {
		for i := range own.Params {
			if !own.Params[i].Type.Equal(inherited.Params[i].Type) {
				compatible = false
				break
			}
		}
	}
	if compatible && !own.ReturnType.Equal(inherited.ReturnType) {
		compatible = own.ReturnType.IsClass() && inherited.ReturnType.IsClass() &&
			r.reg.IsSubtypeOf(own.ReturnType.Class, inherited.ReturnType.Class)
	}
	if compatible {
		return
	}
	r.diag.ReportWithHint(diagnostic.IncompatibleOverride, own.Decl.Line, own.Decl.Column,
		"method '"+own.Name+"' in class '"+own.Class+"' overrides '"+inherited.Class+"."+inherited.Name+
			"' with an incompatible signature",
		"expected "+inherited.Signature()+", found "+own.Signature())
}

func hasErrorType(m *MethodDescriptor) bool {
	if m.ReturnType.IsError() {
		return true
	}
	for _, p := range m.Params {
		if p.Type.IsError() {
			return true
		}
	}
	return false
}

// resolveOrReport resolves ref against reg and reports UnknownType when it
// names no type.
func resolveOrReport(reg *Registry, diag *diagnostic.Diagnostics, ref *ast.TypeRef) *Type {
	t, ok := reg.ResolveType(ref)
	if ok {
		return t
	}
	if ref.IsArray {
		diag.ReportWithHint(diagnostic.UnknownType, ref.Line, ref.Column,
			"unknown type '"+ref.String()+"'", "arrays may only hold int or char")
	} else {
		diag.Report(diagnostic.UnknownType, ref.Line, ref.Column, "unknown type '%s'", ref.String())
	}
	return TypeError
}

// resolveVarOrReport is resolveOrReport for storage locations, which may
// not be void.
func resolveVarOrReport(reg *Registry, diag *diagnostic.Diagnostics, ref *ast.TypeRef) *Type {
	t := resolveOrReport(reg, diag, ref)
	if t.Kind == KindVoid {
		diag.Report(diagnostic.UnknownType, ref.Line, ref.Column, "variables cannot have type void")
		return TypeError
	}
	return t
}
