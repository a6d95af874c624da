package checker

// SymbolKind represents the kind of symbol
type SymbolKind int

const (
	SymLocal SymbolKind = iota
	SymParam
	SymField
)

// String returns the string representation of the symbol kind
func (sk SymbolKind) String() string {
	switch sk {
	case SymLocal:
		return "local"
	case SymParam:
		return "parameter"
	case SymField:
		return "field"
	default:
		return "unknown"
	}
}

// Symbol is a resolved declaration: a local, a parameter or a field
type Symbol struct {
	Name   string
	Type   *Type
	Kind   SymbolKind
	Class  string // declaring class, for fields
	Line   int
	Column int
}

// Scope represents a lexical scope with a symbol table
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a new scope with an optional parent
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Define adds a symbol to the current scope. It returns the existing
// symbol, and leaves the scope unchanged, when name is already defined
// here.
func (s *Scope) Define(sym *Symbol) (existing *Symbol, ok bool) {
	if prev, exists := s.symbols[sym.Name]; exists {
		return prev, false
	}
	s.symbols[sym.Name] = sym
	return nil, true
}

// Resolve looks up a symbol in the current scope and parent scopes
// Returns nil if the symbol is not found
func (s *Scope) Resolve(name string) *Symbol {
	if sym, ok := s.symbols[name]; ok {
		return sym
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil
}

// SymbolTable is the scope stack of one traversal plus the enclosing class
// whose flattened fields back unqualified names.
type SymbolTable struct {
	current *Scope
	depth   int
	class   *ClassDescriptor
}

// NewSymbolTable creates an empty scope stack
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// SetClass sets the class used for field fallback
func (st *SymbolTable) SetClass(cls *ClassDescriptor) {
	st.class = cls
}

// EnterScope pushes a new innermost scope
func (st *SymbolTable) EnterScope() {
	st.current = NewScope(st.current)
	st.depth++
}

// ExitScope pops the innermost scope
func (st *SymbolTable) ExitScope() {
	if st.current == nil {
		return
	}
	st.current = st.current.parent
	st.depth--
}

// Depth returns the number of open scopes
func (st *SymbolTable) Depth() int {
	return st.depth
}

// WithScope runs fn inside a fresh scope. The scope is popped however fn
// returns.
func (st *SymbolTable) WithScope(fn func()) {
	st.EnterScope()
	defer st.ExitScope()
	fn()
}

// Declare adds sym to the innermost scope. It returns the clashing
// declaration when the name already exists in that same scope.
func (st *SymbolTable) Declare(sym *Symbol) (existing *Symbol, ok bool) {
	return st.current.Define(sym)
}

// Lookup resolves name innermost scope first, then against the enclosing
// class's fields including inherited ones.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	if st.current != nil {
		if sym := st.current.Resolve(name); sym != nil {
			return sym, true
		}
	}
	if st.class == nil {
		return nil, false
	}
	f, ok := st.class.LookupField(name)
	if !ok {
		return nil, false
	}
	return f.Symbol, true
}
