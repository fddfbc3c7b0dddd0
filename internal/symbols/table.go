// Package symbols implements the scope stack and symbol table:
// names resolved outward through nested lexical scopes,
// with redefinition in the same scope reported rather than silently
// overwritten.
package symbols

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// Kind classifies what a Symbol names.
type Kind int

const (
	Variable Kind = iota
	Function
	Struct
	Enum
	TypeAlias
	Const
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case TypeAlias:
		return "type alias"
	case Const:
		return "const"
	default:
		return "unknown"
	}
}

// Symbol is a single named entity resolvable from a scope.
type Symbol struct {
	Kind    Kind
	Name    string
	Type    typesystem.Type
	AstRef  ast.Node
	Mutable bool
	// Methods holds impl-block functions attached to a Struct/Enum
	// symbol by name, so a later pass can resolve `value.method(...)`
	// without re-walking every ImplBlock.
	Methods map[string]*Symbol
}

// scope is one lexical level: a name table plus the index of its
// parent in Table.scopes, or -1 at the root. Storing scopes in a
// vector with a parent index (rather than a parent pointer) avoids
// ownership-pointer ambiguity while keeping outward lookup O(depth).
type scope struct {
	names  map[string]*Symbol
	parent int
}

// Table is the scope stack for one compilation's semantic analysis.
// Scopes are pushed on entering a function body, block, for-loop, or
// impl block, and popped on exit — strictly LIFO, matching the
// traversal of the AST sub-tree they cover.
type Table struct {
	scopes  []scope
	current int // index of the innermost open scope, -1 if none
}

// NewTable creates an empty scope stack with no open scopes.
func NewTable() *Table {
	return &Table{current: -1}
}

// OpenScope pushes a new, empty scope as a child of the current one.
func (t *Table) OpenScope() {
	t.scopes = append(t.scopes, scope{names: make(map[string]*Symbol), parent: t.current})
	t.current = len(t.scopes) - 1
}

// CloseScope pops the current scope, returning to its parent.
func (t *Table) CloseScope() {
	if t.current < 0 {
		return
	}
	t.current = t.scopes[t.current].parent
}

// Depth reports how many scopes are currently open.
func (t *Table) Depth() int {
	depth := 0
	for idx := t.current; idx >= 0; idx = t.scopes[idx].parent {
		depth++
	}
	return depth
}

// Insert adds a symbol to the innermost open scope. It returns false
// without modifying the scope if the name is already bound *in that
// same scope* — a redefinition, which callers report as a diagnostic
// rather than allowing a silent overwrite.
func (t *Table) Insert(sym *Symbol) bool {
	if t.current < 0 {
		t.OpenScope()
	}
	names := t.scopes[t.current].names
	if _, exists := names[sym.Name]; exists {
		return false
	}
	names[sym.Name] = sym
	return true
}

// Lookup searches outward from the innermost scope, returning the
// first match and true, or (nil, false) for no match. Lookup never
// fabricates a symbol.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for idx := t.current; idx >= 0; idx = t.scopes[idx].parent {
		if sym, ok := t.scopes[idx].names[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches only the innermost open scope, used to detect
// redefinition before Insert.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	if t.current < 0 {
		return nil, false
	}
	sym, ok := t.scopes[t.current].names[name]
	return sym, ok
}

// IsShadowing reports whether name already resolves in an *enclosing*
// scope (not the current one) — used to distinguish shadowing
// (warning) from redefinition (error).
func (t *Table) IsShadowing(name string) bool {
	if t.current < 0 {
		return false
	}
	for idx := t.scopes[t.current].parent; idx >= 0; idx = t.scopes[idx].parent {
		if _, ok := t.scopes[idx].names[name]; ok {
			return true
		}
	}
	return false
}

// Snapshot captures the current scope depth and stack length, used by
// callers that want to assert the scope discipline invariant: the
// table returns to an equal snapshot at the end of a balanced
// traversal.
type Snapshot struct {
	current    int
	scopeCount int
}

func (t *Table) Snapshot() Snapshot {
	return Snapshot{current: t.current, scopeCount: len(t.scopes)}
}

func (t *Table) Equal(s Snapshot) bool {
	return t.current == s.current && len(t.scopes) == s.scopeCount
}
