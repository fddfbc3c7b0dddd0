package ast

// FunctionDecl is a top-level or impl-scoped function definition.
type FunctionDecl struct {
	Name       string
	Params     []*Param
	ReturnType *TypeAnnotation // nil means unit
	Body       *Block
	SpanVal    Span
}

func (f *FunctionDecl) Span() Span       { return f.SpanVal }
func (f *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(f) }
func (f *FunctionDecl) statementNode()   {}

// VariableDecl is a `let` binding, optionally mutable, with an
// optional type annotation and/or initializer.
type VariableDecl struct {
	Name        string
	Mutable     bool
	Type        *TypeAnnotation // optional
	Initializer Expression      // optional
	SpanVal     Span
}

func (vd *VariableDecl) Span() Span       { return vd.SpanVal }
func (vd *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(vd) }
func (vd *VariableDecl) statementNode()   {}

// If is a conditional with a required then-branch and optional
// else-branch. Both branches are blocks; both arms, when present,
// must agree in type.
type If struct {
	Condition Expression
	Then      *Block
	Else      *Block // nil when absent
	SpanVal   Span
}

func (i *If) Span() Span       { return i.SpanVal }
func (i *If) Accept(v Visitor) { v.VisitIf(i) }
func (i *If) statementNode()   {}
func (i *If) expressionNode()  {}

// While is a condition-guarded loop.
type While struct {
	Condition Expression
	Body      *Block
	SpanVal   Span
}

func (w *While) Span() Span       { return w.SpanVal }
func (w *While) Accept(v Visitor) { v.VisitWhile(w) }
func (w *While) statementNode()   {}

// For is an integer-range loop: `for <var> in <start>..<end> { body }`
//.
type For struct {
	Var     string
	Start   Expression
	End     Expression
	Body    *Block
	SpanVal Span
}

func (f *For) Span() Span       { return f.SpanVal }
func (f *For) Accept(v Visitor) { v.VisitFor(f) }
func (f *For) statementNode()   {}

// Return yields from the enclosing function, optionally with a value.
type Return struct {
	Value   Expression // optional
	SpanVal Span
}

func (r *Return) Span() Span       { return r.SpanVal }
func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }
func (r *Return) statementNode()   {}

// StructDecl declares a named product type.
type StructDecl struct {
	Name    string
	Fields  []*Field
	SpanVal Span
}

func (s *StructDecl) Span() Span       { return s.SpanVal }
func (s *StructDecl) Accept(v Visitor) { v.VisitStructDecl(s) }
func (s *StructDecl) statementNode()   {}

// EnumDecl declares a named sum type.
type EnumDecl struct {
	Name     string
	Variants []*Variant
	SpanVal  Span
}

func (e *EnumDecl) Span() Span       { return e.SpanVal }
func (e *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(e) }
func (e *EnumDecl) statementNode()   {}

// ImplBlock attaches a set of functions (methods) to a named type.
type ImplBlock struct {
	TypeName  string
	Functions []*FunctionDecl
	SpanVal   Span
}

func (i *ImplBlock) Span() Span       { return i.SpanVal }
func (i *ImplBlock) Accept(v Visitor) { v.VisitImplBlock(i) }
func (i *ImplBlock) statementNode()   {}
