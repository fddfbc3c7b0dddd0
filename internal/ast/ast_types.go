package ast

// TypeAnnotation is a syntactic type reference as written by the
// programmer (e.g. "i32", "&str", "[i32; 4]"), resolved against the
// type universe by the checker rather than carrying a resolved Type
// itself — the AST stays a pure syntax tree.
type TypeAnnotation struct {
	Name     string            // base name: "i32", "bool", "MyStruct", ...
	Ref      bool              // leading '&'
	RefMut   bool              // leading '&mut'
	Pointer  bool              // leading '*'
	Args     []*TypeAnnotation // generic arguments, e.g. Vec<T>
	ArrayLen int               // > 0 for [elem; N] annotations, Args[0] is elem
	IsArray  bool
	SpanVal  Span
}

func (t *TypeAnnotation) Span() Span       { return t.SpanVal }
func (t *TypeAnnotation) Accept(v Visitor) { v.VisitTypeAnnotation(t) }

// Param is a single function parameter: name plus its declared type.
type Param struct {
	Name string
	Type *TypeAnnotation
}

// Field is a single struct field: name plus its declared type.
type Field struct {
	Name string
	Type *TypeAnnotation
}

// Variant is a single enum variant, optionally carrying tuple-style
// payload types.
type Variant struct {
	Name    string
	Payload []*TypeAnnotation
}
