// Package checker implements the bidirectional type checker:
// literal/identifier/binop/call/decl/control-flow rules
// layered over a stack of type environments, with a global table for
// functions and named types.
package checker

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/stdlib"
	"github.com/1cbyc/rust-compiler/internal/symbols"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// Checker walks an AST, assigning a typesystem.Type to every
// expression it visits and reporting disagreements into the shared
// diagnostics sink. On any failure it substitutes Unknown for the
// offending sub-expression and continues.
type Checker struct {
	universe *typesystem.Universe
	sink     *diagnostics.Sink
	scopes   *symbols.Table

	functions map[string]typesystem.Function
	named     map[string]typesystem.Type // struct/enum names -> their Type

	// Types records the resolved type of every expression checked,
	// keyed by node identity, for downstream stages (lowering,
	// pretty-printing) that want a type without re-deriving it.
	Types map[ast.Expression]typesystem.Type
}

// New creates a Checker sharing universe and sink with the rest of
// the pipeline. The function table is seeded with the registered
// builtins so a call to print, len, Vec::new, and the rest resolves
// without a matching user FunctionDecl.
func New(universe *typesystem.Universe, sink *diagnostics.Sink) *Checker {
	c := &Checker{
		universe:  universe,
		sink:      sink,
		scopes:    symbols.NewTable(),
		functions: make(map[string]typesystem.Function),
		named:     make(map[string]typesystem.Type),
		Types:     make(map[ast.Expression]typesystem.Type),
	}

	registry := stdlib.NewRegistry(universe)
	for _, name := range registry.Names() {
		fn, _ := registry.Lookup(name)
		c.functions[fn.Name] = typesystem.Function{Params: fn.Params, Ret: fn.Return}
	}

	return c
}

// Check type-checks a full program: first a declaration pass so
// forward references resolve, then a body pass.
func (c *Checker) Check(prog *ast.Program) {
	c.scopes.OpenScope()
	defer c.scopes.CloseScope()

	c.collectDecls(prog.Statements)
	for _, stmt := range prog.Statements {
		c.checkStatement(stmt)
	}
}

func (c *Checker) collectDecls(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			c.functions[s.Name] = c.functionSignature(s)
		case *ast.StructDecl:
			c.named[s.Name] = c.structType(s)
		case *ast.EnumDecl:
			c.named[s.Name] = c.enumType(s)
		case *ast.ImplBlock:
			for _, fn := range s.Functions {
				c.functions[s.TypeName+"::"+fn.Name] = c.functionSignature(fn)
			}
		}
	}
}

func (c *Checker) functionSignature(fn *ast.FunctionDecl) typesystem.Function {
	params := make([]typesystem.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = c.resolveType(p.Type)
	}
	var ret typesystem.Type = c.universe.UnitT
	if fn.ReturnType != nil {
		ret = c.resolveType(fn.ReturnType)
	}
	return typesystem.Function{Params: params, Ret: ret}
}

func (c *Checker) structType(s *ast.StructDecl) typesystem.Type {
	fields := make([]typesystem.StructField, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = typesystem.StructField{Name: f.Name, Type: c.resolveType(f.Type)}
	}
	return typesystem.Struct{Name: s.Name, Fields: fields}
}

func (c *Checker) enumType(e *ast.EnumDecl) typesystem.Type {
	variants := make([]typesystem.EnumVariant, len(e.Variants))
	for i, v := range e.Variants {
		payload := make([]typesystem.Type, len(v.Payload))
		for j, p := range v.Payload {
			payload[j] = c.resolveType(p)
		}
		variants[i] = typesystem.EnumVariant{Name: v.Name, Payload: payload}
	}
	return typesystem.Enum{Name: e.Name, Variants: variants}
}

// resolveType maps a parsed TypeAnnotation to a concrete typesystem.Type.
func (c *Checker) resolveType(t *ast.TypeAnnotation) typesystem.Type {
	if t == nil {
		return c.universe.UnitT
	}

	var base typesystem.Type
	switch t.Name {
	case "unit", "()":
		base = c.universe.UnitT
	case "bool":
		base = c.universe.BoolT
	case "i8":
		base = c.universe.I8
	case "i16":
		base = c.universe.I16
	case "i32":
		base = c.universe.I32
	case "i64":
		base = c.universe.I64
	case "u8":
		base = c.universe.U8
	case "u16":
		base = c.universe.U16
	case "u32":
		base = c.universe.U32
	case "u64":
		base = c.universe.U64
	case "usize":
		base = c.universe.USize
	case "f32":
		base = c.universe.F32
	case "f64":
		base = c.universe.F64
	case "char":
		base = c.universe.CharT
	case "str":
		base = c.universe.StrT
	case "String":
		base = c.universe.StringT
	case "array":
		elem := c.universe.UnitT
		if len(t.Args) > 0 {
			elem = c.resolveType(t.Args[0])
		}
		base = typesystem.Array{Elem: elem, Len: t.ArrayLen}
	case "slice":
		elem := c.universe.UnitT
		if len(t.Args) > 0 {
			elem = c.resolveType(t.Args[0])
		}
		base = typesystem.Slice{Elem: elem}
	default:
		if named, ok := c.named[t.Name]; ok {
			base = named
		} else if len(t.Args) > 0 {
			args := make([]typesystem.Type, len(t.Args))
			for i, a := range t.Args {
				args[i] = c.resolveType(a)
			}
			base = typesystem.Generic{Name: t.Name, Args: args}
		} else {
			base = typesystem.Generic{Name: t.Name}
		}
	}

	if t.Ref {
		return typesystem.Ref{Inner: base, Mutable: t.RefMut}
	}
	if t.Pointer {
		return typesystem.Pointer{Inner: base, Mutable: false}
	}
	return base
}

func (c *Checker) report(severity diagnostics.Severity, text string, span ast.Span, suggestion string) {
	c.sink.Report(diagnostics.TypeError, severity, text, span.Start, suggestion)
}
