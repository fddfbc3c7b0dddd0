// Package semantics implements the name resolver / semantic analyzer
//: a pre-order walk that builds a scope tree in
// parallel with the AST, hoists struct/enum/function declarations
// within a scope, attaches impl-block methods to their target type's
// symbol, and lowers the AST to the IR.
//
// Name-resolution and redefinition/shadowing diagnostics for the same
// program are already reported once, by internal/checker (which walks
// the same AST for bidirectional type checking and happens to need an
// identical scope discipline to do it). Running an independent,
// diagnostic-producing scope walk here too would double-report every
// unresolved identifier and every shadowed binding once the checker
// and the analyzer are wired into the same pipeline run. So this
// package's own scope table is diagnostic-silent: it exists to drive
// correct IR lowering (symbol kind, impl-method attachment) and
// nothing else. See DESIGN.md.
package semantics

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/ir"
	"github.com/1cbyc/rust-compiler/internal/symbols"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// Analyzer builds a (diagnostic-silent) scope tree and lowers a
// program to IR.
type Analyzer struct {
	universe *typesystem.Universe
	scopes   *symbols.Table

	// Types, when set, is the checker's already-computed expression
	// type map; lowering consults it to annotate IR nodes but never
	// requires it (a nil map just means IR nodes carry no Type).
	Types map[ast.Expression]typesystem.Type
}

// New creates an Analyzer sharing universe with the rest of the
// pipeline.
func New(universe *typesystem.Universe) *Analyzer {
	return &Analyzer{universe: universe, scopes: symbols.NewTable()}
}

// Lower runs the two-pass (declarations, then bodies) hoisting walk
// and returns the program's IR as a single top-level Block.
func (a *Analyzer) Lower(prog *ast.Program) *ir.Block {
	// The outermost scope is deliberately left open after Lower
	// returns (unlike every nested scope, which closes on exit) so a
	// caller can still look up top-level struct/enum/function symbols
	// — e.g. impl-block method attachments — against the finished
	// lowering.
	a.scopes.OpenScope()

	a.hoist(prog.Statements)

	stmts := make([]ir.Node, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		stmts = append(stmts, a.lowerStatement(stmt))
	}
	return &ir.Block{Tag: "program", Stmts: stmts}
}

// hoist registers struct/enum/function declarations (and impl-block
// methods, attached to their target type's symbol) in the current
// scope so sibling statements that textually precede them can still
// resolve them.
func (a *Analyzer) hoist(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			a.scopes.Insert(&symbols.Symbol{Kind: symbols.Function, Name: s.Name, AstRef: s})
		case *ast.StructDecl:
			a.scopes.Insert(&symbols.Symbol{Kind: symbols.Struct, Name: s.Name, AstRef: s, Methods: map[string]*symbols.Symbol{}})
		case *ast.EnumDecl:
			a.scopes.Insert(&symbols.Symbol{Kind: symbols.Enum, Name: s.Name, AstRef: s, Methods: map[string]*symbols.Symbol{}})
		}
	}
	for _, stmt := range stmts {
		impl, ok := stmt.(*ast.ImplBlock)
		if !ok {
			continue
		}
		target, ok := a.scopes.Lookup(impl.TypeName)
		if !ok {
			continue
		}
		if target.Methods == nil {
			target.Methods = map[string]*symbols.Symbol{}
		}
		for _, fn := range impl.Functions {
			target.Methods[fn.Name] = &symbols.Symbol{Kind: symbols.Function, Name: fn.Name, AstRef: fn}
		}
	}
}

func (a *Analyzer) lowerStatement(stmt ast.Statement) ir.Node {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		return a.lowerFunction(s)
	case *ast.VariableDecl:
		return a.lowerVariableDecl(s)
	case *ast.If:
		return a.lowerIf(s)
	case *ast.While:
		return a.lowerWhile(s)
	case *ast.For:
		return a.lowerFor(s)
	case *ast.Return:
		return a.lowerReturn(s)
	case *ast.StructDecl:
		return &ir.Nop{Name: s.Name}
	case *ast.EnumDecl:
		return &ir.Nop{Name: s.Name}
	case *ast.ImplBlock:
		return a.lowerImpl(s)
	case *ast.ExpressionStatement:
		return a.lowerExpression(s.Expr)
	case *ast.Block:
		return a.lowerBlock(s, "seq")
	default:
		return &ir.Nop{}
	}
}

func (a *Analyzer) lowerFunction(fn *ast.FunctionDecl) ir.Node {
	a.scopes.OpenScope()
	defer a.scopes.CloseScope()

	for _, p := range fn.Params {
		a.scopes.Insert(&symbols.Symbol{Kind: symbols.Variable, Name: p.Name, AstRef: fn})
	}

	body := a.lowerBlock(fn.Body, "seq")
	body.Name = fn.Name
	body.Tag = "fn"
	return body
}

func (a *Analyzer) lowerImpl(impl *ast.ImplBlock) ir.Node {
	stmts := make([]ir.Node, 0, len(impl.Functions))
	for _, fn := range impl.Functions {
		stmts = append(stmts, a.lowerFunction(fn))
	}
	return &ir.Block{Tag: "impl", Name: impl.TypeName, Stmts: stmts}
}

func (a *Analyzer) lowerBlock(b *ast.Block, tag string) *ir.Block {
	a.scopes.OpenScope()
	defer a.scopes.CloseScope()

	a.hoist(b.Statements)

	stmts := make([]ir.Node, 0, len(b.Statements)+1)
	for _, stmt := range b.Statements {
		stmts = append(stmts, a.lowerStatement(stmt))
	}
	if b.TailExpr != nil {
		stmts = append(stmts, a.lowerExpression(b.TailExpr))
	}
	return &ir.Block{Tag: tag, Stmts: stmts}
}

func (a *Analyzer) lowerVariableDecl(vd *ast.VariableDecl) ir.Node {
	a.scopes.Insert(&symbols.Symbol{Kind: symbols.Variable, Name: vd.Name, Mutable: vd.Mutable, AstRef: vd})

	var value ir.Node = &ir.Nop{}
	if vd.Initializer != nil {
		value = a.lowerExpression(vd.Initializer)
	}
	return &ir.Assign{Name: vd.Name, Value: value, Typ: a.typeOf(vd.Initializer)}
}

func (a *Analyzer) lowerIf(i *ast.If) ir.Node {
	stmts := []ir.Node{a.lowerExpression(i.Condition), a.lowerBlock(i.Then, "if-then")}
	if i.Else != nil {
		stmts = append(stmts, a.lowerBlock(i.Else, "if-else"))
	}
	return &ir.Block{Tag: "if", Stmts: stmts}
}

func (a *Analyzer) lowerWhile(w *ast.While) ir.Node {
	cond := a.lowerExpression(w.Condition)
	body := a.lowerBlock(w.Body, "while-body")
	return &ir.Block{Tag: "while", Stmts: []ir.Node{cond, body}}
}

func (a *Analyzer) lowerFor(f *ast.For) ir.Node {
	a.scopes.OpenScope()
	defer a.scopes.CloseScope()
	a.scopes.Insert(&symbols.Symbol{Kind: symbols.Variable, Name: f.Var, Type: a.universe.USize})

	start := a.lowerExpression(f.Start)
	end := a.lowerExpression(f.End)
	body := a.lowerBlock(f.Body, "for-body")

	init := &ir.Assign{Name: f.Var, Value: start, Typ: a.universe.USize}
	return &ir.Block{Tag: "for", Stmts: []ir.Node{init, end, body}}
}

func (a *Analyzer) lowerReturn(r *ast.Return) ir.Node {
	var value ir.Node
	if r.Value != nil {
		value = a.lowerExpression(r.Value)
	}
	return &ir.Return{Value: value, Typ: a.typeOf(r.Value)}
}

func (a *Analyzer) lowerExpression(expr ast.Expression) ir.Node {
	if expr == nil {
		return &ir.Nop{}
	}

	switch e := expr.(type) {
	case *ast.Literal:
		return &ir.Const{Value: literalValue(e), Typ: a.typeOf(expr)}
	case *ast.Identifier:
		return &ir.Var{Name: e.Name, Typ: a.typeOf(expr)}
	case *ast.BinaryOp:
		return a.lowerBinaryOp(e)
	case *ast.UnaryOp:
		return &ir.BinOp{Op: e.Op, Left: a.lowerExpression(e.Operand), Typ: a.typeOf(expr)}
	case *ast.FunctionCall:
		args := make([]ir.Node, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, a.lowerExpression(arg))
		}
		return &ir.Call{Name: e.Callee, Args: args, Typ: a.typeOf(expr)}
	case *ast.Block:
		return a.lowerBlock(e, "seq")
	case *ast.If:
		return a.lowerIf(e)
	default:
		return &ir.Nop{}
	}
}

var assignmentOps = map[string]bool{"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true}

// lowerBinaryOp special-cases assignment: an ordinary two-value BinOp
// can't express a write to an already-bound name, so `x = e` and
// `x += e` lower to Store instead, giving the IR's Store kind a
// real producer. Every other operator follows the literal table:
// BinaryOp -> BinOp{op} with two children.
func (a *Analyzer) lowerBinaryOp(b *ast.BinaryOp) ir.Node {
	if assignmentOps[b.Op] && isIdentifier(b.Left) {
		name := b.Left.(*ast.Identifier).Name
		value := a.lowerExpression(b.Right)
		if b.Op != "=" {
			baseOp := b.Op[:len(b.Op)-1]
			value = &ir.BinOp{Op: baseOp, Left: &ir.Var{Name: name}, Right: value}
		}
		return &ir.Store{Name: name, Value: value, Typ: a.typeOf(b)}
	}
	return &ir.BinOp{
		Op:    b.Op,
		Left:  a.lowerExpression(b.Left),
		Right: a.lowerExpression(b.Right),
		Typ:   a.typeOf(b),
	}
}

func isIdentifier(e ast.Expression) bool {
	_, ok := e.(*ast.Identifier)
	return ok
}

func (a *Analyzer) typeOf(expr ast.Expression) typesystem.Type {
	if expr == nil || a.Types == nil {
		return nil
	}
	return a.Types[expr]
}

func literalValue(l *ast.Literal) interface{} {
	switch l.Kind {
	case ast.IntLiteral:
		return l.Int
	case ast.BigIntLiteral:
		return l.BigInt
	case ast.FloatLiteral:
		return l.Float
	case ast.StringLiteralKind:
		return l.Str
	case ast.CharLiteralKind:
		return l.Char
	case ast.BoolLiteral:
		return l.Bool
	default:
		return nil
	}
}
