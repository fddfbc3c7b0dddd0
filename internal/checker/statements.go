package checker

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/symbols"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		c.checkFunctionDecl(s)
	case *ast.VariableDecl:
		c.checkVariableDecl(s)
	case *ast.If:
		c.checkIfExpr(s)
	case *ast.While:
		c.checkWhile(s)
	case *ast.For:
		c.checkFor(s)
	case *ast.Return:
		c.checkReturn(s)
	case *ast.StructDecl, *ast.EnumDecl:
		// Declaration-only: already registered in collectDecls.
	case *ast.ImplBlock:
		for _, fn := range s.Functions {
			c.checkFunctionDecl(fn)
		}
	case *ast.ExpressionStatement:
		c.checkExpression(s.Expr)
	case *ast.Block:
		c.checkBlockExpr(s)
	}
}

func (c *Checker) checkFunctionDecl(fn *ast.FunctionDecl) {
	c.scopes.OpenScope()
	defer c.scopes.CloseScope()

	sig := c.functions[fn.Name]
	for i, p := range fn.Params {
		var paramType = c.resolveType(p.Type)
		if i < len(sig.Params) {
			paramType = sig.Params[i]
		}
		c.scopes.Insert(&symbols.Symbol{Kind: symbols.Variable, Name: p.Name, Type: paramType, AstRef: fn})
	}

	for _, stmt := range fn.Body.Statements {
		c.checkStatement(stmt)
	}
	if fn.Body.TailExpr != nil {
		c.checkExpression(fn.Body.TailExpr)
	}
}

func (c *Checker) checkVariableDecl(vd *ast.VariableDecl) {
	hasAnnotation := vd.Type != nil
	hasInit := vd.Initializer != nil

	var finalType typesystem.Type = c.universe.UnitT

	switch {
	case hasAnnotation && hasInit:
		ann := c.resolveType(vd.Type)
		init := c.checkExpression(vd.Initializer)
		if !ann.Equals(init) {
			c.report(diagnostics.Error, "assignment types must match", vd.SpanVal, "")
		}
		finalType = ann
	case hasAnnotation:
		finalType = c.resolveType(vd.Type)
	case hasInit:
		finalType = c.checkExpression(vd.Initializer)
	default:
		c.report(diagnostics.Error, "cannot infer type of '"+vd.Name+"' without annotation or initializer", vd.SpanVal, "")
	}

	c.insertOrShadow(&symbols.Symbol{
		Kind: symbols.Variable, Name: vd.Name, Type: finalType, AstRef: vd, Mutable: vd.Mutable,
	}, vd.SpanVal)
}

func (c *Checker) checkWhile(w *ast.While) {
	cond := c.checkExpression(w.Condition)
	if !typesystem.IsBoolean(cond) {
		c.report(diagnostics.Error, "while condition must be bool", w.Condition.Span(), "")
	}
	c.checkBlockExpr(w.Body)
}

func (c *Checker) checkFor(f *ast.For) {
	c.checkExpression(f.Start)
	c.checkExpression(f.End)

	c.scopes.OpenScope()
	defer c.scopes.CloseScope()
	c.scopes.Insert(&symbols.Symbol{Kind: symbols.Variable, Name: f.Var, Type: c.universe.USize, AstRef: f})

	for _, stmt := range f.Body.Statements {
		c.checkStatement(stmt)
	}
	if f.Body.TailExpr != nil {
		c.checkExpression(f.Body.TailExpr)
	}
}

func (c *Checker) checkReturn(r *ast.Return) {
	if r.Value != nil {
		c.checkExpression(r.Value)
	}
}
