package checker

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/symbols"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

var logicalOps = map[string]bool{"&&": true, "||": true}
var bitwiseOps = map[string]bool{"&": true, "|": true, "^": true}
var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}
var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var assignOps = map[string]bool{"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true}

// checkExpression is the bidirectional checker's inference entry
// point: every expression gets a type, with Unknown substituted for
// anything that fails to check.
func (c *Checker) checkExpression(expr ast.Expression) typesystem.Type {
	if expr == nil {
		return c.universe.UnitT
	}

	var result typesystem.Type
	switch e := expr.(type) {
	case *ast.Literal:
		result = c.checkLiteral(e)
	case *ast.Identifier:
		result = c.checkIdentifier(e)
	case *ast.BinaryOp:
		result = c.checkBinaryOp(e)
	case *ast.UnaryOp:
		result = c.checkUnaryOp(e)
	case *ast.FunctionCall:
		result = c.checkFunctionCall(e)
	case *ast.Block:
		result = c.checkBlockExpr(e)
	case *ast.If:
		result = c.checkIfExpr(e)
	default:
		result = typesystem.Unknown{}
	}

	c.Types[expr] = result
	return result
}

func (c *Checker) checkLiteral(l *ast.Literal) typesystem.Type {
	switch l.Kind {
	case ast.IntLiteral:
		if l.Int >= -(1<<31) && l.Int <= (1<<31)-1 {
			return c.universe.I32
		}
		return c.universe.I64
	case ast.BigIntLiteral:
		return c.universe.BigIntT
	case ast.FloatLiteral:
		return c.universe.F64
	case ast.StringLiteralKind:
		return typesystem.Ref{Inner: c.universe.StrT}
	case ast.CharLiteralKind:
		return c.universe.CharT
	case ast.BoolLiteral:
		return c.universe.BoolT
	default:
		return typesystem.Unknown{}
	}
}

func (c *Checker) checkIdentifier(id *ast.Identifier) typesystem.Type {
	sym, ok := c.scopes.Lookup(id.Name)
	if !ok {
		c.sink.Report(diagnostics.Semantic, diagnostics.Error,
			"undefined variable '"+id.Name+"'", id.SpanVal.Start, "")
		return typesystem.Unknown{}
	}
	return sym.Type
}

func (c *Checker) checkBinaryOp(b *ast.BinaryOp) typesystem.Type {
	left := c.checkExpression(b.Left)
	right := c.checkExpression(b.Right)

	// An operand that already failed to check was reported where it
	// failed; the operator adds no second diagnostic on its account.
	if _, ok := left.(typesystem.Unknown); ok {
		return typesystem.Unknown{}
	}
	if _, ok := right.(typesystem.Unknown); ok {
		return typesystem.Unknown{}
	}

	switch {
	case assignOps[b.Op]:
		if !left.Equals(right) {
			c.report(diagnostics.Error, "assignment types must match", b.SpanVal, "")
			return typesystem.Unknown{}
		}
		return left

	case arithmeticOps[b.Op]:
		if !typesystem.IsNumeric(left) || !typesystem.IsNumeric(right) {
			c.report(diagnostics.Error, "arithmetic operands must be numeric", b.SpanVal, "")
			return typesystem.Unknown{}
		}
		if typesystem.IsFloat(left) || typesystem.IsFloat(right) {
			return c.universe.F64
		}
		return c.universe.I32

	case comparisonOps[b.Op]:
		if !typesystem.IsNumeric(left) || !typesystem.IsNumeric(right) {
			c.report(diagnostics.Error, "comparison operands must be numeric", b.SpanVal, "")
			return typesystem.Unknown{}
		}
		return c.universe.BoolT

	case logicalOps[b.Op]:
		if !typesystem.IsBoolean(left) || !typesystem.IsBoolean(right) {
			c.report(diagnostics.Error, "logical operands must be bool", b.SpanVal, "")
			return typesystem.Unknown{}
		}
		return c.universe.BoolT

	case bitwiseOps[b.Op]:
		if !typesystem.IsInteger(left) || !typesystem.IsInteger(right) {
			c.report(diagnostics.Error, "bitwise operands must be integers", b.SpanVal, "")
			return typesystem.Unknown{}
		}
		return left

	default:
		c.report(diagnostics.Error, "unknown operator '"+b.Op+"'", b.SpanVal, "")
		return typesystem.Unknown{}
	}
}

func (c *Checker) checkUnaryOp(u *ast.UnaryOp) typesystem.Type {
	operand := c.checkExpression(u.Operand)
	switch u.Op {
	case "-":
		if !typesystem.IsNumeric(operand) {
			c.report(diagnostics.Error, "unary '-' requires a numeric operand", u.SpanVal, "")
			return typesystem.Unknown{}
		}
		return operand
	case "!":
		if !typesystem.IsBoolean(operand) {
			c.report(diagnostics.Error, "unary '!' requires a bool operand", u.SpanVal, "")
			return typesystem.Unknown{}
		}
		return c.universe.BoolT
	default:
		return typesystem.Unknown{}
	}
}

func (c *Checker) checkFunctionCall(f *ast.FunctionCall) typesystem.Type {
	sig, ok := c.functions[f.Callee]
	if !ok {
		c.sink.Report(diagnostics.Semantic, diagnostics.Error,
			"undefined function '"+f.Callee+"'", f.SpanVal.Start, "")
		for _, arg := range f.Args {
			c.checkExpression(arg)
		}
		return typesystem.Unknown{}
	}

	if len(f.Args) != len(sig.Params) {
		c.report(diagnostics.Error, "wrong number of arguments to '"+f.Callee+"'", f.SpanVal, "")
		for _, arg := range f.Args {
			c.checkExpression(arg)
		}
		return typesystem.Unknown{}
	}

	for i, arg := range f.Args {
		argType := c.checkExpression(arg)
		if !argType.Equals(sig.Params[i]) {
			c.report(diagnostics.Error, "argument type mismatch in call to '"+f.Callee+"'", arg.Span(), "")
		}
	}

	return sig.Ret
}

func (c *Checker) checkBlockExpr(b *ast.Block) typesystem.Type {
	c.scopes.OpenScope()
	defer c.scopes.CloseScope()

	for _, stmt := range b.Statements {
		c.checkStatement(stmt)
	}
	if b.TailExpr != nil {
		return c.checkExpression(b.TailExpr)
	}
	return c.universe.UnitT
}

func (c *Checker) checkIfExpr(i *ast.If) typesystem.Type {
	cond := c.checkExpression(i.Condition)
	if !typesystem.IsBoolean(cond) {
		c.report(diagnostics.Error, "if condition must be bool", i.Condition.Span(), "")
	}

	thenType := c.checkBlockExpr(i.Then)
	if i.Else == nil {
		return c.universe.UnitT
	}

	elseType := c.checkBlockExpr(i.Else)
	if !thenType.Equals(elseType) {
		c.report(diagnostics.Error, "if/else arms must have the same type", i.SpanVal, "")
		return typesystem.Unknown{}
	}
	return thenType
}

// insertOrShadow inserts sym into the current scope, reporting a
// redefinition error if the name already exists there, or a shadowing
// warning if it exists in an enclosing scope.
func (c *Checker) insertOrShadow(sym *symbols.Symbol, span ast.Span) {
	if c.scopes.IsShadowing(sym.Name) {
		c.sink.Report(diagnostics.Semantic, diagnostics.Warning,
			"'"+sym.Name+"' shadows a binding from an enclosing scope", span.Start, "")
	}
	if !c.scopes.Insert(sym) {
		c.sink.Report(diagnostics.Semantic, diagnostics.Error,
			"'"+sym.Name+"' is already defined in this scope", span.Start, "")
	}
}
