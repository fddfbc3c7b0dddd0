package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink(0)
	p := New(src, "test.rs", sink)
	prog := p.ParseProgram()
	return prog, sink
}

func TestParseVariableDeclWithArithmetic(t *testing.T) {
	prog, sink := parseProgram(t, "let x = 1 + 2 * 3;")
	require.Empty(t, sink.Messages())
	require.Len(t, prog.Statements, 1)

	decl, ok := prog.Statements[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	bin, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	// precedence: "*" binds tighter than "+", so the right side of the
	// top-level "+" is the "2 * 3" sub-expression.
	right, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParseSyntaxErrorRecovers(t *testing.T) {
	prog, sink := parseProgram(t, "let x = ; let y = 42;")
	require.Len(t, sink.Messages(), 1)
	assert.Equal(t, diagnostics.Syntax, sink.Messages()[0].Kind)

	require.Len(t, prog.Statements, 2)
	second, ok := prog.Statements[1].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "y", second.Name)
}

func TestParseFunctionDecl(t *testing.T) {
	prog, sink := parseProgram(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	require.Empty(t, sink.Messages())
	require.Len(t, prog.Statements, 1)

	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "i32", fn.ReturnType.Name)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParseIfElseExpression(t *testing.T) {
	prog, sink := parseProgram(t, "let x = if true { 1 } else { 2 };")
	require.Empty(t, sink.Messages())

	decl := prog.Statements[0].(*ast.VariableDecl)
	ifExpr, ok := decl.Initializer.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseBlockWithBareTailExpression(t *testing.T) {
	prog, sink := parseProgram(t, "{ 1 }")
	require.Empty(t, sink.Messages())
	require.Len(t, prog.Statements, 1)

	block, ok := prog.Statements[0].(*ast.Block)
	require.True(t, ok)
	require.Empty(t, block.Statements)

	lit, ok := block.TailExpr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Int)
}

func TestParseFunctionBodyWithTrailingTailExpression(t *testing.T) {
	prog, sink := parseProgram(t, "fn f() { let a = 1; a }")
	require.Empty(t, sink.Messages())

	fn := prog.Statements[0].(*ast.FunctionDecl)
	require.Len(t, fn.Body.Statements, 1)

	ident, ok := fn.Body.TailExpr.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "a", ident.Name)
}

func TestParseConsecutiveSemicolonStatementsReportNoErrors(t *testing.T) {
	prog, sink := parseProgram(t, "let a = 1; let b = 2; let c = 3;")
	require.Empty(t, sink.Messages())
	require.Len(t, prog.Statements, 3)
}

func TestParseBigIntegerLiteral(t *testing.T) {
	prog, sink := parseProgram(t, "let x = 99999999999999999999999999999;")
	require.Empty(t, sink.Messages())

	decl := prog.Statements[0].(*ast.VariableDecl)
	lit, ok := decl.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.BigIntLiteral, lit.Kind)
	require.NotNil(t, lit.BigInt)
	assert.Equal(t, "99999999999999999999999999999", lit.BigInt.String())
}

func TestParseForRangeLoop(t *testing.T) {
	prog, sink := parseProgram(t, "fn main() { for i in 0..10 { print(i); } }")
	require.Empty(t, sink.Messages())

	fn := prog.Statements[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body.Statements[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var)
}

func TestParseStructDecl(t *testing.T) {
	prog, sink := parseProgram(t, "struct Point { x: i32, y: i32 };")
	require.Empty(t, sink.Messages())

	s, ok := prog.Statements[0].(*ast.StructDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", s.Name)
	require.Len(t, s.Fields, 2)
}

func TestParseEnumDecl(t *testing.T) {
	prog, sink := parseProgram(t, "enum Option { Some(i32), None };")
	require.Empty(t, sink.Messages())

	e, ok := prog.Statements[0].(*ast.EnumDecl)
	require.True(t, ok)
	require.Len(t, e.Variants, 2)
	assert.Equal(t, "Some", e.Variants[0].Name)
	require.Len(t, e.Variants[0].Payload, 1)
}

func TestParseImplBlock(t *testing.T) {
	prog, sink := parseProgram(t, "impl Point { fn origin() -> i32 { return 0; } }")
	require.Empty(t, sink.Messages())

	impl, ok := prog.Statements[0].(*ast.ImplBlock)
	require.True(t, ok)
	assert.Equal(t, "Point", impl.TypeName)
	require.Len(t, impl.Functions, 1)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog, sink := parseProgram(t, "fn f() { a = b = c; }")
	require.Empty(t, sink.Messages())

	fn := prog.Statements[0].(*ast.FunctionDecl)
	exprStmt := fn.Body.Statements[0].(*ast.ExpressionStatement)
	bin := exprStmt.Expr.(*ast.BinaryOp)
	assert.Equal(t, "=", bin.Op)

	right, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok, "b = c should nest under the right side of a = (b = c)")
	assert.Equal(t, "=", right.Op)
}

func TestSpanWellFormedness(t *testing.T) {
	prog, sink := parseProgram(t, "let x = 1 + 2;")
	require.Empty(t, sink.Messages())
	decl := prog.Statements[0].(*ast.VariableDecl)
	assert.True(t, decl.Span().Contains(decl.Initializer.Span()))
	assert.True(t, prog.Span().Contains(decl.Span()))
}
