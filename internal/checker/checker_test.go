package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/parser"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func checkSource(t *testing.T, src string) *diagnostics.Sink {
	t.Helper()
	sink := diagnostics.NewSink(0)
	p := parser.New(src, "test.rs", sink)
	prog := p.ParseProgram()
	require.Empty(t, sink.Messages(), "source should parse cleanly")

	universe := typesystem.Init()
	c := New(universe, sink)
	c.Check(prog)
	return sink
}

func TestCheckArithmeticNoDiagnostics(t *testing.T) {
	sink := checkSource(t, "let x = 1 + 2 * 3;")
	assert.Empty(t, sink.Messages())
}

func TestCheckBigIntegerLiteralChecksClean(t *testing.T) {
	sink := checkSource(t, "let x = 99999999999999999999999999999;")
	assert.Empty(t, sink.Messages())
}

func TestCheckAssignmentTypeMismatch(t *testing.T) {
	sink := checkSource(t, "let x: bool = 1 + 2;")
	require.Len(t, sink.Messages(), 1)
	assert.Equal(t, diagnostics.TypeError, sink.Messages()[0].Kind)
	assert.Contains(t, sink.Messages()[0].Text, "assignment types must match")
}

func TestCheckComparisonProducesBool(t *testing.T) {
	sink := checkSource(t, "let x: bool = 1 < 2;")
	assert.Empty(t, sink.Messages())
}

func TestCheckLogicalRequiresBool(t *testing.T) {
	sink := checkSource(t, "let x = 1 && 2;")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "logical operands must be bool")
}

func TestCheckBitwiseOnIntegers(t *testing.T) {
	sink := checkSource(t, "let x: i32 = 1 & 2;")
	assert.Empty(t, sink.Messages())
}

func TestCheckUndefinedVariable(t *testing.T) {
	sink := checkSource(t, "let x = y + 1;")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "undefined variable 'y'")
}

func TestCheckFunctionCallArityMismatch(t *testing.T) {
	sink := checkSource(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } fn main() { add(1); }")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "wrong number of arguments")
}

func TestCheckFunctionCallTypeMismatch(t *testing.T) {
	sink := checkSource(t, `fn add(a: i32, b: i32) -> i32 { return a + b; } fn main() { add(true, 2); }`)
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "argument type mismatch")
}

func TestCheckUndefinedFunction(t *testing.T) {
	sink := checkSource(t, "fn main() { mystery(1); }")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "undefined function")
}

func TestCheckIfArmsMustAgree(t *testing.T) {
	sink := checkSource(t, "fn main() { let x = if true { 1 } else { true }; }")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "same type")
}

func TestCheckIfArmsAgreeingIsClean(t *testing.T) {
	sink := checkSource(t, "fn main() { let x = if true { 1 } else { 2 }; }")
	assert.Empty(t, sink.Messages())
}

func TestCheckWhileConditionMustBeBool(t *testing.T) {
	sink := checkSource(t, "fn main() { while 1 { } }")
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "while condition must be bool")
}

func TestCheckForLoopVariableIsUsize(t *testing.T) {
	sink := checkSource(t, "fn main() { for i in 0..10 { let j: usize = i; } }")
	assert.Empty(t, sink.Messages())
}

func TestCheckShadowingWarnsButRedefinitionErrors(t *testing.T) {
	sink := checkSource(t, "fn main() { let x = 1; { let x = 2; } let x = 3; }")
	require.Len(t, sink.Messages(), 2)

	var sawWarning, sawError bool
	for _, m := range sink.Messages() {
		switch m.Severity {
		case diagnostics.Warning:
			sawWarning = true
			assert.Contains(t, m.Text, "shadows a binding")
		case diagnostics.Error:
			sawError = true
			assert.Contains(t, m.Text, "already defined in this scope")
		}
	}
	assert.True(t, sawWarning, "expected a shadowing warning")
	assert.True(t, sawError, "expected a redefinition error")
}

func TestCheckStructReturnTypeResolvesByName(t *testing.T) {
	sink := checkSource(t, "struct Point { x: i32, y: i32 } fn origin() -> Point { return origin(); } fn main() { let p: Point = origin(); }")
	assert.Empty(t, sink.Messages())
}
