package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/codegen"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/parser"
	"github.com/1cbyc/rust-compiler/internal/semantics"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func lower(t *testing.T, src string) string {
	t.Helper()
	sink := diagnostics.NewSink(0)
	p := parser.New(src, "test.rs", sink)
	prog := p.ParseProgram()
	a := semantics.New(typesystem.Init())
	root := a.Lower(prog)
	return codegen.Generate(root)
}

func TestGenerateArithmeticAssign(t *testing.T) {
	out := lower(t, "let x = 1 + 2;")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, out, "PUSHC 1")
	assert.Contains(t, out, "PUSHC 2")
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, "STORE x")
}

func TestGenerateIfEmitsLabelsAndConditionalJump(t *testing.T) {
	out := lower(t, "fn f() { if true { print(1); } else { print(2); } }")
	assert.Contains(t, out, "JFALSE")
	assert.Contains(t, out, "Lelse")
	assert.Contains(t, out, "Lend")
	assert.Contains(t, out, "CALL print, 1")
}

func TestGenerateWhileEmitsBackwardJump(t *testing.T) {
	out := lower(t, "fn f() { while true { print(1); } }")
	assert.Contains(t, out, "Lloop")
	assert.Contains(t, out, "JMP Lloop")
}
