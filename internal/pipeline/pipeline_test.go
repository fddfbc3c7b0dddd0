package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/checker"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/ir"
	"github.com/1cbyc/rust-compiler/internal/lexer"
	"github.com/1cbyc/rust-compiler/internal/optimizer"
	"github.com/1cbyc/rust-compiler/internal/parser"
	"github.com/1cbyc/rust-compiler/internal/pipeline"
	"github.com/1cbyc/rust-compiler/internal/semantics"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func run(src string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{
		FilePath: "test.rs",
		Source:   src,
		Sink:     diagnostics.NewSink(0),
		Universe: typesystem.Init(),
	}
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&checker.Processor{},
		&semantics.Processor{},
		&optimizer.Processor{},
	)
	return p.Run(ctx)
}

func TestPipelineScenarioS1(t *testing.T) {
	ctx := run("let x = 1 + 2 * 3;")
	require.Empty(t, ctx.Sink.Messages())
	require.NotNil(t, ctx.IR)

	assign := ctx.IR.Stmts[0].(*ir.Assign)
	c, ok := assign.Value.(*ir.Const)
	require.True(t, ok)
	assert.Equal(t, int64(7), c.Value)

	require.Len(t, ctx.OptimizerStats, 5)
	assert.Equal(t, "constant-folding", ctx.OptimizerStats[0].Name)
}

func TestPipelineScenarioS4UndefinedVariable(t *testing.T) {
	ctx := run("fn main() { undefined_variable; }")
	require.Len(t, ctx.Sink.Messages(), 1)
	assert.Equal(t, diagnostics.Semantic, ctx.Sink.Messages()[0].Kind)
}

func TestPipelineScenarioS6ShadowingWarning(t *testing.T) {
	ctx := run("fn main() { let x = 1; { let x = 2; } }")
	msgs := ctx.Sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, diagnostics.Warning, msgs[0].Severity)
}

func TestPipelineStopsAtFatalAndSkipsLaterStages(t *testing.T) {
	garbage := "\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0b\x0c\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18"
	ctx := run(garbage)

	require.False(t, ctx.Sink.CanRecover())
	foundFatal := false
	for _, m := range ctx.Sink.Messages() {
		if m.Severity == diagnostics.Fatal {
			foundFatal = true
		}
	}
	assert.True(t, foundFatal, "a run of unrecognized bytes should raise a Fatal diagnostic")
	assert.Nil(t, ctx.AstRoot, "the parser stage should never run once the lexer stage can't recover")
}

func TestPipelineReportsLexicalErrorAheadOfParsing(t *testing.T) {
	ctx := run("let x = 1 ` ;")
	found := false
	for _, m := range ctx.Sink.Messages() {
		if m.Kind == diagnostics.Lexical {
			found = true
		}
	}
	assert.True(t, found, "a stray illegal byte should be reported as a Lexical diagnostic")
	assert.Greater(t, ctx.TokenCount, 0)
}
