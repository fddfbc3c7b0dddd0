package pipeline

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/ir"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// Processor is one stage of the compilation pipeline. It receives the
// context produced by the previous stage and returns the (possibly
// same) context for the next one, "each stage
// reports rather than raises" propagation policy: a stage with
// nothing left to do because an earlier one failed just passes ctx
// through unchanged.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext threads the artifacts of one compilation through
// the stage list: source text in, diagnostics and lowered/optimized IR
// out. Each compilation owns its own context exclusively;
// nothing here is shared between compilations.
type PipelineContext struct {
	FilePath string
	Source   string
	Sink     *diagnostics.Sink
	Universe *typesystem.Universe

	// TokenCount and LexErrors are filled in by the lexer stage, run
	// ahead of (and independently of) the parser's own internal
	// re-lex, so a lexical-only failure is visible even when parsing
	// never reaches the offending byte.
	TokenCount int
	LexErrors  int

	AstRoot *ast.Program

	// Types is the checker's resolved expression-type map, consumed by
	// the semantics stage's lowering.
	Types map[ast.Expression]typesystem.Type

	IR             *ir.Block
	OptimizerStats []PassStat
}

// PassStat mirrors optimizer.PassStat without importing the optimizer
// package here, which would create an import cycle (the optimizer
// stage's own Processor imports pipeline).
type PassStat struct {
	Name         string
	NodesChanged int
}
