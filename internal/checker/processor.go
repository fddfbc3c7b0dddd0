package checker

import "github.com/1cbyc/rust-compiler/internal/pipeline"

// Processor type-checks ctx.AstRoot, reporting Type/Semantic
// diagnostics into ctx.Sink and exporting the resolved expression-type
// map for the semantics stage's lowering.
type Processor struct{}

func (cp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	c := New(ctx.Universe, ctx.Sink)
	c.Check(ctx.AstRoot)
	ctx.Types = c.Types

	return ctx
}
