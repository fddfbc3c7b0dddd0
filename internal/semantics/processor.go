package semantics

import "github.com/1cbyc/rust-compiler/internal/pipeline"

// Processor lowers ctx.AstRoot to ctx.IR, consulting the checker
// stage's type map (if present) to annotate IR nodes.
type Processor struct{}

func (sp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	a := New(ctx.Universe)
	a.Types = ctx.Types
	ctx.IR = a.Lower(ctx.AstRoot)

	return ctx
}
