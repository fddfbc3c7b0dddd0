package parser

import "github.com/1cbyc/rust-compiler/internal/pipeline"

// Processor parses ctx.Source into ctx.AstRoot, reporting Syntax
// diagnostics into ctx.Sink as it goes.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.Source, ctx.FilePath, ctx.Sink)
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
