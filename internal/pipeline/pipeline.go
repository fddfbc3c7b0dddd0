// Package pipeline wires the compiler's stages — lexer, parser,
// checker, semantic lowering, optimizer — into an ordered run over one
// PipelineContext per compilation.
package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline in run order: the standard compilation run is
// lexer -> parser -> checker -> semantics -> optimizer, but callers
// wanting a partial pipeline (e.g. a "parse only" tool) just pass a
// shorter slice.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, checking the sink after every stage: once
// it can no longer recover (a Fatal diagnostic was raised, or the
// message cap was reached) later stages are skipped rather than run
// against a context no stage can trust.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if !ctx.Sink.CanRecover() {
			break
		}
	}
	return ctx
}
