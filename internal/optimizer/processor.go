package optimizer

import (
	"github.com/1cbyc/rust-compiler/internal/ir"
	"github.com/1cbyc/rust-compiler/internal/pipeline"
)

// Processor runs the default pass list once over ctx.IR and exports
// each pass's nodes-changed count for the CLI's --emit=ir summary.
type Processor struct{}

func (op *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.IR == nil {
		return ctx
	}

	m := New(DefaultPasses()...)
	result := m.Run(ctx.IR)
	if block, ok := result.(*ir.Block); ok {
		ctx.IR = block
	}

	stats := m.Stats()
	ctx.OptimizerStats = make([]pipeline.PassStat, len(stats))
	for i, s := range stats {
		ctx.OptimizerStats[i] = pipeline.PassStat{Name: s.Name, NodesChanged: s.NodesChanged}
	}

	return ctx
}
