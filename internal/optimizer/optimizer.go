// Package optimizer implements the IR pass manager:
// an ordered list of passes run once each over the lowered IR, plus
// the pass implementations (constant folding, dead-code elimination,
// loop-invariant code motion and redundant-load elimination sketches,
// and a code-size cleanup pass), each with a per-pass "nodes changed"
// counter recovered from `original_source/src/optimizer.c`'s
// `-opt-stats` flag.
package optimizer

import "github.com/1cbyc/rust-compiler/internal/ir"

// Pass transforms an IR tree, returning the (possibly new) root and
// whether it changed anything. Every pass is deterministic: equal
// inputs produce equal outputs.
type Pass interface {
	Name() string
	Run(root ir.Node) (ir.Node, bool)
	// Stat reports how many nodes the most recent Run call changed.
	Stat() int
}

// Manager holds an ordered list of passes and runs each exactly once
// per Run call. It does not iterate passes to a fixed point on its
// own; a caller that wants that effect enqueues a pass multiple times
//.
type Manager struct {
	passes   []Pass
	modified bool
}

// DefaultPasses returns the fixed pass order the C reference
// (`original_source/src/optimizer.c`) runs: fold_constants,
// eliminate_dead_code, hoist_loop_invariants, eliminate_redundant_loads,
// then this implementation's code-size cleanup.
func DefaultPasses() []Pass {
	return []Pass{
		&ConstantFolding{},
		&DeadCodeElimination{},
		&LoopInvariantMotion{},
		&RedundantLoadElimination{},
		&CodeSize{},
	}
}

// New creates a Manager with the given passes, in run order.
func New(passes ...Pass) *Manager {
	return &Manager{passes: passes}
}

// Modified reports whether any pass run so far changed the IR.
func (m *Manager) Modified() bool { return m.modified }

// Run executes every pass once, in order, threading the (possibly
// replaced) root through each.
func (m *Manager) Run(root ir.Node) ir.Node {
	for _, pass := range m.passes {
		next, changed := pass.Run(root)
		if changed {
			m.modified = true
		}
		root = next
	}
	return root
}

// Stats returns each pass's name and most recent nodes-changed count,
// in run order — consumed by the CLI's --emit=ir summary.
func (m *Manager) Stats() []PassStat {
	stats := make([]PassStat, len(m.passes))
	for i, p := range m.passes {
		stats[i] = PassStat{Name: p.Name(), NodesChanged: p.Stat()}
	}
	return stats
}

// PassStat is one pass's contribution to an optimizer run summary.
type PassStat struct {
	Name         string
	NodesChanged int
}
