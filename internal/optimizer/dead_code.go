package optimizer

import "github.com/1cbyc/rust-compiler/internal/ir"

// DeadCodeElimination removes (i) statements textually following a
// Return within the same Block, and (ii) an Assign whose name is never
// read again anywhere else in its enclosing Block — a conservative,
// intra-block live-range analysis. Assigns directly in the top-level
// "program" Block are not removed.
type DeadCodeElimination struct {
	changed int
}

func (d *DeadCodeElimination) Name() string { return "dead-code-elimination" }
func (d *DeadCodeElimination) Stat() int    { return d.changed }

func (d *DeadCodeElimination) Run(root ir.Node) (ir.Node, bool) {
	d.changed = 0
	result := d.visit(root)
	return result, d.changed > 0
}

func (d *DeadCodeElimination) visit(n ir.Node) ir.Node {
	switch v := n.(type) {
	case *ir.Block:
		for i, s := range v.Stmts {
			v.Stmts[i] = d.visit(s)
		}
		v.Stmts = d.pruneAfterReturn(v.Stmts)
		if v.Tag != "program" {
			v.Stmts = d.pruneDeadAssigns(v.Stmts)
		}
		return v
	case *ir.Assign:
		v.Value = d.visit(v.Value)
		return v
	case *ir.Store:
		v.Value = d.visit(v.Value)
		return v
	case *ir.Return:
		if v.Value != nil {
			v.Value = d.visit(v.Value)
		}
		return v
	case *ir.Call:
		for i, a := range v.Args {
			v.Args[i] = d.visit(a)
		}
		return v
	case *ir.BinOp:
		if v.Left != nil {
			v.Left = d.visit(v.Left)
		}
		if v.Right != nil {
			v.Right = d.visit(v.Right)
		}
		return v
	default:
		return n
	}
}

func (d *DeadCodeElimination) pruneAfterReturn(stmts []ir.Node) []ir.Node {
	for i, s := range stmts {
		if _, ok := s.(*ir.Return); ok {
			if i+1 < len(stmts) {
				d.changed += len(stmts) - (i + 1)
			}
			return stmts[:i+1]
		}
	}
	return stmts
}

func (d *DeadCodeElimination) pruneDeadAssigns(stmts []ir.Node) []ir.Node {
	kept := make([]ir.Node, 0, len(stmts))
	for i, s := range stmts {
		assign, ok := s.(*ir.Assign)
		if !ok || isLiveElsewhere(assign.Name, stmts, i) {
			kept = append(kept, s)
			continue
		}
		d.changed++
	}
	return kept
}

// isLiveElsewhere reports whether name is read by a Var anywhere in
// stmts other than stmts[skip] itself.
func isLiveElsewhere(name string, stmts []ir.Node, skip int) bool {
	for i, s := range stmts {
		if i == skip {
			continue
		}
		live := false
		ir.Walk(s, func(n ir.Node) {
			if v, ok := n.(*ir.Var); ok && v.Name == name {
				live = true
			}
		})
		if live {
			return true
		}
	}
	return false
}
