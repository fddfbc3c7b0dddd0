package optimizer

import "github.com/1cbyc/rust-compiler/internal/ir"

// RedundantLoadElimination is the sketch pass: within
// a straight-line Block, a second read of a name not separated from
// the first by a write to it (Store or Assign), a Call, or a nested
// Block is replaced with a Load of that name, signaling the value is
// already known rather than needing a fresh fetch. Each nested Block
// (an if/while/for body, or a bare block expression) is its own
// straight-line segment and starts over with no prior knowledge, since
// control flow may or may not have reached it.
type RedundantLoadElimination struct {
	changed int
}

func (r *RedundantLoadElimination) Name() string { return "redundant-load-elimination" }
func (r *RedundantLoadElimination) Stat() int    { return r.changed }

func (r *RedundantLoadElimination) Run(root ir.Node) (ir.Node, bool) {
	r.changed = 0
	result := r.visit(root)
	return result, r.changed > 0
}

func (r *RedundantLoadElimination) visit(n ir.Node) ir.Node {
	block, ok := n.(*ir.Block)
	if !ok {
		return n
	}
	seen := map[string]bool{}
	for i, s := range block.Stmts {
		block.Stmts[i] = r.visitStmt(s, seen)
	}
	return block
}

func (r *RedundantLoadElimination) visitStmt(s ir.Node, seen map[string]bool) ir.Node {
	switch v := s.(type) {
	case *ir.Assign:
		v.Value = r.visitValue(v.Value, seen)
		delete(seen, v.Name)
		return v
	case *ir.Store:
		v.Value = r.visitValue(v.Value, seen)
		delete(seen, v.Name)
		return v
	case *ir.Return:
		if v.Value != nil {
			v.Value = r.visitValue(v.Value, seen)
		}
		return v
	case *ir.Block:
		for name := range seen {
			delete(seen, name)
		}
		return r.visit(v)
	default:
		return r.visitValue(s, seen)
	}
}

func (r *RedundantLoadElimination) visitValue(n ir.Node, seen map[string]bool) ir.Node {
	switch v := n.(type) {
	case *ir.Block:
		for name := range seen {
			delete(seen, name)
		}
		return r.visit(v)
	case *ir.Var:
		if seen[v.Name] {
			r.changed++
			return &ir.Load{Name: v.Name, Typ: v.Typ}
		}
		seen[v.Name] = true
		return v
	case *ir.BinOp:
		if v.Left != nil {
			v.Left = r.visitValue(v.Left, seen)
		}
		if v.Right != nil {
			v.Right = r.visitValue(v.Right, seen)
		}
		return v
	case *ir.Call:
		for i, a := range v.Args {
			v.Args[i] = r.visitValue(a, seen)
		}
		for name := range seen {
			delete(seen, name)
		}
		return v
	default:
		return n
	}
}
