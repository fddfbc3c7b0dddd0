package optimizer

import "github.com/1cbyc/rust-compiler/internal/ir"

// CodeSize strips Nop entries out of statement/argument lists (the
// inert placeholders struct/enum declarations lower to) and collapses
// a singleton plain-sequence Block — one with Tag "seq" and exactly
// one statement — into that statement directly, dropping the now-
// redundant wrapper. Tagged control-flow Blocks ("if", "while", "for",
// "fn", "impl") are left alone: their Tag is load-bearing structure for
// a downstream consumer, not decoration.
type CodeSize struct {
	changed int
}

func (c *CodeSize) Name() string { return "code-size" }
func (c *CodeSize) Stat() int    { return c.changed }

func (c *CodeSize) Run(root ir.Node) (ir.Node, bool) {
	c.changed = 0
	result := c.visit(root)
	return result, c.changed > 0
}

func (c *CodeSize) visit(n ir.Node) ir.Node {
	switch v := n.(type) {
	case *ir.Block:
		kept := make([]ir.Node, 0, len(v.Stmts))
		for _, s := range v.Stmts {
			if _, isNop := s.(*ir.Nop); isNop {
				c.changed++
				continue
			}
			kept = append(kept, c.collapse(s))
		}
		v.Stmts = kept
		return v
	case *ir.Assign:
		v.Value = c.collapse(v.Value)
		return v
	case *ir.Store:
		v.Value = c.collapse(v.Value)
		return v
	case *ir.Return:
		if v.Value != nil {
			v.Value = c.collapse(v.Value)
		}
		return v
	case *ir.Call:
		for i, a := range v.Args {
			v.Args[i] = c.collapse(a)
		}
		return v
	case *ir.BinOp:
		if v.Left != nil {
			v.Left = c.collapse(v.Left)
		}
		if v.Right != nil {
			v.Right = c.collapse(v.Right)
		}
		return v
	default:
		return n
	}
}

// collapse visits n, then unwraps a resulting singleton "seq" Block.
func (c *CodeSize) collapse(n ir.Node) ir.Node {
	visited := c.visit(n)
	block, ok := visited.(*ir.Block)
	if !ok || block.Tag != "seq" || len(block.Stmts) != 1 {
		return visited
	}
	c.changed++
	return block.Stmts[0]
}
