package optimizer

import "github.com/1cbyc/rust-compiler/internal/ir"

// LoopInvariantMotion is the sketch pass: within a
// while/for loop's body, an Assign whose value is pure (built only
// from Const and reads of names the loop body never reassigns) is
// hoisted to immediately precede the loop. Order among hoisted
// statements is preserved. This is intentionally limited to Assign
// statements — hoisting a bare expression statement with no binding
// would have no observable effect, so there is nothing to gain from
// chasing that case.
type LoopInvariantMotion struct {
	changed int
}

func (l *LoopInvariantMotion) Name() string { return "loop-invariant-motion" }
func (l *LoopInvariantMotion) Stat() int    { return l.changed }

func (l *LoopInvariantMotion) Run(root ir.Node) (ir.Node, bool) {
	l.changed = 0
	result := l.visitBlock(root)
	return result, l.changed > 0
}

func (l *LoopInvariantMotion) visitBlock(n ir.Node) ir.Node {
	block, ok := n.(*ir.Block)
	if !ok {
		l.visitGeneric(n)
		return n
	}

	out := make([]ir.Node, 0, len(block.Stmts))
	for _, s := range block.Stmts {
		if loop, ok := s.(*ir.Block); ok && (loop.Tag == "while" || loop.Tag == "for") {
			out = append(out, l.hoistFromLoop(loop)...)
			out = append(out, loop)
			continue
		}
		if nested, ok := s.(*ir.Block); ok {
			out = append(out, l.visitBlock(nested))
			continue
		}
		l.visitGeneric(s)
		out = append(out, s)
	}
	block.Stmts = out
	return block
}

// hoistFromLoop extracts hoistable Assign statements from loop's body
// (its last Stmts entry, per this lowering's while/for shape) and
// returns them in original order.
func (l *LoopInvariantMotion) hoistFromLoop(loop *ir.Block) []ir.Node {
	if len(loop.Stmts) == 0 {
		return nil
	}
	body, ok := loop.Stmts[len(loop.Stmts)-1].(*ir.Block)
	if !ok {
		return nil
	}

	modified := modifiedNames(body)
	if loop.Tag == "for" {
		if init, ok := loop.Stmts[0].(*ir.Assign); ok {
			modified[init.Name] = true
		}
	}

	var hoisted []ir.Node
	var kept []ir.Node
	for _, s := range body.Stmts {
		assign, ok := s.(*ir.Assign)
		if ok && isPure(assign.Value, modified) {
			hoisted = append(hoisted, assign)
			l.changed++
			continue
		}
		kept = append(kept, s)
	}
	body.Stmts = kept
	return hoisted
}

func (l *LoopInvariantMotion) visitGeneric(n ir.Node) {
	switch v := n.(type) {
	case *ir.Assign:
		l.visitBlock(v.Value)
	case *ir.Store:
		l.visitBlock(v.Value)
	case *ir.Return:
		if v.Value != nil {
			l.visitBlock(v.Value)
		}
	}
}

func modifiedNames(n ir.Node) map[string]bool {
	names := map[string]bool{}
	ir.Walk(n, func(node ir.Node) {
		switch v := node.(type) {
		case *ir.Assign:
			names[v.Name] = true
		case *ir.Store:
			names[v.Name] = true
		}
	})
	return names
}

// isPure reports whether value contains no Call and reads no name in
// modified.
func isPure(value ir.Node, modified map[string]bool) bool {
	pure := true
	ir.Walk(value, func(n ir.Node) {
		switch v := n.(type) {
		case *ir.Call:
			pure = false
		case *ir.Var:
			if modified[v.Name] {
				pure = false
			}
		case *ir.Load:
			if modified[v.Name] {
				pure = false
			}
		}
	})
	return pure
}
