package ir

// Visitor dispatches on concrete IR node kind, reusing the ast
// package's sum-type-with-exhaustive-match idiom for the IR tree.
type Visitor interface {
	VisitBlock(*Block)
	VisitAssign(*Assign)
	VisitConst(*Const)
	VisitVar(*Var)
	VisitBinOp(*BinOp)
	VisitCall(*Call)
	VisitReturn(*Return)
	VisitLoad(*Load)
	VisitStore(*Store)
	VisitJump(*Jump)
	VisitLabel(*Label)
	VisitNop(*Nop)
}

// BaseVisitor gives every method a no-op default so a caller need only
// override the ones it cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitBlock(*Block)   {}
func (BaseVisitor) VisitAssign(*Assign) {}
func (BaseVisitor) VisitConst(*Const)   {}
func (BaseVisitor) VisitVar(*Var)       {}
func (BaseVisitor) VisitBinOp(*BinOp)   {}
func (BaseVisitor) VisitCall(*Call)     {}
func (BaseVisitor) VisitReturn(*Return) {}
func (BaseVisitor) VisitLoad(*Load)     {}
func (BaseVisitor) VisitStore(*Store)   {}
func (BaseVisitor) VisitJump(*Jump)     {}
func (BaseVisitor) VisitLabel(*Label)   {}
func (BaseVisitor) VisitNop(*Nop)       {}
