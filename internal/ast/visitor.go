package ast

// Visitor dispatches over every concrete node kind. Passes that only
// care about a handful of node types still implement the full
// interface — embedding a BaseVisitor (defined below) supplies no-op
// defaults for the rest.
type Visitor interface {
	VisitProgram(p *Program)
	VisitLiteral(l *Literal)
	VisitIdentifier(i *Identifier)
	VisitBinaryOp(b *BinaryOp)
	VisitUnaryOp(u *UnaryOp)
	VisitFunctionCall(f *FunctionCall)
	VisitBlock(b *Block)
	VisitExpressionStatement(e *ExpressionStatement)
	VisitFunctionDecl(f *FunctionDecl)
	VisitVariableDecl(vd *VariableDecl)
	VisitIf(i *If)
	VisitWhile(w *While)
	VisitFor(f *For)
	VisitReturn(r *Return)
	VisitStructDecl(s *StructDecl)
	VisitEnumDecl(e *EnumDecl)
	VisitImplBlock(i *ImplBlock)
	VisitTypeAnnotation(t *TypeAnnotation)
}

// BaseVisitor supplies no-op implementations of every Visitor method.
// Embed it and override only the methods a given pass needs.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)                           {}
func (BaseVisitor) VisitLiteral(*Literal)                           {}
func (BaseVisitor) VisitIdentifier(*Identifier)                     {}
func (BaseVisitor) VisitBinaryOp(*BinaryOp)                         {}
func (BaseVisitor) VisitUnaryOp(*UnaryOp)                           {}
func (BaseVisitor) VisitFunctionCall(*FunctionCall)                 {}
func (BaseVisitor) VisitBlock(*Block)                               {}
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement)   {}
func (BaseVisitor) VisitFunctionDecl(*FunctionDecl)                 {}
func (BaseVisitor) VisitVariableDecl(*VariableDecl)                 {}
func (BaseVisitor) VisitIf(*If)                                     {}
func (BaseVisitor) VisitWhile(*While)                               {}
func (BaseVisitor) VisitFor(*For)                                   {}
func (BaseVisitor) VisitReturn(*Return)                             {}
func (BaseVisitor) VisitStructDecl(*StructDecl)                     {}
func (BaseVisitor) VisitEnumDecl(*EnumDecl)                         {}
func (BaseVisitor) VisitImplBlock(*ImplBlock)                       {}
func (BaseVisitor) VisitTypeAnnotation(*TypeAnnotation)             {}
