package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1cbyc/rust-compiler/internal/token"
)

func pos(offset int) token.Position {
	return token.Position{Line: 1, Column: offset + 1, Offset: offset}
}

func span(start, end int) Span {
	return Span{Start: pos(start), End: pos(end)}
}

func TestSpanContains(t *testing.T) {
	outer := span(0, 20)
	inner := span(5, 10)
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}

func TestProgramSpanEnclosesStatements(t *testing.T) {
	decl := &VariableDecl{
		Name:        "x",
		Initializer: &Literal{Kind: IntLiteral, Int: 1, SpanVal: span(8, 9)},
		SpanVal:     span(0, 10),
	}
	prog := &Program{
		File:       "test.rs",
		Statements: []Statement{decl},
		SpanVal:    span(0, 10),
	}

	assert.True(t, prog.Span().Contains(decl.Span()))
	assert.True(t, decl.Span().Contains(decl.Initializer.Span()))
}

// countingVisitor counts Literal, Identifier and BinaryOp visits,
// confirming Accept dispatches to the matching method for those kinds.
type countingVisitor struct {
	BaseVisitor
	literals    int
	identifiers int
	binaryOps   int
}

func (c *countingVisitor) VisitLiteral(*Literal)       { c.literals++ }
func (c *countingVisitor) VisitIdentifier(*Identifier) { c.identifiers++ }
func (c *countingVisitor) VisitBinaryOp(*BinaryOp)     { c.binaryOps++ }

func TestAcceptDispatchesToVisitor(t *testing.T) {
	expr := &BinaryOp{
		Op:      "+",
		Left:    &Identifier{Name: "x", SpanVal: span(0, 1)},
		Right:   &Literal{Kind: IntLiteral, Int: 1, SpanVal: span(4, 5)},
		SpanVal: span(0, 5),
	}

	v := &countingVisitor{}
	expr.Accept(v)
	expr.Left.Accept(v)
	expr.Right.Accept(v)

	assert.Equal(t, 1, v.binaryOps)
	assert.Equal(t, 1, v.identifiers)
	assert.Equal(t, 1, v.literals)
}

func TestBlockTailExprIsOptional(t *testing.T) {
	b := &Block{SpanVal: span(0, 2)}
	assert.Nil(t, b.TailExpr)

	b.TailExpr = &Literal{Kind: BoolLiteral, Bool: true, SpanVal: span(0, 1)}
	assert.NotNil(t, b.TailExpr)
}
