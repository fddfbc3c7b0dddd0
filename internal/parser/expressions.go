package parser

import (
	"math/big"

	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/token"
)

// parseExpression is the Pratt driver: parse a prefix production,
// then repeatedly fold in infix operators whose precedence exceeds
// the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("unexpected token %s in expression position", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(int64)
	return &ast.Literal{Kind: ast.IntLiteral, Int: val, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

func (p *Parser) parseBigIntegerLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(*big.Int)
	return &ast.Literal{Kind: ast.BigIntLiteral, BigInt: val, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(float64)
	return &ast.Literal{Kind: ast.FloatLiteral, Float: val, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(string)
	return &ast.Literal{Kind: ast.StringLiteralKind, Str: val, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(rune)
	return &ast.Literal{Kind: ast.CharLiteralKind, Char: val, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.curToken
	return &ast.Literal{Kind: ast.BoolLiteral, Bool: tok.Type == token.TRUE, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
}

// parseIdentifierOrCall distinguishes a bare identifier from a call
// expression `name(args)`.
func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.curToken
	name := tok.Lexeme

	if !p.peekTokenIs(token.LPAREN) {
		return &ast.Identifier{Name: name, SpanVal: ast.Span{Start: tok.Pos, End: tok.Pos}}
	}

	p.nextToken() // consume '('
	var args []ast.Expression
	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		args = append(args, p.parseExpression(Lowest))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			args = append(args, p.parseExpression(Lowest))
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return &ast.FunctionCall{Callee: name, Args: args, SpanVal: p.span(tok.Pos)}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	p.nextToken()
	operand := p.parseExpression(Prefix)
	return &ast.UnaryOp{Op: op, Operand: operand, SpanVal: p.span(tok.Pos)}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	precedence := p.curPrecedence()
	p.nextToken()

	// Level 0 (assignment) is right-associative: recurse one level below
	// its precedence so `a = b = c` parses as `a = (b = c)`.
	if assignmentOps[tok.Type] {
		right := p.parseExpression(precedence - 1)
		return &ast.BinaryOp{Op: op, Left: left, Right: right, SpanVal: ast.Span{Start: left.Span().Start, End: p.curToken.Pos}}
	}

	right := p.parseExpression(precedence)
	return &ast.BinaryOp{Op: op, Left: left, Right: right, SpanVal: ast.Span{Start: left.Span().Start, End: p.curToken.Pos}}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	expr := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseBlockExpression() ast.Expression {
	return p.parseBlockBody()
}

// parseIfExpression handles both if-as-statement and if-as-expression
// uses, since the language treats a block's tail expression uniformly.
func (p *Parser) parseIfExpression() ast.Expression {
	start := p.curToken.Pos
	p.nextToken() // move to condition
	cond := p.parseExpression(Lowest)

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}
	thenBlock := p.parseBlockBody()

	var elseBlock *ast.Block
	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // consume 'else'
		if !p.expectPeek(token.LBRACE) {
			p.synchronize()
		} else {
			elseBlock = p.parseBlockBody()
		}
	}

	return &ast.If{Condition: cond, Then: thenBlock, Else: elseBlock, SpanVal: p.span(start)}
}
