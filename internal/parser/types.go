package parser

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/token"
)

// parseTypeAnnotation parses a syntactic type reference. Assumes
// curToken is the first token of the type.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	start := p.curToken.Pos

	if p.curTokenIs(token.AMP) {
		mut := false
		p.nextToken()
		if p.curTokenIs(token.MUT) {
			mut = true
			p.nextToken()
		}
		inner := p.parseTypeAnnotation()
		if inner == nil {
			return nil
		}
		return &ast.TypeAnnotation{Name: inner.Name, Ref: true, RefMut: mut, Args: inner.Args, SpanVal: p.span(start)}
	}

	if p.curTokenIs(token.STAR) {
		p.nextToken()
		inner := p.parseTypeAnnotation()
		if inner == nil {
			return nil
		}
		return &ast.TypeAnnotation{Name: inner.Name, Pointer: true, Args: inner.Args, SpanVal: p.span(start)}
	}

	if p.curTokenIs(token.LBRACKET) {
		p.nextToken()
		elem := p.parseTypeAnnotation()
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken() // consume ';'
			p.nextToken() // move to length
			length := 0
			if p.curToken.Type == token.INTEGER {
				if v, ok := p.curToken.Literal.(int64); ok {
					length = int(v)
				}
			}
			p.expectPeek(token.RBRACKET)
			return &ast.TypeAnnotation{Name: "array", IsArray: true, ArrayLen: length, Args: []*ast.TypeAnnotation{elem}, SpanVal: p.span(start)}
		}
		p.expectPeek(token.RBRACKET)
		return &ast.TypeAnnotation{Name: "slice", Args: []*ast.TypeAnnotation{elem}, SpanVal: p.span(start)}
	}

	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected type name, found %s", p.curToken.Type)
		return &ast.TypeAnnotation{Name: "?", SpanVal: p.span(start)}
	}

	name := p.curToken.Lexeme
	typ := &ast.TypeAnnotation{Name: name}

	if p.peekTokenIs(token.LT) {
		p.nextToken() // consume '<'
		p.nextToken() // move to first arg
		for {
			arg := p.parseTypeAnnotation()
			typ.Args = append(typ.Args, arg)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				continue
			}
			break
		}
		p.expectPeek(token.GT)
	}

	typ.SpanVal = p.span(start)
	return typ
}
