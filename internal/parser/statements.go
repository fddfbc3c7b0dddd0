package parser

import (
	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/token"
)

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.FN:
		return p.parseFunctionDecl()
	case token.LET:
		return p.parseVariableDecl()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.STRUCT:
		return p.parseStructDecl()
	case token.ENUM:
		return p.parseEnumDecl()
	case token.IMPL:
		return p.parseImplBlock()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

// function = 'fn' IDENT '(' params? ')' ('->' type)? block
func (p *Parser) parseFunctionDecl() ast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		p.synchronize()
		return nil
	}

	params := p.parseParamList()

	var ret *ast.TypeAnnotation
	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume '->'
		p.nextToken() // move to type
		ret = p.parseTypeAnnotation()
	}

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}
	body := p.parseBlockBody()

	return &ast.FunctionDecl{
		Name: name, Params: params, ReturnType: ret, Body: body,
		SpanVal: p.span(start),
	}
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	for {
		if !p.curTokenIs(token.IDENT) {
			p.errorf("expected parameter name, found %s", p.curToken.Type)
			break
		}
		name := p.curToken.Lexeme
		if !p.expectPeek(token.COLON) {
			break
		}
		p.nextToken()
		typ := p.parseTypeAnnotation()
		params = append(params, &ast.Param{Name: name, Type: typ})

		if p.peekTokenIs(token.COMMA) {
			p.nextToken() // consume ','
			p.nextToken() // move to next param name
			continue
		}
		break
	}
	p.expectPeek(token.RPAREN)
	return params
}

// variable = 'let' 'mut'? IDENT (':' type)? ('=' expr)? ';'
func (p *Parser) parseVariableDecl() ast.Statement {
	start := p.curToken.Pos
	mutable := false
	if p.peekTokenIs(token.MUT) {
		p.nextToken()
		mutable = true
	}
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme

	var typ *ast.TypeAnnotation
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		typ = p.parseTypeAnnotation()
	}

	var init ast.Expression
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // consume '='
		if p.peekTokenIs(token.SEMICOLON) {
			p.errorf("expected expression after '=', found %s", p.peekToken.Type)
		} else {
			p.nextToken() // move to expression start
			init = p.parseExpression(Lowest)
		}
	}

	if !p.expectPeek(token.SEMICOLON) {
		p.synchronize()
		return &ast.VariableDecl{Name: name, Mutable: mutable, Type: typ, Initializer: init, SpanVal: p.span(start)}
	}

	return &ast.VariableDecl{Name: name, Mutable: mutable, Type: typ, Initializer: init, SpanVal: p.span(start)}
}

func (p *Parser) parseIfStatement() ast.Statement {
	expr := p.parseIfExpression()
	ifExpr, ok := expr.(*ast.If)
	if !ok {
		return nil
	}
	return ifExpr
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.curToken.Pos
	p.nextToken() // move to condition
	cond := p.parseExpression(Lowest)

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}
	body := p.parseBlockBody()

	return &ast.While{Condition: cond, Body: body, SpanVal: p.span(start)}
}

// for = 'for' IDENT 'in' expr '..' expr block
func (p *Parser) parseForStatement() ast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	varName := p.curToken.Lexeme

	if !p.expectPeek(token.IN) {
		p.synchronize()
		return nil
	}
	p.nextToken() // move to range start
	rangeStart := p.parseExpression(Additive)

	if !p.expectPeek(token.DOTDOT) {
		p.synchronize()
		return nil
	}
	p.nextToken() // move to range end
	rangeEnd := p.parseExpression(Additive)

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}
	body := p.parseBlockBody()

	return &ast.For{Var: varName, Start: rangeStart, End: rangeEnd, Body: body, SpanVal: p.span(start)}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.curToken.Pos
	var value ast.Expression
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		value = p.parseExpression(Lowest)
	}
	if !p.expectPeek(token.SEMICOLON) {
		p.synchronize()
	}
	return &ast.Return{Value: value, SpanVal: p.span(start)}
}

// struct = 'struct' IDENT '{' (IDENT ':' type),* '}' ';'
func (p *Parser) parseStructDecl() ast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}

	var fields []*ast.Field
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			break
		}
		fieldName := p.curToken.Lexeme
		if !p.expectPeek(token.COLON) {
			break
		}
		p.nextToken()
		typ := p.parseTypeAnnotation()
		fields = append(fields, &ast.Field{Name: fieldName, Type: typ})

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expectPeek(token.RBRACE)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.StructDecl{Name: name, Fields: fields, SpanVal: p.span(start)}
}

// enum = 'enum' IDENT '{' variant,* '}' ';'  where variant = IDENT ('(' type,* ')')?
func (p *Parser) parseEnumDecl() ast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}

	var variants []*ast.Variant
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			break
		}
		v := &ast.Variant{Name: p.curToken.Lexeme}

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			p.nextToken()
			for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
				v.Payload = append(v.Payload, p.parseTypeAnnotation())
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
					p.nextToken()
					continue
				}
				p.nextToken()
			}
		}
		variants = append(variants, v)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expectPeek(token.RBRACE)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.EnumDecl{Name: name, Variants: variants, SpanVal: p.span(start)}
}

// impl = 'impl' IDENT '{' function* '}'
func (p *Parser) parseImplBlock() ast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return nil
	}
	typeName := p.curToken.Lexeme

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return nil
	}
	p.nextToken()

	var fns []*ast.FunctionDecl
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.FN) {
			if decl, ok := p.parseFunctionDecl().(*ast.FunctionDecl); ok {
				fns = append(fns, decl)
			}
		} else {
			p.errorf("expected function declaration in impl block, found %s", p.curToken.Type)
			p.synchronize()
		}
		p.nextToken()
	}

	return &ast.ImplBlock{TypeName: typeName, Functions: fns, SpanVal: p.span(start)}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.curToken.Pos
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ExpressionStatement{Expr: expr, SpanVal: p.span(start)}
}

// parseBlock parses a brace-delimited block appearing in statement
// position (e.g. a bare `{ ... }`).
func (p *Parser) parseBlock() ast.Statement {
	return p.parseBlockBody()
}

// parseBlockBody assumes curToken is '{' and consumes through the
// matching '}', collecting statements and an optional trailing
// expression (one without a terminating ';').
//
// A statement parser leaves curToken sitting ON its own last consumed
// token (a ';' or a nested block's own '}'), not past it — the driving
// loop here is what steps onto the next fresh token, mirroring
// ParseProgram below.
func (p *Parser) parseBlockBody() *ast.Block {
	start := p.curToken.Pos
	block := &ast.Block{}
	p.nextToken() // consume '{'

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		before := p.curToken
		stmt := p.parseStatementRecovering()

		if exprStmt, ok := stmt.(*ast.ExpressionStatement); ok &&
			!p.curTokenIs(token.SEMICOLON) && p.peekTokenIs(token.RBRACE) {
			// No trailing ';' and the block ends right here: this is
			// the block's tail expression, not an ordinary statement.
			block.TailExpr = exprStmt.Expr
			p.nextToken() // land on '}' so the loop above terminates
		} else {
			if stmt != nil {
				block.Statements = append(block.Statements, stmt)
			}
			if p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.RBRACE) {
				p.nextToken()
			}
		}

		if p.curToken == before && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			// Nothing above advanced past this token; force progress
			// so a malformed statement can't spin the loop forever.
			p.nextToken()
		}
	}

	block.SpanVal = p.span(start)
	return block
}
