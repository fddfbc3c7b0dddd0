// Package parser implements the recursive-descent, two-token-lookahead
// parser: a Pratt expression parser plus statement
// dispatch, with panic-mode error recovery so a single bad statement
// never aborts the whole parse.
package parser

import (
	"fmt"

	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/lexer"
	"github.com/1cbyc/rust-compiler/internal/token"
)

// Precedence levels, lowest to highest, table.
const (
	Lowest = iota
	Assignment  // = += -= *= /= %=  (right-assoc)
	LogicalOr   // | || ^
	LogicalAnd  // & &&
	Comparison  // == !=
	Relational  // < > <= >=
	Shift       // << >>
	Additive    // + -
	Multiplicative // * / %
	Prefix      // unary - !
)

var precedences = map[token.Type]int{
	token.ASSIGN:         Assignment,
	token.PLUS_ASSIGN:    Assignment,
	token.MINUS_ASSIGN:   Assignment,
	token.STAR_ASSIGN:    Assignment,
	token.SLASH_ASSIGN:   Assignment,
	token.PERCENT_ASSIGN: Assignment,

	token.PIPE:   LogicalOr,
	token.OR_OR:  LogicalOr,
	token.CARET:  LogicalOr,

	token.AMP:     LogicalAnd,
	token.AND_AND: LogicalAnd,

	token.EQ:     Comparison,
	token.NOT_EQ: Comparison,

	token.LT:  Relational,
	token.GT:  Relational,
	token.LTE: Relational,
	token.GTE: Relational,

	token.LSHIFT: Shift,
	token.RSHIFT: Shift,

	token.PLUS:  Additive,
	token.MINUS: Additive,

	token.STAR:    Multiplicative,
	token.SLASH:   Multiplicative,
	token.PERCENT: Multiplicative,
}

// assignmentOps is used to right-associate the level-0 row: the
// parser recurses at one below the operator's precedence (other
// binary operators recurse at their own) after an assignment operator.
var assignmentOps = map[token.Type]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser consumes a token stream and produces a Program, reporting
// into the shared diagnostics sink rather than raising.
type Parser struct {
	lex  *lexer.Lexer
	sink *diagnostics.Sink
	file string

	curToken  token.Token
	peekToken token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New creates a Parser over source, reporting diagnostics into sink.
func New(source, file string, sink *diagnostics.Sink) *Parser {
	p := &Parser{
		lex:  lexer.New(source, file),
		sink: sink,
		file: file,
	}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.INTEGER:    p.parseIntegerLiteral,
		token.BIGINT:     p.parseBigIntegerLiteral,
		token.FLOAT:      p.parseFloatLiteral,
		token.STRING:     p.parseStringLiteral,
		token.CHAR:       p.parseCharLiteral,
		token.TRUE:       p.parseBoolLiteral,
		token.FALSE:      p.parseBoolLiteral,
		token.IDENT:      p.parseIdentifierOrCall,
		token.LPAREN:     p.parseGroupedExpression,
		token.MINUS:      p.parseUnaryExpression,
		token.BANG:       p.parseUnaryExpression,
		token.LBRACE:     p.parseBlockExpression,
		token.IF:         p.parseIfExpression,
	}

	p.infixFns = map[token.Type]infixParseFn{}
	for t := range precedences {
		p.infixFns[t] = p.parseBinaryExpression
	}

	// Prime curToken/peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return Lowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return Lowest
}

// expectPeek advances past the peek token if it matches t, reporting
// a Syntax diagnostic and returning false otherwise.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, found %s", t, p.peekToken.Type)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.sink.Report(diagnostics.Syntax, diagnostics.Error, fmt.Sprintf(format, args...), p.curToken.Pos, "")
}

func (p *Parser) span(start token.Position) ast.Span {
	return ast.Span{Start: start, End: p.curToken.Pos}
}

// synchronize implements panic-mode recovery: advance
// to the next ';', a closing delimiter, or the start of the next
// top-level statement keyword.
var syncKeywords = map[token.Type]bool{
	token.FN: true, token.LET: true, token.IF: true, token.WHILE: true,
	token.FOR: true, token.RETURN: true, token.STRUCT: true, token.ENUM: true,
	token.IMPL: true,
}

func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			return
		}
		if p.curTokenIs(token.RBRACE) || p.curTokenIs(token.RPAREN) || p.curTokenIs(token.RBRACKET) {
			return
		}
		if syncKeywords[p.peekToken.Type] {
			p.nextToken()
			return
		}
		p.nextToken()
	}
}

// ParseProgram parses the entire token stream into a Program, one
// top-level statement at a time, recovering from any parse error
// before continuing to the next statement.
func (p *Parser) ParseProgram() *ast.Program {
	startPos := p.curToken.Pos
	prog := &ast.Program{File: p.file}

	for !p.curTokenIs(token.EOF) {
		before := p.curToken
		stmt := p.parseStatementRecovering()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}

		// A statement parser leaves curToken on its own last consumed
		// token (a ';' or a block's own closing '}'); step past it so
		// the next iteration starts fresh. There's no enclosing block
		// at the top level, so a '}' seen here always belongs to the
		// statement just parsed, never a terminator to preserve.
		if p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.RBRACE) {
			p.nextToken()
		}

		if p.curToken == before && !p.curTokenIs(token.EOF) {
			p.nextToken()
		}
	}

	prog.SpanVal = ast.Span{Start: startPos, End: p.curToken.Pos}
	return prog
}

func (p *Parser) parseStatementRecovering() (stmt ast.Statement) {
	before := p.curToken
	stmt = p.parseStatement()
	if stmt == nil && p.curToken == before {
		// No progress was made: force an advance so synchronize
		// can't spin forever on a single unconsumed token.
		p.errorf("unexpected token %s", p.curToken.Type)
		p.synchronize()
	}
	return stmt
}
