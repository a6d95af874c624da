package parser

import (
	"github.com/lhaig/mjc/internal/diagnostic"
	"github.com/lhaig/mjc/internal/lexer"
)

// syncTokens are tokens the parser can synchronize to after an error
var syncTokens = map[lexer.TokenType]bool{
	lexer.CLASS:     true,
	lexer.PUBLIC:    true,
	lexer.IF:        true,
	lexer.WHILE:     true,
	lexer.FOR:       true,
	lexer.ASSERT:    true,
	lexer.PRINT:     true,
	lexer.BREAK:     true,
	lexer.RETURN:    true,
	lexer.RBRACE:    true,
	lexer.SEMICOLON: true,
	lexer.EOF:       true,
}

// Parser holds the parser state
type Parser struct {
	tokens []lexer.Token
	pos    int
	diags  *diagnostic.Diagnostics
}

// current returns the current token
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without consuming
func (p *Parser) peek() lexer.Token {
	return p.peekN(1)
}

// peekN returns the token n positions ahead without consuming
func (p *Parser) peekN(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos+n]
}

// advance moves to the next token and returns the consumed token
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches the expected type,
// otherwise reports an error
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	tok := p.current()
	if tok.Type != tt {
		if tok.Type == lexer.ILLEGAL {
			p.diags.Errorf(tok.Line, tok.Column, "%s", tok.Literal)
		} else {
			p.diags.Errorf(tok.Line, tok.Column, "expected %s, got %s", tt, tok.Type)
		}
		return tok
	}
	return p.advance()
}

// check returns true if the current token is of the given type
func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// match consumes the current token if it matches, returns true if consumed
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// synchronize skips tokens until a sync point is found.
// A semicolon sync point is consumed.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.current().Type == lexer.SEMICOLON {
			p.advance()
			return
		}
		if syncTokens[p.current().Type] {
			return
		}
		p.advance()
	}
}

// recover synchronizes after an error and guarantees forward progress
// from start.
func (p *Parser) recover(start int) {
	p.synchronize()
	if p.pos == start {
		p.advance()
	}
}
