// Package parser builds the LOLCODE syntax tree from a token stream by
// recursive descent. It stops at the first structural error.
package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
)

// EndOfInput names the missing token in errors raised after the last token.
const EndOfInput = "EOF"

// ParseError reports a missing or misplaced token.
type ParseError struct {
	Expected string
	Found    string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	if e.Found == EndOfInput {
		return fmt.Sprintf("Expected %s but found EOF at end of input.", e.Expected)
	}
	return fmt.Sprintf("Expected %s but found %s at line %d.", e.Expected, e.Found, e.Line)
}

// Parser walks a token slice once, left to right.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New wraps tokens for parsing. The slice is not copied or modified.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is a shortcut for New(tokens).ParseProgram().
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

func (p *Parser) current() (lexer.Token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return lexer.Token{}, false
}

func (p *Parser) check(kind lexer.Kind) bool {
	tok, ok := p.current()
	return ok && tok.Kind == kind
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// eat consumes the current token when it has the given kind.
func (p *Parser) eat(kind lexer.Kind) (lexer.Token, error) {
	tok, ok := p.current()
	if ok && tok.Kind == kind {
		p.pos++
		return tok, nil
	}
	return lexer.Token{}, p.unexpected(kind.String())
}

func (p *Parser) unexpected(expected string) *ParseError {
	tok, ok := p.current()
	if !ok {
		return &ParseError{Expected: expected, Found: EndOfInput}
	}
	return &ParseError{Expected: expected, Found: tok.Kind.String(), Line: tok.Line, Column: tok.Column}
}

func (p *Parser) previous() lexer.Token {
	if p.pos == 0 || p.pos > len(p.tokens) {
		return lexer.Token{}
	}
	return p.tokens[p.pos-1]
}

// annotate stamps a node with the span from start to the last consumed token.
func (p *Parser) annotate(node ast.Node, start lexer.Token) {
	last := p.previous()
	ast.SetSpan(node, ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   tokenEnd(last),
	})
}

func tokenEnd(tok lexer.Token) ast.Position {
	width := utf8.RuneCountInString(tok.Text)
	if tok.Kind == lexer.KindYarn {
		width += 2
	}
	return ast.Position{Line: tok.Line, Column: tok.Column + width}
}
