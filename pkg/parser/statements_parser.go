package parser

import (
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
)

// ParseProgram parses HAI statement* KTHXBYE. Nothing may follow KTHXBYE.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start, err := p.eat(lexer.KindHai)
	if err != nil {
		return nil, err
	}
	body := make([]ast.Statement, 0)
	for !p.atEnd() && !p.check(lexer.KindKthxbye) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.eat(lexer.KindKthxbye); err != nil {
		return nil, err
	}
	if tok, ok := p.current(); ok {
		return nil, &ParseError{Expected: EndOfInput, Found: tok.Kind.String(), Line: tok.Line, Column: tok.Column}
	}
	program := ast.NewProgram(body)
	p.annotate(program, start)
	return program, nil
}

// parseStatement dispatches on the leading token. An identifier always starts
// an assignment; unknown leaders fall through to an expression statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, ok := p.current()
	if !ok {
		return nil, p.unexpected("statement")
	}
	switch tok.Kind {
	case lexer.KindIHasA:
		return p.parseDeclaration()
	case lexer.KindVisible:
		return p.parsePrint()
	case lexer.KindGimmeh:
		return p.parseReadInput()
	case lexer.KindORly:
		return p.parseConditional()
	case lexer.KindIdentifier:
		return p.parseAssignment()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseDeclaration() (ast.Statement, error) {
	start, err := p.eat(lexer.KindIHasA)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(lexer.KindIdentifier)
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.check(lexer.KindItz) {
		p.pos++
		initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	decl := ast.NewDeclaration(name.Text, initializer)
	p.annotate(decl, start)
	return decl, nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	name, err := p.eat(lexer.KindIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.KindR); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	assign := ast.NewAssignment(name.Text, value)
	p.annotate(assign, name)
	return assign, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	start, err := p.eat(lexer.KindVisible)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewPrint(expr)
	p.annotate(stmt, start)
	return stmt, nil
}

func (p *Parser) parseReadInput() (ast.Statement, error) {
	start, err := p.eat(lexer.KindGimmeh)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(lexer.KindIdentifier)
	if err != nil {
		return nil, err
	}
	stmt := ast.NewReadInput(name.Text)
	p.annotate(stmt, start)
	return stmt, nil
}

// parseConditional parses O RLY? YA RLY ... [NO WAI ...] OIC. The condition
// is whatever IT holds when the node runs.
func (p *Parser) parseConditional() (ast.Statement, error) {
	start, err := p.eat(lexer.KindORly)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.KindYaRly); err != nil {
		return nil, err
	}
	then, err := p.parseBranch(lexer.KindNoWai, lexer.KindOic)
	if err != nil {
		return nil, err
	}
	var otherwise []ast.Statement
	if p.check(lexer.KindNoWai) {
		p.pos++
		otherwise, err = p.parseBranch(lexer.KindOic)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(lexer.KindOic); err != nil {
		return nil, err
	}
	stmt := ast.NewConditional(then, otherwise)
	p.annotate(stmt, start)
	return stmt, nil
}

// parseBranch collects statements until one of the terminators or the end of
// input; the caller decides whether the terminator it needs is present.
func (p *Parser) parseBranch(terminators ...lexer.Kind) ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0)
	for !p.atEnd() && !p.checkAny(terminators...) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) checkAny(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}
