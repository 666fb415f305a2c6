package parser

import (
	"strconv"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
)

var binaryOperators = map[lexer.Kind]ast.BinaryOperator{
	lexer.KindSumOf:      ast.BinarySum,
	lexer.KindDiffOf:     ast.BinaryDiff,
	lexer.KindProduktOf:  ast.BinaryProdukt,
	lexer.KindQuoshuntOf: ast.BinaryQuoshunt,
	lexer.KindModOf:      ast.BinaryMod,
	lexer.KindBiggrOf:    ast.BinaryBiggr,
	lexer.KindSmallrOf:   ast.BinarySmallr,
	lexer.KindBothSaem:   ast.BinaryBothSaem,
	lexer.KindDiffrint:   ast.BinaryDiffrint,
	lexer.KindBothOf:     ast.BinaryBothOf,
	lexer.KindEitherOf:   ast.BinaryEitherOf,
}

// parseExpression parses one prefix-form expression. Operands recurse
// greedily with no lookahead, so a nested operator on the left claims as
// many tokens as it can before the outer operator sees its right operand.
func (p *Parser) parseExpression() (ast.Expression, error) {
	tok, ok := p.current()
	if !ok {
		return nil, p.unexpected("expression")
	}
	switch {
	case tok.Kind.IsBinaryOperator():
		return p.parseBinary(tok, binaryOperators[tok.Kind])
	case tok.Kind.IsLiteral():
		p.pos++
		return literalFromToken(tok)
	}
	switch tok.Kind {
	case lexer.KindNot:
		p.pos++
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr := ast.NewUnaryOp(ast.UnaryNot, operand)
		p.annotate(expr, tok)
		return expr, nil
	case lexer.KindIdentifier:
		p.pos++
		ref := ast.NewVariableRef(tok.Text)
		p.annotate(ref, tok)
		return ref, nil
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseBinary(start lexer.Token, op ast.BinaryOperator) (ast.Expression, error) {
	p.pos++
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.KindAn) {
		p.pos++
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	expr := ast.NewBinaryOp(op, left, right)
	p.annotate(expr, start)
	return expr, nil
}

func literalFromToken(tok lexer.Token) (ast.Expression, error) {
	var lit ast.Expression
	switch tok.Kind {
	case lexer.KindNumbr:
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, literalError(tok)
		}
		lit = ast.NewIntegerLiteral(value)
	case lexer.KindNumbar:
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, literalError(tok)
		}
		lit = ast.NewFloatLiteral(value)
	case lexer.KindYarn:
		lit = ast.NewStringLiteral(tok.Text)
	case lexer.KindTroof:
		lit = ast.NewBooleanLiteral(tok.Text == "WIN")
	default:
		return nil, &ParseError{Expected: "literal", Found: tok.Kind.String(), Line: tok.Line, Column: tok.Column}
	}
	ast.SetSpan(lit, ast.Span{
		Start: ast.Position{Line: tok.Line, Column: tok.Column},
		End:   tokenEnd(tok),
	})
	return lit, nil
}

// literalError reports a numeric literal that does not fit its type, e.g. a
// NUMBR beyond int64.
func literalError(tok lexer.Token) *ParseError {
	return &ParseError{Expected: tok.Kind.String(), Found: tok.Text, Line: tok.Line, Column: tok.Column}
}
