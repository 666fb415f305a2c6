package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
)

func parseSource(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return program
}

func parseSourceError(t *testing.T, source string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	program, err := Parse(tokens)
	if err == nil {
		t.Fatalf("expected parse error, got %s", render(program))
	}
	return err
}

// render prints a tree as an s-expression so tests can compare shapes without
// caring about spans.
func render(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return "(program" + renderStatements(n.Body) + ")"
	case *ast.Declaration:
		if n.Initializer == nil {
			return fmt.Sprintf("(decl %s)", n.Name)
		}
		return fmt.Sprintf("(decl %s %s)", n.Name, render(n.Initializer))
	case *ast.Assignment:
		return fmt.Sprintf("(assign %s %s)", n.Name, render(n.Value))
	case *ast.Print:
		return fmt.Sprintf("(visible %s)", render(n.Expression))
	case *ast.ReadInput:
		return fmt.Sprintf("(gimmeh %s)", n.Name)
	case *ast.Conditional:
		out := "(orly (then" + renderStatements(n.Then) + ")"
		if n.HasElse() {
			out += " (else" + renderStatements(n.Else) + ")"
		}
		return out + ")"
	case *ast.BinaryOp:
		return fmt.Sprintf("(%s %s %s)", n.Operator, render(n.Left), render(n.Right))
	case *ast.UnaryOp:
		return fmt.Sprintf("(%s %s)", n.Operator, render(n.Operand))
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLiteral:
		return fmt.Sprintf("%g", n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *ast.BooleanLiteral:
		if n.Value {
			return "WIN"
		}
		return "FAIL"
	case *ast.VariableRef:
		return n.Name
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%T>", node)
	}
}

func renderStatements(stmts []ast.Statement) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteByte(' ')
		b.WriteString(render(stmt))
	}
	return b.String()
}
