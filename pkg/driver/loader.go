// Package driver loads LOLCODE sources through the lexing and parsing stages
// and holds the project-level plumbing around them: manifests, lockfiles,
// fixtures and diagnostics.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/parser"
)

// Program is a parsed source file ready for evaluation.
type Program struct {
	Path   string
	Source string
	Tokens []lexer.Token
	AST    *ast.Program
}

// Tokenize runs only the lexing stage.
func Tokenize(source string) ([]lexer.Token, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, WrapStage(StageLexing, err)
	}
	return tokens, nil
}

// ParseSource lexes and parses source. path is informational and may be
// empty. On a parsing failure the returned program still carries the tokens.
func ParseSource(path, source string) (*Program, error) {
	program := &Program{Path: path, Source: source}
	tokens, err := Tokenize(source)
	if err != nil {
		return program, err
	}
	program.Tokens = tokens
	tree, err := parser.Parse(tokens)
	if err != nil {
		return program, WrapStage(StageParsing, err)
	}
	program.AST = tree
	return program, nil
}

// LoadProgram reads and parses the file at path. Read failures are returned
// unstaged so callers can tell them apart from pipeline failures.
func LoadProgram(path string) (*Program, error) {
	if path == "" {
		return nil, fmt.Errorf("loader: empty entry path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: resolve entry path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("loader: stat entry %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("loader: entry path %s is a directory", path)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return ParseSource(path, string(data))
}
