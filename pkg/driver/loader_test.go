package driver

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/parser"
)

func TestLoadProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.lol")
	writeFile(t, path, "HAI\nVISIBLE \"hi\"\nKTHXBYE\n")
	program, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if program.AST == nil || len(program.AST.Body) != 1 {
		t.Fatalf("unexpected program: %#v", program.AST)
	}
	if len(program.Tokens) != 4 || program.Path != path {
		t.Fatalf("unexpected tokens/path: %d %q", len(program.Tokens), program.Path)
	}
}

func TestLoadProgramReadFailures(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadProgram(filepath.Join(dir, "missing.lol")); err == nil {
		t.Fatalf("expected error for missing file")
	} else {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			t.Fatalf("read failures must not carry a stage: %v", err)
		}
	}
	if _, err := LoadProgram(dir); err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
	if _, err := LoadProgram(""); err == nil {
		t.Fatalf("expected empty path error")
	}
}

func TestParseSourceStages(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stage  Stage
		target any
		report string
	}{
		{
			name:   "lexing",
			source: "HAI\nVISIBLE \"open\nKTHXBYE",
			stage:  StageLexing,
			target: new(*lexer.LexError),
			report: "Lexing Error: String literal not closed at line 2, col 9",
		},
		{
			name:   "parsing",
			source: "HAI\nVISIBLE 1",
			stage:  StageParsing,
			target: new(*parser.ParseError),
			report: "Parsing Error: Expected KTHXBYE but found EOF at end of input.",
		},
		{
			name:   "numeric range",
			source: "HAI\nVISIBLE 99999999999999999999\nKTHXBYE",
			stage:  StageParsing,
			target: new(*parser.ParseError),
			report: "Parsing Error: Expected NUMBR but found 99999999999999999999 at line 2.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := ParseSource("x.lol", tt.source)
			var stageErr *StageError
			if !errors.As(err, &stageErr) || stageErr.Stage != tt.stage {
				t.Fatalf("expected %s stage error, got %v", tt.stage, err)
			}
			if !errors.As(err, tt.target) {
				t.Fatalf("expected %T in chain, got %T", tt.target, stageErr.Err)
			}
			if got := stageErr.Report(); got != tt.report {
				t.Fatalf("Report = %q, want %q", got, tt.report)
			}
			if program == nil || program.AST != nil {
				t.Fatalf("failed parse must not carry a tree")
			}
		})
	}
}

func TestParseSourceKeepsTokensOnParseFailure(t *testing.T) {
	program, err := ParseSource("", "HAI\nVISIBLE")
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if len(program.Tokens) != 2 {
		t.Fatalf("expected tokens to survive, got %d", len(program.Tokens))
	}
}

func TestStageLabels(t *testing.T) {
	if StageLexing.Label() != "Lexing Error" || StageParsing.Label() != "Parsing Error" || StageRuntime.Label() != "Runtime Error" {
		t.Fatalf("unexpected stage labels")
	}
	inner := &StageError{Stage: StageParsing, Err: errors.New("x")}
	if WrapStage(StageRuntime, inner) != inner {
		t.Fatalf("WrapStage must keep an existing stage")
	}
	if WrapStage(StageRuntime, nil) != nil {
		t.Fatalf("WrapStage(nil) must be nil")
	}
}

func TestDescribeSourceDiagnostic(t *testing.T) {
	_, err := ParseSource("main.lol", "HAI\n  x 5\nKTHXBYE")
	diag := BuildSourceDiagnostic("main.lol", err)
	got := DescribeSourceDiagnostic(diag)
	want := "parsing: main.lol:2:5 Expected R but found NUMBR at line 2."
	if got != want {
		t.Fatalf("unexpected diagnostic:\nexpected: %s\ngot: %s", want, got)
	}

	plain := DescribeSourceDiagnostic(BuildSourceDiagnostic("", errors.New("boom")))
	if plain != "error: boom" {
		t.Fatalf("unexpected plain diagnostic %q", plain)
	}
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		loc  DiagnosticLocation
		want string
	}{
		{DiagnosticLocation{Path: "a.lol", Line: 3, Column: 4}, "a.lol:3:4"},
		{DiagnosticLocation{Path: "a.lol", Line: 3}, "a.lol:3"},
		{DiagnosticLocation{Path: "a.lol"}, "a.lol"},
		{DiagnosticLocation{Line: 3, Column: 4}, "line 3, column 4"},
		{DiagnosticLocation{Line: 3}, "line 3"},
		{DiagnosticLocation{}, ""},
	}
	for _, tt := range tests {
		if got := FormatLocation(tt.loc); got != tt.want {
			t.Fatalf("FormatLocation(%+v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}
