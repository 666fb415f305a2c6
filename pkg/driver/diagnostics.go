package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/parser"
)

// DiagnosticSeverity captures diagnostic levels.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// DiagnosticLocation references a source position for diagnostics.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
}

// SourceDiagnostic is a lexing or parsing failure placed in a file.
type SourceDiagnostic struct {
	Severity DiagnosticSeverity
	Stage    Stage
	Message  string
	Location DiagnosticLocation
}

// BuildSourceDiagnostic extracts the position carried by lexer and parser
// errors. Other errors yield a diagnostic with only the path.
func BuildSourceDiagnostic(path string, err error) SourceDiagnostic {
	diag := SourceDiagnostic{Severity: SeverityError, Location: DiagnosticLocation{Path: path}}
	if err == nil {
		return diag
	}
	diag.Message = err.Error()
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		diag.Stage = stageErr.Stage
	}
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	switch {
	case errors.As(err, &lexErr):
		diag.Location.Line = lexErr.Line
		diag.Location.Column = lexErr.Column
		diag.Message = lexErr.Error()
	case errors.As(err, &parseErr):
		diag.Location.Line = parseErr.Line
		diag.Location.Column = parseErr.Column
		diag.Message = parseErr.Error()
	}
	return diag
}

// DescribeSourceDiagnostic formats a diagnostic for CLI output.
func DescribeSourceDiagnostic(diag SourceDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	prefix := "error: "
	if diag.Stage != "" {
		prefix = string(diag.Stage) + ": "
	}
	if diag.Severity == SeverityWarning {
		prefix = "warning: " + prefix
	}
	location := FormatLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s%s", prefix, message)
}

// FormatLocation renders path:line:column, dropping the parts that are unset.
func FormatLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}
