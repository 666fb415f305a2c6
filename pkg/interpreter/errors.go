package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
)

var (
	ErrRedeclaration      = errors.New("redeclaration")
	ErrUndeclaredVariable = errors.New("undeclared variable")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrInputUnavailable   = errors.New("input unavailable")
)

// ErrorKind names the category of a RuntimeError.
type ErrorKind string

const (
	KindRedeclaration      ErrorKind = "RedeclarationError"
	KindUndeclaredVariable ErrorKind = "UndeclaredVariableError"
	KindDivisionByZero     ErrorKind = "DivisionByZeroError"
	KindTypeMismatch       ErrorKind = "TypeError"
	KindUnknownOperator    ErrorKind = "UnknownOperatorError"
	KindInputUnavailable   ErrorKind = "InputError"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindRedeclaration:
		return ErrRedeclaration
	case KindUndeclaredVariable:
		return ErrUndeclaredVariable
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindUnknownOperator:
		return ErrUnknownOperator
	case KindInputUnavailable:
		return ErrInputUnavailable
	default:
		return nil
	}
}

// RuntimeError aborts a run. Line and Column locate the node being evaluated
// and are zero when the node carries no span.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
	cause   error
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel and, for input failures, the reader error.
func (e *RuntimeError) Unwrap() []error {
	out := make([]error, 0, 2)
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		out = append(out, sentinel)
	}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

func newRuntimeError(kind ErrorKind, node ast.Node, format string, args ...any) *RuntimeError {
	err := &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		start := node.Span().Start
		err.Line = start.Line
		err.Column = start.Column
	}
	return err
}

// RuntimeDiagnostic is a RuntimeError placed at a source location.
type RuntimeDiagnostic struct {
	Severity driver.DiagnosticSeverity
	Kind     ErrorKind
	Message  string
	Location driver.DiagnosticLocation
}

// BuildRuntimeDiagnostic locates err within path. Errors that did not come
// from evaluation produce a diagnostic without a position.
func BuildRuntimeDiagnostic(path string, err error) RuntimeDiagnostic {
	diag := RuntimeDiagnostic{Severity: driver.SeverityError, Location: driver.DiagnosticLocation{Path: path}}
	if err == nil {
		return diag
	}
	diag.Message = err.Error()
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		diag.Kind = rtErr.Kind
		diag.Message = rtErr.Message
		diag.Location.Line = rtErr.Line
		diag.Location.Column = rtErr.Column
	}
	return diag
}

func DescribeRuntimeDiagnostic(diag RuntimeDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	if diag.Kind != "" {
		message = fmt.Sprintf("%s: %s", diag.Kind, message)
	}
	location := driver.FormatLocation(diag.Location)
	prefix := "runtime: "
	if diag.Severity == driver.SeverityWarning {
		prefix = "warning: runtime: "
	}
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return prefix + message
}
