package driver

import "fmt"

// Stage names the pipeline step a failure came from.
type Stage string

const (
	StageLexing  Stage = "lexing"
	StageParsing Stage = "parsing"
	StageRuntime Stage = "runtime"
)

// Label is the heading printed before a failure from this stage.
func (s Stage) Label() string {
	switch s {
	case StageLexing:
		return "Lexing Error"
	case StageParsing:
		return "Parsing Error"
	case StageRuntime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// StageError tags a pipeline failure with the stage that raised it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Stage.Label()
	}
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Label is the stage heading, e.g. "Parsing Error".
func (e *StageError) Label() string {
	return e.Stage.Label()
}

// Report renders the line the command-line tool prints, e.g.
// "Runtime Error: Division by zero error.".
func (e *StageError) Report() string {
	return fmt.Sprintf("%s: %s", e.Label(), e.Error())
}

// WrapStage returns nil for a nil err and leaves existing stage errors alone.
func WrapStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	if existing, ok := err.(*StageError); ok {
		return existing
	}
	return &StageError{Stage: stage, Err: err}
}
