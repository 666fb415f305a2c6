// Package session runs a program with captured output and queued input and
// reports every intermediate stage, for tools that display a run rather than
// just perform it.
package session

import (
	"bytes"
	"errors"
	"strings"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/interpreter"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/lexer"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

// Session is a single source text plus the input lines to feed GIMMEH.
type Session struct {
	Path   string
	Source string
	Inputs []string
}

// Binding is one variable in the final environment.
type Binding struct {
	Name  string
	Kind  string
	Value string

	raw runtime.Value
}

// Result describes a finished run. Stage is empty when the run succeeded.
type Result struct {
	Tokens      []lexer.Token
	Parsed      bool
	Output      []string
	Environment []Binding
	Err         error
	Stage       driver.Stage

	// UnusedInputs counts queued inputs the program never read.
	UnusedInputs int

	values map[string]runtime.Value
}

func New(source string, inputs ...string) *Session {
	return &Session{Source: source, Inputs: append([]string(nil), inputs...)}
}

// Run lexes, parses and evaluates the source. Failures are recorded on the
// result rather than returned. Once the inputs run out GIMMEH reads "".
func (s *Session) Run() *Result {
	result := &Result{}
	program, err := driver.ParseSource(s.Path, s.Source)
	if program != nil {
		result.Tokens = program.Tokens
	}
	if err != nil {
		result.fail(err)
		return result
	}
	result.Parsed = true

	var out bytes.Buffer
	queue := interpreter.NewQueuedInput(s.Inputs...)
	interp := interpreter.NewWithIO(&out, queue)
	env, err := interp.EvaluateProgram(program)
	result.Output = splitOutput(out.String())
	result.Environment = snapshot(env)
	result.UnusedInputs = queue.Remaining()
	if env != nil {
		result.values = env.Snapshot()
	}
	if err != nil {
		result.fail(err)
	}
	return result
}

func (r *Result) fail(err error) {
	r.Err = err
	var stageErr *driver.StageError
	if errors.As(err, &stageErr) {
		r.Stage = stageErr.Stage
	}
}

// Report is the stage-labelled error line, or "" for a successful run.
func (r *Result) Report() string {
	if r.Err == nil {
		return ""
	}
	return driver.ErrorReport(r.Err)
}

// Lookup returns the printed value of a variable, IT included.
func (r *Result) Lookup(name string) (string, bool) {
	v, ok := r.values[name]
	if !ok {
		return "", false
	}
	return runtime.Format(v), true
}

func splitOutput(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func snapshot(env *runtime.Environment) []Binding {
	if env == nil {
		return []Binding{}
	}
	bindings := env.Bindings()
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		kind := runtime.KindNil
		if b.Value != nil {
			kind = b.Value.Kind()
		}
		out = append(out, Binding{Name: b.Name, Kind: kind.String(), Value: runtime.Format(b.Value), raw: b.Value})
	}
	return out
}
