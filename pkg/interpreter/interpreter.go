// Package interpreter evaluates a parsed LOLCODE program by walking its tree
// against a flat runtime.Environment.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

// Interpreter holds the I/O channels a run writes to and reads from. It keeps
// no state between runs.
type Interpreter struct {
	out   io.Writer
	input InputProvider
}

// New returns an interpreter wired to stdout and stdin.
func New() *Interpreter {
	return NewWithIO(os.Stdout, NewLineReader(os.Stdin))
}

// NewWithIO returns an interpreter with custom output and input channels.
// A nil writer discards output; a nil provider behaves like an empty queue.
func NewWithIO(out io.Writer, input InputProvider) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	if input == nil {
		input = NewQueuedInput()
	}
	return &Interpreter{out: out, input: input}
}

// Run evaluates program in a fresh environment. The environment is returned
// even when evaluation fails so callers can inspect partial state.
func (i *Interpreter) Run(program *ast.Program) (*runtime.Environment, error) {
	env := runtime.NewEnvironment()
	if program == nil {
		return env, fmt.Errorf("interpreter: program is nil")
	}
	_, err := i.Evaluate(program, env)
	return env, err
}

// EvaluateProgram runs a loaded program and tags failures with the runtime
// stage.
func (i *Interpreter) EvaluateProgram(program *driver.Program) (*runtime.Environment, error) {
	if program == nil || program.AST == nil {
		return runtime.NewEnvironment(), fmt.Errorf("interpreter: program missing syntax tree")
	}
	env, err := i.Run(program.AST)
	return env, driver.WrapStage(driver.StageRuntime, err)
}

// Evaluate is the single recursive dispatch over node types. Statements that
// produce nothing return NOOB.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateBody(n.Body, env)
	case ast.Expression:
		return i.evaluateExpression(n, env)
	case ast.Statement:
		return i.evaluateStatement(n, env)
	case nil:
		return nil, fmt.Errorf("interpreter: nil node")
	default:
		return nil, fmt.Errorf("interpreter: unsupported node type %s", n.NodeType())
	}
}
