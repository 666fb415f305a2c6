package interpreter

import (
	"errors"
	"fmt"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Expression:
		return i.evaluateExpression(n, env)
	case *ast.Declaration:
		return i.evaluateDeclaration(n, env)
	case *ast.Assignment:
		return i.evaluateAssignment(n, env)
	case *ast.Print:
		return i.evaluatePrint(n, env)
	case *ast.ReadInput:
		return i.evaluateReadInput(n, env)
	case *ast.Conditional:
		return i.evaluateConditional(n, env)
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// evaluateBody runs statements in order, storing each non-NOOB result in IT.
func (i *Interpreter) evaluateBody(body []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	for _, stmt := range body {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		env.SetIT(val)
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateDeclaration(node *ast.Declaration, env *runtime.Environment) (runtime.Value, error) {
	if env.Has(node.Name) {
		return nil, newRuntimeError(KindRedeclaration, node, "Variable '%s' already declared.", node.Name)
	}
	var value runtime.Value = runtime.NilValue{}
	if node.Initializer != nil {
		val, err := i.evaluateExpression(node.Initializer, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	if err := env.Define(node.Name, value); err != nil {
		if errors.Is(err, runtime.ErrAlreadyDefined) {
			return nil, newRuntimeError(KindRedeclaration, node, "Variable '%s' already declared.", node.Name)
		}
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evaluateAssignment(node *ast.Assignment, env *runtime.Environment) (runtime.Value, error) {
	if !env.Has(node.Name) {
		return nil, newRuntimeError(KindUndeclaredVariable, node, "Variable '%s' not declared.", node.Name)
	}
	value, err := i.evaluateExpression(node.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(node.Name, value); err != nil {
		return nil, newRuntimeError(KindUndeclaredVariable, node, "Variable '%s' not declared.", node.Name)
	}
	return value, nil
}

func (i *Interpreter) evaluatePrint(node *ast.Print, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(node.Expression, env)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(i.out, runtime.Format(value)); err != nil {
		return nil, fmt.Errorf("interpreter: write output: %w", err)
	}
	return value, nil
}

// evaluateReadInput binds the line even when the name was never declared.
func (i *Interpreter) evaluateReadInput(node *ast.ReadInput, env *runtime.Environment) (runtime.Value, error) {
	line, err := i.input.ReadLine()
	if err != nil {
		rtErr := newRuntimeError(KindInputUnavailable, node, "GIMMEH %s: no input available (%v)", node.Name, err)
		rtErr.cause = err
		return nil, rtErr
	}
	value := runtime.StringValue{Val: line}
	env.Bind(node.Name, value)
	return value, nil
}

// evaluateConditional branches on IT. An unset IT counts as FAIL.
func (i *Interpreter) evaluateConditional(node *ast.Conditional, env *runtime.Environment) (runtime.Value, error) {
	it, _ := env.IT()
	switch {
	case runtime.Truthy(it):
		if _, err := i.evaluateBody(node.Then, env); err != nil {
			return nil, err
		}
	case node.HasElse():
		if _, err := i.evaluateBody(node.Else, env); err != nil {
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}
