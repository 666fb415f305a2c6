package interpreter

import (
	"fmt"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.VariableRef:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, newRuntimeError(KindUndeclaredVariable, n, "Undefined variable '%s'", n.Name)
		}
		return val, nil
	case *ast.BinaryOp:
		left, err := i.evaluateExpression(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.Right, env)
		if err != nil {
			return nil, err
		}
		return applyBinaryOperator(n, left, right)
	case *ast.UnaryOp:
		operand, err := i.evaluateExpression(n.Operand, env)
		if err != nil {
			return nil, err
		}
		return applyUnaryOperator(n, operand)
	case nil:
		return nil, fmt.Errorf("interpreter: nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}
