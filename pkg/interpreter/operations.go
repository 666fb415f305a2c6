package interpreter

import (
	"math"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/ast"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

func applyBinaryOperator(node *ast.BinaryOp, left, right runtime.Value) (runtime.Value, error) {
	switch node.Operator {
	case ast.BinarySum, ast.BinaryDiff, ast.BinaryProdukt, ast.BinaryQuoshunt, ast.BinaryMod:
		return applyArithmetic(node, left, right)
	case ast.BinaryBiggr, ast.BinarySmallr:
		cmp, ok := runtime.Compare(left, right)
		if !ok {
			return nil, operandTypeError(node, left, right)
		}
		if node.Operator == ast.BinaryBiggr && cmp > 0 {
			return left, nil
		}
		if node.Operator == ast.BinarySmallr && cmp < 0 {
			return left, nil
		}
		return right, nil
	case ast.BinaryBothSaem:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.BinaryDiffrint:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case ast.BinaryBothOf, ast.BinaryEitherOf:
		lb, lok := left.(runtime.BoolValue)
		rb, rok := right.(runtime.BoolValue)
		if !lok || !rok {
			return nil, operandTypeError(node, left, right)
		}
		if node.Operator == ast.BinaryBothOf {
			return runtime.BoolValue{Val: lb.Val && rb.Val}, nil
		}
		return runtime.BoolValue{Val: lb.Val || rb.Val}, nil
	default:
		return nil, newRuntimeError(KindUnknownOperator, node, "Unknown binary operator '%s'", node.Operator)
	}
}

func applyUnaryOperator(node *ast.UnaryOp, operand runtime.Value) (runtime.Value, error) {
	switch node.Operator {
	case ast.UnaryNot:
		b, ok := operand.(runtime.BoolValue)
		if !ok {
			return nil, newRuntimeError(KindTypeMismatch, node, "NOT expects a TROOF operand, got %s", kindName(operand))
		}
		return runtime.BoolValue{Val: !b.Val}, nil
	default:
		return nil, newRuntimeError(KindUnknownOperator, node, "Unknown unary operator '%s'", node.Operator)
	}
}

// applyArithmetic keeps NUMBR op NUMBR in NUMBR except for QUOSHUNT, which is
// true division. Any NUMBAR operand promotes the result.
func applyArithmetic(node *ast.BinaryOp, left, right runtime.Value) (runtime.Value, error) {
	if !runtime.IsNumeric(left) || !runtime.IsNumeric(right) {
		return nil, operandTypeError(node, left, right)
	}
	if node.Operator == ast.BinaryQuoshunt || node.Operator == ast.BinaryMod {
		if divisor, _ := runtime.AsFloat(right); divisor == 0 {
			return nil, newRuntimeError(KindDivisionByZero, node, "Division by zero error.")
		}
	}
	li, lInt := left.(runtime.IntegerValue)
	ri, rInt := right.(runtime.IntegerValue)
	if lInt && rInt && node.Operator != ast.BinaryQuoshunt {
		return runtime.IntegerValue{Val: integerArithmetic(node.Operator, li.Val, ri.Val)}, nil
	}
	lf, _ := runtime.AsFloat(left)
	rf, _ := runtime.AsFloat(right)
	return runtime.FloatValue{Val: floatArithmetic(node.Operator, lf, rf)}, nil
}

func integerArithmetic(op ast.BinaryOperator, a, b int64) int64 {
	switch op {
	case ast.BinarySum:
		return a + b
	case ast.BinaryDiff:
		return a - b
	case ast.BinaryProdukt:
		return a * b
	case ast.BinaryMod:
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r
	default:
		return 0
	}
}

func floatArithmetic(op ast.BinaryOperator, a, b float64) float64 {
	switch op {
	case ast.BinarySum:
		return a + b
	case ast.BinaryDiff:
		return a - b
	case ast.BinaryProdukt:
		return a * b
	case ast.BinaryQuoshunt:
		return a / b
	case ast.BinaryMod:
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r
	default:
		return math.NaN()
	}
}

func operandTypeError(node *ast.BinaryOp, left, right runtime.Value) *RuntimeError {
	return newRuntimeError(KindTypeMismatch, node, "%s cannot combine %s and %s", operatorSpelling(node.Operator), kindName(left), kindName(right))
}

func kindName(v runtime.Value) string {
	if v == nil {
		return runtime.KindNil.String()
	}
	return v.Kind().String()
}

func operatorSpelling(op ast.BinaryOperator) string {
	switch op {
	case ast.BinarySum:
		return "SUM OF"
	case ast.BinaryDiff:
		return "DIFF OF"
	case ast.BinaryProdukt:
		return "PRODUKT OF"
	case ast.BinaryQuoshunt:
		return "QUOSHUNT OF"
	case ast.BinaryMod:
		return "MOD OF"
	case ast.BinaryBiggr:
		return "BIGGR OF"
	case ast.BinarySmallr:
		return "SMALLR OF"
	case ast.BinaryBothSaem:
		return "BOTH SAEM"
	case ast.BinaryDiffrint:
		return "DIFFRINT"
	case ast.BinaryBothOf:
		return "BOTH OF"
	case ast.BinaryEitherOf:
		return "EITHER OF"
	default:
		return string(op)
	}
}
