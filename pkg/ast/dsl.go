package ast

// Short constructors for building trees by hand, mostly in tests.

func Prog(body ...Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return NewProgram(body)
}

func Decl(name string, initializer Expression) *Declaration {
	return NewDeclaration(name, initializer)
}

func Assign(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func Visible(expr Expression) *Print {
	return NewPrint(expr)
}

func Gimmeh(name string) *ReadInput {
	return NewReadInput(name)
}

func ORly(then []Statement, otherwise []Statement) *Conditional {
	return NewConditional(then, otherwise)
}

func Block(stmts ...Statement) []Statement {
	if stmts == nil {
		return []Statement{}
	}
	return stmts
}

func Bin(operator BinaryOperator, left, right Expression) *BinaryOp {
	return NewBinaryOp(operator, left, right)
}

func Not(operand Expression) *UnaryOp {
	return NewUnaryOp(UnaryNot, operand)
}

func Var(name string) *VariableRef {
	return NewVariableRef(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}
