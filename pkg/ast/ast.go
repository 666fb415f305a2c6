package ast

type NodeType string

const (
	NodeProgram        NodeType = "Program"
	NodeDeclaration    NodeType = "Declaration"
	NodeAssignment     NodeType = "Assignment"
	NodePrint          NodeType = "Print"
	NodeReadInput      NodeType = "ReadInput"
	NodeConditional    NodeType = "Conditional"
	NodeBinaryOp       NodeType = "BinaryOp"
	NodeUnaryOp        NodeType = "UnaryOp"
	NodeIntegerLiteral NodeType = "IntegerLiteral"
	NodeFloatLiteral   NodeType = "FloatLiteral"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeVariableRef    NodeType = "VariableRef"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

type spanSetter interface {
	setSpan(Span)
}

// SetSpan records the source span on a node. Nodes are otherwise immutable
// once the parser hands them out.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(spanSetter); ok {
		setter.setSpan(span)
	}
}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Program is the root of every parse.

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Statements

type Declaration struct {
	nodeImpl
	statementMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer,omitempty"`
}

func NewDeclaration(name string, initializer Expression) *Declaration {
	return &Declaration{nodeImpl: newNodeImpl(NodeDeclaration), Name: name, Initializer: initializer}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

type Print struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrint(expr Expression) *Print {
	return &Print{nodeImpl: newNodeImpl(NodePrint), Expression: expr}
}

type ReadInput struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewReadInput(name string) *ReadInput {
	return &ReadInput{nodeImpl: newNodeImpl(NodeReadInput), Name: name}
}

// Conditional has no condition of its own: it branches on IT.
type Conditional struct {
	nodeImpl
	statementMarker

	Then []Statement `json:"then"`
	Else []Statement `json:"else,omitempty"`
}

func NewConditional(then, otherwise []Statement) *Conditional {
	return &Conditional{nodeImpl: newNodeImpl(NodeConditional), Then: then, Else: otherwise}
}

// HasElse reports whether a NO WAI branch was present.
func (c *Conditional) HasElse() bool {
	return c.Else != nil
}

// Expressions

type BinaryOperator string

const (
	BinarySum      BinaryOperator = "SUM_OF"
	BinaryDiff     BinaryOperator = "DIFF_OF"
	BinaryProdukt  BinaryOperator = "PRODUKT_OF"
	BinaryQuoshunt BinaryOperator = "QUOSHUNT_OF"
	BinaryMod      BinaryOperator = "MOD_OF"
	BinaryBiggr    BinaryOperator = "BIGGR_OF"
	BinarySmallr   BinaryOperator = "SMALLR_OF"
	BinaryBothSaem BinaryOperator = "BOTH_SAEM"
	BinaryDiffrint BinaryOperator = "DIFFRINT"
	BinaryBothOf   BinaryOperator = "BOTH_OF"
	BinaryEitherOf BinaryOperator = "EITHER_OF"
)

type UnaryOperator string

const (
	UnaryNot UnaryOperator = "NOT"
)

type BinaryOp struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryOp(operator BinaryOperator, left, right Expression) *BinaryOp {
	return &BinaryOp{nodeImpl: newNodeImpl(NodeBinaryOp), Operator: operator, Left: left, Right: right}
}

type UnaryOp struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryOp(operator UnaryOperator, operand Expression) *UnaryOp {
	return &UnaryOp{nodeImpl: newNodeImpl(NodeUnaryOp), Operator: operator, Operand: operand}
}

type VariableRef struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewVariableRef(name string) *VariableRef {
	return &VariableRef{nodeImpl: newNodeImpl(NodeVariableRef), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}
