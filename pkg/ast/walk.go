package ast

// Walk visits node and its descendants depth-first in source order. It stops
// early when visit returns false for a node, skipping that node's children.
func Walk(node Node, visit func(Node) bool) {
	if node == nil || !visit(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		walkStatements(n.Body, visit)
	case *Declaration:
		if n.Initializer != nil {
			Walk(n.Initializer, visit)
		}
	case *Assignment:
		Walk(n.Value, visit)
	case *Print:
		Walk(n.Expression, visit)
	case *Conditional:
		walkStatements(n.Then, visit)
		walkStatements(n.Else, visit)
	case *BinaryOp:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *UnaryOp:
		Walk(n.Operand, visit)
	}
}

func walkStatements(stmts []Statement, visit func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, visit)
	}
}

// CountNodes returns the number of nodes reachable from root.
func CountNodes(root Node) int {
	count := 0
	Walk(root, func(Node) bool {
		count++
		return true
	})
	return count
}
