package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor
// w for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(v, d)
		}
		for _, s := range n.Body {
			Walk(v, s)
		}

	case *Declaration:
		for _, id := range n.Names {
			Walk(v, id)
		}

	case *AssignStmt:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *IfStmt:
		Walk(v, n.Cond)
		for _, s := range n.Then {
			Walk(v, s)
		}
		for _, s := range n.Else {
			Walk(v, s)
		}

	case *WhileStmt:
		Walk(v, n.Cond)
		for _, s := range n.Body {
			Walk(v, s)
		}

	case *ReadStmt:
		for _, id := range n.Names {
			Walk(v, id)
		}

	case *WriteStmt:
		for _, id := range n.Names {
			Walk(v, id)
		}

	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ParenExpr:
		Walk(v, n.X)

	case *Comparison:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *NotCond:
		Walk(v, n.X)

	case *BracketCond:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *Identifier, *IntLit:
		// Leaf nodes.
	}

	v.Visit(nil)
}

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
//
// Inspect is a convenience wrapper around Walk that allows using a
// simple function instead of implementing the Visitor interface.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}
