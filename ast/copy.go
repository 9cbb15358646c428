package ast

import "fmt"

// Copy creates a deep clone of a tree. The clone shares no nodes with the
// original. Copy(nil) is nil.
func Copy(n Node) Node {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Identifier:
		return copyIdentifier(n)
	case *Integer:
		c := *n
		return &c
	case *Float:
		c := *n
		return &c
	case *String:
		c := *n
		return &c
	case *Bool:
		c := *n
		return &c
	case *UnaryOp:
		return &UnaryOp{Pos: n.Pos, Op: n.Op, Operand: Copy(n.Operand)}
	case *BinaryOp:
		return &BinaryOp{Pos: n.Pos, Op: n.Op, Left: Copy(n.Left), Right: Copy(n.Right)}
	case *FunctionDecl:
		return CopyFunction(n)
	case *FunctionCall:
		return &FunctionCall{Pos: n.Pos, Callee: copyIdentifier(n.Callee), Args: copyAll(n.Args)}
	case *Block:
		return &Block{Pos: n.Pos, Statements: copyAll(n.Statements)}
	case *PrintStmt:
		return &PrintStmt{Pos: n.Pos, Operand: Copy(n.Operand)}
	case *IfStmt:
		return &IfStmt{Pos: n.Pos, Cond: Copy(n.Cond), Then: Copy(n.Then), Else: Copy(n.Else)}
	case *AssignStmt:
		return copyAssign(n)
	case *WhileStmt:
		return &WhileStmt{Pos: n.Pos, Cond: Copy(n.Cond), Body: Copy(n.Body)}
	case *ForStmt:
		return &ForStmt{
			Pos:  n.Pos,
			Init: copyAssign(n.Init),
			Cond: Copy(n.Cond),
			Step: copyAssign(n.Step),
			Body: Copy(n.Body),
		}
	case *Return:
		return &Return{Pos: n.Pos, Operand: Copy(n.Operand)}
	}
	panic(fmt.Sprintf("ast: cannot copy node type %T", n))
}

// CopyFunction creates a deep clone of a function declaration.
func CopyFunction(fn *FunctionDecl) *FunctionDecl {
	if fn == nil {
		return nil
	}
	c := &FunctionDecl{Pos: fn.Pos, Body: Copy(fn.Body)}
	if fn.Params != nil {
		c.Params = make([]*Identifier, len(fn.Params))
		for i, p := range fn.Params {
			c.Params[i] = copyIdentifier(p)
		}
	}
	tracer().Debugf("copied function declaration at %s", fn.Loc)
	return c
}

func copyIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyAssign(a *AssignStmt) *AssignStmt {
	if a == nil {
		return nil
	}
	return &AssignStmt{Pos: a.Pos, Target: copyIdentifier(a.Target), Value: Copy(a.Value)}
}

func copyAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	c := make([]Node, len(nodes))
	for i, n := range nodes {
		c[i] = Copy(n)
	}
	return c
}
