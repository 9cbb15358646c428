package ast

import (
	"fmt"

	"github.com/qikcik/qlang"
)

// Node is an AST node. The set of implementations is closed: only types of
// this package implement Node.
type Node interface {
	Locator() qlang.Locator // source position, for diagnostics
	Accept(Visitor)
	isNode()
}

// Pos is embedded by every node type and carries the source position of the
// token which started the node.
type Pos struct {
	Loc qlang.Locator
}

// Locator returns the source position of a node.
func (p Pos) Locator() qlang.Locator { return p.Loc }

func (Pos) isNode() {}

// --- Expressions -----------------------------------------------------------

// Identifier is a reference to a variable.
type Identifier struct {
	Pos
	Name string
}

// Integer is an integer literal.
type Integer struct {
	Pos
	Value int32
}

// Float is a floating point literal.
type Float struct {
	Pos
	Value float32
}

// String is a string literal. Value is the text between the quotes, with
// escape sequences not yet expanded.
type String struct {
	Pos
	Value string
}

// Bool is one of the literals 'true' or 'false'.
type Bool struct {
	Pos
	Value bool
}

// UnaryOp is a prefix operation: '+', '-' or '!'.
type UnaryOp struct {
	Pos
	Op      string
	Operand Node
}

// BinaryOp is an infix operation.
type BinaryOp struct {
	Pos
	Op          string
	Left, Right Node
}

// FunctionDecl is a function literal, 'fn (a, b) stmt'.
type FunctionDecl struct {
	Pos
	Params []*Identifier
	Body   Node
}

// FunctionCall is the application of a named function to arguments.
type FunctionCall struct {
	Pos
	Callee *Identifier
	Args   []Node
}

// --- Statements ------------------------------------------------------------

// Block is a sequence of statements, '{ stmt* }'. Top-level programs are
// blocks as well.
type Block struct {
	Pos
	Statements []Node
}

// PrintStmt is 'print expr'.
type PrintStmt struct {
	Pos
	Operand Node
}

// IfStmt is 'if cond stmt [else stmt]'. Else is nil if absent.
type IfStmt struct {
	Pos
	Cond Node
	Then Node
	Else Node
}

// AssignStmt is 'name := expr'.
type AssignStmt struct {
	Pos
	Target *Identifier
	Value  Node
}

// WhileStmt is 'while cond stmt'.
type WhileStmt struct {
	Pos
	Cond Node
	Body Node
}

// ForStmt is 'for (init, cond, step) stmt'.
type ForStmt struct {
	Pos
	Init *AssignStmt
	Cond Node
	Step *AssignStmt
	Body Node
}

// Return is 'ret expr'.
type Return struct {
	Pos
	Operand Node
}

// --- Visitor ---------------------------------------------------------------

// Visitor has one method per node type. Node.Accept calls the method
// matching the dynamic type of the node.
type Visitor interface {
	VisitIdentifier(*Identifier)
	VisitInteger(*Integer)
	VisitFloat(*Float)
	VisitString(*String)
	VisitBool(*Bool)
	VisitUnaryOp(*UnaryOp)
	VisitBinaryOp(*BinaryOp)
	VisitFunctionDecl(*FunctionDecl)
	VisitFunctionCall(*FunctionCall)
	VisitBlock(*Block)
	VisitPrintStmt(*PrintStmt)
	VisitIfStmt(*IfStmt)
	VisitAssignStmt(*AssignStmt)
	VisitWhileStmt(*WhileStmt)
	VisitForStmt(*ForStmt)
	VisitReturn(*Return)
}

func (n *Identifier) Accept(v Visitor)   { v.VisitIdentifier(n) }
func (n *Integer) Accept(v Visitor)      { v.VisitInteger(n) }
func (n *Float) Accept(v Visitor)        { v.VisitFloat(n) }
func (n *String) Accept(v Visitor)       { v.VisitString(n) }
func (n *Bool) Accept(v Visitor)         { v.VisitBool(n) }
func (n *UnaryOp) Accept(v Visitor)      { v.VisitUnaryOp(n) }
func (n *BinaryOp) Accept(v Visitor)     { v.VisitBinaryOp(n) }
func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }
func (n *FunctionCall) Accept(v Visitor) { v.VisitFunctionCall(n) }
func (n *Block) Accept(v Visitor)        { v.VisitBlock(n) }
func (n *PrintStmt) Accept(v Visitor)    { v.VisitPrintStmt(n) }
func (n *IfStmt) Accept(v Visitor)       { v.VisitIfStmt(n) }
func (n *AssignStmt) Accept(v Visitor)   { v.VisitAssignStmt(n) }
func (n *WhileStmt) Accept(v Visitor)    { v.VisitWhileStmt(n) }
func (n *ForStmt) Accept(v Visitor)      { v.VisitForStmt(n) }
func (n *Return) Accept(v Visitor)       { v.VisitReturn(n) }

// Children returns the direct children of a node, in source order. Absent
// optional children (e.g. a missing else branch) are omitted.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Identifier, *Integer, *Float, *String, *Bool:
		return nil
	case *UnaryOp:
		return []Node{n.Operand}
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *FunctionDecl:
		ch := make([]Node, 0, len(n.Params)+1)
		for _, p := range n.Params {
			ch = append(ch, p)
		}
		return append(ch, n.Body)
	case *FunctionCall:
		return append([]Node{n.Callee}, n.Args...)
	case *Block:
		return n.Statements
	case *PrintStmt:
		return []Node{n.Operand}
	case *IfStmt:
		if n.Else == nil {
			return []Node{n.Cond, n.Then}
		}
		return []Node{n.Cond, n.Then, n.Else}
	case *AssignStmt:
		return []Node{n.Target, n.Value}
	case *WhileStmt:
		return []Node{n.Cond, n.Body}
	case *ForStmt:
		return []Node{n.Init, n.Cond, n.Step, n.Body}
	case *Return:
		return []Node{n.Operand}
	}
	panic(fmt.Sprintf("ast: unknown node type %T", n))
}

// Walk traverses a tree depth-first, calling f for each node with its depth
// (0 for the root). If f returns false, the children of the node are skipped.
func Walk(n Node, f func(n Node, depth int) bool) {
	walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int) bool) {
	if n == nil || !f(n, depth) {
		return
	}
	for _, ch := range Children(n) {
		walk(ch, depth+1, f)
	}
}
