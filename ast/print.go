package ast

import (
	"strconv"
	"strings"
)

// Line is a single line of a rendered tree: a node label and the depth of
// the node (0 for the root).
type Line struct {
	Depth int
	Text  string
}

// Option configures the rendering of trees.
type Option func(*printOptions)

type printOptions struct {
	locations bool
	indent    string
}

// WithLocations switches source locators in node labels on or off.
// They are on by default.
func WithLocations(b bool) Option {
	return func(o *printOptions) {
		o.locations = b
	}
}

// WithIndent sets the indentation per tree level for Format. Default is
// two spaces.
func WithIndent(s string) Option {
	return func(o *printOptions) {
		o.indent = s
	}
}

// Lines renders a tree into a flat list of labelled lines, in depth-first
// order. Clients may use it to feed tree widgets.
func Lines(n Node, opts ...Option) []Line {
	o := printOptions{locations: true, indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	var lines []Line
	lbl := &labeler{}
	Walk(n, func(n Node, depth int) bool {
		n.Accept(lbl)
		text := lbl.text
		if o.locations {
			text += " @" + n.Locator().String()
		}
		lines = append(lines, Line{Depth: depth, Text: text})
		return true
	})
	return lines
}

// Format renders a tree as indented text, one node per line.
//
//	Block @t:1:1
//	  Assign @t:1:1
//	    Identifier x @t:1:1
//	    Integer 1 @t:1:6
//
func Format(n Node, opts ...Option) string {
	o := printOptions{indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	var b strings.Builder
	for _, l := range Lines(n, opts...) {
		b.WriteString(strings.Repeat(o.indent, l.Depth))
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// labeler is a visitor producing a one-line label for a node, without its
// children.
type labeler struct {
	text string
}

var _ Visitor = (*labeler)(nil)

func (l *labeler) VisitIdentifier(n *Identifier) { l.text = "Identifier " + n.Name }
func (l *labeler) VisitInteger(n *Integer) {
	l.text = "Integer " + strconv.FormatInt(int64(n.Value), 10)
}
func (l *labeler) VisitFloat(n *Float) {
	l.text = "Float " + strconv.FormatFloat(float64(n.Value), 'g', -1, 32)
}
func (l *labeler) VisitString(n *String)             { l.text = "String \"" + n.Value + "\"" }
func (l *labeler) VisitBool(n *Bool)                 { l.text = "Bool " + strconv.FormatBool(n.Value) }
func (l *labeler) VisitUnaryOp(n *UnaryOp)           { l.text = "UnaryOp " + n.Op }
func (l *labeler) VisitBinaryOp(n *BinaryOp)         { l.text = "BinaryOp " + n.Op }
func (l *labeler) VisitFunctionDecl(n *FunctionDecl) { l.text = "FunctionDecl" }
func (l *labeler) VisitFunctionCall(n *FunctionCall) { l.text = "FunctionCall" }
func (l *labeler) VisitBlock(n *Block)               { l.text = "Block" }
func (l *labeler) VisitPrintStmt(n *PrintStmt)       { l.text = "Print" }
func (l *labeler) VisitIfStmt(n *IfStmt)             { l.text = "If" }
func (l *labeler) VisitAssignStmt(n *AssignStmt)     { l.text = "Assign" }
func (l *labeler) VisitWhileStmt(n *WhileStmt)       { l.text = "While" }
func (l *labeler) VisitForStmt(n *ForStmt)           { l.text = "For" }
func (l *labeler) VisitReturn(n *Return)             { l.text = "Return" }
