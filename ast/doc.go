/*
Package ast defines the abstract syntax tree of the language.

The tree is a closed set of node types, one per grammar production. Every
node exclusively owns its children; there is no sharing between subtrees
and no cycles. Trees are not modified after the parser has built them.

Consumers dispatch on the node type either with a type switch or by
implementing Visitor. Both styles have to cover every node type: a type
switch should treat the default case as an internal error.

Copy creates a deep clone of a tree. Function values of the interpreter hold
such a clone of their declaration, independent of the tree produced by the
parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.ast'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.ast")
}
