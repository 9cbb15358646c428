/*
Package interp implements a tree-walking interpreter for the language.

An Interpreter evaluates syntax trees against a runtime environment, which
holds a global memory frame for the lifetime of the interpreter. Blocks,
branches of if-statements, loops and function calls open child frames,
which are released when the construct has been evaluated.

Values are dynamically typed. Arithmetic on two integers stays integer
(with '/' truncating towards zero), as soon as a float is involved the
operation is carried out on floats. Strings concatenate with any other
value using '+'. A variable never changes its type: re-assigning a value
of a different type is an error.

Function calls do not close over the frame active at the definition site:
a call frame's parent is always the global frame. Thus a function sees its
parameters, its own locals and global variables only.

Loops are bounded by a maximum iteration count (DefaultMaxIterations, see
WithMaxIterations). A loop reaching the bound stops silently.

Errors are of type *qlang.Error and abort evaluation of the unit given to
Run or Eval. The interpreter may be re-used for subsequent units; global
variables are kept.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.interp'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.interp")
}
