/*
Command qrepl is an interactive command line tool (Q.REPL) for the
language. It runs script files given as arguments and then enters an
interactive loop, where each line of input is parsed and run as a unit.
Global variables survive from one unit to the next.

Usage:

	qrepl [-trace level] [-config file.yml] [-init file] [-batch] [script ...]

Besides program input, Q.REPL understands a couple of commands:

	:vars          list global variables
	:ast <input>   display the syntax tree of <input>
	:help          list commands
	:quit          leave Q.REPL (as does <ctrl>D)

Errors are reported together with a hint to the offending position in the
input; the REPL then continues with the next line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.repl'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.repl")
}
