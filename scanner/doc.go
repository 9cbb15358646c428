/*
Package scanner produces the token stream for the parser.

Tokens are one of Separator, Label, String, Integer or Float. Separators are
taken from a client-supplied set of (possibly multi-character) strings, which
the tokenizer treats as indivisible, preferring the longest match:

	lexer, err := scanner.NewLexer(scanner.DefaultSeparators)
	if err != nil {
		// do error handling
	}
	cursor, err := lexer.Cursor(qlang.NewSource("<repl>", "x := 1 + 2"))

The tokenizer is built on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

A Cursor offers one token of lookahead. It scans lazily and may be rewound
to the first token at any time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.scanner")
}
