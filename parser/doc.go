/*
Package parser implements a recursive-descent parser for the language.

The parser reads from a token cursor with one token of lookahead and builds
an ast.Block for a whole unit of input. There is one method per grammar
rule; expressions are parsed by precedence climbing, one rule per
precedence level:

	primary        ::= identifier | identifier '(' args? ')' | integer | float | string
	                 | 'true' | 'false' | 'fn' params stmt | '(' expr ')'
	unary          ::= ('+' | '-' | '!') unary | primary
	exponent       ::= unary ('^' exponent)*
	multiplication ::= exponent (('*'|'/'|'%') exponent)*
	addition       ::= multiplication (('+'|'-') multiplication)*
	comparison     ::= addition (('=='|'!='|'<'|'>'|'<='|'>=') addition)*
	logic          ::= comparison (('&&'|'||') comparison)*
	expr           ::= logic

Statements are

	stmt ::= 'print' expr | 'if' expr stmt ('else' stmt)? | 'while' expr stmt
	       | 'for' '(' assign ',' expr ',' assign ')' stmt | 'ret' expr
	       | identifier ':=' expr | expr | '{' stmt* '}'

Statements may be terminated by an optional ';'.

The parser fails fast: the first structural error aborts parsing of the
unit and is returned as a qlang.Error of kind SyntaxError (or NameError for
assignments to something other than a plain identifier), located at the
offending token. Errors of the scanner are passed through unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.parser'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.parser")
}
