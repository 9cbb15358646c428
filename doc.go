/*
Package qlang is a small scripting language: a scanner turns source text into
tokens, a recursive-descent parser builds an abstract syntax tree, and a
tree-walking interpreter evaluates it against a chain of scope frames.

Package structure is as follows:

■ scanner: Package scanner provides the token model, a lexmachine-based
tokenizer and a rewindable token cursor.

■ ast: Package ast defines the syntax tree nodes, deep copying, visiting and
stringifying of trees.

■ parser: Package parser implements the recursive-descent parser.

■ runtime: Package runtime provides runtime values, symbol tables and the
arena of scope frames.

■ interp: Package interp implements the tree-walking interpreter.

■ config: Package config loads YAML configuration for the interpreter and its
command line driver.

The base package contains data types which are used throughout all the other
packages: source texts, source locators and classified errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package qlang
