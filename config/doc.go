/*
Package config provides configuration for the interpreter and its command
line driver.

Configuration is read from YAML. Nested mappings are flattened into dotted
keys, lists are joined by blanks:

	interp:
	  maxiterations: 500
	scanner:
	  separators: [":=", "==", "+", "(", ")"]
	tracelevel:
	  root: Info
	  qlang.interp: Debug

results in keys "interp.maxiterations", "scanner.separators",
"tracelevel.root" and "tracelevel.qlang.interp".

Conf implements schuko.Configuration, thus it may be passed to schuko's
tracing setup (trace2go.ConfigureRoot) and to interp.ConfigOptions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.config'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.config")
}
