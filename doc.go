/*
Package bettermd converts documents between HTML, Markdown and
reStructuredText.

Documents are parsed into a generic tree (package engine/dom), resolved
against a registry of element definitions (package engine/symbol) and
rendered from the resolved symbols into any of the three output formats.
The top-level functions in this package wire those stages together over
the built-in element catalog:

	md, err := bettermd.HTMLToMD(`<h1>Hello</h1><p>world</p>`)

Callers needing a custom element catalog build their own
symbol.Collection and drive the stages directly; see package
engine/symbol/elements for the built-in definitions.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package bettermd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bmd'.
func tracer() tracing.Trace {
	return tracing.Select("bmd")
}
