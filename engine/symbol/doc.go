/*
Package symbol implements the typed element model and its registry.

A Symbol is a node of the typed document tree: it knows its element type
(a Def), its inline styles, class list and properties, and owns its
children. Symbols are created either programmatically or by resolving a
generic tree (package dom) against a Collection of registered element
types. Rendering to HTML, Markdown or RST is a recursive walk which
dispatches per node to the element type's renderer for that format.

Element types are plain data: a Def binds a generic tree name to one
renderer per output format. Renderers come in two flavors, literal
(Tag, MDLiteral, RSTWrap) and custom; see renderer.go. The catalog of
concrete element types lives in the elements subpackage.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package symbol

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bmd.symbol'.
func tracer() tracing.Trace {
	return tracing.Select("bmd.symbol")
}
