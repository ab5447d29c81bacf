/*
Package markdown parses Markdown text into the generic document tree.

The parser is line-oriented: each input line is classified against a fixed
set of block-level patterns (header, blockquote, fenced code, horizontal
rule, lists, tables, title directive) and dispatched to the matching block
handler. Unmatched lines accumulate in a paragraph buffer which is flushed
whenever a block starts or a blank line is seen. The intermediate vocabulary
is HTML element names (p, h1..h6, ul, ol, li, table, blockquote, pre/code,
hr, br, title), so Markdown and HTML input meet in the same tree shape.

The parser does not aim for CommonMark compliance. Inline markup is left
untouched inside text nodes, and malformed block structure degrades to
plain paragraph text instead of producing an error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bmd.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("bmd.markdown")
}
