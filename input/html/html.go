/*
Package html parses HTML markup into the generic document tree.

The parser is a hand-written, character-level finite state machine, modeled
after the tokenizer states of the HTML standard but intentionally much
smaller: comments, CDATA and doctype declarations are only stubbed out, and
misnested closing tags are ignored rather than recovered. Malformed input
never produces an error; the parser degrades by emitting a best-effort,
possibly incomplete tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bmd.html'.
func tracer() tracing.Trace {
	return tracing.Select("bmd.html")
}
