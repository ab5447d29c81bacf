/*
Package dom provides the generic document tree shared by all input parsers
and the symbol resolver.

A node of the generic tree is either a Text node, carrying raw string
content, or an Element node, carrying a tag name, an ordered attribute map
and an ordered list of children. The tree is deliberately dumb: it knows
nothing about rendering or about the catalog of supported element types.
Parsers produce it, the symbol collection consumes it. Its shape is the
wire format between independently implemented parsers and the registry and
must be preserved exactly.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package dom
