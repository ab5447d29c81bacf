/*
Package elements is the catalog of concrete element types.

Every element type is a symbol.Def value binding a generic tree name to a
renderer per output format. Most types get by with the literal renderer
variants; the interesting ones (tables, code, checkbox inputs, titles,
lists) carry custom renderers in this package. Builtins returns the whole
catalog in registration order, and Default hands out a shared collection
populated with it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package elements
