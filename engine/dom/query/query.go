/*
Package query selects nodes of the generic document tree with CSS
selectors.

We use these libraries:

	github.com/andybalholm/cascadia
	golang.org/x/net/html

cascadia matches against golang.org/x/net/html node trees, so queries go
through a throwaway conversion of the generic tree into an html.Node
shadow tree. The shadow nodes are mapped back to their generic originals
after matching.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package query

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/dom"
)

// Select returns the nodes below root (root included) matching a CSS
// selector, in document order.
func Select(root dom.Node, selector string) ([]dom.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid CSS selector %q", selector)
	}
	backmap := make(map[*html.Node]dom.Node)
	shadow := toHTMLNode(root, backmap)
	var result []dom.Node
	for _, m := range sel.MatchAll(shadow) {
		if n, ok := backmap[m]; ok {
			result = append(result, n)
		}
	}
	return result, nil
}

// ToHTMLNode converts a generic tree into an equivalent
// golang.org/x/net/html node tree.
func ToHTMLNode(node dom.Node) *html.Node {
	return toHTMLNode(node, nil)
}

func toHTMLNode(node dom.Node, backmap map[*html.Node]dom.Node) *html.Node {
	var h *html.Node
	switch n := node.(type) {
	case *dom.Text:
		h = &html.Node{Type: html.TextNode, Data: n.Content}
	case *dom.Element:
		h = &html.Node{
			Type:     html.ElementNode,
			Data:     n.Name(),
			DataAtom: atom.Lookup([]byte(n.Name())),
		}
		n.EachAttr(func(key, value string) {
			h.Attr = append(h.Attr, html.Attribute{Key: key, Val: value})
		})
		for _, c := range n.Children() {
			h.AppendChild(toHTMLNode(c, backmap))
		}
	default:
		h = &html.Node{Type: html.CommentNode}
	}
	if backmap != nil {
		backmap[h] = node
	}
	return h
}
