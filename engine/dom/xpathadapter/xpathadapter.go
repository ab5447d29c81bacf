/*
Package xpathadapter implements an xpath.NodeNavigator for the generic
document tree.

We use this library for XPath queries:

	github.com/antchfx/xpath

The navigator treats the queried subtree as the single child of a
synthetic document node, so absolute paths address the subtree's own
root element ("/html/body/p"). The document node exists only as
navigator state; querying never touches the tree. For a description of
the various methods of interface xpath.NodeNavigator please refer to
the documentation of antchfx/xpath. It is not replicated here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The BetterMD authors
*/
package xpathadapter

import (
	"github.com/antchfx/xpath"

	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/dom"
)

// NodeNavigator walks a generic tree for the XPath engine. A nil current
// marks the synthetic document position above root. The attr index is -1
// while positioned on a node itself and addresses an attribute otherwise.
//
// The navigator is read-only: it never follows parent or sibling links
// above root, so querying a subtree of a larger document stays inside
// that subtree.
type NodeNavigator struct {
	root    dom.Node
	current dom.Node
	attr    int
}

// NewNavigator creates an xpath.NodeNavigator over the subtree rooted at
// node, positioned on the synthetic document node above it.
func NewNavigator(node dom.Node) *NodeNavigator {
	return &NodeNavigator{
		root:    node,
		current: nil,
		attr:    -1,
	}
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// CurrentNode returns the generic tree node a navigator is positioned on.
// On the synthetic document position it returns the subtree root.
func CurrentNode(nav xpath.NodeNavigator) (dom.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, core.Error(core.EINVALID, "navigator is not of type xpathadapter.NodeNavigator")
	}
	if mynav.current == nil {
		return mynav.root, nil
	}
	return mynav.current, nil
}

// Select evaluates an XPath expression against the subtree rooted at node
// and returns the matching generic tree nodes in document order.
func Select(node dom.Node, expr string) ([]dom.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	iter := xp.Select(NewNavigator(node))
	var result []dom.Node
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok || nav.attr != -1 || nav.current == nil {
			continue
		}
		result = append(result, nav.current)
	}
	return result, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.current == nil {
		return xpath.RootNode
	}
	switch nav.current.(type) {
	case *dom.Text:
		return xpath.TextNode
	case *dom.Element:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	return xpath.TextNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.current == nil {
		return ""
	}
	if e, ok := nav.current.(*dom.Element); ok && nav.attr != -1 {
		key, _ := e.AttrAt(nav.attr)
		return key
	}
	return nav.current.Name()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch n := nav.current.(type) {
	case nil:
		return dom.InnerText(nav.root)
	case *dom.Text:
		return n.Content
	case *dom.Element:
		if nav.attr != -1 {
			_, value := n.AttrAt(nav.attr)
			return value
		}
		return dom.InnerText(n)
	}
	return ""
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nil
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attribute back to its element
		return true
	}
	switch nav.current {
	case nil:
		return false
	case nav.root:
		nav.current = nil
		return true
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	nav.current = parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	e, ok := nav.current.(*dom.Element)
	if !ok || nav.attr >= e.AttrCount()-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current == nil {
		nav.current = nav.root
		return true
	}
	e, ok := nav.current.(*dom.Element)
	if !ok || e.ChildCount() == 0 {
		return false
	}
	child, ok := e.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nil {
		return false
	}
	if nav.current == nav.root {
		return true // the subtree root is an only child
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	child, ok := parent.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveSibling(-1)
}

func (nav *NodeNavigator) moveSibling(delta int) bool {
	if nav.attr != -1 || nav.current == nil || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	i := indexOfChild(parent, nav.current)
	if i < 0 {
		return false
	}
	sibling, ok := parent.Child(i + delta)
	if ok {
		nav.current = sibling
	}
	return ok
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func indexOfChild(parent *dom.Element, child dom.Node) int {
	for i, c := range parent.Children() {
		if c == child {
			return i
		}
	}
	return -1
}
