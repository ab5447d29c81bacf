package dom

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Node is the building block of the generic document tree. A node is
// either a *Text or an *Element. Children are kept in document order.
type Node interface {
	// Name returns the element's tag name, or "text" for text nodes.
	// Names are matched case-sensitively by the symbol collection.
	Name() string
	// Parent returns the enclosing element, or nil at the tree top.
	Parent() *Element
	setParent(*Element)
}

// --- Text nodes ------------------------------------------------------------

// Text is a leaf node holding raw string content.
type Text struct {
	Content string
	parent  *Element
}

// NewText creates a text node with the given content.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// Name returns "text" for every text node.
func (t *Text) Name() string { return "text" }

// Parent returns the enclosing element of this text node.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(e *Element) { t.parent = e }

// --- Element nodes ---------------------------------------------------------

// Element is an inner node with a tag name, ordered attributes and an
// ordered list of children.
type Element struct {
	name       string
	attributes *linkedhashmap.Map // string → string, insertion ordered
	children   []Node
	parent     *Element
}

// NewElement creates an element node without attributes or children.
func NewElement(name string) *Element {
	return &Element{
		name:       name,
		attributes: linkedhashmap.New(),
	}
}

// Name returns the element's tag name.
func (e *Element) Name() string { return e.name }

// Parent returns the enclosing element, or nil for a top-level element.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Attr returns the value of an attribute, together with a flag indicating
// whether the attribute is present at all.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attributes.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// SetAttr sets an attribute. Attribute keys are unique; setting an existing
// key overwrites its value but keeps its position.
func (e *Element) SetAttr(key, value string) {
	e.attributes.Put(key, value)
}

// EachAttr calls f for every attribute, in insertion order.
func (e *Element) EachAttr(f func(key, value string)) {
	e.attributes.Each(func(k, v interface{}) {
		f(k.(string), v.(string))
	})
}

// AttrCount returns the number of attributes.
func (e *Element) AttrCount() int { return e.attributes.Size() }

// AttrAt returns the attribute at position i, in insertion order.
// It is used by tree navigators which address attributes by index.
func (e *Element) AttrAt(i int) (key, value string) {
	keys := e.attributes.Keys()
	if i < 0 || i >= len(keys) {
		return "", ""
	}
	k := keys[i].(string)
	v, _ := e.attributes.Get(k)
	return k, v.(string)
}

// AppendChild appends a node to the element's child list and links the
// child's parent reference back to e.
func (e *Element) AppendChild(n Node) {
	n.setParent(e)
	e.children = append(e.children, n)
}

// Children returns the element's children in document order. The returned
// slice is the element's own; callers must not modify it.
func (e *Element) Children() []Node { return e.children }

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the child at position i.
func (e *Element) Child(i int) (Node, bool) {
	if i < 0 || i >= len(e.children) {
		return nil, false
	}
	return e.children[i], true
}

// --- Helpers ---------------------------------------------------------------

// InnerText returns the concatenated text content of a subtree.
func InnerText(n Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	switch n := n.(type) {
	case *Text:
		sb.WriteString(n.Content)
	case *Element:
		for _, ch := range n.children {
			collectText(ch, sb)
		}
	}
}
