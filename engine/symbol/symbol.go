package symbol

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Def describes a concrete element type: the generic-tree name it binds to
// and one renderer per output format. Defs are immutable after
// registration and shared by all symbols of their type.
type Def struct {
	Name string // generic tree name, matched case-sensitively; "" for verifier-only types
	HTML HTMLRenderer
	MD   MDRenderer
	RST  RSTRenderer
	// PropList documents the recognized attribute names of this type.
	// It is informational and not enforced.
	PropList []string
	// NL makes the default Markdown rendering emit a trailing newline.
	NL bool
}

// New creates a symbol of this type. Children passed here are attached in
// order but not yet linked to their parent; call Prepare on the finished
// tree to stamp parent references.
func (d *Def) New(children ...*Symbol) *Symbol {
	s := &Symbol{
		def:    d,
		Styles: make(map[string]string),
		props:  linkedhashmap.New(),
	}
	s.children = append(s.children, children...)
	return s
}

// NewText creates a symbol of this type carrying raw text content.
// It is meant for the "text" element type.
func (d *Def) NewText(text string) *Symbol {
	s := d.New()
	s.text = text
	return s
}

// Symbol is a node of the typed document tree.
//
// A symbol owns its children: a child has at most one parent at a time,
// and ChangeParent moves a symbol atomically between owners. The parent
// reference itself is a non-owning back-pointer which is stamped by a
// separate Prepare pass, because children may be attached before their
// final parent is known.
type Symbol struct {
	def      *Def
	Styles   map[string]string // parsed inline style attribute
	Classes  []string          // class attribute tokens, in order
	props    *linkedhashmap.Map
	children []*Symbol
	parent   *Symbol
	text     string // raw content for text symbols
	prepared bool
}

// Def returns the symbol's element type.
func (s *Symbol) Def() *Def { return s.def }

// Is reports whether the symbol is of the given element type.
func (s *Symbol) Is(d *Def) bool { return s.def == d }

// Text returns the raw content of a text symbol, or "" for element
// symbols.
func (s *Symbol) Text() string { return s.text }

// Parent returns the parent back-reference, valid after Prepare.
func (s *Symbol) Parent() *Symbol { return s.parent }

// Children returns the symbol's children in document order. The slice is
// owned by the symbol.
func (s *Symbol) Children() []*Symbol { return s.children }

// AddChild appends a child to the symbol's child list. The child's parent
// reference is not touched; Prepare stamps it.
func (s *Symbol) AddChild(child *Symbol) {
	s.children = append(s.children, child)
}

// RemoveChild removes the first occurrence of child from the child list.
func (s *Symbol) RemoveChild(child *Symbol) {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// ReplaceChild replaces old with new at old's position. It is a no-op if
// old is not a child of s.
func (s *Symbol) ReplaceChild(old, new *Symbol) {
	for i, c := range s.children {
		if c == old {
			s.children[i] = new
			return
		}
	}
}

// HasChild returns the first child of the given element type, or nil.
func (s *Symbol) HasChild(d *Def) *Symbol {
	for _, c := range s.children {
		if c.def == d {
			return c
		}
	}
	return nil
}

// SetParent links s under parent and appends it to parent's children.
// It does not detach s from a previous parent; use ChangeParent for that.
func (s *Symbol) SetParent(parent *Symbol) {
	s.parent = parent
	parent.AddChild(s)
}

// ChangeParent moves s to a new parent: it detaches s from its current
// parent, if any, and attaches it to newParent. The single-ownership
// invariant holds before and after.
func (s *Symbol) ChangeParent(newParent *Symbol) {
	if s.parent != nil {
		s.parent.RemoveChild(s)
	}
	s.SetParent(newParent)
}

// Prepare stamps parent references through the whole subtree rooted at s.
// It is a second pass, run after the tree is fully built. Prepare returns
// s for chaining.
func (s *Symbol) Prepare(parent *Symbol) *Symbol {
	s.prepared = true
	s.parent = parent
	for _, c := range s.children {
		c.Prepare(s)
	}
	return s
}

// GetProp returns a property value, or "" if the property is unset.
func (s *Symbol) GetProp(key string) string {
	if v, ok := s.props.Get(key); ok {
		return v.(string)
	}
	return ""
}

// HasProp reports whether a property is set at all, even to "".
func (s *Symbol) HasProp(key string) bool {
	_, ok := s.props.Get(key)
	return ok
}

// SetProp sets a property. Keys keep their insertion position.
func (s *Symbol) SetProp(key, value string) {
	s.props.Put(key, value)
}

// EachProp calls f for every property, in insertion order.
func (s *Symbol) EachProp(f func(key, value string)) {
	s.props.Each(func(k, v interface{}) {
		f(k.(string), v.(string))
	})
}

// --- Render dispatch -------------------------------------------------------

// ToHTML renders the subtree rooted at s to HTML.
func (s *Symbol) ToHTML() (string, error) {
	return s.def.HTML.ToHTML(s.children, s, s.parent)
}

// ToMD renders the subtree rooted at s to Markdown.
func (s *Symbol) ToMD() (string, error) {
	return s.def.MD.ToMD(s.children, s, s.parent)
}

// ToRST renders the subtree rooted at s to reStructuredText.
func (s *Symbol) ToRST() (string, error) {
	return s.def.RST.ToRST(s.children, s, s.parent)
}
