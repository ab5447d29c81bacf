package symbol

import (
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/dom"
)

// Parse materializes a typed symbol tree from a generic tree node.
//
// Text nodes resolve to the registered "text" type. Element nodes resolve
// by name against the collection; their style attribute is parsed into the
// styles map, the class attribute is split into tokens, all remaining
// attributes become properties, and children are resolved recursively in
// document order. A name that resolves to no registered type is a hard
// failure (core.EMISSING).
//
// The returned tree is not yet prepared; run Prepare on it before
// consulting parent references.
func (c *Collection) Parse(n dom.Node) (*Symbol, error) {
	switch n := n.(type) {
	case *dom.Text:
		def, err := c.FindSymbol("text")
		if err != nil {
			return nil, err
		}
		return def.NewText(n.Content), nil
	case *dom.Element:
		def, err := c.FindSymbol(n.Name())
		if err != nil {
			return nil, err
		}
		sym := def.New()
		n.EachAttr(func(key, value string) {
			switch key {
			case "style":
				sym.Styles = parseInlineStyle(value)
			case "class":
				sym.Classes = strings.Fields(value)
			default:
				sym.SetProp(key, value)
			}
		})
		for _, ch := range n.Children() {
			child, err := c.Parse(ch)
			if err != nil {
				return nil, err
			}
			sym.AddChild(child)
		}
		return sym, nil
	}
	return nil, core.Error(core.EINTERNAL, "generic node of unknown kind %T", n)
}

// parseInlineStyle splits an inline style attribute into a property map.
// A declaration list that does not parse as CSS is dropped, matching the
// general malformed-markup tolerance of the parsers.
func parseInlineStyle(style string) map[string]string {
	styles := make(map[string]string)
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Infof("dropping unparsable style attribute %q: %v", style, err)
		return styles
	}
	for _, d := range decls {
		styles[d.Property] = d.Value
	}
	return styles
}
