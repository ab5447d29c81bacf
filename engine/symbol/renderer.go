package symbol

import (
	"sort"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Renderers come in two flavors per format: a literal value (Tag,
// MDLiteral, RSTWrap) covering the default rendering shape, or a custom
// implementation with full control. Custom renderers receive the node's
// children, the node itself and its parent.

// HTMLRenderer produces the HTML serialization of one element type.
type HTMLRenderer interface {
	ToHTML(children []*Symbol, sym *Symbol, parent *Symbol) (string, error)
}

// MDRenderer produces the Markdown serialization of one element type.
type MDRenderer interface {
	ToMD(children []*Symbol, sym *Symbol, parent *Symbol) (string, error)
}

// RSTRenderer produces the RST serialization of one element type.
type RSTRenderer interface {
	ToRST(children []*Symbol, sym *Symbol, parent *Symbol) (string, error)
}

// Verifier is implemented by renderers that can claim generic node names
// beyond an exact match of the Def's name. The collection consults it
// during lookup.
type Verifier interface {
	Verify(name string) bool
}

// --- Literal variants ------------------------------------------------------

// Tag is the literal HTML renderer: it wraps the rendered children in
// <tag attrs>…</tag>, or serializes as a single self-closing <tag attrs />
// when no child output remains.
type Tag string

// ToHTML is part of interface HTMLRenderer.
func (t Tag) ToHTML(children []*Symbol, sym *Symbol, parent *Symbol) (string, error) {
	inner, err := JoinHTML(children, "")
	if err != nil {
		return "", err
	}
	attrs := attrString(sym)
	if inner == "" {
		return "<" + string(t) + attrs + " />", nil
	}
	return "<" + string(t) + attrs + ">" + inner + "</" + string(t) + ">", nil
}

// MDLiteral is the literal Markdown renderer: a prefix, the space-joined
// child output, and a trailing newline if the element type asks for one.
type MDLiteral string

// ToMD is part of interface MDRenderer.
func (l MDLiteral) ToMD(children []*Symbol, sym *Symbol, parent *Symbol) (string, error) {
	inner, err := JoinMD(children, " ")
	if err != nil {
		return "", err
	}
	out := string(l)
	if out != "" && inner != "" {
		out += " "
	}
	out += inner
	if sym.def.NL {
		out += "\n"
	}
	return out, nil
}

// RSTWrap is the literal RST renderer: the marker repeated on both sides
// of the space-joined child output, plus a trailing newline.
type RSTWrap string

// ToRST is part of interface RSTRenderer.
func (w RSTWrap) ToRST(children []*Symbol, sym *Symbol, parent *Symbol) (string, error) {
	inner, err := JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	return string(w) + inner + string(w) + "\n", nil
}

// --- Join helpers ----------------------------------------------------------

// JoinHTML renders all symbols to HTML and joins the parts with sep.
func JoinHTML(syms []*Symbol, sep string) (string, error) {
	return join(syms, sep, (*Symbol).ToHTML)
}

// JoinMD renders all symbols to Markdown and joins the parts with sep.
func JoinMD(syms []*Symbol, sep string) (string, error) {
	return join(syms, sep, (*Symbol).ToMD)
}

// JoinRST renders all symbols to RST and joins the parts with sep.
func JoinRST(syms []*Symbol, sep string) (string, error) {
	return join(syms, sep, (*Symbol).ToRST)
}

func join(syms []*Symbol, sep string, render func(*Symbol) (string, error)) (string, error) {
	parts := make([]string, 0, len(syms))
	for _, s := range syms {
		out, err := render(s)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, sep), nil
}

// attrString serializes class, style and the remaining properties of a
// symbol, each with a leading space. Styles are emitted in sorted key
// order to keep output deterministic; properties keep attribute order.
// A property set to "" renders as a bare attribute name.
func attrString(sym *Symbol) string {
	var sb strings.Builder
	if len(sym.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(xhtml.EscapeString(strings.Join(sym.Classes, " ")))
		sb.WriteString(`"`)
	}
	if len(sym.Styles) > 0 {
		keys := make([]string, 0, len(sym.Styles))
		for k := range sym.Styles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		decls := make([]string, 0, len(keys))
		for _, k := range keys {
			decls = append(decls, k+": "+sym.Styles[k])
		}
		sb.WriteString(` style="`)
		sb.WriteString(xhtml.EscapeString(strings.Join(decls, "; ")))
		sb.WriteString(`"`)
	}
	sym.EachProp(func(k, v string) {
		sb.WriteString(" ")
		sb.WriteString(k)
		if v != "" {
			sb.WriteString(`="`)
			sb.WriteString(xhtml.EscapeString(v))
			sb.WriteString(`"`)
		}
	})
	return sb.String()
}
