package elements

import (
	"strings"
	"sync"

	"github.com/Better-MD/better-md/engine/symbol"
)

// Structural containers. Their Markdown/RST renderings simply concatenate
// child output; the children carry their own block separation.
var (
	HTML = &symbol.Def{Name: "html", HTML: symbol.Tag("html"), MD: concat{}, RST: concat{}}
	Head = &symbol.Def{Name: "head", HTML: symbol.Tag("head"), MD: concat{}, RST: concat{}}
	Body = &symbol.Def{Name: "body", HTML: symbol.Tag("body"), MD: concat{}, RST: concat{}}
)

// Block-level basics.
var (
	P   = &symbol.Def{Name: "p", HTML: symbol.Tag("p"), MD: symbol.MDLiteral(""), RST: paraRST{}, NL: true}
	Pre = &symbol.Def{Name: "pre", HTML: symbol.Tag("pre"), MD: concat{}, RST: concat{}}
	Div = &symbol.Def{Name: "div", HTML: symbol.Tag("div"), MD: symbol.MDLiteral(""), RST: symbol.RSTWrap(""), NL: true}
	Hr  = &symbol.Def{Name: "hr", HTML: symbol.Tag("hr"), MD: symbol.MDLiteral("---"), RST: hrRST{}, NL: true}
	Br  = &symbol.Def{Name: "br", HTML: symbol.Tag("br"), MD: symbol.MDLiteral(""), RST: brRST{}, NL: true}

	Blockquote = &symbol.Def{Name: "blockquote", HTML: symbol.Tag("blockquote"), MD: blockquoteMD{}, RST: blockquoteRST{}, NL: true}
)

// Inline formatting. The b and i tags share their renderers with strong
// and em.
var (
	Span   = &symbol.Def{Name: "span", HTML: symbol.Tag("span"), MD: symbol.MDLiteral(""), RST: symbol.RSTWrap("")}
	Strong = &symbol.Def{Name: "strong", HTML: symbol.Tag("strong"), MD: inlineWrap("**"), RST: inlineWrap("**")}
	Em     = &symbol.Def{Name: "em", HTML: symbol.Tag("em"), MD: inlineWrap("*"), RST: inlineWrap("*")}
	B      = &symbol.Def{Name: "b", HTML: symbol.Tag("b"), MD: inlineWrap("**"), RST: inlineWrap("**")}
	I      = &symbol.Def{Name: "i", HTML: symbol.Tag("i"), MD: inlineWrap("*"), RST: inlineWrap("*")}
)

// Headings h1 through h6.
var (
	H1 = heading(1, '=')
	H2 = heading(2, '-')
	H3 = heading(3, '~')
	H4 = heading(4, '^')
	H5 = heading(5, '"')
	H6 = heading(6, '\'')
)

// --- Shared renderer helpers -----------------------------------------------

// concat joins child output without separators.
type concat struct{}

func (concat) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return symbol.JoinMD(children, "")
}

func (concat) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return symbol.JoinRST(children, "")
}

// inlineWrap wraps child output in a marker on both sides, without the
// trailing newline of the default RST rendering.
type inlineWrap string

func (w inlineWrap) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinMD(children, " ")
	if err != nil {
		return "", err
	}
	return string(w) + inner + string(w), nil
}

func (w inlineWrap) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	return string(w) + inner + string(w), nil
}

type paraRST struct{}

func (paraRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	return inner + "\n\n", nil
}

type hrRST struct{}

func (hrRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return "----\n\n", nil
}

type brRST struct{}

func (brRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return "\n", nil
}

type blockquoteMD struct{}

func (blockquoteMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinMD(children, "")
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimRight(inner, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n") + "\n", nil
}

type blockquoteRST struct{}

func (blockquoteRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, "")
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimRight(inner, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "   " + l
	}
	return strings.Join(lines, "\n") + "\n\n", nil
}

// --- Catalog ---------------------------------------------------------------

// Builtins returns the full element catalog, in registration order.
// Registration order is lookup order: the first type matching a name wins.
func Builtins() []*symbol.Def {
	return []*symbol.Def{
		Text,
		HTML, Head, Body, Title,
		P, Pre, Code,
		A, Img,
		Div, Span, Strong, Em, B, I,
		Blockquote,
		UL, OL, LI,
		Table, THead, TBody, Tr, Th, Td,
		Hr, Br,
		Input,
		H1, H2, H3, H4, H5, H6,
	}
}

var (
	defaultOnce sync.Once
	defaultColl *symbol.Collection
)

// Default returns a shared collection populated with the builtin catalog.
// It is created on first use and read-only afterwards; call sites needing
// their own catalog should build a collection via symbol.NewCollection.
func Default() *symbol.Collection {
	defaultOnce.Do(func() {
		defaultColl = symbol.NewCollection(Builtins()...)
	})
	return defaultColl
}
