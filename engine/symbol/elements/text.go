package elements

import (
	xhtml "golang.org/x/net/html"

	"github.com/Better-MD/better-md/engine/symbol"
)

// Text is the element type of raw text nodes. It is not equivalent to the
// html span or p tags: it carries nothing but its string content.
var Text = &symbol.Def{
	Name: "text",
	HTML: textRenderer{},
	MD:   textRenderer{},
	RST:  textRenderer{},
}

// NewText creates a typed text node.
func NewText(text string) *symbol.Symbol {
	return Text.NewText(text)
}

type textRenderer struct{}

func (textRenderer) ToHTML(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return xhtml.EscapeString(sym.Text()), nil
}

func (textRenderer) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return sym.Text(), nil
}

func (textRenderer) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return sym.Text(), nil
}
