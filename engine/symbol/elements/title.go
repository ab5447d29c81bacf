package elements

import (
	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/symbol"
)

// Title is the document title. Its Markdown/RST renderers insist on
// exactly one text child; anything else is a structural validation error.
var Title = &symbol.Def{
	Name: "title",
	HTML: symbol.Tag("title"),
	MD:   titleMD{},
	RST:  titleRST{},
}

func titleText(children []*symbol.Symbol) (*symbol.Symbol, error) {
	if len(children) != 1 || !children[0].Is(Text) {
		return nil, core.Error(core.EINVALID, "title element must contain a single text element")
	}
	return children[0], nil
}

type titleMD struct{}

func (titleMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	text, err := titleText(children)
	if err != nil {
		return "", err
	}
	inner, err := text.ToMD()
	if err != nil {
		return "", err
	}
	return `title: "` + inner + `"`, nil
}

type titleRST struct{}

func (titleRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	text, err := titleText(children)
	if err != nil {
		return "", err
	}
	inner, err := text.ToRST()
	if err != nil {
		return "", err
	}
	return ":title: " + inner, nil
}
