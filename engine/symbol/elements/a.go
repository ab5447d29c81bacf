package elements

import (
	"regexp"

	"github.com/Better-MD/better-md/engine/symbol"
)

// A is a hyperlink. The link target comes from the href property.
var A = &symbol.Def{
	Name:     "a",
	HTML:     symbol.Tag("a"),
	MD:       linkMD{},
	RST:      linkRST{},
	PropList: []string{"href"},
}

// Markdown link shapes recognized by the linkMD verifier: inline links,
// automatic links, and reference links with their declaration.
var (
	reInlineLink    = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)
	reAutomaticLink = regexp.MustCompile(`<(https?://[^\s>]+)>`)
	reReferenceLink = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]+)\]\s*\n?\[([^\]]+)\]:\s*(https?://[^\s]+)`)
)

type linkMD struct{}

// Verify reports whether text contains a Markdown link.
func (linkMD) Verify(text string) bool {
	return reInlineLink.MatchString(text) ||
		reAutomaticLink.MatchString(text) ||
		reReferenceLink.MatchString(text)
}

func (linkMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinMD(children, " ")
	if err != nil {
		return "", err
	}
	return "[" + inner + "](" + sym.GetProp("href") + ")", nil
}

type linkRST struct{}

func (linkRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	return "`" + inner + " <" + sym.GetProp("href") + ">`_", nil
}

// Img is an inline image, addressed by its src property.
var Img = &symbol.Def{
	Name:     "img",
	HTML:     symbol.Tag("img"),
	MD:       imgMD{},
	RST:      imgRST{},
	PropList: []string{"src", "alt", "width", "height"},
}

type imgMD struct{}

func (imgMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return "![" + sym.GetProp("alt") + "](" + sym.GetProp("src") + ")", nil
}

type imgRST struct{}

func (imgRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	out := ".. image:: " + sym.GetProp("src") + "\n"
	if alt := sym.GetProp("alt"); alt != "" {
		out += "   :alt: " + alt + "\n"
	}
	return out + "\n", nil
}
