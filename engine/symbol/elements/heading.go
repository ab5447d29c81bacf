package elements

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Better-MD/better-md/engine/symbol"
)

func heading(level int, underline rune) *symbol.Def {
	name := fmt.Sprintf("h%d", level)
	return &symbol.Def{
		Name: name,
		HTML: symbol.Tag(name),
		MD:   symbol.MDLiteral(strings.Repeat("#", level)),
		RST:  headingRST{underline},
		NL:   true,
	}
}

// headingRST renders a section title in adornment style: the title text
// underlined with a level-specific character, at least as wide as the
// text.
type headingRST struct {
	underline rune
}

func (h headingRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	width := runewidth.StringWidth(inner)
	if width == 0 {
		width = 1
	}
	return inner + "\n" + strings.Repeat(string(h.underline), width) + "\n\n", nil
}
