package elements

import (
	"fmt"
	"strings"

	"github.com/Better-MD/better-md/engine/symbol"
)

// Lists. Items render one marker per li; a nested list inside an item is
// indented under its item's marker line.
var (
	UL = &symbol.Def{Name: "ul", HTML: symbol.Tag("ul"), MD: ulRenderer{}, RST: ulRenderer{}, NL: true}
	OL = &symbol.Def{Name: "ol", HTML: symbol.Tag("ol"), MD: olRenderer{}, RST: olRenderer{}, NL: true}
	LI = &symbol.Def{Name: "li", HTML: symbol.Tag("li"), MD: symbol.MDLiteral(""), RST: symbol.RSTWrap("")}
)

type ulRenderer struct{}

func (ulRenderer) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return renderList(children, (*symbol.Symbol).ToMD, func(int) string { return "- " })
}

func (ulRenderer) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return renderList(children, (*symbol.Symbol).ToRST, func(int) string { return "- " })
}

type olRenderer struct{}

func (olRenderer) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return renderList(children, (*symbol.Symbol).ToMD, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
}

func (olRenderer) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return renderList(children, (*symbol.Symbol).ToRST, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
}

// renderList lays out list items line by line. For each li, inline
// children form the marker line; nested list children are rendered
// recursively and indented by two spaces.
func renderList(items []*symbol.Symbol, render func(*symbol.Symbol) (string, error), marker func(int) string) (string, error) {
	var lines []string
	n := 0
	for _, li := range items {
		var inline []*symbol.Symbol
		var nested []*symbol.Symbol
		for _, c := range li.Children() {
			if c.Is(UL) || c.Is(OL) {
				nested = append(nested, c)
			} else {
				inline = append(inline, c)
			}
		}
		if len(inline) > 0 {
			parts := make([]string, 0, len(inline))
			for _, c := range inline {
				out, err := render(c)
				if err != nil {
					return "", err
				}
				parts = append(parts, out)
			}
			lines = append(lines, marker(n)+strings.Join(parts, " "))
			n++
		}
		for _, sub := range nested {
			out, err := render(sub)
			if err != nil {
				return "", err
			}
			for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
				lines = append(lines, "  "+l)
			}
		}
	}
	return strings.Join(lines, "\n") + "\n", nil
}
