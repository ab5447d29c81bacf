package bettermd

import (
	"strings"

	"github.com/Better-MD/better-md/engine/symbol"
	"github.com/Better-MD/better-md/engine/symbol/elements"
	"github.com/Better-MD/better-md/input/html"
	"github.com/Better-MD/better-md/input/markdown"
)

// FromHTML parses an HTML fragment and resolves it against the built-in
// element catalog. An HTML fragment may have more than one top-level
// node, so a slice of symbols is returned.
func FromHTML(input string) ([]*symbol.Symbol, error) {
	coll := elements.Default()
	nodes := html.NewParser().Parse(input)
	syms := make([]*symbol.Symbol, 0, len(nodes))
	for _, n := range nodes {
		sym, err := coll.Parse(n)
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym.Prepare(nil))
	}
	tracer().Debugf("resolved %d top-level HTML node(s)", len(syms))
	return syms, nil
}

// FromMD parses a Markdown document and resolves it against the built-in
// element catalog. Markdown documents always resolve to a single html
// root symbol.
func FromMD(input string) (*symbol.Symbol, error) {
	root, err := markdown.NewParser().Parse(input)
	if err != nil {
		return nil, err
	}
	sym, err := elements.Default().Parse(root)
	if err != nil {
		return nil, err
	}
	return sym.Prepare(nil), nil
}

// HTMLToMD converts an HTML fragment to Markdown.
func HTMLToMD(input string) (string, error) {
	return renderHTML(input, (*symbol.Symbol).ToMD)
}

// HTMLToRST converts an HTML fragment to reStructuredText.
func HTMLToRST(input string) (string, error) {
	return renderHTML(input, (*symbol.Symbol).ToRST)
}

// MDToHTML converts a Markdown document to HTML.
func MDToHTML(input string) (string, error) {
	sym, err := FromMD(input)
	if err != nil {
		return "", err
	}
	return sym.ToHTML()
}

// MDToRST converts a Markdown document to reStructuredText.
func MDToRST(input string) (string, error) {
	sym, err := FromMD(input)
	if err != nil {
		return "", err
	}
	return sym.ToRST()
}

func renderHTML(input string, render func(*symbol.Symbol) (string, error)) (string, error) {
	syms, err := FromHTML(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, sym := range syms {
		out, err := render(sym)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}
