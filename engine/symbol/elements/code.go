package elements

import (
	"strings"

	"github.com/Better-MD/better-md/engine/symbol"
)

// Code is inline code or a fenced code block, depending on content: a
// language property or multi-line content makes it a block. Its HTML
// renderer claims the "code" tag name through a verifier, matching
// case-insensitively.
var Code = &symbol.Def{
	HTML:     codeHTML{},
	MD:       codeMD{},
	RST:      codeRST{},
	PropList: []string{"language"},
	NL:       true,
}

type codeHTML struct{}

func (codeHTML) Verify(name string) bool {
	return strings.ToLower(name) == "code"
}

func (codeHTML) ToHTML(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinHTML(children, "")
	if err != nil {
		return "", err
	}
	if language := sym.GetProp("language"); language != "" {
		return `<code class="language-` + language + `">` + inner + `</code>`, nil
	}
	return "<code>" + inner + "</code>", nil
}

type codeMD struct{}

func (codeMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinMD(children, "")
	if err != nil {
		return "", err
	}
	language := sym.GetProp("language")
	if language != "" || strings.Contains(inner, "\n") {
		return "```" + language + "\n" + inner + "\n```\n", nil
	}
	return "`" + inner + "`", nil
}

type codeRST struct{}

func (codeRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	inner, err := symbol.JoinRST(children, "")
	if err != nil {
		return "", err
	}
	language := sym.GetProp("language")
	if language != "" || strings.Contains(inner, "\n") {
		// Literal blocks are indented by three spaces.
		indented := indentLines(strings.TrimSpace(inner), "   ")
		if language != "" {
			return ".. code-block:: " + language + "\n\n" + indented + "\n\n", nil
		}
		return "::\n\n" + indented + "\n\n", nil
	}
	if strings.Contains(inner, "`") {
		return "``" + inner + "``", nil
	}
	return "`" + inner + "`", nil
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
