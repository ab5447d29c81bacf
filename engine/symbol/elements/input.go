package elements

import (
	"github.com/Better-MD/better-md/engine/symbol"
)

// Input is a form input. Checkboxes render as task-list items in Markdown
// and RST; other input types fall back to literal HTML in Markdown and
// have no RST equivalent.
var Input = &symbol.Def{
	Name: "input",
	HTML: symbol.Tag("input"),
	MD:   inputMD{},
	RST:  inputRST{},
	PropList: []string{
		"type",
		"name",
		"value",
		"placeholder",
		"required",
		"disabled",
		"readonly",
		"min",
		"max",
		"pattern",
		"autocomplete",
		"autofocus",
		"checked",
		"multiple",
		"step",
	},
}

// checkboxMark returns the task-list mark. The checked attribute counts
// by presence, so HasProp rather than a value comparison.
func checkboxMark(sym *symbol.Symbol) string {
	if sym.HasProp("checked") {
		return "x"
	}
	return " "
}

type inputMD struct{}

func (inputMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	if sym.GetProp("type") != "checkbox" {
		return sym.ToHTML()
	}
	label, err := symbol.JoinMD(children, " ")
	if err != nil {
		return "", err
	}
	return "- [" + checkboxMark(sym) + "] " + label, nil
}

type inputRST struct{}

func (inputRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	if sym.GetProp("type") != "checkbox" {
		return "", nil // most input types have no RST equivalent
	}
	label, err := symbol.JoinRST(children, " ")
	if err != nil {
		return "", err
	}
	return "[" + checkboxMark(sym) + "] " + label, nil
}
