package elements

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Better-MD/better-md/engine/symbol"
)

// The table family. Markdown rows are rendered per section (thead carries
// the dashed separator), while the RST grid is laid out in one place by
// the table renderer: it needs the column widths of header and body rows
// at once, so the section and row types only contribute their cells.
var (
	Table = &symbol.Def{Name: "table", HTML: symbol.Tag("table"), MD: tableMD{}, RST: tableRST{}, NL: true}
	THead = &symbol.Def{Name: "thead", HTML: symbol.Tag("thead"), MD: theadMD{}, RST: handledByTable{}}
	TBody = &symbol.Def{Name: "tbody", HTML: symbol.Tag("tbody"), MD: tbodyMD{}, RST: handledByTable{}}
	Tr    = &symbol.Def{Name: "tr", HTML: symbol.Tag("tr"), MD: trMD{}, RST: handledByTable{}}
	Th    = &symbol.Def{Name: "th", HTML: symbol.Tag("th"), MD: cellMD{}, RST: cellRST{}}
	Td    = &symbol.Def{Name: "td", HTML: symbol.Tag("td"), MD: cellMD{}, RST: cellRST{}}
)

// handledByTable renders nothing: the enclosing table renderer lays out
// the whole grid.
type handledByTable struct{}

func (handledByTable) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return "", nil
}

type cellMD struct{}

func (cellMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return symbol.JoinMD(children, " ")
}

type cellRST struct{}

func (cellRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return symbol.JoinRST(children, " ")
}

type trMD struct{}

func (trMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	cells, err := rowCells(children, (*symbol.Symbol).ToMD)
	if err != nil {
		return "", err
	}
	return "|" + strings.Join(cells, "|") + "|", nil
}

// theadMD renders the header rows plus the alignment-separator row, with
// each column's dashes as wide as its widest header cell.
type theadMD struct{}

func (theadMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	if len(children) == 0 {
		return "", nil
	}
	var widths []int
	var out []string
	for _, row := range children {
		cells, err := rowCells(row.Children(), (*symbol.Symbol).ToMD)
		if err != nil {
			return "", err
		}
		widths = growWidths(widths, cells)
		out = append(out, "|"+strings.Join(cells, "|")+"|")
	}
	sep := make([]string, len(widths))
	for i, w := range widths {
		if w < 1 {
			w = 1
		}
		sep[i] = strings.Repeat("-", w)
	}
	out = append(out, "|"+strings.Join(sep, "|")+"|")
	return strings.Join(out, "\n"), nil
}

type tbodyMD struct{}

func (tbodyMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	return symbol.JoinMD(children, "\n")
}

// tableMD combines the header section's output with the body rows.
type tableMD struct{}

func (tableMD) ToMD(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	var parts []string
	for _, section := range children {
		out, err := section.ToMD()
		if err != nil {
			return "", err
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// tableRST renders a bordered grid table: two passes, first computing the
// maximum content width per column across header and body rows, then
// emitting fixed-width rows with a separator after each one ('=' after
// header rows, '-' otherwise).
type tableRST struct{}

func (tableRST) ToRST(children []*symbol.Symbol, sym, parent *symbol.Symbol) (string, error) {
	type tableRow struct {
		cells  []string
		header bool
	}
	var rows []tableRow
	var widths []int

	for _, section := range children {
		if !section.Is(THead) && !section.Is(TBody) {
			continue
		}
		for _, row := range section.Children() {
			cells, err := rowCells(row.Children(), (*symbol.Symbol).ToRST)
			if err != nil {
				return "", err
			}
			widths = growWidths(widths, cells)
			rows = append(rows, tableRow{cells, section.Is(THead)})
		}
	}
	if len(rows) == 0 {
		return "", nil
	}

	border := func(fill string) string {
		cols := make([]string, len(widths))
		for i, w := range widths {
			cols[i] = strings.Repeat(fill, w+2)
		}
		return "+" + strings.Join(cols, "+") + "+"
	}

	out := []string{border("-")}
	for _, row := range rows {
		cols := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(row.cells) {
				cell = row.cells[i]
			}
			cols[i] = runewidth.FillRight(cell, w)
		}
		out = append(out, "| "+strings.Join(cols, " | ")+" |")
		if row.header {
			out = append(out, border("="))
		} else {
			out = append(out, border("-"))
		}
	}
	return strings.Join(out, "\n"), nil
}

func rowCells(cells []*symbol.Symbol, render func(*symbol.Symbol) (string, error)) ([]string, error) {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		s, err := render(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// growWidths folds a row's cell widths into the running per-column
// maxima, growing the column count as needed.
func growWidths(widths []int, cells []string) []int {
	for i, c := range cells {
		w := runewidth.StringWidth(c)
		if i >= len(widths) {
			widths = append(widths, w)
		} else if w > widths[i] {
			widths[i] = w
		}
	}
	return widths
}
