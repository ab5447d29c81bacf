package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/dom"
	"golang.org/x/text/unicode/norm"
)

// Block-level line patterns, tested in priority order by Parse.
var (
	reHeader     = regexp.MustCompile(`^(#{1,6})(?: (.*))?$`)
	reBlockquote = regexp.MustCompile(`^> (.+)$`)
	reCode       = regexp.MustCompile("^```([A-Za-z]*)[^.](?:([^`]*)[^.])?```$")
	reHr         = regexp.MustCompile(`^---+$`)
	reUl         = regexp.MustCompile(`^([ \t]*)(?:-|\+|\*)(?: (.*))?$`)
	reOl         = regexp.MustCompile(`^([ \t]*)(?:\d+)\.(?: (.*))?$`)
	reTableRow   = regexp.MustCompile(`^\|(?:[^|\n]+\|)+$`)
	reTableSep   = regexp.MustCompile(`^\|(?::?-+:?\|)+$`)
	reTitle      = regexp.MustCompile(`^title: (.+)$`)
)

// blockStart reports whether a (trimmed) line opens one of the block-level
// constructs. Lines inside blockquotes and list items that do not open a
// block are treated as continuations.
func blockStart(line string) bool {
	return reHeader.MatchString(line) ||
		reBlockquote.MatchString(line) ||
		reCode.MatchString(line) ||
		reHr.MatchString(line) ||
		reUl.MatchString(line) ||
		reOl.MatchString(line) ||
		reTableRow.MatchString(line) ||
		reTableSep.MatchString(line) ||
		reTitle.MatchString(line)
}

// Parser is a line-oriented Markdown block parser. The zero value is ready
// for use; Parse resets all internal state. Blockquote content is parsed by
// a fresh nested Parser, so recursion never shares state.
type Parser struct {
	nodes  []dom.Node   // finished block-level nodes, document order
	buffer []string     // pending paragraph lines
	head   *dom.Element // set by the title: directive
}

// NewParser creates a Markdown parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse is a convenience for NewParser().Parse(input).
func Parse(input string) (*dom.Element, error) {
	return NewParser().Parse(input)
}

func (p *Parser) reset() {
	p.nodes = nil
	p.buffer = nil
	p.head = nil
}

// Parse converts Markdown text into a generic tree rooted at a synthetic
// html element with head and body children; the parsed block-level nodes
// become the body's children. Malformed block structure degrades to
// paragraph text. An error is only returned for internal invariant
// violations, never for bad input.
func (p *Parser) Parse(input string) (*dom.Element, error) {
	p.reset()
	lines := splitLines(norm.NFC.String(input))
	i := 0

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		// A blank line ends the current paragraph; two in a row insert a
		// hard break.
		if line == "" {
			p.endBlock()
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
				p.nodes = append(p.nodes, dom.NewElement("br"))
				i += 2
				continue
			}
			i++
			continue
		}

		switch {
		case reHeader.MatchString(line):
			p.endBlock()
			if err := p.handleHeader(line); err != nil {
				return nil, err
			}
			i++

		case reBlockquote.MatchString(line):
			p.endBlock()
			n, err := p.handleBlockquote(lines, i)
			if err != nil {
				return nil, err
			}
			i += n

		case reCode.MatchString(strings.Join(lines[i:], "\n")):
			p.endBlock()
			n, err := p.handleCode(lines[i:])
			if err != nil {
				return nil, err
			}
			i += n

		case reHr.MatchString(line):
			p.endBlock()
			p.nodes = append(p.nodes, dom.NewElement("hr"))
			i++

		case reUl.MatchString(line) || reOl.MatchString(line):
			p.endBlock()
			list, n := p.parseList(lines, i, 0)
			if n == 0 {
				// Dispatch saw a list marker the handler did not; that is
				// a defect, not an input problem.
				return nil, core.Error(core.EINTERNAL, "list vanished between dispatch and handler")
			}
			p.nodes = append(p.nodes, list)
			i += n

		case reTableRow.MatchString(line):
			p.endBlock()
			i += p.handleTable(lines, i)

		case reTitle.MatchString(line):
			p.endBlock()
			if err := p.handleTitle(line); err != nil {
				return nil, err
			}
			i++

		default:
			p.buffer = append(p.buffer, line)
			i++
		}
	}
	p.endBlock()

	head := p.head
	if head == nil {
		head = dom.NewElement("head")
	}
	body := dom.NewElement("body")
	for _, n := range p.nodes {
		body.AppendChild(n)
	}
	root := dom.NewElement("html")
	root.AppendChild(head)
	root.AppendChild(body)
	return root, nil
}

// endBlock flushes the paragraph buffer into a p element with a single
// text child.
func (p *Parser) endBlock() {
	if len(p.buffer) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(p.buffer, "\n"))
	if text != "" {
		para := dom.NewElement("p")
		para.AppendChild(dom.NewText(text))
		p.nodes = append(p.nodes, para)
	}
	p.buffer = nil
}

func (p *Parser) handleHeader(line string) error {
	m := reHeader.FindStringSubmatch(line)
	if m == nil {
		return core.Error(core.EINTERNAL, "header vanished between dispatch and handler")
	}
	h := dom.NewElement(fmt.Sprintf("h%d", len(m[1])))
	h.AppendChild(dom.NewText(m[2]))
	p.nodes = append(p.nodes, h)
	return nil
}

// handleBlockquote consumes marked lines, unmarked continuations and blank
// lines (which become paragraph breaks) and reparses the accumulated text
// with a fresh parser. The reparsed body's children become the blockquote's
// children. It returns the number of source lines consumed.
func (p *Parser) handleBlockquote(lines []string, start int) (int, error) {
	elm := dom.NewElement("blockquote")
	var paras []string   // synthesized input for the nested parse
	var current []string // current quoted paragraph
	consumed := 0

	for start+consumed < len(lines) {
		line := strings.TrimSpace(lines[start+consumed])
		switch {
		case strings.HasPrefix(line, ">"):
			content := strings.TrimPrefix(line, ">")
			content = strings.TrimSpace(content)
			if content == "" {
				// a bare '>' breaks the quoted paragraph
				if len(current) > 0 {
					paras = append(paras, strings.Join(current, " "), "")
					current = nil
				}
			} else {
				current = append(current, content)
			}
		case line == "":
			if len(current) > 0 {
				paras = append(paras, strings.Join(current, " "), "")
				current = nil
			}
		case !blockStart(line):
			current = append(current, line)
		default:
			goto done
		}
		consumed++
	}
done:
	if len(current) > 0 {
		paras = append(paras, strings.Join(current, " "))
	}

	inner, err := NewParser().Parse(strings.Join(paras, "\n"))
	if err != nil {
		return 0, err
	}
	// inner is html > {head, body}; adopt the body's children.
	if body, ok := inner.Child(1); ok {
		for _, ch := range body.(*dom.Element).Children() {
			elm.AppendChild(ch)
		}
	}
	p.nodes = append(p.nodes, elm)
	return consumed, nil
}

// handleCode parses a fenced code block. The fence pattern is matched
// against the entire joined remainder, so a successful match consumes all
// remaining lines. Content is kept verbatim.
func (p *Parser) handleCode(rest []string) (int, error) {
	m := reCode.FindStringSubmatch(strings.Join(rest, "\n"))
	if m == nil {
		return 0, core.Error(core.EINTERNAL, "code block vanished between dispatch and handler")
	}
	code := dom.NewElement("code")
	code.SetAttr("language", m[1])
	code.AppendChild(dom.NewText(m[2]))
	pre := dom.NewElement("pre")
	pre.AppendChild(code)
	p.nodes = append(p.nodes, pre)
	return len(rest), nil
}

// parseList parses an unordered or ordered list whose items sit at the
// given marker indentation. Deeper-indented items are parsed recursively
// and attached to the item they follow; unmarked non-block lines continue
// the current item. Returns the list element and the number of lines
// consumed, or (nil, 0) if lines[start] opens no list.
func (p *Parser) parseList(lines []string, start, indent int) (*dom.Element, int) {
	var list *dom.Element
	var pattern *regexp.Regexp
	switch {
	case reUl.MatchString(lines[start]):
		list = dom.NewElement("ul")
		pattern = reUl
	case reOl.MatchString(lines[start]):
		list = dom.NewElement("ol")
		pattern = reOl
	default:
		return nil, 0
	}

	var itemText []string
	var itemKids []dom.Node
	flush := func() {
		if len(itemText) == 0 && len(itemKids) == 0 {
			return
		}
		li := dom.NewElement("li")
		if content := strings.TrimSpace(strings.Join(itemText, " ")); content != "" {
			li.AppendChild(dom.NewText(content))
		}
		for _, k := range itemKids {
			li.AppendChild(k)
		}
		if li.ChildCount() > 0 {
			list.AppendChild(li)
		}
		itemText, itemKids = nil, nil
	}

	consumed := 0
	for start+consumed < len(lines) {
		line := lines[start+consumed]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if len(itemText) > 0 {
				itemText = append(itemText, "") // soft paragraph break inside the item
			}
			consumed++
			continue
		}

		if m := pattern.FindStringSubmatch(line); m != nil {
			ind := len(m[1])
			if ind < indent {
				break // this item belongs to an enclosing list
			}
			if ind > indent {
				nested, n := p.parseList(lines, start+consumed, ind)
				if n == 0 {
					break
				}
				itemKids = append(itemKids, nested)
				consumed += n
				continue
			}
			flush()
			itemText = []string{strings.TrimSpace(m[len(m)-1])}
			consumed++
			continue
		}

		if !blockStart(trimmed) {
			itemText = append(itemText, trimmed)
			consumed++
			continue
		}
		break
	}
	flush()
	return list, consumed
}

// handleTable parses a pipe table. A table requires the row line to be
// immediately followed by an alignment-separator line; without it the line
// is ordinary paragraph text. This is a one-line lookahead with no
// backtracking once rows are consumed.
func (p *Parser) handleTable(lines []string, start int) int {
	if start+1 >= len(lines) || !reTableSep.MatchString(strings.TrimSpace(lines[start+1])) {
		tracer().Debugf("table row without separator, treating as text")
		p.buffer = append(p.buffer, strings.TrimSpace(lines[start]))
		return 1
	}

	table := dom.NewElement("table")
	thead := dom.NewElement("thead")
	tbody := dom.NewElement("tbody")
	section := thead
	consumed := 0

	for start+consumed < len(lines) {
		line := strings.TrimSpace(lines[start+consumed])
		if line == "" {
			break
		}
		if reTableSep.MatchString(line) {
			// Alignment row: switches from header to body.
			section = tbody
			consumed++
			continue
		}
		if !reTableRow.MatchString(line) {
			break
		}
		row := dom.NewElement("tr")
		kind := "td"
		if section == thead {
			kind = "th"
		}
		for _, cell := range strings.Split(strings.Trim(line, "|"), "|") {
			c := dom.NewElement(kind)
			c.AppendChild(dom.NewText(strings.TrimSpace(cell)))
			row.AppendChild(c)
		}
		section.AppendChild(row)
		consumed++
	}

	if thead.ChildCount() > 0 {
		table.AppendChild(thead)
	}
	if tbody.ChildCount() > 0 {
		table.AppendChild(tbody)
	}
	p.nodes = append(p.nodes, table)
	return consumed
}

// handleTitle sets the document head from a title: directive, overriding
// the default empty head.
func (p *Parser) handleTitle(line string) error {
	m := reTitle.FindStringSubmatch(line)
	if m == nil {
		return core.Error(core.EINTERNAL, "title vanished between dispatch and handler")
	}
	title := dom.NewElement("title")
	title.AppendChild(dom.NewText(m[1]))
	head := dom.NewElement("head")
	head.AppendChild(title)
	p.head = head
	return nil
}

// splitLines splits on newlines, tolerating CRLF input.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
