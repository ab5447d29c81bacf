package html

import (
	"strings"

	"github.com/Better-MD/better-md/engine/dom"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tokenizer states. State transitions follow the input one character at a
// time; the single backtrack case is documented at its site.
type state int8

const (
	sText state = iota
	sTagStart
	sTagName
	sBeforeAttrName
	sAttrName
	sAfterAttrName
	sBeforeAttrValue
	sAttrValueDouble
	sAttrValueSingle
	sAttrValueUnquoted
	sAfterAttrValueQuoted
	sSelfClosing
	sClosingTag
	sCommentOrDoctype
)

// Parser is a character-level HTML parser. The zero value is ready for use;
// Parse resets all internal state, so a Parser may be reused sequentially
// but not concurrently.
type Parser struct {
	nodes    []dom.Node     // top-level output nodes
	stack    []*dom.Element // currently open elements
	current  *dom.Element   // tag under construction
	state    state
	buffer   strings.Builder
	attrName string
}

// NewParser creates an HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse is a convenience for NewParser().Parse(input).
func Parse(input string) []dom.Node {
	return NewParser().Parse(input)
}

func (p *Parser) reset() {
	p.nodes = nil
	p.stack = nil
	p.current = nil
	p.state = sText
	p.buffer.Reset()
	p.attrName = ""
}

// Parse converts raw HTML text into a list of generic tree nodes, one per
// top-level element or text run. It is a single pass over the input.
// Mismatched closing tags are silently ignored; unterminated markup simply
// stops producing structure. Parse never fails.
func (p *Parser) Parse(input string) []dom.Node {
	p.reset()
	for i := 0; i < len(input); i++ {
		ch := input[i]

		switch p.state {

		case sText:
			if ch == '<' {
				if strings.TrimSpace(p.buffer.String()) != "" {
					p.handleText(p.buffer.String())
				}
				p.buffer.Reset()
				p.state = sTagStart
			} else {
				p.buffer.WriteByte(ch)
			}

		case sTagStart:
			switch {
			case ch == '/':
				p.state = sClosingTag
			case ch == '!':
				p.state = sCommentOrDoctype
			default:
				p.buffer.WriteByte(ch)
				p.state = sTagName
			}

		case sTagName:
			switch {
			case isSpace(ch):
				p.current = dom.NewElement(p.buffer.String())
				p.buffer.Reset()
				p.state = sBeforeAttrName
			case ch == '>':
				p.current = dom.NewElement(p.buffer.String())
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			case ch == '/':
				p.current = dom.NewElement(p.buffer.String())
				p.state = sSelfClosing
			default:
				p.buffer.WriteByte(ch)
			}

		case sBeforeAttrName:
			switch {
			case isSpace(ch):
				// skip
			case ch == '>':
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			case ch == '/':
				p.state = sSelfClosing
			default:
				p.attrName = string(ch)
				p.state = sAttrName
			}

		case sAttrName:
			switch {
			case isSpace(ch):
				p.current.SetAttr(p.attrName, "")
				p.state = sAfterAttrName
			case ch == '=':
				p.state = sBeforeAttrValue
			case ch == '>':
				p.current.SetAttr(p.attrName, "")
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			case ch == '/':
				p.current.SetAttr(p.attrName, "")
				p.state = sSelfClosing
			default:
				p.attrName += string(ch)
			}

		case sAfterAttrName:
			switch {
			case isSpace(ch):
				// skip
			case ch == '=':
				p.state = sBeforeAttrValue
			case ch == '>':
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			case ch == '/':
				p.state = sSelfClosing
			default:
				p.current.SetAttr(p.attrName, "")
				p.attrName = string(ch)
				p.state = sAttrName
			}

		case sBeforeAttrValue:
			switch {
			case isSpace(ch):
				// skip
			case ch == '"':
				p.buffer.Reset()
				p.state = sAttrValueDouble
			case ch == '\'':
				p.buffer.Reset()
				p.state = sAttrValueSingle
			case ch == '>':
				p.current.SetAttr(p.attrName, "")
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			default:
				p.buffer.Reset()
				p.buffer.WriteByte(ch)
				p.state = sAttrValueUnquoted
			}

		case sAttrValueDouble:
			if ch == '"' {
				p.current.SetAttr(p.attrName, p.buffer.String())
				p.buffer.Reset()
				p.state = sAfterAttrValueQuoted
			} else {
				p.buffer.WriteByte(ch)
			}

		case sAttrValueSingle:
			if ch == '\'' {
				p.current.SetAttr(p.attrName, p.buffer.String())
				p.buffer.Reset()
				p.state = sAfterAttrValueQuoted
			} else {
				p.buffer.WriteByte(ch)
			}

		case sAttrValueUnquoted:
			switch {
			case isSpace(ch):
				p.current.SetAttr(p.attrName, p.buffer.String())
				p.buffer.Reset()
				p.state = sBeforeAttrName
			case ch == '>':
				p.current.SetAttr(p.attrName, p.buffer.String())
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			case ch == '/':
				p.current.SetAttr(p.attrName, p.buffer.String())
				p.buffer.Reset()
				p.state = sSelfClosing
			default:
				p.buffer.WriteByte(ch)
			}

		case sAfterAttrValueQuoted:
			switch {
			case isSpace(ch):
				p.state = sBeforeAttrName
			case ch == '/':
				p.state = sSelfClosing
			case ch == '>':
				p.handleTagOpen(p.current)
				p.buffer.Reset()
				p.state = sText
			default:
				p.state = sBeforeAttrName
				i-- // reconsider this character
			}

		case sSelfClosing:
			if ch == '>' {
				p.handleTagSelfClosing(p.current)
				p.buffer.Reset()
				p.state = sText
			}
			// anything else between '/' and '>' is dropped

		case sClosingTag:
			if ch == '>' {
				p.handleTagClose(p.buffer.String())
				p.buffer.Reset()
				p.state = sText
			} else {
				p.buffer.WriteByte(ch)
			}

		case sCommentOrDoctype:
			// Stub state: comments and doctypes are consumed up to the
			// next '>' and dropped. They do not round-trip.
			if ch == '>' {
				p.buffer.Reset()
				p.state = sText
			}
		}
	}

	// Flush any trailing text.
	if p.state == sText && strings.TrimSpace(p.buffer.String()) != "" {
		p.handleText(p.buffer.String())
	}
	return p.nodes
}

// handleTagOpen attaches an opening tag to the innermost open element (or
// to the document root) and pushes it onto the open-tag stack. Void
// elements take no children and are not pushed.
func (p *Parser) handleTagOpen(tag *dom.Element) {
	p.appendNode(tag)
	if !voidElement(tag.Name()) {
		p.stack = append(p.stack, tag)
	}
}

// handleTagSelfClosing attaches a self-closed tag without opening it.
func (p *Parser) handleTagSelfClosing(tag *dom.Element) {
	p.appendNode(tag)
}

// handleTagClose pops the open-tag stack, but only if the top-of-stack
// element matches the closing tag's name. A mismatched closing tag is
// dropped without recovery.
func (p *Parser) handleTagClose(name string) {
	if n := len(p.stack); n > 0 {
		if p.stack[n-1].Name() == name {
			p.stack = p.stack[:n-1]
		} else {
			tracer().Debugf("ignoring mismatched closing tag </%s>", name)
		}
	}
}

// handleText attaches a text node, with entity references resolved, to the
// innermost open element or to the document root.
func (p *Parser) handleText(text string) {
	p.appendNode(dom.NewText(xhtml.UnescapeString(text)))
}

func (p *Parser) appendNode(n dom.Node) {
	if len(p.stack) > 0 {
		p.stack[len(p.stack)-1].AppendChild(n)
	} else {
		p.nodes = append(p.nodes, n)
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// voidElement reports whether a tag never takes content, like <br> or
// <img>. Void tags are accepted with or without a closing slash.
func voidElement(name string) bool {
	switch atom.Lookup([]byte(strings.ToLower(name))) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}
