package html

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Better-MD/better-md/engine/dom"
)

func TestParseSimpleNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse(`<p>hi <b>there</b></p>`)
	require.Len(t, nodes, 1)
	p, ok := nodes[0].(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "p", p.Name())
	require.Equal(t, 2, p.ChildCount())
	text, ok := p.Children()[0].(*dom.Text)
	require.True(t, ok)
	assert.Equal(t, "hi ", text.Content)
	b, ok := p.Children()[1].(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "b", b.Name())
	assert.Equal(t, "there", dom.InnerText(b))
	assert.Equal(t, p, b.Parent())
}

func TestParseMismatchedClosingTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	// The span is never closed; the </div> close is ignored because the
	// span is still on top of the open-tag stack, so the text stays
	// inside the span.
	nodes := Parse(`<div><span>text</div>`)
	require.Len(t, nodes, 1)
	div := nodes[0].(*dom.Element)
	assert.Equal(t, "div", div.Name())
	require.Equal(t, 1, div.ChildCount())
	span := div.Children()[0].(*dom.Element)
	assert.Equal(t, "span", span.Name())
	assert.Equal(t, "text", dom.InnerText(span))
}

func TestParseAttributeQuoting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse(`<a href="x" title='y' id=z hidden>link</a>`)
	require.Len(t, nodes, 1)
	a := nodes[0].(*dom.Element)
	assert.Equal(t, 4, a.AttrCount())
	for i, want := range []struct{ key, value string }{
		{"href", "x"}, {"title", "y"}, {"id", "z"}, {"hidden", ""},
	} {
		key, value := a.AttrAt(i)
		assert.Equal(t, want.key, key)
		assert.Equal(t, want.value, value)
	}
	hidden, ok := a.Attr("hidden")
	assert.True(t, ok)
	assert.Equal(t, "", hidden)
}

func TestParseVoidAndSelfClosing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	// <br> takes no children even without a closing slash, so "b" is a
	// sibling of the br, not its child.
	nodes := Parse(`<p>a<br>b<img src="i.png" /></p>`)
	require.Len(t, nodes, 1)
	p := nodes[0].(*dom.Element)
	require.Equal(t, 4, p.ChildCount())
	assert.Equal(t, "text", p.Children()[0].Name())
	assert.Equal(t, "br", p.Children()[1].Name())
	assert.Equal(t, "b", p.Children()[2].(*dom.Text).Content)
	img := p.Children()[3].(*dom.Element)
	assert.Equal(t, "img", img.Name())
	src, _ := img.Attr("src")
	assert.Equal(t, "i.png", src)
}

func TestParseEntities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse(`<p>a &amp; b &lt;c&gt;</p>`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "a & b <c>", dom.InnerText(nodes[0]))
}

func TestParseTopLevelSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse(`<h1>Hello</h1><p>world</p>trailing`)
	require.Len(t, nodes, 3)
	assert.Equal(t, "h1", nodes[0].Name())
	assert.Equal(t, "p", nodes[1].Name())
	assert.Equal(t, "trailing", nodes[2].(*dom.Text).Content)
}

func TestParseDropsCommentsAndDoctype(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse(`<!DOCTYPE html><!-- note --><p>x</p>`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "p", nodes[0].Name())
}

func TestParseWhitespaceOnlyTextDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.html")
	defer teardown()
	//
	nodes := Parse("<div>\n  <p>x</p>\n</div>")
	require.Len(t, nodes, 1)
	div := nodes[0].(*dom.Element)
	require.Equal(t, 1, div.ChildCount())
	assert.Equal(t, "p", div.Children()[0].Name())
}
