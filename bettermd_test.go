package bettermd

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Better-MD/better-md/engine/symbol"
)

func TestMDToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	out, err := MDToHTML("# Title\n\nSome text")
	require.NoError(t, err)
	assert.Equal(t, "<html><head /><body><h1>Title</h1><p>Some text</p></body></html>", out)
}

func TestMDToHTMLWithTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	out, err := MDToHTML("title: My Doc\n\ntext")
	require.NoError(t, err)
	assert.Equal(t, "<html><head><title>My Doc</title></head><body><p>text</p></body></html>", out)
}

func TestHTMLToMD(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	out, err := HTMLToMD("<h1>Hello</h1><p>world</p>")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\nworld\n", out)
}

func TestHTMLToRST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	out, err := HTMLToRST("<h1>Hello</h1>")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n=====\n\n", out)
}

func TestMDToRST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	out, err := MDToRST("## Section\n\npara")
	require.NoError(t, err)
	assert.Equal(t, "Section\n-------\n\npara\n\n", out)
}

func TestFromHTMLUnknownTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	_, err := FromHTML("<nosuchtag>x</nosuchtag>")
	assert.Error(t, err)
}

func TestHTMLRenderParseRenderIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	inputs := []string{
		`<p>hi <b>there</b></p>`,
		`<div class="note"><p>a</p><p>b</p></div>`,
		`<ul><li>one</li><li>two</li></ul>`,
		`<p>a<br />b</p>`,
	}
	for _, input := range inputs {
		first, err := renderHTML(input, (*symbol.Symbol).ToHTML)
		require.NoError(t, err, input)
		second, err := renderHTML(first, (*symbol.Symbol).ToHTML)
		require.NoError(t, err, input)
		assert.Equal(t, first, second, "re-rendering %q must be stable", input)
	}
}

func TestMDRoundTripThroughHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd")
	defer teardown()
	//
	md := "# Title\n\nSome text"
	html, err := MDToHTML(md)
	require.NoError(t, err)
	back, err := HTMLToMD(html)
	require.NoError(t, err)
	assert.Equal(t, "# Title\nSome text\n", back)
}
