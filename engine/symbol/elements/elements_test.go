package elements

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Better-MD/better-md/core"
	"github.com/Better-MD/better-md/engine/symbol"
)

func TestHeadingRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	h := H1.New(NewText("Hello")).Prepare(nil)
	md, err := h.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", md)
	rst, err := h.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "Hello\n=====\n\n", rst)
	html, err := h.ToHTML()
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>", html)
}

func TestHeadingUnderlineCoversWideRunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	// CJK glyphs occupy two cells; the adornment must not fall short.
	rst, err := H2.New(NewText("漢字")).Prepare(nil).ToRST()
	require.NoError(t, err)
	assert.Equal(t, "漢字\n----\n\n", rst)
}

func TestParagraphRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	p := P.New(NewText("Some text")).Prepare(nil)
	md, err := p.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "Some text\n", md)
	rst, err := p.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "Some text\n\n", rst)
}

func TestInlineFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	strong, err := Strong.New(NewText("x")).Prepare(nil).ToMD()
	require.NoError(t, err)
	assert.Equal(t, "**x**", strong)
	em, err := Em.New(NewText("x")).Prepare(nil).ToRST()
	require.NoError(t, err)
	assert.Equal(t, "*x*", em)
	b, err := B.New(NewText("x")).Prepare(nil).ToMD()
	require.NoError(t, err)
	assert.Equal(t, "**x**", b)
}

func TestLinkAndImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	a := A.New(NewText("site"))
	a.SetProp("href", "https://example.com")
	a.Prepare(nil)
	md, err := a.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "[site](https://example.com)", md)
	rst, err := a.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "`site <https://example.com>`_", rst)
	//
	img := Img.New()
	img.SetProp("src", "i.png")
	img.SetProp("alt", "pic")
	img.Prepare(nil)
	md, err = img.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "![pic](i.png)", md)
}

func TestLinkVerifierRecognizesMarkdownLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	v, ok := A.MD.(symbol.Verifier)
	require.True(t, ok)
	assert.True(t, v.Verify("[site](https://example.com)"))
	assert.True(t, v.Verify("see <https://example.com> for details"))
	assert.True(t, v.Verify("[site][1]\n[1]: https://example.com"))
	assert.False(t, v.Verify("plain text"))
	assert.False(t, v.Verify("[bracketed] (but no link)"))
	// registry lookup still resolves by tag name
	assert.Same(t, A, Default().Lookup("a"))
}

func TestCodeInlineVersusFenced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	inline := Code.New(NewText("x := 1")).Prepare(nil)
	md, err := inline.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "`x := 1`", md)
	//
	fenced := Code.New(NewText("x := 1"))
	fenced.SetProp("language", "go")
	fenced.Prepare(nil)
	md, err = fenced.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "```go\nx := 1\n```\n", md)
	rst, err := fenced.ToRST()
	require.NoError(t, err)
	assert.Equal(t, ".. code-block:: go\n\n   x := 1\n\n", rst)
	html, err := fenced.ToHTML()
	require.NoError(t, err)
	assert.Equal(t, `<code class="language-go">x := 1</code>`, html)
}

func TestCodeClaimsNameCaseInsensitively(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	assert.Same(t, Code, Default().Lookup("code"))
	assert.Same(t, Code, Default().Lookup("CODE"))
}

func TestTitleValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	good := Title.New(NewText("My Doc")).Prepare(nil)
	md, err := good.ToMD()
	require.NoError(t, err)
	assert.Equal(t, `title: "My Doc"`, md)
	rst, err := good.ToRST()
	require.NoError(t, err)
	assert.Equal(t, ":title: My Doc", rst)
	//
	_, err = Title.New().Prepare(nil).ToMD()
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	_, err = Title.New(P.New()).Prepare(nil).ToRST()
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestListRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	ul := UL.New(
		LI.New(NewText("a"), UL.New(LI.New(NewText("b")))),
		LI.New(NewText("c")),
	).Prepare(nil)
	md, err := ul.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "- a\n  - b\n- c\n", md)
	//
	ol := OL.New(
		LI.New(NewText("one")),
		LI.New(NewText("two")),
	).Prepare(nil)
	md, err = ol.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "1. one\n2. two\n", md)
}

func TestCheckboxRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	checked := Input.New(NewText("done"))
	checked.SetProp("type", "checkbox")
	checked.SetProp("checked", "")
	checked.Prepare(nil)
	md, err := checked.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "- [x] done", md)
	//
	open := Input.New(NewText("todo"))
	open.SetProp("type", "checkbox")
	open.Prepare(nil)
	md, err = open.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "- [ ] todo", md)
	rst, err := open.ToRST()
	require.NoError(t, err)
	assert.Equal(t, "[ ] todo", rst)
}

func TestBlockquoteRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	bq := Blockquote.New(
		P.New(NewText("one")),
		P.New(NewText("two")),
	).Prepare(nil)
	md, err := bq.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "> one\n> two\n", md)
}

func TestTableMarkdown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	table := Table.New(
		THead.New(Tr.New(Th.New(NewText("a")), Th.New(NewText("bb")))),
		TBody.New(Tr.New(Td.New(NewText("1")), Td.New(NewText("22")))),
	).Prepare(nil)
	md, err := table.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "|a|bb|\n|-|--|\n|1|22|", md)
}

func TestTableRSTGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	table := Table.New(
		THead.New(Tr.New(Th.New(NewText("a")), Th.New(NewText("bb")))),
		TBody.New(Tr.New(Td.New(NewText("1")), Td.New(NewText("22")))),
	).Prepare(nil)
	rst, err := table.ToRST()
	require.NoError(t, err)
	want := "+---+----+\n" +
		"| a | bb |\n" +
		"+===+====+\n" +
		"| 1 | 22 |\n" +
		"+---+----+"
	assert.Equal(t, want, rst)
}

func TestTextEscapesHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	sym := NewText("a < b & c").Prepare(nil)
	html, err := sym.ToHTML()
	require.NoError(t, err)
	assert.Equal(t, "a &lt; b &amp; c", html)
	md, err := sym.ToMD()
	require.NoError(t, err)
	assert.Equal(t, "a < b & c", md)
}

func TestBuiltinsCoverCommonTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmd.symbol")
	defer teardown()
	//
	c := Default()
	for _, name := range []string{
		"text", "html", "head", "body", "title", "p", "pre", "a", "img",
		"div", "span", "strong", "em", "b", "i", "blockquote",
		"ul", "ol", "li", "table", "thead", "tbody", "tr", "th", "td",
		"hr", "br", "input", "h1", "h3", "h6",
	} {
		assert.NotNil(t, c.Lookup(name), "tag %q should be registered", name)
	}
}
