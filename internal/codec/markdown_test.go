package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

func TestMarshalMarkdownBlocks(t *testing.T) {
	d, err := engine.FromText("Title\nplain body")
	require.NoError(t, err)
	require.NoError(t, d.SetBlockType(textbuf.NewRange(0, 5), format.Heading(1)))

	out := MarshalMarkdown(d)
	assert.Contains(t, out, "# Title\n")
	assert.Contains(t, out, "plain body\n")
}

func TestMarshalMarkdownInline(t *testing.T) {
	d, err := engine.FromText("bold and linked")
	require.NoError(t, err)
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(0, 4), format.Bold()))
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(9, 15), format.NewLink("https://x.test")))

	out := MarshalMarkdown(d)
	assert.Contains(t, out, "**bold**")
	assert.Contains(t, out, "[linked](https://x.test)")
}

func TestUnmarshalMarkdownHeading(t *testing.T) {
	d, err := UnmarshalMarkdown("## Section\nbody text\n")
	require.NoError(t, err)
	assert.Equal(t, "Section\nbody text", d.Content())
	bt, err := d.BlockTypeAt(2)
	require.NoError(t, err)
	assert.Equal(t, format.Heading(2), bt)
	bt, err = d.BlockTypeAt(10)
	require.NoError(t, err)
	assert.Equal(t, format.Paragraph(), bt)
}

func TestUnmarshalMarkdownInline(t *testing.T) {
	d, err := UnmarshalMarkdown("some **bold** and *italic* and `code`\n")
	require.NoError(t, err)
	assert.Equal(t, "some bold and italic and code", d.Content())

	set, err := d.FormatsAt(6)
	require.NoError(t, err)
	assert.True(t, set.Has(format.Bold()))
	set, err = d.FormatsAt(15)
	require.NoError(t, err)
	assert.True(t, set.Has(format.Italic()))
	set, err = d.FormatsAt(26)
	require.NoError(t, err)
	assert.True(t, set.Has(format.Code()))
}

func TestUnmarshalMarkdownLink(t *testing.T) {
	d, err := UnmarshalMarkdown("see [docs](https://docs.test) here\n")
	require.NoError(t, err)
	assert.Equal(t, "see docs here", d.Content())
	set, err := d.FormatsAt(5)
	require.NoError(t, err)
	assert.True(t, set.Has(format.NewLink("https://docs.test")))
}

func TestUnmarshalMarkdownLists(t *testing.T) {
	d, err := UnmarshalMarkdown("- one\n- two\n1. first\n> quoted\n")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nfirst\nquoted", d.Content())

	bt, _ := d.BlockTypeAt(0)
	assert.Equal(t, format.BulletList(), bt)
	bt, _ = d.BlockTypeAt(8)
	assert.Equal(t, format.NumberedList(), bt)
	bt, _ = d.BlockTypeAt(14)
	assert.Equal(t, format.BlockQuoteType(), bt)
}

func TestUnmarshalMarkdownCodeFence(t *testing.T) {
	d, err := UnmarshalMarkdown("intro\n```\nx := 1\n```\n")
	require.NoError(t, err)
	assert.Equal(t, "intro\nx := 1", d.Content())
	bt, _ := d.BlockTypeAt(7)
	assert.Equal(t, format.CodeBlock(), bt)
}

func TestMarkdownRoundTripSubset(t *testing.T) {
	src := "# Head\n\nplain with **bold** words\n"
	d, err := UnmarshalMarkdown(src)
	require.NoError(t, err)
	assert.Equal(t, src, MarshalMarkdown(d))
}
