package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

func TestMarshalHTMLBlocks(t *testing.T) {
	d, err := engine.FromText("Title\nfirst\nsecond")
	require.NoError(t, err)
	require.NoError(t, d.SetBlockType(textbuf.NewRange(0, 5), format.Heading(1)))
	require.NoError(t, d.SetBlockType(textbuf.NewRange(6, 18), format.BulletList()))

	out := MarshalHTML(d)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<ul>\n<li>first</li>\n<li>second</li>\n</ul>")
}

func TestMarshalHTMLInline(t *testing.T) {
	d, err := engine.FromText("bold red link")
	require.NoError(t, err)
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(0, 4), format.Bold()))
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(5, 8), format.NewTextColor("#ff0000")))
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(9, 13), format.NewLink("https://x.test")))

	out := MarshalHTML(d)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, `<span style="color:#ff0000">red</span>`)
	assert.Contains(t, out, `<a href="https://x.test">link</a>`)
}

func TestMarshalHTMLEscapesEntities(t *testing.T) {
	d, err := engine.FromText("a < b & c")
	require.NoError(t, err)

	out := MarshalHTML(d)
	assert.Contains(t, out, "a &lt; b &amp; c")
	assert.NotContains(t, out, "a < b")
}

func TestMarshalHTMLCodeBlock(t *testing.T) {
	d, err := engine.FromText("x := <expr>")
	require.NoError(t, err)
	require.NoError(t, d.SetBlockType(textbuf.NewRange(0, 11), format.CodeBlock()))

	out := MarshalHTML(d)
	assert.Contains(t, out, "<pre><code>x := &lt;expr&gt;</code></pre>")
}

func TestStripTags(t *testing.T) {
	got := StripTags("<p>one &amp; <strong>two</strong></p>")
	assert.Equal(t, "one & two", got)
}

func TestStripTagsPlainText(t *testing.T) {
	got := StripTags("no markup here")
	assert.Equal(t, "no markup here", got)
}
