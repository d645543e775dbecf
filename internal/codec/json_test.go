package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

func buildDoc(t *testing.T) *engine.Document {
	t.Helper()
	d, err := engine.FromText("Hello World\nSecond line")
	require.NoError(t, err)
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(0, 5), format.Bold()))
	require.NoError(t, d.ApplyFormat(textbuf.NewRange(6, 11), format.NewLink("https://example.com")))
	require.NoError(t, d.SetBlockType(textbuf.NewRange(0, 11), format.Heading(2)))
	return d
}

func TestMarshalJSONShape(t *testing.T) {
	d := buildDoc(t)
	out, err := MarshalJSON(d)
	require.NoError(t, err)
	require.True(t, gjson.Valid(out))

	assert.Equal(t, int64(1), gjson.Get(out, "version").Int())
	assert.Equal(t, d.ID(), gjson.Get(out, "metadata.id").String())
	assert.Equal(t, "Hello World\nSecond line", gjson.Get(out, "text").String())
	assert.Equal(t, int64(2), gjson.Get(out, "runs.#").Int())
	assert.Equal(t, "bold", gjson.Get(out, "runs.0.formats.0.kind").String())
	assert.Equal(t, "https://example.com", gjson.Get(out, "runs.1.formats.0.value").String())
	assert.Equal(t, "heading", gjson.Get(out, "blocks.0.kind").String())
	assert.Equal(t, int64(2), gjson.Get(out, "blocks.0.level").Int())
}

func TestJSONRoundTrip(t *testing.T) {
	d := buildDoc(t)
	out, err := MarshalJSON(d)
	require.NoError(t, err)

	loaded, err := UnmarshalJSON(out)
	require.NoError(t, err)

	assert.Equal(t, d.Content(), loaded.Content())
	set, err := loaded.FormatsAt(2)
	require.NoError(t, err)
	assert.True(t, set.Has(format.Bold()))
	set, err = loaded.FormatsAt(8)
	require.NoError(t, err)
	assert.True(t, set.Has(format.NewLink("https://example.com")))
	bt, err := loaded.BlockTypeAt(3)
	require.NoError(t, err)
	assert.Equal(t, format.Heading(2), bt)
	assert.False(t, loaded.CanUndo(), "loaded document must start with empty history")
}

func TestUnmarshalJSONRejectsGarbage(t *testing.T) {
	_, err := UnmarshalJSON("{not json")
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = UnmarshalJSON(`{"runs":[]}`)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestUnmarshalJSONRejectsUnknownKind(t *testing.T) {
	_, err := UnmarshalJSON(`{"text":"ab","runs":[{"start":0,"end":1,"formats":[{"kind":"blink"}]}]}`)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestUnmarshalJSONRejectsOutOfBoundsRun(t *testing.T) {
	_, err := UnmarshalJSON(`{"text":"ab","runs":[{"start":0,"end":9,"formats":[{"kind":"bold"}]}]}`)
	assert.ErrorIs(t, err, engine.ErrInvalidRange)
}
