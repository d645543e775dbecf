package codec

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// jsonVersion tags the interchange schema.
const jsonVersion = 1

var (
	// ErrMalformedJSON indicates input that is not valid JSON or does
	// not follow the interchange schema.
	ErrMalformedJSON = errors.New("malformed document JSON")

	// ErrUnknownFormat indicates a format or block kind name this
	// version does not understand.
	ErrUnknownFormat = errors.New("unknown format kind")
)

// MarshalJSON serializes the document: metadata, text, format runs,
// and block entries.
func MarshalJSON(d *engine.Document) (string, error) {
	out := `{}`
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}
	setRaw := func(path, raw string) {
		if err != nil {
			return
		}
		out, err = sjson.SetRaw(out, path, raw)
	}

	set("version", jsonVersion)
	set("metadata.id", d.ID())
	set("metadata.length", d.Length())
	set("text", d.Content())

	setRaw("runs", `[]`)
	for i, run := range d.Runs() {
		prefix := fmt.Sprintf("runs.%d", i)
		set(prefix+".start", run.Range.Start)
		set(prefix+".end", run.Range.End)
		setRaw(prefix+".formats", `[]`)
		for j, f := range run.Formats.Slice() {
			fp := fmt.Sprintf("%s.formats.%d", prefix, j)
			set(fp+".kind", f.Kind.String())
			if f.Value != "" {
				set(fp+".value", f.Value)
			}
		}
	}

	setRaw("blocks", `[]`)
	for i, b := range d.Blocks() {
		prefix := fmt.Sprintf("blocks.%d", i)
		set(prefix+".start", b.Start)
		set(prefix+".kind", b.Type.Kind.String())
		if b.Type.Kind == format.BlockHeading {
			set(prefix+".level", b.Type.Level)
		}
	}

	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return out, nil
}

// UnmarshalJSON builds a document from the interchange form. Run and
// block offsets are re-validated by the engine constructor.
func UnmarshalJSON(data string, opts ...engine.Option) (*engine.Document, error) {
	if !gjson.Valid(data) {
		return nil, ErrMalformedJSON
	}
	root := gjson.Parse(data)
	text := root.Get("text")
	if !text.Exists() {
		return nil, fmt.Errorf("%w: missing text field", ErrMalformedJSON)
	}

	var runs []format.Run
	for _, rr := range root.Get("runs").Array() {
		set := format.NewSet()
		for _, ff := range rr.Get("formats").Array() {
			kind, ok := format.KindFromString(ff.Get("kind").String())
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ff.Get("kind").String())
			}
			set.Add(format.Format{Kind: kind, Value: ff.Get("value").String()})
		}
		runs = append(runs, format.Run{
			Range:   textbuf.NewRange(int(rr.Get("start").Int()), int(rr.Get("end").Int())),
			Formats: set,
		})
	}

	var blocks []format.Block
	for _, bb := range root.Get("blocks").Array() {
		kind, ok := format.BlockKindFromString(bb.Get("kind").String())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, bb.Get("kind").String())
		}
		bt := format.BlockType{Kind: kind}
		if kind == format.BlockHeading {
			bt = format.Heading(int(bb.Get("level").Int()))
		}
		blocks = append(blocks, format.Block{Start: int(bb.Get("start").Int()), Type: bt})
	}

	return engine.FromParts(text.String(), runs, blocks, opts...)
}
