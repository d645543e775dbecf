package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/richtext/internal/engine/dirty"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/history"
	"github.com/dshills/richtext/internal/engine/selection"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Document is the aggregate root of one rich-text document. It owns
// exactly one of each engine component and is the only caller of their
// direct mutation primitives.
type Document struct {
	id      string
	text    *textbuf.Buffer
	formats *format.Store
	sel     selection.Selection
	dirty   *dirty.Tracker
	hist    *history.Stack
	comp    composition
	version uint64
	maxSize int
	log     *zap.Logger

	changeFns    []func()
	selectionFns []func()
}

// New returns an empty document.
func New(opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Document{
		id:      uuid.NewString(),
		text:    textbuf.NewBuffer(),
		formats: format.NewStore(),
		dirty:   dirty.NewTracker(),
		hist:    history.NewStack(o.historyCapacity),
		maxSize: o.maxSize,
		log:     o.logger,
	}
}

// FromText returns a document holding text, with empty history.
func FromText(text string, opts ...Option) (*Document, error) {
	if err := textbuf.ValidateContent(text); err != nil {
		return nil, err
	}
	d := New(opts...)
	if err := textbuf.ValidateSize(0, len([]rune(text)), d.maxSize); err != nil {
		return nil, err
	}
	d.text = textbuf.NewBufferFromString(text)
	return d, nil
}

// FromParts builds a document from parsed text, format runs, and block
// entries, the constructor serialization codecs use. Ranges are
// re-validated against the text length; out-of-bounds runs or blocks
// are rejected rather than trusted. History starts empty.
func FromParts(text string, runs []format.Run, blocks []format.Block, opts ...Option) (*Document, error) {
	d, err := FromText(text, opts...)
	if err != nil {
		return nil, err
	}
	length := d.text.Len()
	for _, run := range runs {
		n := run.Range.Normalize()
		if n.Start < 0 || n.End > length {
			return nil, textbuf.ErrInvalidRange
		}
		for _, f := range run.Formats.Slice() {
			d.formats.Apply(n, f)
		}
	}
	for _, b := range blocks {
		if b.Start < 0 || b.Start > length {
			return nil, textbuf.ErrInvalidPosition
		}
	}
	if len(blocks) > 0 {
		d.formats.SetBlocks(blocks)
	}
	return d, nil
}

// ID returns the document's identity, assigned at construction.
func (d *Document) ID() string { return d.id }

// Content returns the full text.
func (d *Document) Content() string { return d.text.String() }

// Length returns the content length in runes.
func (d *Document) Length() int { return d.text.Len() }

// IsEmpty reports whether the document holds no text.
func (d *Document) IsEmpty() bool { return d.text.Len() == 0 }

// Version returns the mutation counter. It increments on every
// successful mutation and wraps on overflow.
func (d *Document) Version() uint64 { return d.version }

// TextInRange returns the text covered by r.
func (d *Document) TextInRange(r textbuf.Range) (string, error) {
	return d.text.Slice(r)
}

// FormatsAt returns the inline formats in effect at pos.
func (d *Document) FormatsAt(pos textbuf.Offset) (format.Set, error) {
	if pos < 0 || pos > d.text.Len() {
		return nil, textbuf.ErrInvalidPosition
	}
	return d.formats.FormatsAt(pos), nil
}

// BlockTypeAt returns the block type spanning pos.
func (d *Document) BlockTypeAt(pos textbuf.Offset) (format.BlockType, error) {
	if pos < 0 || pos > d.text.Len() {
		return format.BlockType{}, textbuf.ErrInvalidPosition
	}
	return d.formats.BlockTypeAt(pos), nil
}

// Runs returns a copy of every format run.
func (d *Document) Runs() []format.Run { return d.formats.Runs() }

// Blocks returns a copy of the block partition.
func (d *Document) Blocks() []format.Block { return d.formats.Blocks() }

// Insert writes text at pos as an undoable edit. Text failing content
// or size validation is absorbed silently: the document is unchanged
// and no error is returned, so typing pipelines are never interrupted.
func (d *Document) Insert(pos textbuf.Offset, text string) error {
	if pos < 0 || pos > d.text.Len() {
		return textbuf.ErrInvalidPosition
	}
	if text == "" {
		return nil
	}
	if textbuf.ValidateContent(text) != nil {
		return nil
	}
	if textbuf.ValidateSize(d.text.Len(), len([]rune(text)), d.maxSize) != nil {
		return nil
	}
	return d.runCommand(history.NewInsert(pos, text))
}

// Delete removes the text covered by r as an undoable edit.
func (d *Document) Delete(r textbuf.Range) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	if n.IsEmpty() {
		return nil
	}
	return d.runCommand(history.NewDelete(n))
}

// Replace swaps the text covered by r for text as one undoable edit.
func (d *Document) Replace(r textbuf.Range, text string) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	if textbuf.ValidateContent(text) != nil {
		return nil
	}
	return d.runCommand(history.NewReplace(n, text))
}

// ApplyFormat adds f to every rune in r.
func (d *Document) ApplyFormat(r textbuf.Range, f format.Format) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	if n.IsEmpty() {
		return nil
	}
	return d.runCommand(history.NewApplyFormat(n, f))
}

// RemoveFormat strips f's kind from every rune in r, regardless of the
// payload carried by the stored formats.
func (d *Document) RemoveFormat(r textbuf.Range, f format.Format) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	if n.IsEmpty() {
		return nil
	}
	return d.runCommand(history.NewRemoveFormat(n, f))
}

// ToggleFormat removes f when it already covers the whole range,
// measured as summed covered length reaching the range length, and
// applies it otherwise.
func (d *Document) ToggleFormat(r textbuf.Range, f format.Format) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	if n.IsEmpty() {
		return nil
	}
	if d.formats.CoveredLength(n, f) >= n.Len() {
		return d.runCommand(history.NewRemoveFormat(n, f))
	}
	return d.runCommand(history.NewApplyFormat(n, f))
}

// SetBlockType assigns t to the blocks covered by r.
func (d *Document) SetBlockType(r textbuf.Range, t format.BlockType) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > d.text.Len() {
		return textbuf.ErrInvalidRange
	}
	return d.runCommand(history.NewSetBlockType(n, t))
}

// Undo reverses the most recent edit.
func (d *Document) Undo() error {
	if err := d.hist.Undo(d); err != nil {
		return err
	}
	d.log.Debug("undo", zap.Uint64("version", d.version))
	d.notifyChange()
	return nil
}

// Redo re-applies the most recently undone edit.
func (d *Document) Redo() error {
	if err := d.hist.Redo(d); err != nil {
		return err
	}
	d.log.Debug("redo", zap.Uint64("version", d.version))
	d.notifyChange()
	return nil
}

func (d *Document) CanUndo() bool { return d.hist.CanUndo() }
func (d *Document) CanRedo() bool { return d.hist.CanRedo() }

// HistoryCapacity returns the undo bound.
func (d *Document) HistoryCapacity() int { return d.hist.Capacity() }

// SetHistoryCapacity changes the undo bound, evicting the oldest
// entries immediately when the stack already exceeds it.
func (d *Document) SetHistoryCapacity(n int) { d.hist.SetCapacity(n) }

// ClearHistory drops both undo and redo stacks.
func (d *Document) ClearHistory() { d.hist.Clear() }

// DirtyRegions returns the merged regions touched since the last
// ClearDirty. The document never clears them itself.
func (d *Document) DirtyRegions() []textbuf.Range { return d.dirty.Regions() }

// ClearDirty forgets all dirty regions.
func (d *Document) ClearDirty() { d.dirty.Clear() }

// HasDirtyRegions reports whether any region is dirty.
func (d *Document) HasDirtyRegions() bool { return d.dirty.HasAny() }

func (d *Document) runCommand(cmd *history.Command) error {
	if err := d.hist.Execute(cmd, d); err != nil {
		return err
	}
	d.log.Debug("edit", zap.String("op", cmd.Description()), zap.Uint64("version", d.version))
	d.notifyChange()
	return nil
}

func (d *Document) bumpVersion() {
	d.version++ // wraps on overflow
}

// TextIn implements history.Target. The range must be pre-validated.
func (d *Document) TextIn(r textbuf.Range) string {
	s, _ := d.text.Slice(r)
	return s
}

// Formats implements history.Target.
func (d *Document) Formats() *format.Store { return d.formats }

// MarkDirty implements history.Target.
func (d *Document) MarkDirty(r textbuf.Range) { d.dirty.Mark(r) }

// BumpVersion implements history.Target.
func (d *Document) BumpVersion() { d.bumpVersion() }

// InsertDirect writes text at pos without touching history. Invalid
// content is absorbed silently. Commands and the composition path are
// the only callers.
func (d *Document) InsertDirect(pos textbuf.Offset, text string) {
	if textbuf.ValidateContent(text) != nil {
		return
	}
	n := len([]rune(text))
	if textbuf.ValidateSize(d.text.Len(), n, d.maxSize) != nil {
		return
	}
	if d.text.Insert(pos, text) != nil {
		return
	}
	d.formats.AdjustForInsert(pos, n)
	d.sel = d.sel.AdjustForInsert(pos, n)
	d.dirty.AdjustForInsert(pos, n)
	d.dirty.Mark(textbuf.NewRange(pos, pos+n))
	d.bumpVersion()
}

// DeleteDirect removes the span r without touching history.
func (d *Document) DeleteDirect(r textbuf.Range) {
	n := r.Normalize()
	if d.text.Delete(n) != nil {
		return
	}
	d.formats.AdjustForDelete(n)
	d.dirty.AdjustForDelete(n)
	d.markDeleteJoin(n.Start)
	d.sel = d.sel.AdjustForDelete(n)
	d.bumpVersion()
}

// ReplaceDirect swaps the span r for text without touching history.
func (d *Document) ReplaceDirect(r textbuf.Range, text string) {
	n := r.Normalize()
	runes := len([]rune(text))
	if d.text.Delete(n) != nil {
		return
	}
	if d.text.Insert(n.Start, text) != nil {
		return
	}
	d.formats.AdjustForDelete(n)
	d.formats.AdjustForInsert(n.Start, runes)
	d.dirty.AdjustForDelete(n)
	d.dirty.AdjustForInsert(n.Start, runes)
	d.dirty.Mark(textbuf.NewRange(n.Start, n.Start+runes))
	d.sel = d.sel.AdjustForDelete(n)
	d.sel = d.sel.AdjustForInsert(n.Start, runes)
	d.bumpVersion()
}

// markDeleteJoin leaves a one rune wide region at the deletion point so
// incremental consumers still see where the edit happened after the
// deleted span itself has been adjusted away.
func (d *Document) markDeleteJoin(at textbuf.Offset) {
	length := d.text.Len()
	if length == 0 {
		return
	}
	end := min(at+1, length)
	start := max(0, end-1)
	d.dirty.Mark(textbuf.NewRange(start, end))
}
