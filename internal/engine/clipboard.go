package engine

import (
	"github.com/dshills/richtext/internal/engine/format"
)

// ClipboardContent is the portable result of a copy: plain text plus
// the format runs overlapping it, clipped and rebased to offset 0 so
// the content pastes into any document.
type ClipboardContent struct {
	Text string
	Runs []format.Run
}

// Copy captures the selected text and formatting. An empty selection
// yields empty content.
func (d *Document) Copy() ClipboardContent {
	sel := d.sel.Range().Normalize()
	if sel.IsEmpty() {
		return ClipboardContent{}
	}
	text := d.TextIn(sel)
	var runs []format.Run
	for _, run := range d.formats.RunsOverlapping(sel) {
		clipped, ok := run.Range.Intersect(sel)
		if !ok {
			continue
		}
		runs = append(runs, format.Run{
			Range:   clipped.Shift(-sel.Start),
			Formats: run.Formats.Clone(),
		})
	}
	return ClipboardContent{Text: text, Runs: runs}
}

// Cut copies the selection, then deletes it as an undoable edit.
func (d *Document) Cut() (ClipboardContent, error) {
	content := d.Copy()
	sel := d.sel.Range().Normalize()
	if sel.IsEmpty() {
		return content, nil
	}
	if err := d.Delete(sel); err != nil {
		return ClipboardContent{}, err
	}
	return content, nil
}

// Paste replaces the selection with the clipboard text and re-applies
// the clipboard's formats at the paste point. The text replacement and
// each format application are separate undoable edits.
func (d *Document) Paste(content ClipboardContent) error {
	sel := d.sel.Range().Normalize()
	at := sel.Start
	if err := d.Replace(sel, content.Text); err != nil {
		return err
	}
	pasted := len([]rune(content.Text))
	for _, run := range content.Runs {
		target := run.Range.Shift(at)
		if target.End > at+pasted {
			target.End = at + pasted
		}
		if target.Len() == 0 {
			continue
		}
		for _, f := range run.Formats.Slice() {
			if err := d.ApplyFormat(target, f); err != nil {
				return err
			}
		}
	}
	d.SetCursor(at + pasted)
	return nil
}

// CanPaste reports whether content would change the document.
func (d *Document) CanPaste(content ClipboardContent) bool {
	return content.Text != "" || !d.sel.IsCollapsed()
}
