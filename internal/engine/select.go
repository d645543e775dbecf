package engine

import (
	"github.com/dshills/richtext/internal/engine/selection"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Selection returns the current selection.
func (d *Document) Selection() selection.Selection { return d.sel }

// SetSelection assigns the selection, clamping both endpoints into the
// document. Out-of-range offsets never error; they clamp.
func (d *Document) SetSelection(s selection.Selection) {
	d.sel = s.Clamp(d.text.Len())
	d.notifySelection()
}

// SetCursor collapses the selection to a single offset.
func (d *Document) SetCursor(off textbuf.Offset) {
	d.SetSelection(selection.Cursor(off))
}

// SelectAll selects the whole document.
func (d *Document) SelectAll() {
	d.sel = selection.New(0, d.text.Len())
	d.notifySelection()
}

// CollapseToStart collapses the selection to its smaller endpoint.
func (d *Document) CollapseToStart() {
	d.sel = d.sel.CollapseToStart()
	d.notifySelection()
}

// CollapseToEnd collapses the selection to its larger endpoint.
func (d *Document) CollapseToEnd() {
	d.sel = d.sel.CollapseToEnd()
	d.notifySelection()
}

// SelectedText returns the text the selection covers.
func (d *Document) SelectedText() string {
	return d.TextIn(d.sel.Range())
}
