package engine

import (
	"github.com/dshills/richtext/internal/engine/selection"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// composition tracks the single active IME span. Composition text is
// written through the direct primitives, so individual keystrokes never
// create history entries.
type composition struct {
	active bool
	rng    textbuf.Range
}

// IsComposing reports whether an IME composition is active.
func (d *Document) IsComposing() bool { return d.comp.active }

// CompositionRange returns the span the active composition occupies.
func (d *Document) CompositionRange() (textbuf.Range, bool) {
	if !d.comp.active {
		return textbuf.Range{}, false
	}
	return d.comp.rng, true
}

// CompositionText returns the current provisional text.
func (d *Document) CompositionText() string {
	if !d.comp.active {
		return ""
	}
	return d.TextIn(d.comp.rng)
}

// StartComposition opens a composition span at the cursor, or at the
// start of the selection when one exists.
func (d *Document) StartComposition() {
	start := d.sel.Focus
	if !d.sel.IsCollapsed() {
		start = d.sel.Start()
	}
	d.comp = composition{active: true, rng: textbuf.NewRange(start, start)}
}

// UpdateComposition replaces the provisional text with text and moves
// the cursor to the span end. A no-op when no composition is active.
func (d *Document) UpdateComposition(text string) {
	if !d.comp.active {
		return
	}
	old := d.comp.rng
	if !old.IsEmpty() {
		d.DeleteDirect(old)
	}
	start := old.Start
	n := 0
	if text != "" {
		before := d.text.Len()
		d.InsertDirect(start, text)
		n = d.text.Len() - before
	}
	d.comp.rng = textbuf.NewRange(start, start+n)
	d.sel = selection.Cursor(start + n)
	d.notifyChange()
}

// EndComposition commits the provisional text: the span stays in the
// document and the composition closes.
func (d *Document) EndComposition() {
	d.comp = composition{}
}

// CancelComposition removes the provisional text and restores the
// cursor to where the composition started.
func (d *Document) CancelComposition() {
	if !d.comp.active {
		return
	}
	rng := d.comp.rng
	if !rng.IsEmpty() {
		d.DeleteDirect(rng)
	}
	d.sel = selection.Cursor(rng.Start).Clamp(d.text.Len())
	d.comp = composition{}
	d.notifyChange()
}
