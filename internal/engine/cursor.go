package engine

import (
	"unicode"

	"github.com/dshills/richtext/internal/engine/selection"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Cursor movement always collapses the selection and works purely on
// the current content and focus offset. There is no persisted line
// index; line boundaries are found by scanning for newlines.

// MoveLeft moves the cursor one rune left.
func (d *Document) MoveLeft() {
	focus := d.sel.Focus
	if focus > 0 {
		focus--
	}
	d.setCursorInternal(focus)
}

// MoveRight moves the cursor one rune right.
func (d *Document) MoveRight() {
	focus := d.sel.Focus
	if focus < d.text.Len() {
		focus++
	}
	d.setCursorInternal(focus)
}

// MoveUp moves the cursor to the previous line, preserving the column
// where the line is long enough. On the first line it moves to the
// document start.
func (d *Document) MoveUp() {
	content := d.text.Runes()
	focus := d.sel.Focus
	lineStart := findLineStart(content, focus)
	if lineStart == 0 {
		d.setCursorInternal(0)
		return
	}
	column := focus - lineStart
	prevStart := findLineStart(content, lineStart-1)
	prevEnd := lineStart - 1
	d.setCursorInternal(min(prevStart+column, prevEnd))
}

// MoveDown moves the cursor to the next line, preserving the column.
// On the last line it moves to the document end.
func (d *Document) MoveDown() {
	content := d.text.Runes()
	focus := d.sel.Focus
	lineEnd := findLineEnd(content, focus)
	if lineEnd == len(content) {
		d.setCursorInternal(len(content))
		return
	}
	column := focus - findLineStart(content, focus)
	nextStart := lineEnd + 1
	nextEnd := findLineEnd(content, nextStart)
	d.setCursorInternal(min(nextStart+column, nextEnd))
}

// MoveToLineStart moves the cursor to the start of the current line.
func (d *Document) MoveToLineStart() {
	d.setCursorInternal(findLineStart(d.text.Runes(), d.sel.Focus))
}

// MoveToLineEnd moves the cursor to the end of the current line.
func (d *Document) MoveToLineEnd() {
	d.setCursorInternal(findLineEnd(d.text.Runes(), d.sel.Focus))
}

// MoveToDocumentStart moves the cursor to offset 0.
func (d *Document) MoveToDocumentStart() {
	d.setCursorInternal(0)
}

// MoveToDocumentEnd moves the cursor past the last rune.
func (d *Document) MoveToDocumentEnd() {
	d.setCursorInternal(d.text.Len())
}

// MoveWordForward moves the cursor to the start of the next word,
// skipping the rest of the current word and the separators after it.
func (d *Document) MoveWordForward() {
	content := d.text.Runes()
	i := d.sel.Focus
	for i < len(content) && isWordRune(content[i]) {
		i++
	}
	for i < len(content) && !isWordRune(content[i]) {
		i++
	}
	d.setCursorInternal(i)
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (d *Document) MoveWordBackward() {
	content := d.text.Runes()
	i := d.sel.Focus
	for i > 0 && !isWordRune(content[i-1]) {
		i--
	}
	for i > 0 && isWordRune(content[i-1]) {
		i--
	}
	d.setCursorInternal(i)
}

func (d *Document) setCursorInternal(off textbuf.Offset) {
	d.sel = selection.Cursor(off).Clamp(d.text.Len())
	d.notifySelection()
}

// findLineStart returns the offset just past the previous newline, or 0.
func findLineStart(content []rune, from textbuf.Offset) textbuf.Offset {
	if from > len(content) {
		from = len(content)
	}
	for i := from; i > 0; i-- {
		if content[i-1] == '\n' {
			return i
		}
	}
	return 0
}

// findLineEnd returns the offset of the next newline, or the content end.
func findLineEnd(content []rune, from textbuf.Offset) textbuf.Offset {
	for i := from; i < len(content); i++ {
		if content[i] == '\n' {
			return i
		}
	}
	return len(content)
}

// Word characters are alphanumerics and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
