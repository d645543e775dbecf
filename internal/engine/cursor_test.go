package engine

import (
	"testing"

	"github.com/dshills/richtext/internal/engine/textbuf"
)

func cursorDoc(t *testing.T, text string, at textbuf.Offset) *Document {
	t.Helper()
	d, err := FromText(text)
	if err != nil {
		t.Fatal(err)
	}
	d.SetCursor(at)
	return d
}

func assertCursor(t *testing.T, d *Document, want textbuf.Offset) {
	t.Helper()
	sel := d.Selection()
	if !sel.IsCollapsed() {
		t.Fatalf("expected collapsed selection, got %v", sel)
	}
	if sel.Focus != want {
		t.Errorf("expected cursor at %d, got %d", want, sel.Focus)
	}
}

func TestMoveLeftRight(t *testing.T) {
	d := cursorDoc(t, "abc", 1)
	d.MoveRight()
	assertCursor(t, d, 2)
	d.MoveLeft()
	d.MoveLeft()
	assertCursor(t, d, 0)
	d.MoveLeft()
	assertCursor(t, d, 0)
	d.SetCursor(3)
	d.MoveRight()
	assertCursor(t, d, 3)
}

func TestMoveRightCollapsesSelection(t *testing.T) {
	d := cursorDoc(t, "abcdef", 0)
	d.SelectAll()
	d.MoveRight()
	if !d.Selection().IsCollapsed() {
		t.Error("expected movement to collapse the selection")
	}
}

func TestMoveUpPreservesColumn(t *testing.T) {
	// Lines: "hello" (0-4), "world wide" (6-15), "web" (17-19).
	d := cursorDoc(t, "hello\nworld wide\nweb", 9)
	d.MoveUp()
	assertCursor(t, d, 3)
	d.MoveUp()
	assertCursor(t, d, 0)
}

func TestMoveUpClampsToShortLine(t *testing.T) {
	d := cursorDoc(t, "ab\nlonger line", 12)
	d.MoveUp()
	// Column 9 does not exist on "ab"; clamp to its end.
	assertCursor(t, d, 2)
}

func TestMoveDownPreservesColumn(t *testing.T) {
	d := cursorDoc(t, "hello\nworld wide\nweb", 2)
	d.MoveDown()
	assertCursor(t, d, 8)
	d.MoveDown()
	// Column 2 on "web".
	assertCursor(t, d, 19)
}

func TestMoveDownOnLastLine(t *testing.T) {
	d := cursorDoc(t, "one\ntwo", 5)
	d.MoveDown()
	assertCursor(t, d, 7)
}

func TestMoveToLineBounds(t *testing.T) {
	d := cursorDoc(t, "first\nsecond", 9)
	d.MoveToLineStart()
	assertCursor(t, d, 6)
	d.MoveToLineEnd()
	assertCursor(t, d, 12)
	d.SetCursor(2)
	d.MoveToLineEnd()
	assertCursor(t, d, 5)
}

func TestMoveToDocumentBounds(t *testing.T) {
	d := cursorDoc(t, "some text", 4)
	d.MoveToDocumentStart()
	assertCursor(t, d, 0)
	d.MoveToDocumentEnd()
	assertCursor(t, d, 9)
}

func TestMoveWordForward(t *testing.T) {
	d := cursorDoc(t, "foo bar_baz  qux", 0)
	d.MoveWordForward()
	assertCursor(t, d, 4)
	d.MoveWordForward()
	// Underscore counts as a word rune, so bar_baz is one word.
	assertCursor(t, d, 13)
	d.MoveWordForward()
	assertCursor(t, d, 16)
}

func TestMoveWordBackward(t *testing.T) {
	d := cursorDoc(t, "foo bar_baz  qux", 16)
	d.MoveWordBackward()
	assertCursor(t, d, 13)
	d.MoveWordBackward()
	assertCursor(t, d, 4)
	d.MoveWordBackward()
	assertCursor(t, d, 0)
	d.MoveWordBackward()
	assertCursor(t, d, 0)
}
