package engine

import (
	"testing"

	"github.com/dshills/richtext/internal/engine/selection"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

func selectionOf(anchor, focus textbuf.Offset) selection.Selection {
	return selection.New(anchor, focus)
}

func TestCompositionLifecycle(t *testing.T) {
	d, err := FromText("ab")
	if err != nil {
		t.Fatal(err)
	}
	d.SetCursor(1)

	d.StartComposition()
	if !d.IsComposing() {
		t.Fatal("expected active composition")
	}
	d.UpdateComposition("に")
	if d.Content() != "aにb" {
		t.Fatalf("expected %q, got %q", "aにb", d.Content())
	}
	d.UpdateComposition("にほ")
	if d.Content() != "aにほb" {
		t.Fatalf("expected %q, got %q", "aにほb", d.Content())
	}
	if d.CompositionText() != "にほ" {
		t.Errorf("expected composition text %q, got %q", "にほ", d.CompositionText())
	}
	rng, ok := d.CompositionRange()
	if !ok || rng != textbuf.NewRange(1, 3) {
		t.Errorf("expected composition range [1,3), got %v (ok=%v)", rng, ok)
	}

	d.EndComposition()
	if d.IsComposing() {
		t.Error("expected composition closed")
	}
	if d.Content() != "aにほb" {
		t.Errorf("expected committed text to remain, got %q", d.Content())
	}
}

func TestCompositionBypassesHistory(t *testing.T) {
	d := New()
	d.StartComposition()
	d.UpdateComposition("か")
	d.UpdateComposition("かん")
	d.EndComposition()
	if d.CanUndo() {
		t.Error("expected composition keystrokes to create no history entries")
	}
}

func TestCompositionUpdateReplacesPriorText(t *testing.T) {
	d, err := FromText("xy")
	if err != nil {
		t.Fatal(err)
	}
	d.SetCursor(1)
	d.StartComposition()
	d.UpdateComposition("aaa")
	d.UpdateComposition("b")
	if d.Content() != "xby" {
		t.Errorf("expected replacement of prior composition text, got %q", d.Content())
	}
	if got := d.Selection().Focus; got != 2 {
		t.Errorf("expected cursor at composition end, got %d", got)
	}
}

func TestCancelCompositionRestores(t *testing.T) {
	d, err := FromText("hello")
	if err != nil {
		t.Fatal(err)
	}
	d.SetCursor(5)
	d.StartComposition()
	d.UpdateComposition("漢字")
	if d.Content() != "hello漢字" {
		t.Fatalf("expected %q, got %q", "hello漢字", d.Content())
	}
	d.CancelComposition()
	if d.Content() != "hello" {
		t.Errorf("expected composition text removed, got %q", d.Content())
	}
	if got := d.Selection().Focus; got != 5 {
		t.Errorf("expected cursor restored to 5, got %d", got)
	}
	if d.IsComposing() {
		t.Error("expected composition closed after cancel")
	}
}

func TestUpdateWithoutStartIsNoop(t *testing.T) {
	d, err := FromText("abc")
	if err != nil {
		t.Fatal(err)
	}
	d.UpdateComposition("x")
	if d.Content() != "abc" {
		t.Errorf("expected no-op without active composition, got %q", d.Content())
	}
}

func TestStartCompositionOnSelection(t *testing.T) {
	d, err := FromText("abcdef")
	if err != nil {
		t.Fatal(err)
	}
	d.SetSelection(selectionOf(4, 2))
	d.StartComposition()
	rng, ok := d.CompositionRange()
	if !ok || rng.Start != 2 {
		t.Errorf("expected composition anchored at selection start 2, got %v", rng)
	}
}
