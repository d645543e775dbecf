package textbuf

import (
	"strings"
	"testing"
)

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.String() != "" {
		t.Errorf("expected empty content, got %q", b.String())
	}
}

func TestBufferFromString(t *testing.T) {
	b := NewBufferFromString("hello")
	if b.Len() != 5 {
		t.Errorf("expected length 5, got %d", b.Len())
	}
	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewBuffer()
	if err := b.Insert(0, "world"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := b.Insert(0, "hello "); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.String() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", b.String())
	}
}

func TestBufferInsertMiddle(t *testing.T) {
	b := NewBufferFromString("helo")
	if err := b.Insert(2, "l"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
}

func TestBufferInsertOutOfBounds(t *testing.T) {
	b := NewBufferFromString("abc")
	if err := b.Insert(4, "x"); err != ErrInvalidPosition {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
	if b.String() != "abc" {
		t.Errorf("content changed on failed insert: %q", b.String())
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewBufferFromString("hello world")
	if err := b.Delete(NewRange(5, 11)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
}

func TestBufferDeleteBackwardRange(t *testing.T) {
	b := NewBufferFromString("abcdef")
	if err := b.Delete(NewRange(4, 2)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.String() != "abef" {
		t.Errorf("expected %q, got %q", "abef", b.String())
	}
}

func TestBufferDeleteOutOfBounds(t *testing.T) {
	b := NewBufferFromString("abc")
	if err := b.Delete(NewRange(1, 5)); err != ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestBufferSlice(t *testing.T) {
	b := NewBufferFromString("hello world")
	got, err := b.Slice(NewRange(6, 11))
	if err != nil {
		t.Fatalf("slice failed: %v", err)
	}
	if got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}

func TestBufferSliceAcrossGap(t *testing.T) {
	b := NewBufferFromString("hello world")
	// Park the gap in the middle so the slice spans it.
	if err := b.Insert(5, ","); err != nil {
		t.Fatal(err)
	}
	if err := b.Delete(NewRange(5, 6)); err != nil {
		t.Fatal(err)
	}
	got, err := b.Slice(NewRange(3, 8))
	if err != nil {
		t.Fatalf("slice failed: %v", err)
	}
	if got != "lo wo" {
		t.Errorf("expected %q, got %q", "lo wo", got)
	}
}

func TestBufferRuneAt(t *testing.T) {
	b := NewBufferFromString("héllo")
	r, ok := b.RuneAt(1)
	if !ok || r != 'é' {
		t.Errorf("expected 'é', got %q (ok=%v)", r, ok)
	}
	if _, ok := b.RuneAt(5); ok {
		t.Error("expected out-of-bounds lookup to fail")
	}
}

func TestBufferSequentialInsertsGrowGap(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < 100; i++ {
		if err := b.Insert(b.Len(), "ab"); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}
	want := strings.Repeat("ab", 100)
	if b.String() != want {
		t.Errorf("content mismatch after growth: length %d, want %d", b.Len(), len(want))
	}
}

func TestBufferUnicodeOffsets(t *testing.T) {
	b := NewBufferFromString("日本語")
	if b.Len() != 3 {
		t.Errorf("expected rune length 3, got %d", b.Len())
	}
	if err := b.Insert(1, "の"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.String() != "日の本語" {
		t.Errorf("expected %q, got %q", "日の本語", b.String())
	}
}
