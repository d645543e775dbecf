package textbuf

const (
	initialGapSize = 32
	minGapSize     = 16
)

// Buffer is a gap buffer over runes. The backing slice holds the text
// before the gap, the gap itself, and the text after the gap. Content
// length is len(buf) minus the gap size; runes inside the gap are never
// part of document content.
type Buffer struct {
	buf      []rune
	gapStart int
	gapEnd   int
}

// NewBuffer returns an empty buffer with the initial gap allocated.
func NewBuffer() *Buffer {
	return &Buffer{
		buf:      make([]rune, initialGapSize),
		gapStart: 0,
		gapEnd:   initialGapSize,
	}
}

// NewBufferFromString returns a buffer holding text with a fresh gap at
// the end.
func NewBufferFromString(text string) *Buffer {
	runes := []rune(text)
	buf := make([]rune, len(runes)+initialGapSize)
	copy(buf, runes)
	return &Buffer{
		buf:      buf,
		gapStart: len(runes),
		gapEnd:   len(buf),
	}
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.buf) - (b.gapEnd - b.gapStart)
}

// gapSize returns the current unused span.
func (b *Buffer) gapSize() int {
	return b.gapEnd - b.gapStart
}

// moveGap relocates the gap so gapStart == off, shifting the shorter
// side of the content across it.
func (b *Buffer) moveGap(off Offset) {
	switch {
	case off < b.gapStart:
		n := b.gapStart - off
		copy(b.buf[b.gapEnd-n:b.gapEnd], b.buf[off:b.gapStart])
		b.gapStart = off
		b.gapEnd -= n
	case off > b.gapStart:
		n := off - b.gapStart
		copy(b.buf[b.gapStart:b.gapStart+n], b.buf[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// growGap reallocates so the gap can absorb at least needed more runes.
// Growth always adds minGapSize beyond what the insert requires so a run
// of sequential inserts does not reallocate every keystroke.
func (b *Buffer) growGap(needed int) {
	additional := needed - b.gapSize() + minGapSize
	next := make([]rune, len(b.buf)+additional)
	copy(next, b.buf[:b.gapStart])
	copy(next[b.gapEnd+additional:], b.buf[b.gapEnd:])
	b.gapEnd += additional
	b.buf = next
}

// Insert writes text at off. Returns ErrInvalidPosition when off exceeds
// the content length.
func (b *Buffer) Insert(off Offset, text string) error {
	if off < 0 || off > b.Len() {
		return ErrInvalidPosition
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if b.gapSize() < len(runes) {
		b.growGap(len(runes))
	}
	b.moveGap(off)
	copy(b.buf[b.gapStart:], runes)
	b.gapStart += len(runes)
	return nil
}

// Delete removes the runes covered by r. Returns ErrInvalidRange when
// the normalized end exceeds the content length. Deletion extends the
// gap over the span in O(1) once the gap is positioned.
func (b *Buffer) Delete(r Range) error {
	n := r.Normalize()
	if n.Start < 0 || n.End > b.Len() {
		return ErrInvalidRange
	}
	if n.IsEmpty() {
		return nil
	}
	b.moveGap(n.Start)
	b.gapEnd += n.End - n.Start
	return nil
}

// RuneAt returns the rune at off. The second result is false when off is
// out of bounds.
func (b *Buffer) RuneAt(off Offset) (rune, bool) {
	if off < 0 || off >= b.Len() {
		return 0, false
	}
	if off < b.gapStart {
		return b.buf[off], true
	}
	return b.buf[off+b.gapSize()], true
}

// Slice returns the text covered by r.
func (b *Buffer) Slice(r Range) (string, error) {
	n := r.Normalize()
	if n.Start < 0 || n.End > b.Len() {
		return "", ErrInvalidRange
	}
	out := make([]rune, 0, n.End-n.Start)
	for i := n.Start; i < n.End; i++ {
		if i < b.gapStart {
			out = append(out, b.buf[i])
		} else {
			out = append(out, b.buf[i+b.gapSize()])
		}
	}
	return string(out), nil
}

// String returns the full content.
func (b *Buffer) String() string {
	out := make([]rune, 0, b.Len())
	out = append(out, b.buf[:b.gapStart]...)
	out = append(out, b.buf[b.gapEnd:]...)
	return string(out)
}

// Runes returns a copy of the full content as a rune slice. Cursor
// movement scans this to find line and word boundaries.
func (b *Buffer) Runes() []rune {
	out := make([]rune, 0, b.Len())
	out = append(out, b.buf[:b.gapStart]...)
	out = append(out, b.buf[b.gapEnd:]...)
	return out
}
