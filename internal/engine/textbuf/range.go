package textbuf

import "fmt"

// Offset is a rune offset into document content.
type Offset = int

// Range is a pair of offsets. Start may exceed End when the range
// represents a reversed selection; call Normalize before using it as a
// storage span.
type Range struct {
	Start Offset
	End   Offset
}

// NewRange returns the range [start, end) without normalizing.
func NewRange(start, end Offset) Range {
	return Range{Start: start, End: end}
}

// Normalize returns an equivalent range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Len returns the number of runes the normalized range covers.
func (r Range) Len() int {
	n := r.Normalize()
	return n.End - n.Start
}

// IsEmpty reports whether the range covers no runes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether off lies inside the normalized range,
// start-inclusive and end-exclusive.
func (r Range) Contains(off Offset) bool {
	n := r.Normalize()
	return off >= n.Start && off < n.End
}

// Overlaps reports whether the normalized ranges share at least one rune.
func (r Range) Overlaps(other Range) bool {
	a, b := r.Normalize(), other.Normalize()
	return a.Start < b.End && b.Start < a.End
}

// Intersect returns the overlapping span of the two normalized ranges.
// The second result is false when they do not overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	a, b := r.Normalize(), other.Normalize()
	start := max(a.Start, b.Start)
	end := min(a.End, b.End)
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Shift returns the range moved by delta runes.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
