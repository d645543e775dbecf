// Package selection provides the anchor/focus selection value type and
// its adjustment rules under document mutation.
package selection

import "github.com/dshills/richtext/internal/engine/textbuf"

// Selection is an immutable anchor/focus pair of rune offsets. Anchor is
// where the selection began, Focus is where the cursor sits now; Focus
// may precede Anchor. A collapsed selection (Anchor == Focus) is a
// cursor. All methods return new values.
type Selection struct {
	Anchor textbuf.Offset
	Focus  textbuf.Offset
}

// New returns a selection from anchor to focus.
func New(anchor, focus textbuf.Offset) Selection {
	return Selection{Anchor: anchor, Focus: focus}
}

// Cursor returns a collapsed selection at off.
func Cursor(off textbuf.Offset) Selection {
	return Selection{Anchor: off, Focus: off}
}

// IsCollapsed reports whether the selection is a bare cursor.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Focus
}

// Range returns the selection as a possibly backward range.
func (s Selection) Range() textbuf.Range {
	return textbuf.NewRange(s.Anchor, s.Focus)
}

// Start returns the smaller endpoint.
func (s Selection) Start() textbuf.Offset {
	return min(s.Anchor, s.Focus)
}

// End returns the larger endpoint.
func (s Selection) End() textbuf.Offset {
	return max(s.Anchor, s.Focus)
}

// Len returns the number of runes selected.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Extend moves the focus, keeping the anchor.
func (s Selection) Extend(focus textbuf.Offset) Selection {
	return Selection{Anchor: s.Anchor, Focus: focus}
}

// Collapse returns a cursor at the focus.
func (s Selection) Collapse() Selection {
	return Cursor(s.Focus)
}

// CollapseToStart returns a cursor at the smaller endpoint.
func (s Selection) CollapseToStart() Selection {
	return Cursor(s.Start())
}

// CollapseToEnd returns a cursor at the larger endpoint.
func (s Selection) CollapseToEnd() Selection {
	return Cursor(s.End())
}

// Clamp forces both endpoints into [0, docLen].
func (s Selection) Clamp(docLen int) Selection {
	return Selection{
		Anchor: clampOffset(s.Anchor, docLen),
		Focus:  clampOffset(s.Focus, docLen),
	}
}

// AdjustForInsert shifts any endpoint at or after pos forward by n, so
// the selection keeps covering the same text.
func (s Selection) AdjustForInsert(pos textbuf.Offset, n int) Selection {
	out := s
	if out.Anchor >= pos {
		out.Anchor += n
	}
	if out.Focus >= pos {
		out.Focus += n
	}
	return out
}

// AdjustForDelete rewrites endpoints after the span r was removed:
// endpoints past the span shift back by its length, endpoints inside it
// collapse to the span start.
func (s Selection) AdjustForDelete(r textbuf.Range) Selection {
	n := r.Normalize()
	d := n.Len()
	adjust := func(off textbuf.Offset) textbuf.Offset {
		switch {
		case off <= n.Start:
			return off
		case off >= n.End:
			return off - d
		default:
			return n.Start
		}
	}
	return Selection{Anchor: adjust(s.Anchor), Focus: adjust(s.Focus)}
}

func clampOffset(off textbuf.Offset, docLen int) textbuf.Offset {
	if off < 0 {
		return 0
	}
	if off > docLen {
		return docLen
	}
	return off
}
