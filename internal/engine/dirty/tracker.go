// Package dirty tracks the document regions modified since the last
// flush so incremental consumers re-render only what changed.
package dirty

import (
	"sort"

	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Tracker holds a set of pairwise disjoint, non-adjacent normalized
// ranges. Marking a range merges it with anything it overlaps or
// touches; merging can create new adjacency, so merging repeats until
// the set is stable. The tracker never clears itself; consumers call
// Clear after flushing.
type Tracker struct {
	regions []textbuf.Range
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Mark records r as modified.
func (t *Tracker) Mark(r textbuf.Range) {
	n := r.Normalize()
	if n.IsEmpty() {
		return
	}
	for {
		mergedAny := false
		kept := t.regions[:0]
		for _, region := range t.regions {
			if overlapsOrTouches(n, region) {
				n = merge(n, region)
				mergedAny = true
			} else {
				kept = append(kept, region)
			}
		}
		t.regions = kept
		if !mergedAny {
			break
		}
	}
	t.regions = append(t.regions, n)
	sort.Slice(t.regions, func(i, j int) bool {
		return t.regions[i].Start < t.regions[j].Start
	})
}

// Regions returns the tracked ranges, sorted by start.
func (t *Tracker) Regions() []textbuf.Range {
	out := make([]textbuf.Range, len(t.regions))
	copy(out, t.regions)
	return out
}

// HasAny reports whether anything is dirty.
func (t *Tracker) HasAny() bool {
	return len(t.regions) > 0
}

// Count returns the number of disjoint dirty regions.
func (t *Tracker) Count() int {
	return len(t.regions)
}

// Clear forgets every region.
func (t *Tracker) Clear() {
	t.regions = t.regions[:0]
}

// AdjustForInsert shifts region boundaries at or after pos forward by n.
func (t *Tracker) AdjustForInsert(pos textbuf.Offset, n int) {
	if n <= 0 {
		return
	}
	for i := range t.regions {
		if t.regions[i].Start >= pos {
			t.regions[i].Start += n
		}
		if t.regions[i].End >= pos {
			t.regions[i].End += n
		}
	}
}

// AdjustForDelete rewrites regions after the span r was removed, with
// the same truncation rules the format store uses: regions fully inside
// are dropped, straddlers truncate, later regions shift back.
func (t *Tracker) AdjustForDelete(r textbuf.Range) {
	n := r.Normalize()
	d := n.Len()
	if d == 0 {
		return
	}
	kept := t.regions[:0]
	for _, region := range t.regions {
		start, end := region.Start, region.End
		switch {
		case end <= n.Start:
			// before the deletion
		case start >= n.End:
			start -= d
			end -= d
		case start >= n.Start && end <= n.End:
			continue
		case start < n.Start && end > n.End:
			end -= d
		case start < n.Start:
			end = n.Start
		default:
			start = n.Start
			end -= d
		}
		if end > start {
			kept = append(kept, textbuf.NewRange(start, end))
		}
	}
	t.regions = kept
}

func overlapsOrTouches(a, b textbuf.Range) bool {
	return a.Start <= b.End && b.Start <= a.End
}

func merge(a, b textbuf.Range) textbuf.Range {
	return textbuf.NewRange(min(a.Start, b.Start), max(a.End, b.End))
}
