package format

import (
	"slices"
	"sort"

	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Run is a maximal span of text sharing one format set. Ranges held by
// the store are always normalized.
type Run struct {
	Range   textbuf.Range
	Formats Set
}

// Clone returns a deep copy of the run.
func (r Run) Clone() Run {
	return Run{Range: r.Range, Formats: r.Formats.Clone()}
}

type cacheSlot struct {
	pos   textbuf.Offset
	set   Set
	valid bool
}

// Store holds the inline format runs and the block partition for one
// document. Runs are kept sorted by start, pairwise disjoint, with
// adjacent identical sets merged eagerly. The block list is sorted by
// start and always contains an entry at offset 0.
type Store struct {
	runs   []Run
	blocks []Block
	cache  cacheSlot
	intern *Interner
}

func NewStore() *Store {
	return &Store{
		blocks: []Block{{Start: 0, Type: Paragraph()}},
		intern: NewInterner(),
	}
}

func (s *Store) invalidate() {
	s.cache.valid = false
}

func (s *Store) internFormat(f Format) Format {
	switch f.Kind {
	case KindLink, KindTextColor, KindBackgroundColor:
		f.Value = s.intern.Intern(f.Value)
	}
	return f
}

// Apply adds f to every rune in r. Existing runs are split at the range
// boundaries, runs inside the range gain the format, and uncovered gaps
// inside the range become new single-format runs.
func (s *Store) Apply(r textbuf.Range, f Format) {
	n := r.Normalize()
	if n.IsEmpty() {
		return
	}
	s.invalidate()
	f = s.internFormat(f)
	s.splitAt(n.Start)
	s.splitAt(n.End)

	covered := make([]textbuf.Range, 0, 4)
	for i := range s.runs {
		rr := s.runs[i].Range
		if rr.Start >= n.Start && rr.End <= n.End {
			s.runs[i].Formats.Add(f)
			covered = append(covered, rr)
		}
	}

	// Fill the spans inside the range no run covered yet.
	cursor := n.Start
	for _, c := range covered {
		if c.Start > cursor {
			s.runs = append(s.runs, Run{
				Range:   textbuf.NewRange(cursor, c.Start),
				Formats: NewSet(f),
			})
		}
		cursor = c.End
	}
	if cursor < n.End {
		s.runs = append(s.runs, Run{
			Range:   textbuf.NewRange(cursor, n.End),
			Formats: NewSet(f),
		})
	}

	s.mergeAdjacent()
}

// Remove strips every format matching f's kind from r. The payload is
// ignored, so removing a link removes any link regardless of URL.
func (s *Store) Remove(r textbuf.Range, f Format) {
	n := r.Normalize()
	if n.IsEmpty() {
		return
	}
	s.invalidate()
	s.splitAt(n.Start)
	s.splitAt(n.End)

	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		if run.Range.Start >= n.Start && run.Range.End <= n.End {
			run.Formats.RemoveKind(f.Kind)
			if run.Formats.Len() == 0 {
				continue
			}
		}
		out = append(out, run)
	}
	s.runs = out
	s.mergeAdjacent()
}

// FormatsAt returns the format set at pos, empty when no run covers it.
// A single-slot cache short-circuits repeated queries at one offset and
// is invalidated on every mutation.
func (s *Store) FormatsAt(pos textbuf.Offset) Set {
	if s.cache.valid && s.cache.pos == pos {
		return s.cache.set.Clone()
	}
	out := NewSet()
	for _, run := range s.runs {
		if run.Range.Contains(pos) {
			out = run.Formats.Clone()
			break
		}
	}
	s.cache = cacheSlot{pos: pos, set: out.Clone(), valid: true}
	return out
}

// Runs returns a deep copy of every run, sorted by start.
func (s *Store) Runs() []Run {
	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run.Clone())
	}
	return out
}

// RunsOverlapping returns deep copies of the runs that share at least
// one rune with r. Commands capture these before destructive edits.
func (s *Store) RunsOverlapping(r textbuf.Range) []Run {
	n := r.Normalize()
	out := make([]Run, 0, 4)
	for _, run := range s.runs {
		if run.Range.Overlaps(n) {
			out = append(out, run.Clone())
		}
	}
	return out
}

// CoveredLength returns the summed length of the overlap between r and
// runs containing a format of f's kind. Toggle classifies a range as
// fully formatted when this reaches the range length.
func (s *Store) CoveredLength(r textbuf.Range, f Format) int {
	n := r.Normalize()
	total := 0
	for _, run := range s.runs {
		if !run.Formats.HasKind(f.Kind) {
			continue
		}
		if overlap, ok := run.Range.Intersect(n); ok {
			total += overlap.Len()
		}
	}
	return total
}

// splitAt cuts any run strictly containing pos into two runs sharing
// the same format set.
func (s *Store) splitAt(pos textbuf.Offset) {
	for i := range s.runs {
		rr := s.runs[i].Range
		if rr.Start < pos && pos < rr.End {
			tail := Run{
				Range:   textbuf.NewRange(pos, rr.End),
				Formats: s.runs[i].Formats.Clone(),
			}
			s.runs[i].Range.End = pos
			s.runs = slices.Insert(s.runs, i+1, tail)
			return
		}
	}
}

func (s *Store) sortRuns() {
	sort.Slice(s.runs, func(i, j int) bool {
		return s.runs[i].Range.Start < s.runs[j].Range.Start
	})
}

// mergeAdjacent coalesces touching runs with identical format sets.
func (s *Store) mergeAdjacent() {
	if len(s.runs) < 2 {
		return
	}
	s.sortRuns()
	merged := s.runs[:1]
	for _, run := range s.runs[1:] {
		last := &merged[len(merged)-1]
		if last.Range.End == run.Range.Start && last.Formats.Equal(run.Formats) {
			last.Range.End = run.Range.End
		} else {
			merged = append(merged, run)
		}
	}
	s.runs = merged
}

// SetBlockType assigns t to the span r covers. Entries starting inside
// the range are removed, one entry with the new type is inserted at the
// range start, and when the range stops short of the document end the
// previously effective type is reinserted at the range end so the text
// after the range keeps its block.
func (s *Store) SetBlockType(r textbuf.Range, t BlockType, docLen int) {
	n := r.Normalize()
	s.invalidate()
	if n.IsEmpty() {
		s.setBlockAt(n.Start, t)
		return
	}
	prior := s.BlockTypeAt(n.End)

	out := make([]Block, 0, len(s.blocks)+2)
	for _, b := range s.blocks {
		if b.Start < n.Start || b.Start >= n.End {
			out = append(out, b)
		}
	}
	out = append(out, Block{Start: n.Start, Type: t})
	if n.End < docLen && !hasBlockStart(out, n.End) {
		out = append(out, Block{Start: n.End, Type: prior})
	}
	s.blocks = out
	s.sortBlocks()
	s.ensureBlockAtZero()
}

// setBlockAt replaces or inserts the single entry at off.
func (s *Store) setBlockAt(off textbuf.Offset, t BlockType) {
	for i := range s.blocks {
		if s.blocks[i].Start == off {
			s.blocks[i].Type = t
			return
		}
	}
	s.blocks = append(s.blocks, Block{Start: off, Type: t})
	s.sortBlocks()
}

// BlockTypeAt returns the type of the block spanning pos: the entry
// with the greatest start not exceeding pos.
func (s *Store) BlockTypeAt(pos textbuf.Offset) BlockType {
	t := Paragraph()
	for _, b := range s.blocks {
		if b.Start > pos {
			break
		}
		t = b.Type
	}
	return t
}

// Blocks returns a copy of the block list, sorted by start.
func (s *Store) Blocks() []Block {
	return slices.Clone(s.blocks)
}

// SetBlocks replaces the whole block list. Used to restore a captured
// snapshot on undo. The offset-0 entry is re-ensured.
func (s *Store) SetBlocks(blocks []Block) {
	s.invalidate()
	s.blocks = slices.Clone(blocks)
	s.sortBlocks()
	s.ensureBlockAtZero()
}

func (s *Store) sortBlocks() {
	sort.Slice(s.blocks, func(i, j int) bool {
		return s.blocks[i].Start < s.blocks[j].Start
	})
}

func (s *Store) ensureBlockAtZero() {
	if hasBlockStart(s.blocks, 0) {
		return
	}
	s.blocks = slices.Insert(s.blocks, 0, Block{Start: 0, Type: Paragraph()})
}

func hasBlockStart(blocks []Block, off textbuf.Offset) bool {
	for _, b := range blocks {
		if b.Start == off {
			return true
		}
	}
	return false
}

// AdjustForInsert shifts run boundaries at or after pos, and block
// starts strictly after pos, forward by n runes. Inserting at a block
// start keeps the block anchored to its text.
func (s *Store) AdjustForInsert(pos textbuf.Offset, n int) {
	if n <= 0 {
		return
	}
	s.invalidate()
	for i := range s.runs {
		if s.runs[i].Range.Start >= pos {
			s.runs[i].Range.Start += n
		}
		if s.runs[i].Range.End >= pos {
			s.runs[i].Range.End += n
		}
	}
	for i := range s.blocks {
		if s.blocks[i].Start > pos {
			s.blocks[i].Start += n
		}
	}
}

// AdjustForDelete rewrites runs and blocks after the span r was removed
// from the text: runs fully inside are dropped, straddlers truncate to
// the surviving edge, and everything at or after the span end shifts
// back by its length.
func (s *Store) AdjustForDelete(r textbuf.Range) {
	n := r.Normalize()
	d := n.Len()
	if d == 0 {
		return
	}
	s.invalidate()

	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		start, end := run.Range.Start, run.Range.End
		switch {
		case end <= n.Start:
			// untouched, before the deletion
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
			run.Range = textbuf.NewRange(start, end)
			out = append(out, run)
		}
	}
	s.runs = out
	s.mergeAdjacent()

	blocks := make([]Block, 0, len(s.blocks))
	for _, b := range s.blocks {
		switch {
		case b.Start < n.Start:
			blocks = append(blocks, b)
		case b.Start >= n.End:
			b.Start -= d
			blocks = append(blocks, b)
		}
	}
	s.blocks = blocks
	s.sortBlocks()
	s.ensureBlockAtZero()
}

// Stats describes the store's memory footprint. Informational only.
type Stats struct {
	Runs            int
	Blocks          int
	InternedStrings int
	EstimatedBytes  int
}

func (s *Store) Stats() Stats {
	const runSize, blockSize = 48, 24
	return Stats{
		Runs:            len(s.runs),
		Blocks:          len(s.blocks),
		InternedStrings: s.intern.Count(),
		EstimatedBytes:  len(s.runs)*runSize + len(s.blocks)*blockSize + s.intern.EstimatedBytes(),
	}
}
