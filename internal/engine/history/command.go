package history

import (
	"fmt"

	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Target exposes the direct, non-undoable document primitives commands
// run against. The document aggregate is the only implementation; the
// direct methods assume pre-validated offsets and handle format,
// selection, dirty, and version bookkeeping themselves.
type Target interface {
	Length() int
	TextIn(r textbuf.Range) string
	InsertDirect(pos textbuf.Offset, text string)
	DeleteDirect(r textbuf.Range)
	ReplaceDirect(r textbuf.Range, text string)
	Formats() *format.Store
	MarkDirty(r textbuf.Range)
	BumpVersion()
}

// Kind selects the operation a Command performs.
type Kind uint8

const (
	KindInsert Kind = iota
	KindDelete
	KindReplace
	KindApplyFormat
	KindRemoveFormat
	KindSetBlockType
	KindFindReplace
)

// Command is one undoable edit. The parameter fields used depend on
// Kind; captured fields are filled at execute time.
type Command struct {
	kind Kind

	pos       textbuf.Offset
	rng       textbuf.Range
	text      string
	fmtArg    format.Format
	blockType format.BlockType
	matches   []textbuf.Range

	executed    bool
	savedText   string
	savedRuns   []format.Run
	savedBlocks []format.Block
	originals   []string
}

func NewInsert(pos textbuf.Offset, text string) *Command {
	return &Command{kind: KindInsert, pos: pos, text: text}
}

func NewDelete(r textbuf.Range) *Command {
	return &Command{kind: KindDelete, rng: r.Normalize()}
}

func NewReplace(r textbuf.Range, text string) *Command {
	return &Command{kind: KindReplace, rng: r.Normalize(), text: text}
}

func NewApplyFormat(r textbuf.Range, f format.Format) *Command {
	return &Command{kind: KindApplyFormat, rng: r.Normalize(), fmtArg: f}
}

func NewRemoveFormat(r textbuf.Range, f format.Format) *Command {
	return &Command{kind: KindRemoveFormat, rng: r.Normalize(), fmtArg: f}
}

func NewSetBlockType(r textbuf.Range, t format.BlockType) *Command {
	return &Command{kind: KindSetBlockType, rng: r.Normalize(), blockType: t}
}

// NewFindReplace replaces every match range with text. Matches must be
// normalized, non-overlapping, and sorted by start; the document layer
// produces them from a search over the current content.
func NewFindReplace(matches []textbuf.Range, text string) *Command {
	return &Command{kind: KindFindReplace, matches: matches, text: text}
}

func (c *Command) Kind() Kind { return c.kind }

// Description names the operation for debugging and logging.
func (c *Command) Description() string {
	switch c.kind {
	case KindInsert:
		return fmt.Sprintf("insert %d runes at %d", len([]rune(c.text)), c.pos)
	case KindDelete:
		return fmt.Sprintf("delete %v", c.rng)
	case KindReplace:
		return fmt.Sprintf("replace %v", c.rng)
	case KindApplyFormat:
		return fmt.Sprintf("apply %s over %v", c.fmtArg.Kind, c.rng)
	case KindRemoveFormat:
		return fmt.Sprintf("remove %s over %v", c.fmtArg.Kind, c.rng)
	case KindSetBlockType:
		return fmt.Sprintf("set block %s over %v", c.blockType.Kind, c.rng)
	case KindFindReplace:
		return fmt.Sprintf("replace %d matches", len(c.matches))
	}
	return "unknown"
}

// Execute performs the edit, capturing whatever prior state undo needs.
// Redo re-executes the same command; on restored content the capture is
// identical.
func (c *Command) Execute(t Target) error {
	switch c.kind {
	case KindInsert:
		t.InsertDirect(c.pos, c.text)

	case KindDelete:
		c.savedText = t.TextIn(c.rng)
		c.savedRuns = t.Formats().RunsOverlapping(c.rng)
		t.DeleteDirect(c.rng)

	case KindReplace:
		c.savedText = t.TextIn(c.rng)
		c.savedRuns = t.Formats().RunsOverlapping(c.rng)
		t.ReplaceDirect(c.rng, c.text)

	case KindApplyFormat:
		c.savedRuns = t.Formats().RunsOverlapping(c.rng)
		t.Formats().Apply(c.rng, c.fmtArg)
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindRemoveFormat:
		c.savedRuns = t.Formats().RunsOverlapping(c.rng)
		t.Formats().Remove(c.rng, c.fmtArg)
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindSetBlockType:
		c.savedBlocks = t.Formats().Blocks()
		t.Formats().SetBlockType(c.rng, c.blockType, t.Length())
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindFindReplace:
		c.originals = make([]string, len(c.matches))
		for i, m := range c.matches {
			c.originals[i] = t.TextIn(m)
		}
		// Reverse offset order keeps earlier match offsets valid while
		// later spans change length.
		for i := len(c.matches) - 1; i >= 0; i-- {
			t.ReplaceDirect(c.matches[i], c.text)
		}
	}
	c.executed = true
	return nil
}

// Undo reverses the edit using the captured state.
func (c *Command) Undo(t Target) error {
	if !c.executed {
		return ErrNotExecuted
	}
	switch c.kind {
	case KindInsert:
		n := len([]rune(c.text))
		t.DeleteDirect(textbuf.NewRange(c.pos, c.pos+n))

	case KindDelete:
		t.InsertDirect(c.rng.Start, c.savedText)
		c.reapplySavedRuns(t)

	case KindReplace:
		n := len([]rune(c.text))
		t.ReplaceDirect(textbuf.NewRange(c.rng.Start, c.rng.Start+n), c.savedText)
		c.reapplySavedRuns(t)

	case KindApplyFormat:
		t.Formats().Remove(c.rng, c.fmtArg)
		c.reapplySavedRuns(t)
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindRemoveFormat:
		c.reapplySavedRuns(t)
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindSetBlockType:
		t.Formats().SetBlocks(c.savedBlocks)
		t.MarkDirty(c.rng)
		t.BumpVersion()

	case KindFindReplace:
		n := len([]rune(c.text))
		for i := len(c.matches) - 1; i >= 0; i-- {
			start := c.matches[i].Start
			current := textbuf.NewRange(start, start+n)
			t.ReplaceDirect(current, c.originals[i])
		}
	}
	c.executed = false
	return nil
}

// reapplySavedRuns restores captured formats over their original, now
// valid again, ranges. Reapplying a format still present is a no-op.
func (c *Command) reapplySavedRuns(t Target) {
	for _, run := range c.savedRuns {
		for _, f := range run.Formats.Slice() {
			t.Formats().Apply(run.Range, f)
		}
	}
}
