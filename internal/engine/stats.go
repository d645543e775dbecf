package engine

// Stats is an informational snapshot of the document's memory and
// history usage. No behavioral contract attaches to these numbers.
type Stats struct {
	Characters      int
	Runs            int
	Blocks          int
	UndoDepth       int
	RedoDepth       int
	InternedStrings int
	EstimatedBytes  int
}

func (d *Document) Stats() Stats {
	fs := d.formats.Stats()
	return Stats{
		Characters:      d.text.Len(),
		Runs:            fs.Runs,
		Blocks:          fs.Blocks,
		UndoDepth:       d.hist.UndoDepth(),
		RedoDepth:       d.hist.RedoDepth(),
		InternedStrings: fs.InternedStrings,
		EstimatedBytes:  fs.EstimatedBytes + d.text.Len()*4,
	}
}
