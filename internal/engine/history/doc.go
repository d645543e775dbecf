// Package history implements undoable edit commands and the bounded
// two-stack undo/redo history.
//
// A Command is a tagged variant: one struct whose Kind selects the
// operation, carrying both the parameters and the state captured at
// execute time to reverse the edit. Captured state is proportional to
// the affected span (deleted text, overlapping format runs, a block
// snapshot for block changes), never the whole document. Commands
// mutate the document through the Target interface, which exposes the
// direct, non-undoable primitives only the document aggregate
// implements.
package history
