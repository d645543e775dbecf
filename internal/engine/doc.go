// Package engine provides the Document aggregate: the single entry
// point tying together the text buffer, format store, selection, dirty
// tracker, and undo history.
//
// Every public mutator builds a command, executes it, and pushes it to
// history on success, so any edit made through the public API is
// undoable. The direct primitives (InsertDirect, DeleteDirect,
// ReplaceDirect) bypass history and exist for commands and the IME
// composition path; nothing else should call them.
//
// A Document is owned by one logical caller at a time. Operations are
// synchronous and run to completion; the embedder serializes
// concurrent access. Callbacks registered with OnChange and
// OnSelectionChange fire synchronously after a successful mutation; a
// panicking callback is recovered and the remaining callbacks still
// run.
package engine
