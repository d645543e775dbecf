package history

import "errors"

var (
	// ErrNothingToUndo indicates an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrNotExecuted indicates a command undone before it was executed.
	// The public API never produces this sequence; seeing it means an
	// internal consistency bug.
	ErrNotExecuted = errors.New("command has not been executed")
)
