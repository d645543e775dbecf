package engine

import (
	"github.com/dshills/richtext/internal/engine/history"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Sentinel errors re-exported so callers match against one package.
var (
	ErrInvalidPosition = textbuf.ErrInvalidPosition
	ErrInvalidRange    = textbuf.ErrInvalidRange
	ErrNothingToUndo   = history.ErrNothingToUndo
	ErrNothingToRedo   = history.ErrNothingToRedo
)
