package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/richtext/internal/engine/textbuf"
)

type options struct {
	historyCapacity int
	maxSize         int
	logger          *zap.Logger
}

func defaultOptions() options {
	return options{
		historyCapacity: 0, // history package default
		maxSize:         textbuf.MaxDocumentSize,
		logger:          zap.NewNop(),
	}
}

// Option configures a Document at construction.
type Option func(*options)

// WithHistoryCapacity bounds the undo stack. Non-positive values keep
// the default of 100 entries.
func WithHistoryCapacity(n int) Option {
	return func(o *options) { o.historyCapacity = n }
}

// WithMaxSize caps the document length in runes. Non-positive values
// keep the default limit.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithLogger attaches a structured logger. Mutations log at Debug; the
// default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
