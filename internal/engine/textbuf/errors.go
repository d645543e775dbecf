package textbuf

import "errors"

var (
	// ErrInvalidPosition indicates an offset beyond the current length.
	ErrInvalidPosition = errors.New("position exceeds document length")

	// ErrInvalidRange indicates a range whose normalized end exceeds the
	// current length.
	ErrInvalidRange = errors.New("range exceeds document length")

	// ErrContentInvalid indicates text containing a null byte or a
	// control character other than newline, carriage return, or tab.
	ErrContentInvalid = errors.New("content contains disallowed characters")

	// ErrSizeLimit indicates an insert that would push the document past
	// the maximum size.
	ErrSizeLimit = errors.New("document size limit exceeded")
)
