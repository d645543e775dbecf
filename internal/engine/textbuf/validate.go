package textbuf

// MaxDocumentSize is the hard cap on document length in runes.
const MaxDocumentSize = 10_000_000

// ValidateContent rejects text that must never enter a document: null
// bytes and control characters other than newline, carriage return, and
// tab. The document layer turns this error into a silent no-op so typing
// pipelines are not interrupted by transient bad input.
func ValidateContent(text string) error {
	for _, r := range text {
		if r == 0 {
			return ErrContentInvalid
		}
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return ErrContentInvalid
		}
		if r == 0x7f {
			return ErrContentInvalid
		}
	}
	return nil
}

// ValidateSize rejects an insert of addition runes when the resulting
// length would exceed MaxDocumentSize.
func ValidateSize(current, addition, limit int) error {
	if limit <= 0 {
		limit = MaxDocumentSize
	}
	if current+addition > limit {
		return ErrSizeLimit
	}
	return nil
}
