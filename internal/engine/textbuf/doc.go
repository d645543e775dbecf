// Package textbuf provides the character storage for a document: a gap
// buffer over runes plus the Offset and Range value types every other
// engine component addresses text with.
//
// Offsets are rune offsets, not byte offsets. A Range may be constructed
// backward (Start > End); storage operations normalize before use. The
// buffer keeps a contiguous unused gap and moves it to the edit point
// before each mutation, so sequential edits at a stable cursor are
// amortized O(1) and a random edit costs the distance the gap travels.
//
// The buffer is not safe for concurrent use. A document is owned by one
// logical caller at a time and the embedder serializes access.
package textbuf
