// Package format owns the formatting state of a document: a set of
// non-overlapping inline format runs over the rune offset space and a
// sorted partition of block entries.
//
// Runs never overlap, and adjacent runs with identical format sets are
// merged eagerly after every mutation. Block entries are sorted by start
// offset and an entry always exists at offset 0; a block's end is
// implicitly the next entry's start or the document end. Apply and
// remove split existing runs at the target boundaries so no run ever
// straddles them.
//
// Format equality is value based. Removal matches by kind only, so
// removing a link strips any link regardless of URL. Payload strings
// (link URLs, colors) are interned to share storage across runs; this
// never affects observed equality.
package format
