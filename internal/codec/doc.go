// Package codec converts documents to and from external formats: a
// JSON interchange form, a Markdown subset, and HTML export. Codecs are
// boundary collaborators: they consume the engine's public API and the
// FromParts constructor and hold no document invariants of their own.
package codec
