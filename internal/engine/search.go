package engine

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/richtext/internal/engine/history"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// Query describes a search over document content.
type Query struct {
	Pattern       string
	CaseSensitive bool
	Regex         bool
}

// Find returns the non-overlapping match ranges for q in ascending
// offset order. An empty pattern matches nothing. Regex patterns that
// fail to compile return an error.
func (d *Document) Find(q Query) ([]textbuf.Range, error) {
	if q.Pattern == "" {
		return nil, nil
	}
	if q.Regex {
		return d.findRegex(q)
	}
	return d.findLiteral(q), nil
}

func (d *Document) findRegex(q Query) ([]textbuf.Range, error) {
	pattern := q.Pattern
	if !q.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile search pattern: %w", err)
	}
	content := d.Content()
	spans := re.FindAllStringIndex(content, -1)
	if len(spans) == 0 {
		return nil, nil
	}
	// Regexp yields byte offsets; document addressing is rune based.
	out := make([]textbuf.Range, 0, len(spans))
	runeIdx, byteIdx := 0, 0
	advance := func(target int) int {
		for byteIdx < target {
			_, size := utf8.DecodeRuneInString(content[byteIdx:])
			byteIdx += size
			runeIdx++
		}
		return runeIdx
	}
	for _, span := range spans {
		start := advance(span[0])
		end := advance(span[1])
		if end > start {
			out = append(out, textbuf.NewRange(start, end))
		}
	}
	return out, nil
}

// findLiteral scans rune by rune so case folding never disturbs
// offsets the way byte-level lowercasing could.
func (d *Document) findLiteral(q Query) []textbuf.Range {
	hay := d.text.Runes()
	needle := []rune(q.Pattern)
	fold := func(r rune) rune {
		if q.CaseSensitive {
			return r
		}
		return unicode.ToLower(r)
	}
	var out []textbuf.Range
	for i := 0; i+len(needle) <= len(hay); {
		matched := true
		for j, nr := range needle {
			if fold(hay[i+j]) != fold(nr) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, textbuf.NewRange(i, i+len(needle)))
			i += len(needle)
		} else {
			i++
		}
	}
	return out
}

// FindReplace replaces every match of q with replacement in one
// undoable command and returns the number of matches replaced. Invalid
// replacement content is absorbed silently, matching insert.
func (d *Document) FindReplace(q Query, replacement string) (int, error) {
	if textbuf.ValidateContent(replacement) != nil {
		return 0, nil
	}
	matches, err := d.Find(q)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}
	if err := d.runCommand(history.NewFindReplace(matches, replacement)); err != nil {
		return 0, err
	}
	return len(matches), nil
}
