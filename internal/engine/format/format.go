package format

import "sort"

// Kind identifies an inline format independent of its payload.
type Kind uint8

const (
	KindBold Kind = iota
	KindItalic
	KindUnderline
	KindStrikethrough
	KindCode
	KindLink
	KindTextColor
	KindBackgroundColor
)

var kindNames = map[Kind]string{
	KindBold:            "bold",
	KindItalic:          "italic",
	KindUnderline:       "underline",
	KindStrikethrough:   "strikethrough",
	KindCode:            "code",
	KindLink:            "link",
	KindTextColor:       "text_color",
	KindBackgroundColor: "background_color",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromString maps a codec name back to a Kind. The second result is
// false for unknown names.
func KindFromString(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Format is one inline format. Value carries the payload for link,
// text_color, and background_color and is empty otherwise. Equality is
// value based, so Format is usable as a map key.
type Format struct {
	Kind  Kind
	Value string
}

func Bold() Format          { return Format{Kind: KindBold} }
func Italic() Format        { return Format{Kind: KindItalic} }
func Underline() Format     { return Format{Kind: KindUnderline} }
func Strikethrough() Format { return Format{Kind: KindStrikethrough} }
func Code() Format          { return Format{Kind: KindCode} }

func NewLink(url string) Format {
	return Format{Kind: KindLink, Value: url}
}

func NewTextColor(color string) Format {
	return Format{Kind: KindTextColor, Value: color}
}

func NewBackgroundColor(color string) Format {
	return Format{Kind: KindBackgroundColor, Value: color}
}

// Set is an unordered collection of formats with at most one entry per
// exact Format value. Two formats of the same kind with different
// payloads can coexist in a set only transiently; apply replaces by kind.
type Set map[Format]struct{}

func NewSet(formats ...Format) Set {
	s := make(Set, len(formats))
	for _, f := range formats {
		s.Add(f)
	}
	return s
}

// Add inserts f, replacing any existing format of the same kind.
func (s Set) Add(f Format) {
	s.RemoveKind(f.Kind)
	s[f] = struct{}{}
}

// Has reports whether the exact format (kind and payload) is present.
func (s Set) Has(f Format) bool {
	_, ok := s[f]
	return ok
}

// HasKind reports whether any format of the given kind is present.
func (s Set) HasKind(k Kind) bool {
	for f := range s {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// RemoveKind strips every format of the given kind.
func (s Set) RemoveKind(k Kind) {
	for f := range s {
		if f.Kind == k {
			delete(s, f)
		}
	}
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

// Equal reports value equality of the two sets.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for f := range s {
		if _, ok := other[f]; !ok {
			return false
		}
	}
	return true
}

// Slice returns the formats in a deterministic order for codecs and
// tests: by kind, then payload.
func (s Set) Slice() []Format {
	out := make([]Format, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Value < out[j].Value
	})
	return out
}
