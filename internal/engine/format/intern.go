package format

// Interner de-duplicates payload strings (link URLs, colors) so that
// repeated values share one backing string. Purely a memory
// optimization; callers observe ordinary value semantics.
type Interner struct {
	entries map[string]string
}

func NewInterner() *Interner {
	return &Interner{entries: make(map[string]string)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	if s == "" {
		return s
	}
	if canonical, ok := in.entries[s]; ok {
		return canonical
	}
	in.entries[s] = s
	return s
}

// Count returns the number of distinct interned strings.
func (in *Interner) Count() int {
	return len(in.entries)
}

// EstimatedBytes returns the approximate heap size of the interned
// strings, informational only.
func (in *Interner) EstimatedBytes() int {
	total := 0
	for s := range in.entries {
		total += len(s)
	}
	return total
}
