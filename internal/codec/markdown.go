package codec

import (
	"regexp"
	"strings"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// The Markdown codec covers a deliberate subset: ATX headings, bullet
// and numbered lists, block quotes, fenced code blocks, and the inline
// markers for bold, italic, strikethrough, code, and links. Underline
// and colors have no Markdown form and are dropped on export.

// MarshalMarkdown renders the document as Markdown.
func MarshalMarkdown(d *engine.Document) string {
	blocks := d.Blocks()
	length := d.Length()
	var sb strings.Builder

	for i, b := range blocks {
		end := length
		if i+1 < len(blocks) {
			end = blocks[i+1].Start
		}
		text := renderInline(d, b.Start, end)
		text = strings.Trim(text, "\n")
		if i > 0 {
			sb.WriteString("\n")
		}
		switch b.Type.Kind {
		case format.BlockHeading:
			sb.WriteString(strings.Repeat("#", b.Type.Level) + " " + text + "\n")
		case format.BlockBulletList:
			for _, line := range strings.Split(text, "\n") {
				sb.WriteString("- " + line + "\n")
			}
		case format.BlockNumberedList:
			for _, line := range strings.Split(text, "\n") {
				sb.WriteString("1. " + line + "\n")
			}
		case format.BlockQuote:
			for _, line := range strings.Split(text, "\n") {
				sb.WriteString("> " + line + "\n")
			}
		case format.BlockCodeBlock:
			sb.WriteString("```\n" + text + "\n```\n")
		default:
			sb.WriteString(text + "\n")
		}
	}
	return sb.String()
}

// renderInline emits the text in [start, end) with Markdown markers
// around formatted segments.
func renderInline(d *engine.Document, start, end textbuf.Offset) string {
	var sb strings.Builder
	pos := start
	window := textbuf.NewRange(start, end)
	for _, run := range d.Runs() {
		seg, ok := run.Range.Intersect(window)
		if !ok {
			continue
		}
		if seg.Start > pos {
			sb.WriteString(d.TextIn(textbuf.NewRange(pos, seg.Start)))
		}
		sb.WriteString(wrapInline(d.TextIn(seg), run.Formats))
		pos = seg.End
	}
	if pos < end {
		sb.WriteString(d.TextIn(textbuf.NewRange(pos, end)))
	}
	return sb.String()
}

func wrapInline(text string, set format.Set) string {
	if set.HasKind(format.KindCode) {
		text = "`" + text + "`"
	}
	if set.HasKind(format.KindStrikethrough) {
		text = "~~" + text + "~~"
	}
	if set.HasKind(format.KindItalic) {
		text = "*" + text + "*"
	}
	if set.HasKind(format.KindBold) {
		text = "**" + text + "**"
	}
	for _, f := range set.Slice() {
		if f.Kind == format.KindLink {
			text = "[" + text + "](" + f.Value + ")"
			break
		}
	}
	return text
}

var numberedItemRe = regexp.MustCompile(`^\d+\. `)

// UnmarshalMarkdown parses the subset back into a document.
func UnmarshalMarkdown(src string, opts ...engine.Option) (*engine.Document, error) {
	var (
		text      strings.Builder
		runs      []format.Run
		blocks    []format.Block
		offset    int
		inCode    bool
		codeStart int
		lastType  = format.BlockType{Kind: format.BlockKind(255)} // sentinel: force first entry
	)

	appendBlock := func(start int, t format.BlockType) {
		if t == lastType {
			return
		}
		blocks = append(blocks, format.Block{Start: start, Type: t})
		lastType = t
	}
	emit := func(s string) {
		text.WriteString(s)
		offset += len([]rune(s))
	}

	first := true
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCode {
				inCode = false
			} else {
				inCode = true
				codeStart = offset
				appendBlock(codeStart, format.CodeBlock())
			}
			continue
		}
		if line == "" && !inCode {
			// Blank lines separate blocks; they carry no text.
			continue
		}
		if !first {
			emit("\n")
		}
		first = false
		if inCode {
			emit(line)
			continue
		}

		rest := line
		blockType := format.Paragraph()
		switch {
		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			if level <= 6 && level < len(line) && line[level] == ' ' {
				blockType = format.Heading(level)
				rest = line[level+1:]
			}
		case strings.HasPrefix(line, "- "):
			blockType = format.BulletList()
			rest = line[2:]
		case numberedItemRe.MatchString(line):
			blockType = format.NumberedList()
			rest = line[numberedItemRe.FindStringIndex(line)[1]:]
		case strings.HasPrefix(line, "> "):
			blockType = format.BlockQuoteType()
			rest = line[2:]
		}

		lineStart := offset
		appendBlock(lineStart, blockType)
		plain, lineRuns := parseInline(rest)
		for _, run := range lineRuns {
			run.Range = run.Range.Shift(lineStart)
			runs = append(runs, run)
		}
		emit(plain)
	}

	return engine.FromParts(text.String(), runs, blocks, opts...)
}

// parseInline scans one line for flat (non-nested) inline markers and
// returns the plain text plus the runs relative to the line start.
func parseInline(s string) (string, []format.Run) {
	type marker struct {
		token string
		f     format.Format
	}
	markers := []marker{
		{"**", format.Bold()},
		{"~~", format.Strikethrough()},
		{"`", format.Code()},
		{"*", format.Italic()},
	}

	rs := []rune(s)
	var out []rune
	var runs []format.Run

	indexFrom := func(from int, token []rune) int {
		for i := from; i+len(token) <= len(rs); i++ {
			match := true
			for j, tr := range token {
				if rs[i+j] != tr {
					match = false
					break
				}
			}
			if match {
				return i
			}
		}
		return -1
	}

	i := 0
scan:
	for i < len(rs) {
		if rs[i] == '[' {
			if closeBracket := indexFrom(i+1, []rune("](")); closeBracket >= 0 {
				if closeParen := indexFrom(closeBracket+2, []rune(")")); closeParen >= 0 {
					label := rs[i+1 : closeBracket]
					url := string(rs[closeBracket+2 : closeParen])
					start := len(out)
					out = append(out, label...)
					runs = append(runs, format.Run{
						Range:   textbuf.NewRange(start, len(out)),
						Formats: format.NewSet(format.NewLink(url)),
					})
					i = closeParen + 1
					continue
				}
			}
		}
		for _, m := range markers {
			token := []rune(m.token)
			if indexFrom(i, token) != i {
				continue
			}
			end := indexFrom(i+len(token), token)
			if end < 0 || end == i+len(token) {
				continue
			}
			inner := rs[i+len(token) : end]
			start := len(out)
			out = append(out, inner...)
			runs = append(runs, format.Run{
				Range:   textbuf.NewRange(start, len(out)),
				Formats: format.NewSet(m.f),
			})
			i = end + len(token)
			continue scan
		}
		out = append(out, rs[i])
		i++
	}
	return string(out), runs
}
