package codec

import (
	"fmt"
	"html"
	"strings"

	"github.com/dshills/richtext/internal/engine"
	"github.com/dshills/richtext/internal/engine/format"
	"github.com/dshills/richtext/internal/engine/textbuf"
)

// MarshalHTML renders the document as an HTML fragment. Text is always
// entity-escaped; list blocks emit one list per block entry.
func MarshalHTML(d *engine.Document) string {
	blocks := d.Blocks()
	length := d.Length()
	var sb strings.Builder

	for i, b := range blocks {
		end := length
		if i+1 < len(blocks) {
			end = blocks[i+1].Start
		}
		inner := renderInlineHTML(d, b.Start, end)
		inner = strings.Trim(inner, "\n")
		switch b.Type.Kind {
		case format.BlockHeading:
			fmt.Fprintf(&sb, "<h%d>%s</h%d>\n", b.Type.Level, inner, b.Type.Level)
		case format.BlockBulletList:
			sb.WriteString("<ul>\n")
			for _, item := range strings.Split(inner, "\n") {
				sb.WriteString("<li>" + item + "</li>\n")
			}
			sb.WriteString("</ul>\n")
		case format.BlockNumberedList:
			sb.WriteString("<ol>\n")
			for _, item := range strings.Split(inner, "\n") {
				sb.WriteString("<li>" + item + "</li>\n")
			}
			sb.WriteString("</ol>\n")
		case format.BlockQuote:
			sb.WriteString("<blockquote>" + inner + "</blockquote>\n")
		case format.BlockCodeBlock:
			sb.WriteString("<pre><code>" + inner + "</code></pre>\n")
		default:
			sb.WriteString("<p>" + inner + "</p>\n")
		}
	}
	return sb.String()
}

func renderInlineHTML(d *engine.Document, start, end textbuf.Offset) string {
	var sb strings.Builder
	pos := start
	window := textbuf.NewRange(start, end)
	for _, run := range d.Runs() {
		seg, ok := run.Range.Intersect(window)
		if !ok {
			continue
		}
		if seg.Start > pos {
			sb.WriteString(html.EscapeString(d.TextIn(textbuf.NewRange(pos, seg.Start))))
		}
		sb.WriteString(wrapInlineHTML(d.TextIn(seg), run.Formats))
		pos = seg.End
	}
	if pos < end {
		sb.WriteString(html.EscapeString(d.TextIn(textbuf.NewRange(pos, end))))
	}
	return sb.String()
}

func wrapInlineHTML(text string, set format.Set) string {
	out := html.EscapeString(text)
	for _, f := range set.Slice() {
		switch f.Kind {
		case format.KindBold:
			out = "<strong>" + out + "</strong>"
		case format.KindItalic:
			out = "<em>" + out + "</em>"
		case format.KindUnderline:
			out = "<u>" + out + "</u>"
		case format.KindStrikethrough:
			out = "<s>" + out + "</s>"
		case format.KindCode:
			out = "<code>" + out + "</code>"
		case format.KindLink:
			out = fmt.Sprintf("<a href=%q>%s</a>", html.EscapeString(f.Value), out)
		case format.KindTextColor:
			out = fmt.Sprintf("<span style=\"color:%s\">%s</span>", html.EscapeString(f.Value), out)
		case format.KindBackgroundColor:
			out = fmt.Sprintf("<span style=\"background-color:%s\">%s</span>", html.EscapeString(f.Value), out)
		}
	}
	return out
}

// StripTags reduces an HTML fragment to its text content: tags are
// removed, entities decoded. The plain-text side of the sanitization
// boundary for pasted HTML.
func StripTags(fragment string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return html.UnescapeString(sb.String())
}
