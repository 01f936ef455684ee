package changelog

import (
	"io"
	"strings"
	"time"
)

// Render returns the document as text. Each entry is written as heading,
// border, blank line, contents; entries are separated by one blank line and
// the result ends with exactly one newline. Rendering an unmodified parse of
// a document in this layout reproduces it byte for byte.
//
// Lines end with the terminator of the parsed text, "\n" or "\r\n".
// Headings ending in "()" are rendered with today's date.
func (d *Document) Render() string {
	return d.render(nowFunc())
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

func (d *Document) render(now time.Time) string {
	nl := d.lineEnding()

	var b strings.Builder
	b.WriteString(d.Preamble)
	for i, e := range d.Entries {
		if i > 0 {
			b.WriteString(nl)
		}
		e.renderTo(&b, d.Border(), nl, now)
	}

	out := strings.TrimRight(b.String(), "\r\n")
	if out == "" {
		return ""
	}
	return out + nl
}

// renderTo writes heading, border, blank line and contents, ending every
// line with nl.
func (e *Entry) renderTo(b *strings.Builder, fallback rune, nl string, now time.Time) {
	border := e.Border
	if border == 0 {
		border = fallback
	}
	heading := ExpandDate(e.Heading, now)

	b.WriteString(heading)
	b.WriteString(nl)
	b.WriteString(borderFor(heading, border))
	b.WriteString(nl + nl)
	b.WriteString(trimBody(e.Contents))
	b.WriteString(nl)
}
