package changelog

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Load reads and parses the changelog file at path.
func Load(path string, border rune) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return ParseReader(f, border)
}

// Parse parses a changelog from a string, []byte, []string, iter.Seq[string]
// or io.Reader. Any other type fails with ErrInvalidSource.
func Parse(src any, border rune) (*Document, error) {
	switch s := src.(type) {
	case string:
		return ParseString(s, border)
	case []byte:
		return ParseString(string(s), border)
	case []string:
		return ParseLines(s, border)
	case iter.Seq[string]:
		var lines []string
		for line := range s {
			lines = append(lines, line)
		}
		return ParseLines(lines, border)
	case io.Reader:
		return ParseReader(s, border)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidSource, src)
	}
}

// ParseReader reads r to the end and parses the result. A nil reader,
// including a nil *os.File, fails with ErrInvalidSource.
func ParseReader(r io.Reader, border rune) (*Document, error) {
	switch f := r.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil reader", ErrInvalidSource)
	case *os.File:
		if f == nil {
			return nil, fmt.Errorf("%w: nil file", ErrInvalidSource)
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}
	return ParseString(string(data), border)
}

// ParseString parses a complete changelog text.
func ParseString(text string, border rune) (*Document, error) {
	return parseLines(splitLines(text), border)
}

// ParseLines parses a sequence of lines. Lines may or may not carry their
// line terminator; a missing one is added. An element holding several
// lines is split into them.
func ParseLines(lines []string, border rune) (*Document, error) {
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			normalized = append(normalized, "\n")
			continue
		}
		normalized = append(normalized, splitLines(line)...)
	}
	return parseLines(normalized, border)
}

// splitLines splits text into lines that each end with "\n".
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "\n") {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}

// parseLines partitions normalized lines into a preamble and entries. Each
// heading and its border are consumed together; every other line belongs
// to the open entry, or to the preamble before the first heading.
func parseLines(lines []string, border rune) (*Document, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w (got %d line(s))", ErrInvalidDocument, len(lines))
	}

	doc := &Document{border: border, newline: "\n"}
	if strings.HasSuffix(lines[0], "\r\n") {
		doc.newline = "\r\n"
	}
	var preamble strings.Builder
	var body strings.Builder
	var current *Entry

	finish := func() {
		if current == nil {
			return
		}
		current.Contents = trimBody(body.String())
		doc.Entries = append(doc.Entries, current)
		body.Reset()
	}

	for n := 0; n < len(lines); n++ {
		line := lines[n]
		if n+1 < len(lines) && IsHeading(line, lines[n+1], border) {
			finish()
			current = &Entry{
				Line:    n,
				Heading: strings.TrimRight(line, " \t\r\n"),
				Border:  border,
			}
			n++
			continue
		}

		if current == nil {
			preamble.WriteString(line)
		} else {
			body.WriteString(line)
		}
	}
	finish()

	doc.Preamble = preamble.String()
	return doc, nil
}

// trimBody removes leading blank lines and trailing whitespace. Indentation
// of the first non-blank line is kept.
func trimBody(s string) string {
	s = strings.TrimRight(s, " \t\r\n")
	for s != "" {
		line, rest, found := strings.Cut(s, "\n")
		if strings.TrimSpace(line) != "" || !found {
			break
		}
		s = rest
	}
	return s
}
