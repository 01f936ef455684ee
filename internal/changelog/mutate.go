package changelog

import (
	"fmt"
	"strings"
)

// Store is the backing storage of a changelog. Write replaces the whole
// content and must either fully succeed or leave the old content in place.
type Store interface {
	Read() (string, error)
	Write(text string) error
}

// SetLatestHeading replaces the heading of the first entry. A trailing "()"
// is expanded to today's date. Headings spanning several lines fail with
// ErrInvalidHeading.
func (d *Document) SetLatestHeading(heading string) (*Entry, error) {
	heading = strings.TrimRight(heading, " \t\r\n")
	if strings.ContainsAny(heading, "\r\n") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHeading, heading)
	}

	latest, err := d.Latest()
	if err != nil {
		return nil, err
	}
	latest.Heading = ExpandDate(heading, nowFunc())
	return latest, nil
}

// AppendLatest appends a newline and text to the first entry's contents.
// Line breaks in text are converted to the document's line ending.
func (d *Document) AppendLatest(text string) (*Entry, error) {
	latest, err := d.Latest()
	if err != nil {
		return nil, err
	}
	nl := d.lineEnding()
	if nl != "\n" {
		text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\n", nl)
	}
	latest.Contents = latest.Contents + nl + text
	return latest, nil
}

// InsertPlaceholder adds an empty "Next Release" entry at the top. It does
// not check for an existing placeholder.
func (d *Document) InsertPlaceholder() *Entry {
	e := NewEntry(PlaceholderHeading, "", d.Border())
	// Position 0 is always in range.
	_ = d.InsertEntry(0, e)
	return e
}

// Update replaces the heading of the latest entry stored in s.
func Update(s Store, border rune, heading string) (*Entry, error) {
	return modify(s, border, func(d *Document) (*Entry, error) {
		return d.SetLatestHeading(heading)
	})
}

// Append appends text to the body of the latest entry stored in s.
func Append(s Store, border rune, text string) (*Entry, error) {
	return modify(s, border, func(d *Document) (*Entry, error) {
		return d.AppendLatest(text)
	})
}

// New inserts a "Next Release" placeholder entry at the top of s.
func New(s Store, border rune) (*Entry, error) {
	return modify(s, border, func(d *Document) (*Entry, error) {
		return d.InsertPlaceholder(), nil
	})
}

// modify loads the document, applies fn and writes the full rendering back.
// Nothing is written when loading or fn fails.
func modify(s Store, border rune, fn func(*Document) (*Entry, error)) (*Entry, error) {
	text, err := s.Read()
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}

	doc, err := ParseString(text, border)
	if err != nil {
		return nil, err
	}

	entry, err := fn(doc)
	if err != nil {
		return nil, err
	}

	if err := s.Write(doc.Render()); err != nil {
		return nil, fmt.Errorf("writing changelog: %w", err)
	}
	return entry, nil
}
