package changelog

import (
	"fmt"
	"iter"
	"slices"
)

// Document is a parsed changelog: free text before the first heading
// followed by entries in document order.
type Document struct {
	// Preamble is the raw text before the first heading.
	Preamble string
	// Entries are in document order, newest first by convention. Duplicate
	// versions are allowed; lookups return the first match.
	Entries []*Entry

	border  rune
	newline string
}

// NewDocument creates an empty document that underlines headings with border.
func NewDocument(preamble string, border rune) *Document {
	return &Document{Preamble: preamble, border: border}
}

// Border returns the border character the document was parsed with.
func (d *Document) Border() rune {
	if d.border == 0 {
		return DefaultBorder
	}
	return d.border
}

// lineEnding returns the line terminator of the parsed text, "\n" or "\r\n".
func (d *Document) lineEnding() string {
	if d.newline == "" {
		return "\n"
	}
	return d.newline
}

// GetVersion returns the first entry whose version equals version. The
// sentinel Latest returns the first entry regardless of its version.
// Returns ErrEmptyDocument if there are no entries and VersionNotFoundError
// if no entry matches.
func (d *Document) GetVersion(version string) (*Entry, error) {
	if len(d.Entries) == 0 {
		return nil, ErrEmptyDocument
	}
	if version == Latest {
		return d.Entries[0], nil
	}

	for _, e := range d.Entries {
		if e.Version() == version {
			return e, nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: d.Versions(),
	}
}

// Latest returns the first entry, or ErrEmptyDocument.
func (d *Document) Latest() (*Entry, error) {
	return d.GetVersion(Latest)
}

// Versions returns the version of every entry in document order.
func (d *Document) Versions() []string {
	versions := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		versions[i] = e.Version()
	}
	return versions
}

// All iterates over the entries with their index.
func (d *Document) All() iter.Seq2[int, *Entry] {
	return slices.All(d.Entries)
}

// InsertEntry inserts e at index pos, shifting later entries down. Line
// numbers of existing entries are left untouched.
func (d *Document) InsertEntry(pos int, e *Entry) error {
	if pos < 0 || pos > len(d.Entries) {
		return fmt.Errorf("insert position %d out of range [0, %d]", pos, len(d.Entries))
	}
	if e.Border == 0 {
		e.Border = d.Border()
	}
	d.Entries = slices.Insert(d.Entries, pos, e)
	return nil
}
