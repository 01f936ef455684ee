package changelog

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Latest is the lookup sentinel that resolves to the first entry.
const Latest = "latest"

// PlaceholderHeading is the heading given to entries created by InsertPlaceholder.
const PlaceholderHeading = "Next Release"

// DefaultBorder is the border character used when none is configured.
const DefaultBorder = '-'

// datePlaceholder is replaced with today's date when an entry is rendered.
const datePlaceholder = "()"

// nowFunc returns the current time. Tests override it to pin the render date.
var nowFunc = time.Now

// Entry is one version section of a changelog: heading, border and body.
type Entry struct {
	// Line is the zero-based line where the heading was found. It is not
	// updated when other entries are inserted.
	Line int
	// Heading is the full heading text, including any trailing date.
	Heading string
	// Contents is the body between the border and the next heading with
	// surrounding blank lines removed.
	Contents string
	// Border is the character this entry is underlined with.
	Border rune
}

// NewEntry creates an entry that has not been read from a document.
func NewEntry(heading, contents string, border rune) *Entry {
	return &Entry{Line: -1, Heading: heading, Contents: contents, Border: border}
}

// Version returns the heading text before the first space, or the whole
// heading when it has no space.
func (e *Entry) Version() string {
	version, _, _ := strings.Cut(e.Heading, " ")
	return version
}

// IsPlaceholder returns true if the entry is an unreleased "Next Release" entry.
func (e *Entry) IsPlaceholder() bool {
	return e.Version() == "Next"
}

// entryJSON is the wire shape of an entry in `chag get --json`.
type entryJSON struct {
	Line     int    `json:"line"`
	Heading  string `json:"heading"`
	Version  string `json:"version"`
	Contents string `json:"contents"`
}

// MarshalJSON encodes the entry including its derived version.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Line:     e.Line,
		Heading:  e.Heading,
		Version:  e.Version(),
		Contents: e.Contents,
	})
}

// ExpandDate replaces a trailing "()" in heading with today's date as
// "(YYYY-MM-DD)". Headings without the placeholder are returned unchanged.
func ExpandDate(heading string, now time.Time) string {
	if !strings.HasSuffix(heading, datePlaceholder) {
		return heading
	}
	return strings.TrimSuffix(heading, datePlaceholder) + "(" + now.Format("2006-01-02") + ")"
}
