package changelog

import (
	"io"
	"iter"
)

// Scan yields the entries of the changelog read from r one at a time. It
// is a query-only view over ParseReader; a parse failure is yielded once
// with a nil entry.
func Scan(r io.Reader, border rune) iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		doc, err := ParseReader(r, border)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, e := range doc.Entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}
