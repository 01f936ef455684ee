package changelog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store that records writes.
type memStore struct {
	text     string
	writes   int
	readErr  error
	writeErr error
}

func (s *memStore) Read() (string, error) {
	return s.text, s.readErr
}

func (s *memStore) Write(text string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.text = text
	s.writes++
	return nil
}

func TestUpdate(t *testing.T) {
	pinNow(t, time.Date(2015, 1, 2, 9, 0, 0, 0, time.Local))

	tests := map[string]struct {
		heading     string
		wantHeading string
		wantLines   []string
	}{
		"plain heading": {
			heading:     "Foo!",
			wantHeading: "Foo!",
			wantLines:   []string{"Foo!", "----"},
		},
		"date placeholder": {
			heading:     "2.0.0 ()",
			wantHeading: "2.0.0 (2015-01-02)",
			wantLines:   []string{"2.0.0 (2015-01-02)", "------------------"},
		},
		"trailing newline from editor": {
			heading:     "2.0.0\n",
			wantHeading: "2.0.0",
			wantLines:   []string{"2.0.0", "-----"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := &memStore{text: canonicalChangelog}

			entry, err := Update(store, '-', tt.heading)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeading, entry.Heading)
			assert.Equal(t, 1, store.writes)

			lines := strings.Split(store.text, "\n")
			assert.Equal(t, tt.wantLines, lines[4:6])
			assert.Equal(t, "Some contents", lines[7])

			doc, err := ParseString(store.text, '-')
			require.NoError(t, err)
			assert.Equal(t, []string{entry.Version(), "0.2.0", "0.1.0"}, doc.Versions())
		})
	}
}

func TestUpdate_MultiLineHeadingIsRejected(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"embedded newline":     "1.0.0\nextra",
		"embedded CRLF":        "1.0.0\r\nextra",
		"carriage return":      "1.0.0\rextra",
		"blank line then text": "1.0.0\n\nextra\n",
	}

	for name, heading := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := &memStore{text: canonicalChangelog}
			_, err := Update(store, '-', heading)
			assert.ErrorIs(t, err, ErrInvalidHeading)
			assert.Equal(t, 0, store.writes)

			doc, err := ParseString(store.text, '-')
			require.NoError(t, err)
			assert.Equal(t, []string{"Next", "0.2.0", "0.1.0"}, doc.Versions())
		})
	}
}

func TestMutations_KeepCRLF(t *testing.T) {
	pinNow(t, time.Date(2015, 1, 2, 9, 0, 0, 0, time.Local))

	crlf := strings.ReplaceAll(canonicalChangelog, "\n", "\r\n")

	store := &memStore{text: crlf}
	_, err := Update(store, '-', "1.0.0 ()")
	require.NoError(t, err)
	_, err = Append(store, '-', "* one\n* two")
	require.NoError(t, err)
	_, err = New(store, '-')
	require.NoError(t, err)

	assert.NotContains(t, strings.ReplaceAll(store.text, "\r\n", ""), "\n", "every line ends with CRLF")

	doc, err := ParseString(store.text, '-')
	require.NoError(t, err)
	assert.Equal(t, []string{"Next", "1.0.0", "0.2.0", "0.1.0"}, doc.Versions())
	assert.Equal(t, "Some contents\r\n* one\r\n* two", doc.Entries[1].Contents)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	store := &memStore{text: canonicalChangelog}

	entry, err := Append(store, '-', "Hello!")
	require.NoError(t, err)
	assert.Equal(t, "Some contents\nHello!", entry.Contents)

	lines := strings.Split(store.text, "\n")
	assert.Equal(t, "Hello!", lines[8])
	assert.Equal(t, "", lines[9])
	assert.Equal(t, "0.2.0 (2014-08-11)", lines[10])
}

func TestAppend_MinimalExample(t *testing.T) {
	t.Parallel()

	doc, err := ParseString("Next Release\n------------\n\nSome contents\n\n0.1.0\n-----\n\n* Test\n", '-')
	require.NoError(t, err)

	entry, err := doc.AppendLatest("Hello!")
	require.NoError(t, err)
	assert.Equal(t, "Some contents\nHello!", entry.Contents)
	assert.Same(t, doc.Entries[0], entry)
}

func TestAppend_ToEmptyBody(t *testing.T) {
	t.Parallel()

	store := &memStore{text: "1.0.0\n-----\n"}

	_, err := Append(store, '-', "* first")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n-----\n\n* first\n", store.text)
}

func TestNew(t *testing.T) {
	t.Parallel()

	store := &memStore{text: canonicalChangelog}

	entry, err := New(store, '-')
	require.NoError(t, err)
	assert.Equal(t, PlaceholderHeading, entry.Heading)
	assert.Equal(t, '-', entry.Border)

	lines := strings.SplitAfter(store.text, "\n")
	assert.Equal(t, "Next Release\n", lines[4])
	assert.Equal(t, "------------\n", lines[5])
	assert.Equal(t, "\n", lines[6])
	assert.Equal(t, "\n", lines[7])
	assert.Equal(t, "\n", lines[8])
	assert.Equal(t, "Next Release\n", lines[9])

	// A second call is not deduplicated.
	_, err = New(store, '-')
	require.NoError(t, err)

	doc, err := ParseString(store.text, '-')
	require.NoError(t, err)
	assert.Equal(t, []string{"Next", "Next", "Next", "0.2.0", "0.1.0"}, doc.Versions())
	assert.Equal(t, 2, store.writes)
}

func TestMutations_NoWriteOnFailure(t *testing.T) {
	t.Parallel()

	mutations := map[string]func(Store) error{
		"update": func(s Store) error { _, err := Update(s, '-', "1.0.0"); return err },
		"append": func(s Store) error { _, err := Append(s, '-', "text"); return err },
	}

	for name, mutate := range mutations {
		t.Run(name+" on empty document", func(t *testing.T) {
			t.Parallel()

			store := &memStore{text: "no entries\nhere\n"}
			err := mutate(store)
			assert.ErrorIs(t, err, ErrEmptyDocument)
			assert.Equal(t, 0, store.writes)
			assert.Equal(t, "no entries\nhere\n", store.text)
		})

		t.Run(name+" on invalid document", func(t *testing.T) {
			t.Parallel()

			store := &memStore{text: "x"}
			err := mutate(store)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Equal(t, 0, store.writes)
		})

		t.Run(name+" on read failure", func(t *testing.T) {
			t.Parallel()

			store := &memStore{readErr: errors.New("permission denied")}
			err := mutate(store)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "reading changelog")
			assert.Equal(t, 0, store.writes)
		})
	}
}

func TestMutations_WriteFailureIsReported(t *testing.T) {
	t.Parallel()

	store := &memStore{text: canonicalChangelog, writeErr: errors.New("disk full")}

	_, err := New(store, '-')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing changelog")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, canonicalChangelog, store.text)
}

func TestInsertPlaceholder_OnEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseString("=========\nCHANGELOG\n=========\n", '-')
	require.NoError(t, err)
	require.Empty(t, doc.Entries)

	doc.InsertPlaceholder()
	assert.Equal(t, "=========\nCHANGELOG\n=========\nNext Release\n------------\n", doc.Render())
}
