package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text  string
		width int
		want  string
	}{
		"short text unchanged": {
			text:  "* Fixed a bug",
			width: 40,
			want:  "* Fixed a bug",
		},
		"zero width disables wrapping": {
			text:  "a b c d e f g",
			width: 0,
			want:  "a b c d e f g",
		},
		"plain paragraph": {
			text:  "the quick brown fox jumps over the lazy dog",
			width: 15,
			want:  "the quick brown\nfox jumps over\nthe lazy dog",
		},
		"bullet gets hanging indent": {
			text:  "* the quick brown fox jumps over the lazy dog",
			width: 20,
			want:  "* the quick brown\n  fox jumps over the\n  lazy dog",
		},
		"dash bullet with indentation": {
			text:  "  - alpha beta gamma delta",
			width: 14,
			want:  "  - alpha beta\n    gamma\n    delta",
		},
		"long word kept intact": {
			text:  "see https://example.com/a/very/long/path for details",
			width: 10,
			want:  "see\nhttps://example.com/a/very/long/path\nfor\ndetails",
		},
		"multiple lines wrapped separately": {
			text:  "* one two three\n* four five six",
			width: 9,
			want:  "* one two\n  three\n* four\n  five\n  six",
		},
		"line of exact width": {
			text:  "abcd efgh",
			width: 9,
			want:  "abcd efgh",
		},
		"space right after the limit": {
			text:  "abcd efgh ijkl",
			width: 9,
			want:  "abcd efgh\nijkl",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_NoLineExceedsWidthUnlessUnbreakable(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range strings.Split(Wrap(text, 30), "\n") {
		assert.LessOrEqual(t, len(line), 30, "line %q", line)
	}
}

func TestWrap_IndentWiderThanWidthTerminates(t *testing.T) {
	t.Parallel()

	got := Wrap("        * aa bb cc dd", 4)
	assert.Contains(t, got, "aa")
	assert.Contains(t, got, "dd")
}
