package changelog

import (
	"strings"
	"unicode/utf8"
)

// IsBorderLine returns true if line, without its line terminator, is a
// non-empty run of border.
func IsBorderLine(line string, border rune) bool {
	line = trimEOL(line)
	if line == "" {
		return false
	}
	for _, r := range line {
		if r != border {
			return false
		}
	}
	return true
}

// IsHeading returns true if next is a border line exactly as long as line.
// Borders one character shorter or longer do not count.
func IsHeading(line, next string, border rune) bool {
	if !IsBorderLine(next, border) {
		return false
	}
	return displayLen(strings.TrimRight(line, " \t\r\n")) == displayLen(trimEOL(next))
}

// borderFor returns a border line matching the length of heading.
func borderFor(heading string, border rune) string {
	return strings.Repeat(string(border), displayLen(heading))
}

func displayLen(s string) int {
	return utf8.RuneCountInString(s)
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
