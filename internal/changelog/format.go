package changelog

import (
	"strings"
	"unicode/utf8"
)

// listMarkers start list items whose continuation lines get a hanging indent.
var listMarkers = []string{"* ", "- ", "+ "}

// Wrap word-wraps every line of text to width columns. Continuation lines
// keep the line's indentation, plus a hanging indent under list items.
// Words longer than width are left intact.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line, breaking at the last space that fits.
func wrapLine(line string, maxWidth int) string {
	if utf8.RuneCountInString(line) <= maxWidth {
		return line
	}

	indent := continuationIndent(line)
	var lines []string
	remaining := line

	for utf8.RuneCountInString(remaining) > maxWidth {
		limit := byteOffset(remaining, maxWidth)
		// A space right after the limit still lets the line fit.
		breakPoint := strings.LastIndexByte(remaining[:limit+1], ' ')
		if breakPoint <= len(indent) {
			// No usable space within the limit: break after the long word.
			start := max(limit, len(indent)+1)
			if start >= len(remaining) {
				break
			}
			next := strings.IndexByte(remaining[start:], ' ')
			if next < 0 {
				break
			}
			breakPoint = start + next
		}

		lines = append(lines, strings.TrimRight(remaining[:breakPoint], " "))
		remaining = indent + strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if strings.TrimSpace(remaining) != "" {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n")
}

// continuationIndent returns the indentation for wrapped lines of line.
func continuationIndent(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]
	for _, marker := range listMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return indent + strings.Repeat(" ", len(marker))
		}
	}
	return indent
}

// byteOffset returns the byte offset of the n-th rune of s.
func byteOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
