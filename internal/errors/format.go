package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats err as a single line, coloured when the terminal
// supports it.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	if color.NoColor {
		return FormatErrorPlain(err)
	}
	message := flatten(err.Message)
	return fmt.Sprintf("%s [%s]: %s\n", errorLabel("Error"), categoryFmt(err.Category.String()), errorMsg(message))
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error [%s]: %s\n", err.Category, flatten(err.Message))
}

func flatten(message string) string {
	return strings.ReplaceAll(strings.TrimSpace(message), "\n", " ")
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
