package changelog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSource is returned when the input is neither text nor a line stream.
	ErrInvalidSource = errors.New("invalid changelog source")

	// ErrInvalidDocument is returned when the input has fewer than two lines.
	ErrInvalidDocument = errors.New("invalid changelog: expected at least a heading and a border line")

	// ErrEmptyDocument is returned when an operation needs an entry and there are none.
	ErrEmptyDocument = errors.New("changelog has no entries")

	// ErrInvalidHeading is returned when a new heading spans more than one line.
	ErrInvalidHeading = errors.New("heading must be a single line")
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %s not found. Must be a valid version: %s",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// IsVersionNotFound returns true if the error is a VersionNotFoundError.
func IsVersionNotFound(err error) bool {
	var nf *VersionNotFoundError
	return errors.As(err, &nf)
}
