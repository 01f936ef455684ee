package cli

import (
	clierrors "github.com/ariel-frischer/chag/internal/errors"
)

// Exit codes for the chag CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or an unknown version
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a missing changelog, repository or
	// clean working tree
	ExitMissingPrerequisite = 4
)

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch classify(err).Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Prerequisite:
		return ExitMissingPrerequisite
	default:
		return ExitFailure
	}
}
