// Package errors provides the categorized errors chag reports at the
// command line.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Runtime errors occur during command execution.
	Runtime ErrorCategory = iota
	// Argument errors are caused by invalid command arguments, including
	// unknown versions.
	Argument
	// Configuration errors are caused by invalid configuration files or values.
	Configuration
	// Prerequisite errors occur when a required file, repository or clean
	// working tree is missing.
	Prerequisite
	// Document errors are caused by changelogs that cannot be used.
	Document
	// Release errors occur when the version-control tool fails to tag.
	Release
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Document:
		return "Changelog Error"
	case Release:
		return "Release Error"
	default:
		return "Runtime Error"
	}
}

// CLIError is an error with a category for display.
type CLIError struct {
	// Category is the type of error (Argument, Configuration, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates a new argument error.
func NewArgumentError(message string) *CLIError {
	return &CLIError{Category: Argument, Message: message}
}

// NewPrerequisiteError creates a new prerequisite error.
func NewPrerequisiteError(message string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Err: err}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %v", message, err),
		Err:      err,
	}
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
