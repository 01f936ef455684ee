package cli

import (
	"errors"
	"io"
	"os"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/ariel-frischer/chag/internal/config"
	"github.com/ariel-frischer/chag/internal/editor"
	clierrors "github.com/ariel-frischer/chag/internal/errors"
	"github.com/ariel-frischer/chag/internal/git"
	"github.com/ariel-frischer/chag/internal/github"
	"github.com/ariel-frischer/chag/internal/release"
	"github.com/ariel-frischer/chag/internal/store"
)

// classify maps err to a categorised CLI error.
func classify(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		notFound   *changelog.VersionNotFoundError
		validation *config.ValidationError
		tagErr     *release.TagError
	)

	switch {
	case errors.As(err, &notFound):
		return clierrors.Wrap(err, clierrors.Argument)
	case errors.Is(err, changelog.ErrEmptyDocument),
		errors.Is(err, changelog.ErrInvalidDocument),
		errors.Is(err, changelog.ErrInvalidSource):
		return clierrors.Wrap(err, clierrors.Document)
	case errors.Is(err, store.ErrNotFound):
		cliErr := clierrors.NewPrerequisiteError("Changelog file not provided and not found")
		cliErr.Err = err
		return cliErr
	case errors.Is(err, release.ErrDirtyWorkingTree),
		errors.Is(err, git.ErrNotRepository),
		errors.Is(err, os.ErrNotExist):
		return clierrors.Wrap(err, clierrors.Prerequisite)
	case errors.Is(err, release.ErrGuardedTag), errors.As(err, &tagErr):
		return clierrors.Wrap(err, clierrors.Release)
	case errors.As(err, &validation):
		return clierrors.Wrap(err, clierrors.Configuration)
	case errors.Is(err, editor.ErrEmptyMessage),
		errors.Is(err, github.ErrInvalidRepo),
		errors.Is(err, changelog.ErrInvalidHeading):
		return clierrors.Wrap(err, clierrors.Argument)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}

// printError writes err to w as a single line.
func printError(w io.Writer, err error) {
	if err == nil {
		return
	}
	clierrors.FprintError(w, classify(err))
}
