// Package release turns the latest changelog entry into an annotated
// version-control tag.
package release

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/ariel-frischer/chag/internal/git"
)

// ErrGuardedTag is returned when the latest entry is an unreleased
// "Next Release" placeholder.
var ErrGuardedTag = errors.New(`not tagging a "Next Release" entry`)

// ErrDirtyWorkingTree is returned when tracked files have uncommitted changes.
var ErrDirtyWorkingTree = errors.New("your repository is not clean: commit or stash changes to tracked files first")

// TagError reports a failure of the version-control tool while tagging.
type TagError struct {
	Name string
	Err  error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("creating tag %s: %v", e.Name, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// VCS is the version-control capability needed to tag a release.
type VCS interface {
	IsClean() (bool, error)
	CreateTag(name, message string, opts git.TagOptions) error
}

// Options controls how the tag is named and created.
type Options struct {
	// VPrefix prepends "v" to the version.
	VPrefix bool
	Force   bool
	Sign    bool
}

// Plan is the tag that Tag will create.
type Plan struct {
	Name       string
	Annotation string
	Entry      *changelog.Entry
}

// Prepare selects the latest entry of doc and derives the tag name and
// annotation from it. Placeholder entries are rejected.
func Prepare(doc *changelog.Document, opts Options) (*Plan, error) {
	entry, err := doc.Latest()
	if err != nil {
		return nil, err
	}
	if entry.IsPlaceholder() {
		return nil, ErrGuardedTag
	}

	name := entry.Version()
	if opts.VPrefix {
		name = "v" + name
	}
	return &Plan{Name: name, Annotation: entry.Contents, Entry: entry}, nil
}

// Tag creates an annotated tag for the latest entry of doc. Progress is
// written to w. The working tree must be clean.
func Tag(vcs VCS, doc *changelog.Document, opts Options, w io.Writer) (*Plan, error) {
	plan, err := Prepare(doc, opts)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "Ensuring git repository is clean")
	clean, err := vcs.IsClean()
	if err != nil {
		return nil, fmt.Errorf("checking working tree: %w", err)
	}
	if !clean {
		return nil, ErrDirtyWorkingTree
	}

	fmt.Fprintln(w, "Using the following annotation:")
	fmt.Fprintln(w, "  "+strings.ReplaceAll(plan.Annotation, "\n", "\n  "))

	err = vcs.CreateTag(plan.Name, plan.Annotation, git.TagOptions{Force: opts.Force, Sign: opts.Sign})
	if err != nil {
		return nil, &TagError{Name: plan.Name, Err: err}
	}

	fmt.Fprintf(w, "[SUCCESS] Tagged %s\n", plan.Name)
	return plan, nil
}
