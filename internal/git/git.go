// Package git provides the version-control operations chag needs for a
// release: working-tree cleanliness, commit lookup and annotated tags. It
// uses the go-git library for core operations, falling back to the git CLI
// only for signed tags, which go-git cannot create without an in-process
// OpenPGP key.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// ErrNotRepository is returned when no git repository contains the path.
var ErrNotRepository = errors.New("not a git repository")

// ErrTagExists is returned when creating a tag that exists without force.
var ErrTagExists = git.ErrTagExists

// TagOptions controls annotated tag creation.
type TagOptions struct {
	// Force replaces an existing tag of the same name.
	Force bool
	// Sign creates a GPG-signed tag using the git CLI.
	Sign bool
}

// Repository is a git repository opened from a path inside its worktree.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the git repository containing path. If path is empty, the
// current working directory is used. Parent directories are searched for
// the .git directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] repository opened at %s", root)
	return &Repository{repo: repo, root: root}, nil
}

// Root returns the absolute path of the worktree root.
func (r *Repository) Root() string {
	return r.root
}

// ChangedFiles returns tracked files with staged or unstaged changes,
// sorted by path. Untracked files are ignored.
func (r *Repository) ChangedFiles() ([]string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("getting worktree status: %w", err)
	}

	var files []string
	for path, s := range status {
		if s.Staging == git.Untracked && s.Worktree == git.Untracked {
			continue
		}
		if s.Staging != git.Unmodified || s.Worktree != git.Unmodified {
			files = append(files, path)
		}
	}
	sort.Strings(files)

	logDebug("[git] ChangedFiles: %d changed", len(files))
	return files, nil
}

// IsClean returns true if there are no staged or unstaged changes to
// tracked files.
func (r *Repository) IsClean() (bool, error) {
	files, err := r.ChangedFiles()
	if err != nil {
		return false, err
	}
	return len(files) == 0, nil
}

// CommitExists returns true if sha, full or abbreviated, names a commit in
// the repository.
func (r *Repository) CommitExists(sha string) bool {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(sha))
	if err != nil {
		logDebug("[git] CommitExists(%s): %v", sha, err)
		return false
	}
	_, err = r.repo.CommitObject(*hash)
	logDebug("[git] CommitExists(%s): %v", sha, err == nil)
	return err == nil
}

// CreateTag creates an annotated tag named name on HEAD with message as
// its annotation.
func (r *Repository) CreateTag(name, message string, opts TagOptions) error {
	if opts.Sign {
		return r.createTagCLI(name, message, opts)
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD reference: %w", err)
	}

	if _, err := r.repo.Tag(name); err == nil {
		if !opts.Force {
			return fmt.Errorf("tag '%s' already exists: %w", name, ErrTagExists)
		}
		if err := r.repo.DeleteTag(name); err != nil {
			return fmt.Errorf("replacing tag '%s': %w", name, err)
		}
		logDebug("[git] CreateTag: deleted existing tag %s", name)
	} else if !errors.Is(err, git.ErrTagNotFound) {
		return fmt.Errorf("checking tag existence: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  r.tagger(),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag '%s': %w", name, err)
	}

	logDebug("[git] CreateTag: tagged %s at %s", name, head.Hash())
	return nil
}

// createTagCLI runs `git tag -a -F -` with the message on stdin.
func (r *Repository) createTagCLI(name, message string, opts TagOptions) error {
	args := []string{"tag", "-a", "-F", "-"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.Sign {
		args = append(args, "--sign")
	}
	args = append(args, name)

	logDebug("[git] running git %s", strings.Join(args, " "))

	cmd := exec.Command("git", args...)
	cmd.Dir = r.root
	cmd.Stdin = strings.NewReader(message)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), msg, err)
		}
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// tagger builds the tagger identity from the repository and global git
// config, falling back to a generic identity.
func (r *Repository) tagger() *object.Signature {
	sig := &object.Signature{Name: "chag", Email: "chag@localhost", When: time.Now()}

	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		logDebug("[git] reading git config: %v", err)
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
