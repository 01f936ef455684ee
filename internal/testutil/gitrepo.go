// Package testutil provides helpers for chag tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Signature is the author of commits made by CommitAll.
func Signature() *object.Signature {
	return &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// WriteFiles writes files, keyed by slash-separated relative path, under dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// NewRepo creates a git repository in a temp directory with files
// committed, and returns the directory and the commit hash.
func NewRepo(t *testing.T, files map[string]string) (string, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	WriteFiles(t, dir, files)
	return dir, CommitAll(t, dir, "Initial commit")
}

// CommitAll stages every change in the repository at dir and commits it.
func CommitAll(t *testing.T, dir, message string) plumbing.Hash {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, worktree.AddWithOptions(&git.AddOptions{All: true}))
	hash, err := worktree.Commit(message, &git.CommitOptions{Author: Signature()})
	require.NoError(t, err)
	return hash
}
