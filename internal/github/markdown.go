// Package github rewrites issue references and commit hashes in free text
// into GitHub links.
package github

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRepo is returned for a repository identifier not shaped like
// "owner/repo".
var ErrInvalidRepo = errors.New("github repository must be in the form owner/repo")

// referencePattern matches "#123" (group 1) or a whole hex word of 7 to
// 40 characters (group 2).
var referencePattern = regexp.MustCompile(`#(\d+)|\b([A-Fa-f0-9]{7,40})\b`)

// CommitResolver reports whether a hash names a commit in the current
// repository.
type CommitResolver interface {
	CommitExists(sha string) bool
}

// CommitResolverFunc adapts a function to CommitResolver.
type CommitResolverFunc func(sha string) bool

// CommitExists calls f(sha).
func (f CommitResolverFunc) CommitExists(sha string) bool { return f(sha) }

// Linker performs a subset of GitHub flavored markdown autolinking.
type Linker struct {
	repo     string
	resolver CommitResolver
}

// NewLinker returns a Linker for the "owner/repo" identifier repo. A nil
// resolver leaves every hash unlinked.
func NewLinker(repo string, resolver CommitResolver) (*Linker, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.ContainsAny(repo, " \t\n") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepo, repo)
	}
	return &Linker{repo: repo, resolver: resolver}, nil
}

// IssueURL returns the URL of issue number n.
func (l *Linker) IssueURL(n string) string {
	return "https://github.com/" + l.repo + "/issues/" + n
}

// CommitURL returns the URL of commit sha.
func (l *Linker) CommitURL(sha string) string {
	return "https://github.com/" + l.repo + "/commit/" + sha
}

// Link replaces "#<digits>" with issue URLs and hashes of existing commits
// with commit URLs. Hashes that do not resolve are left unchanged. Text is
// scanned once, so inserted URLs are never rewritten again.
func (l *Linker) Link(text string) string {
	return referencePattern.ReplaceAllStringFunc(text, func(match string) string {
		if issue, ok := strings.CutPrefix(match, "#"); ok {
			return l.IssueURL(issue)
		}
		if l.resolver != nil && l.resolver.CommitExists(match) {
			return l.CommitURL(match)
		}
		return match
	})
}

// Markdown links text for repo using resolver.
func Markdown(repo, text string, resolver CommitResolver) (string, error) {
	l, err := NewLinker(repo, resolver)
	if err != nil {
		return "", err
	}
	return l.Link(text), nil
}
