// Package editor collects free text from the user, either from piped stdin
// or by opening an external editor on a scratch file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// DefaultEditor is used when neither the configured editor nor $EDITOR is set.
const DefaultEditor = "vim"

// ErrEmptyMessage is returned when the collected text is blank.
var ErrEmptyMessage = errors.New("message is empty")

// Prompter reads a message from stdin or an external editor.
type Prompter struct {
	// Editor is the editor command line. Empty means $EDITOR, then DefaultEditor.
	Editor string
	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// IsTerminal reports whether Stdin is interactive. Defaults to checking os.Stdin.
	IsTerminal func() bool
}

// New returns a Prompter bound to the process streams.
func New(editorCmd string) *Prompter {
	return &Prompter{Editor: editorCmd}
}

// Command returns the editor command line to run.
func (p *Prompter) Command() string {
	if p.Editor != "" {
		return p.Editor
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return DefaultEditor
}

// Read returns the user's message. Piped stdin is read in full; otherwise
// the editor is opened on an empty scratch file. One trailing newline is
// removed from the result.
func (p *Prompter) Read(ctx context.Context) (string, error) {
	var (
		text string
		err  error
	)
	if p.interactive() {
		text, err = p.edit(ctx)
	} else {
		text, err = p.readStdin()
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}
	return text, nil
}

func (p *Prompter) interactive() bool {
	if p.IsTerminal != nil {
		return p.IsTerminal()
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (p *Prompter) readStdin() (string, error) {
	data, err := io.ReadAll(p.stdin())
	if err != nil {
		return "", fmt.Errorf("reading message from stdin: %w", err)
	}
	return string(data), nil
}

// edit runs the editor on a scratch file and returns what was saved.
func (p *Prompter) edit(ctx context.Context) (string, error) {
	tmp, err := os.CreateTemp("", "chag-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing scratch file: %w", err)
	}

	fields := strings.Fields(p.Command())
	if len(fields) == 0 {
		return "", fmt.Errorf("editor command is empty")
	}
	args := append(fields[1:], path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = p.stdin()
	cmd.Stdout = p.stdout()
	cmd.Stderr = p.stderr()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %q: %w", fields[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading scratch file: %w", err)
	}
	return string(data), nil
}

func (p *Prompter) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *Prompter) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Prompter) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}
