package cli

import (
	"strings"

	"github.com/ariel-frischer/chag/internal/editor"
	"github.com/spf13/cobra"
)

// newPrompter builds the interactive input source. Tests replace it.
var newPrompter = func(cmd *cobra.Command) *editor.Prompter {
	p := editor.New(appConfig.Editor)
	p.Stdin = cmd.InOrStdin()
	return p
}

// readMessage returns the named flag value when it was given, otherwise text
// from piped stdin or the editor. Blank messages are rejected.
func readMessage(cmd *cobra.Command, flag string) (string, error) {
	if cmd.Flags().Changed(flag) {
		msg, err := cmd.Flags().GetString(flag)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(msg) == "" {
			return "", editor.ErrEmptyMessage
		}
		return msg, nil
	}
	log.Debugf("no --%s given, reading message interactively", flag)
	return newPrompter(cmd).Read(cmd.Context())
}
