package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/ariel-frischer/chag/internal/github"
	"github.com/spf13/cobra"
)

var (
	appendGitHub string
	appendWrap   bool
)

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append text to the first changelog entry",
	Long: `Append the -m text to the body of the first changelog entry. Without -m,
the text is read from piped stdin or from an editor opened on an empty file
($EDITOR, default vim).

With --github OWNER/REPO (or the github config key), issue references like
#12 become issue links and hashes of commits in the current repository
become commit links.`,
	Example: `  chag append -m '* Updated this file'
  chag append --github foo/bar -m '* Fixed #2 in abeffff'
  chag append --wrap -m '* A long line that is wrapped to the configured width'
  chag append`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readMessage(cmd, "message")
		if err != nil {
			return err
		}

		path, err := changelogPath()
		if err != nil {
			return err
		}

		repo := appConfig.GitHub
		if cmd.Flags().Changed("github") {
			repo = appendGitHub
		}
		if repo != "" {
			text, err = linkGitHub(repo, text, path)
			if err != nil {
				return err
			}
		}

		// Links are inserted first so wrapping sees the final line lengths.
		if appendWrap {
			text = changelog.Wrap(text, appConfig.WrapWidth)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		if _, err := changelog.Append(s, appConfig.BorderRune(), text); err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Appended to the first changelog entry:")
		fmt.Fprintln(cmd.ErrOrStderr(), text)
		return nil
	},
}

func init() {
	appendCmd.Flags().StringP("message", "m", "", "Text to append")
	appendCmd.Flags().StringVar(&appendGitHub, "github", "", `GitHub "owner/repo" used to link issues and commits`)
	appendCmd.Flags().BoolVar(&appendWrap, "wrap", false, "Word-wrap the text to the wrap_width config value")
	rootCmd.AddCommand(appendCmd)
}

// linkGitHub links issue and commit references in text. Commits are
// looked up in the repository containing the changelog; outside a
// repository only issues are linked.
func linkGitHub(repo, text, changelogFile string) (string, error) {
	var resolver github.CommitResolver
	if r, err := openRepo(changelogFile); err != nil {
		log.Debugf("commit links disabled: %v", err)
	} else {
		resolver = r
	}
	return github.Markdown(repo, text, resolver)
}
