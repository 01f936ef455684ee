package cli

import (
	"github.com/ariel-frischer/chag/internal/release"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Create an annotated git tag from the first changelog entry",
	Long: `Create an annotated git tag from the first changelog entry. The tag is
named after the version in the entry heading and annotated with the entry
contents. The working tree must not have uncommitted changes to tracked
files, and "Next Release" entries are never tagged.`,
	Example: `  chag tag -f /path/to/CHANGELOG.md
  chag tag --v-prefix
  chag tag --sign
  chag tag --force
  chag tag --debug`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := release.Options{
			VPrefix: flagOrConfig(cmd, "v-prefix", appConfig.VPrefix),
			Sign:    flagOrConfig(cmd, "sign", appConfig.Sign),
		}
		opts.Force, _ = cmd.Flags().GetBool("force")

		path, err := changelogPath()
		if err != nil {
			return err
		}
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		// Reject placeholders before touching the repository.
		if _, err := release.Prepare(doc, opts); err != nil {
			return err
		}

		repo, err := openRepo(path)
		if err != nil {
			return err
		}

		_, err = release.Tag(repo, doc, opts, cmd.ErrOrStderr())
		return err
	},
}

func init() {
	tagCmd.Flags().Bool("v-prefix", false, `Prefix the tag name with "v"`)
	tagCmd.Flags().Bool("sign", false, "Create a GPG-signed tag")
	tagCmd.Flags().Bool("force", false, "Replace an existing tag with the same name")
	rootCmd.AddCommand(tagCmd)
}

// flagOrConfig returns the bool flag value when it was given on the
// command line, otherwise the configured value.
func flagOrConfig(cmd *cobra.Command, name string, configured bool) bool {
	if !cmd.Flags().Changed(name) {
		return configured
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}
