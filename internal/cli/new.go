package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: `Add an empty "Next Release" entry at the top of the changelog`,
	Long: `Add an empty "Next Release" entry above the first changelog entry. An
existing "Next Release" entry is not detected, so running this twice adds
two entries.`,
	Example: `  chag new
  chag new -f CHANGELOG.rst --border='='`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		entry, err := changelog.New(s, appConfig.BorderRune())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Added %q entry to %s\n", entry.Heading, s.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
