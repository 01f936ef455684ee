package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the heading of the first changelog entry",
	Long: `Replace the heading of the first changelog entry with the -m message.
Without -m, the heading is read from piped stdin or from an editor opened on
an empty file ($EDITOR, default vim). A trailing "()" in the heading is
replaced with today's date as "(YYYY-MM-DD)".`,
	Example: `  chag update -f CHANGELOG.rst -m '1.0.1'
  chag update -m '1.0.1 ()'
  chag update --border='='`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		heading, err := readMessage(cmd, "message")
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}

		entry, err := changelog.Update(s, appConfig.BorderRune(), heading)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Updated first changelog entry to %s\n", entry.Heading)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringP("message", "m", "", "Heading to apply to the first entry")
	rootCmd.AddCommand(updateCmd)
}
