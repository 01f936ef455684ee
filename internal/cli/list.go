package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"entries"},
	Short:   "List the versions in a changelog",
	Example: `  chag list -f CHANGELOG
  chag entries --border='='`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := changelogPath()
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening changelog file: %w", err)
		}
		defer f.Close()

		for entry, err := range changelog.Scan(f, appConfig.BorderRune()) {
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Version())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
