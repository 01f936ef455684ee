package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	getTag  string
	getJSON bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the version of a changelog entry",
	Long: `Print the version of the entry for the -t version, or of the first entry
when no version is given.

With --json, print the entry as an object with these keys:
  line      Zero-based line of the entry heading
  heading   The full heading line
  version   The version from the heading (e.g. 0.1.0)
  contents  The entry body`,
	Example: `  chag get
  chag get -f CHANGELOG -t latest
  chag get --border='='
  chag get --json -t 0.0.1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := loadEntry(getTag)
		if err != nil {
			return err
		}

		if !getJSON {
			fmt.Fprintln(cmd.OutOrStdout(), entry.Version())
			return nil
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encoding entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getTag, "tag", "t", changelog.Latest, "Version to retrieve")
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Print the entry as JSON")
	rootCmd.AddCommand(getCmd)
}
