package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/changelog"
	"github.com/spf13/cobra"
)

var contentsTag string

var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Print the body of a changelog entry",
	Long: `Print the contents of the entry for the -t version, or of the first
entry when no version is given.`,
	Example: `  chag contents
  chag contents -t 0.1.0
  chag contents -f CHANGELOG -t latest
  chag contents --border='='`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := loadEntry(contentsTag)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), entry.Contents)
		return nil
	},
}

func init() {
	contentsCmd.Flags().StringVarP(&contentsTag, "tag", "t", changelog.Latest, "Version to retrieve")
	rootCmd.AddCommand(contentsCmd)
}

// loadDocument parses the configured changelog.
func loadDocument() (*changelog.Document, error) {
	path, err := changelogPath()
	if err != nil {
		return nil, err
	}
	return changelog.Load(path, appConfig.BorderRune())
}

// loadEntry returns the entry for version from the configured changelog.
func loadEntry(version string) (*changelog.Entry, error) {
	doc, err := loadDocument()
	if err != nil {
		return nil, err
	}
	return doc.GetVersion(version)
}
