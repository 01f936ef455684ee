package cli

import (
	"fmt"

	"github.com/ariel-frischer/chag/internal/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for chag",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), build.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
