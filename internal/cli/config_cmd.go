package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/chag/internal/config"
	"github.com/spf13/cobra"
)

var (
	configInitUser  bool
	configInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chag configuration",
	// Config commands must work even when the existing config is invalid.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file with the default settings",
	Long: `Write a config file listing every setting with its default value.

By default the file is .chag.yml in the current directory. With --user it
is the user config file instead, which applies to every project.

An existing file is left unchanged unless --force is given.`,
	Example: `  chag config init
  chag config init --user
  chag config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := configInitPath(configInitUser)
		if err != nil {
			return err
		}

		if _, err := os.Stat(target); err == nil && !configInitForce {
			fmt.Fprintf(cmd.ErrOrStderr(), "Config already exists at %s (use --force to overwrite)\n", target)
			return nil
		}

		if err := writeDefaultConfig(target); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote default config to %s\n", target)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitUser, "user", false, "Write the user config file instead of .chag.yml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// configInitPath returns the user or project config path.
func configInitPath(user bool) (string, error) {
	if !user {
		return config.ProjectConfigPath(), nil
	}
	path, err := config.UserConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get user config path: %w", err)
	}
	return path, nil
}

// writeDefaultConfig writes the default configuration to path.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
