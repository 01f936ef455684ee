// Package cli implements the chag command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/ariel-frischer/chag/internal/build"
	"github.com/ariel-frischer/chag/internal/config"
	clierrors "github.com/ariel-frischer/chag/internal/errors"
	"github.com/ariel-frischer/chag/internal/git"
	"github.com/ariel-frischer/chag/internal/logging"
	"github.com/ariel-frischer/chag/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	borderFlag string
	fileFlag   string
	debugFlag  bool

	// appConfig is loaded before every command runs.
	appConfig *config.Configuration
	log       = logging.New("cli")
)

var rootCmd = &cobra.Command{
	Use:   "chag",
	Short: "Parse changelogs and tag releases from them",
	Long: `chag reads and edits changelog files made of underlined version headings
and creates annotated git tags from their entries.

A changelog entry is a heading line followed by a border line of the same
length, then the entry body:

  0.2.0 (2014-08-11)
  ------------------

  * Added tagging`,
	Example: `  chag list
  chag contents -t 0.1.0
  chag update -m '1.0.0 ()'
  chag append -m '* Fixed #12'
  chag tag --v-prefix`,
	Version:           build.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: .chag.yml)")
	rootCmd.PersistentFlags().StringVar(&borderFlag, "border", "", "Repeated border character (default: -)")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Path to changelog (default: CHANGELOG, CHANGELOG.md or CHANGELOG.rst)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug logs to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.Wrap(err, clierrors.Argument)
	})
}

// Execute runs the root command and prints any error as a single line.
func Execute() error {
	err := rootCmd.Execute()
	printError(rootCmd.ErrOrStderr(), err)
	return err
}

// setup loads configuration and applies global flags.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading config")
	}

	if cmd.Flags().Changed("border") {
		if utf8.RuneCountInString(borderFlag) != 1 {
			return clierrors.NewArgumentError(fmt.Sprintf("--border must be a single character, got %q", borderFlag))
		}
		cfg.Border = borderFlag
	}
	if cmd.Flags().Changed("file") {
		cfg.File = fileFlag
	}
	if debugFlag {
		cfg.LogLevel = "debug"
	}

	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}
	git.SetDebugLogger(logging.Debugf(logging.New("git")))

	appConfig = cfg
	log.Debugf("config: border=%q file=%q github=%q", cfg.Border, cfg.File, cfg.GitHub)
	return nil
}

// changelogPath returns the changelog file to operate on.
func changelogPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	path, err := store.Locate(appConfig.File, wd)
	if err != nil {
		return "", err
	}
	log.Debugf("using changelog %s", path)
	return path, nil
}

// openStore returns the store for the changelog file.
func openStore() (*store.File, error) {
	path, err := changelogPath()
	if err != nil {
		return nil, err
	}
	return store.NewFile(path), nil
}

// openRepo opens the git repository containing the changelog.
func openRepo(changelog string) (*git.Repository, error) {
	abs, err := filepath.Abs(changelog)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", changelog, err)
	}
	return git.Open(filepath.Dir(abs))
}
