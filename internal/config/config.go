// Package config loads chag settings using koanf. Sources are merged with
// priority: environment variables (CHAG_*) > project config (.chag.yml, or
// legacy .chag.json) > user config ($XDG_CONFIG_HOME/chag/config.yml) >
// defaults. Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as config keys.
const EnvPrefix = "CHAG_"

// Configuration holds chag settings.
type Configuration struct {
	// Border is the character headings are underlined with.
	Border string `koanf:"border" validate:"len=1"`
	// File is the changelog path. Empty means CHANGELOG, CHANGELOG.md or
	// CHANGELOG.rst in the working directory.
	File string `koanf:"file"`
	// GitHub is the "owner/repo" used to autolink appended text.
	GitHub string `koanf:"github" validate:"omitempty,contains=/"`
	// VPrefix prefixes tag names with "v".
	VPrefix bool `koanf:"v_prefix"`
	// Sign creates GPG-signed tags.
	Sign bool `koanf:"sign"`
	// Editor overrides $EDITOR for interactive input.
	Editor string `koanf:"editor"`
	// WrapWidth is the column limit for `append --wrap`.
	WrapWidth int `koanf:"wrap_width" validate:"min=20"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// BorderRune returns the configured border as a rune.
func (c *Configuration) BorderRune() rune {
	for _, r := range c.Border {
		return r
	}
	return '-'
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectDir is searched for .chag.yml and .chag.json (default: working directory)
	ProjectDir string
	// ProjectConfigPath names an explicit project config file, replacing the
	// lookup in ProjectDir. Files ending in .json are parsed as JSON.
	ProjectConfigPath string
	// UserConfigPath overrides the user config path
	UserConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources,
// looking for project config in the working directory. A non-empty path
// names the project config file explicitly.
func Load(path string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: path})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	loadDefaults(k)

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath, _ = UserConfigPath()
	}
	if fileExists(userPath) {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts, warningWriter); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the explicit config file if one is given.
// Otherwise it loads .chag.yml from the project directory, falling back to
// legacy .chag.json with a warning.
func loadProjectConfig(k *koanf.Koanf, opts LoadOptions, warningWriter io.Writer) error {
	if opts.ProjectConfigPath != "" {
		if !fileExists(opts.ProjectConfigPath) {
			return fmt.Errorf("config file %s: %w", opts.ProjectConfigPath, os.ErrNotExist)
		}
		if strings.EqualFold(filepath.Ext(opts.ProjectConfigPath), ".json") {
			return loadJSONConfig(k, opts.ProjectConfigPath, "project")
		}
		return loadYAMLConfig(k, opts.ProjectConfigPath, "project")
	}

	yamlPath := filepath.Join(opts.ProjectDir, ProjectConfigPath())
	legacyPath := filepath.Join(opts.ProjectDir, LegacyProjectConfigPath())

	switch {
	case fileExists(yamlPath):
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return err
		}
		if fileExists(legacyPath) && !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyPath, yamlPath)
		}
	case fileExists(legacyPath):
		if err := loadJSONConfig(k, legacyPath, "legacy project"); err != nil {
			return err
		}
		if !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s; convert it to %s\n", legacyPath, yamlPath)
		}
	}
	return nil
}

// loadJSONConfig loads a JSON config file
func loadJSONConfig(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// fileExists returns true if path names an existing file
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTransform converts environment variable names to config keys
// Example: CHAG_WRAP_WIDTH -> wrap_width
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
