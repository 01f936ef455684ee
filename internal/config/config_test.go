package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config at an empty directory and clears CHAG_*
// variables for the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	for _, key := range []string{"BORDER", "FILE", "GITHUB", "V_PREFIX", "SIGN", "EDITOR", "WRAP_WIDTH", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+key, "")
		os.Unsetenv(EnvPrefix + key)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOptions(LoadOptions{ProjectDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, &Configuration{
		Border:    "-",
		WrapWidth: 79,
		LogLevel:  "warn",
	}, cfg)
	assert.Equal(t, '-', cfg.BorderRune())
}

func TestLoad_Priority(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()

	writeFile(t, filepath.Join(home, "chag", "config.yml"), "border: \"=\"\ngithub: user/repo\nwrap_width: 60\n")
	writeFile(t, filepath.Join(project, ".chag.yml"), "github: team/project\nv_prefix: true\n")
	t.Setenv("CHAG_WRAP_WIDTH", "100")

	cfg, err := LoadWithOptions(LoadOptions{ProjectDir: project})
	require.NoError(t, err)

	assert.Equal(t, "=", cfg.Border, "user config overrides defaults")
	assert.Equal(t, "team/project", cfg.GitHub, "project config overrides user config")
	assert.True(t, cfg.VPrefix)
	assert.Equal(t, 100, cfg.WrapWidth, "environment overrides files")
	assert.Equal(t, '=', cfg.BorderRune())
}

func TestLoad_LegacyJSON(t *testing.T) {
	isolate(t)

	tests := map[string]struct {
		files       map[string]string
		wantBorder  string
		wantWarning string
	}{
		"json only": {
			files:       map[string]string{".chag.json": `{"border": "~"}`},
			wantBorder:  "~",
			wantWarning: "deprecated JSON config",
		},
		"yaml wins over json": {
			files: map[string]string{
				".chag.yml":  "border: \"*\"\n",
				".chag.json": `{"border": "~"}`,
			},
			wantBorder:  "*",
			wantWarning: "ignored",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			project := t.TempDir()
			for file, content := range tt.files {
				writeFile(t, filepath.Join(project, file), content)
			}

			var warnings bytes.Buffer
			cfg, err := LoadWithOptions(LoadOptions{ProjectDir: project, WarningWriter: &warnings})
			require.NoError(t, err)

			assert.Equal(t, tt.wantBorder, cfg.Border)
			assert.Contains(t, warnings.String(), tt.wantWarning)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yml")
	writeFile(t, yamlPath, "editor: nano\n")
	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)

	jsonPath := filepath.Join(dir, "custom.json")
	writeFile(t, jsonPath, `{"sign": true}`)
	cfg, err = Load(jsonPath)
	require.NoError(t, err)
	assert.True(t, cfg.Sign)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	tests := map[string]struct {
		content   string
		wantField string
		wantMsg   string
	}{
		"border too long": {
			content:   "border: \"--\"\n",
			wantField: "border",
			wantMsg:   "exactly 1",
		},
		"github without slash": {
			content:   "github: project\n",
			wantField: "github",
			wantMsg:   "owner/repo",
		},
		"wrap width too small": {
			content:   "wrap_width: 10\n",
			wantField: "wrap_width",
			wantMsg:   "at least 20",
		},
		"unknown log level": {
			content:   "log_level: verbose\n",
			wantField: "log_level",
			wantMsg:   "must be one of",
		},
		"yaml syntax": {
			content: "border: [\n",
			wantMsg: "validating YAML syntax",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			project := t.TempDir()
			writeFile(t, filepath.Join(project, ".chag.yml"), tt.content)

			_, err := LoadWithOptions(LoadOptions{ProjectDir: project})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			if tt.wantField != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}

func TestValidateYAMLSyntaxFromBytes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data    string
		wantErr bool
	}{
		"empty":        {data: "  \n"},
		"valid":        {data: "border: \"-\"\n"},
		"mixed nodes":  {data: "border: x\n- item\n", wantErr: true},
		"unclosed seq": {data: "a: [1, 2\n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateYAMLSyntaxFromBytes([]byte(tt.data), ".chag.yml")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, ".chag.yml", verr.FilePath)
		})
	}
}

func TestConfigKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wrap_width", configKey("WrapWidth"))
	assert.Equal(t, "log_level", configKey("LogLevel"))
	assert.Equal(t, "github", configKey("GitHub"))
	assert.Equal(t, "v_prefix", configKey("VPrefix"))
	assert.Equal(t, "border", configKey("Border"))
}

func TestGetDefaultConfigTemplate(t *testing.T) {
	t.Parallel()

	tmpl := GetDefaultConfigTemplate()
	for key := range GetDefaults() {
		assert.Contains(t, tmpl, key+":")
	}
	require.NoError(t, ValidateYAMLSyntaxFromBytes([]byte(tmpl), "template"))
}
