package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ReadWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CHANGELOG")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	f := NewFile(path)
	text, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "old\n", text)

	require.NoError(t, f.Write("new\ncontent\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\ncontent\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "permissions are preserved")
}

func TestFile_WriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, f.Write("a\n"))
	require.NoError(t, f.Write("b\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CHANGELOG.md", entries[0].Name())
}

func TestFile_WriteFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "missing-dir", "CHANGELOG"))

	err := f.Write("text\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
}

func TestFile_ReadMissing(t *testing.T) {
	t.Parallel()

	_, err := NewFile(filepath.Join(t.TempDir(), "nope")).Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files   []string
		path    string
		want    string
		wantErr bool
	}{
		"explicit path wins": {
			files: []string{"CHANGELOG"},
			path:  "docs/HISTORY.rst",
			want:  "docs/HISTORY.rst",
		},
		"plain name preferred": {
			files: []string{"CHANGELOG.rst", "CHANGELOG"},
			want:  "CHANGELOG",
		},
		"markdown before rst": {
			files: []string{"CHANGELOG.rst", "CHANGELOG.md"},
			want:  "CHANGELOG.md",
		},
		"rst only": {
			files: []string{"CHANGELOG.rst"},
			want:  "CHANGELOG.rst",
		},
		"nothing found": {
			files:   []string{"README.md"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for _, file := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("x\n"), 0o644))
			}

			got, err := Locate(tt.path, dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			if tt.path != "" {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, filepath.Join(dir, tt.want), got)
			}
		})
	}
}

func TestLocate_IgnoresDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "CHANGELOG"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte("x\n"), 0o644))

	got, err := Locate("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CHANGELOG.md"), got)
}
