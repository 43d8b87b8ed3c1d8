package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDecodesPackageNameAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsexport.toml")
	content := `
package_name = "my_crate"

[[overwrite]]
from = "OldName"
to = "NewName"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "my_crate", cfg.PackageName)
	require.Len(t, cfg.Overwrite, 1)
	assert.Equal(t, "OldName", cfg.Overwrite[0].From)
	assert.Equal(t, "NewName", cfg.Overwrite[0].To)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
