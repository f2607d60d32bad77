package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("E2E_DOTENV_CHECK=from-file\nE2E_DOTENV_KEPT=from-file\n"), 0o600))

	t.Setenv("E2E_DOTENV_KEPT", "from-env")
	t.Setenv("E2E_DOTENV_CHECK", "")
	require.NoError(t, os.Unsetenv("E2E_DOTENV_CHECK"))

	// WHEN a missing file and a real file are loaded
	err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)

	// THEN the missing file is skipped and existing variables are kept
	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("E2E_DOTENV_CHECK"))
	assert.Equal(t, "from-env", os.Getenv("E2E_DOTENV_KEPT"))
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(path, []byte("BROKEN='unterminated\n"), 0o600))

	assert.Error(t, LoadDotEnv(path))
}
