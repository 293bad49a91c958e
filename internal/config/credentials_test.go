package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	t.Setenv("TIANNIU_API_KEY", "abc123")

	token, err := ResolveToken("TIANNIU_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestResolveToken_Missing(t *testing.T) {
	t.Setenv("TIANNIU_API_KEY", "")

	_, err := ResolveToken("TIANNIU_API_KEY")
	require.Error(t, err)

	var missing *MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "TIANNIU_API_KEY", missing.EnvVar)
	assert.Equal(t, "TIANNIU_API_KEY environment variable not set.", err.Error())
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "TIANNIU_TEST_FROM_FILE=file-value\nTIANNIU_TEST_PRESET=file-value\n")

	t.Setenv("TIANNIU_TEST_PRESET", "shell-value")
	t.Setenv("TIANNIU_TEST_FROM_FILE", "")
	os.Unsetenv("TIANNIU_TEST_FROM_FILE")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "file-value", os.Getenv("TIANNIU_TEST_FROM_FILE"))
	assert.Equal(t, "shell-value", os.Getenv("TIANNIU_TEST_PRESET"))
}
