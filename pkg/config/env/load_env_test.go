package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STUDY_SINK=pg\nPG_CONNECTION_STRING=postgres://localhost/study\n"), 0o644))

	t.Setenv("STUDY_SINK", "")
	require.NoError(t, os.Unsetenv("STUDY_SINK"))
	t.Setenv("PG_CONNECTION_STRING", "postgres://override/study")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "pg", os.Getenv("STUDY_SINK"))
	assert.Equal(t, "postgres://override/study", os.Getenv("PG_CONNECTION_STRING"))
}

func TestLoadDotEnv_FromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.env")
	require.NoError(t, os.WriteFile(path, []byte("ES_INDEX_NAME=study_results\n"), 0o644))

	t.Setenv("ENV_PATH", path)
	t.Setenv("ES_INDEX_NAME", "")
	require.NoError(t, os.Unsetenv("ES_INDEX_NAME"))

	require.NoError(t, LoadDotEnv(""))
	assert.Equal(t, "study_results", os.Getenv("ES_INDEX_NAME"))
}

func TestLoadDotEnv_NoPath(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	assert.NoError(t, LoadDotEnv(""))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
