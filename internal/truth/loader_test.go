package truth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Bundle(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)

	writeFile(t, l.TruthPath("cora", "0", "hasCat"), "p1\tml\t1\np1\tdb\t0\n")
	writeFile(t, l.ObservedPath("cora", "0", "hasCat"), "p9\tml\t1\n")
	writeFile(t, l.TargetPath("cora", "0", "hasCat"), "p1\tml\np1\tdb\n")

	b, err := l.Bundle("cora", "0", "hasCat")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Truth.Len())
	assert.Equal(t, 1, b.Observed.Len())
	assert.Equal(t, 2, b.Target.Len())
	assert.Equal(t, 1.0, b.Truth.Value(frame.NewKey("p1", "ml")))

	again, err := l.Bundle("cora", "0", "hasCat")
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.Equal(t, 1, l.Cached())
}

func TestLoader_MissingObservedIsEmpty(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)

	writeFile(t, l.TruthPath("jester", "1", "rating"), "u1\tj1\t0.5\n")
	writeFile(t, l.TargetPath("jester", "1", "rating"), "u1\tj1\n")

	b, err := l.Bundle("jester", "1", "rating")
	require.NoError(t, err)
	assert.Zero(t, b.Observed.Len())
	assert.Equal(t, "rating", b.Observed.Predicate)
}

func TestLoader_MissingTruth(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, err := l.Bundle("cora", "0", "hasCat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Contains(t, err.Error(), "load truth")
	assert.Zero(t, l.Cached())
}

func TestLoader_Paths(t *testing.T) {
	l := NewLoader("data")
	assert.Equal(t, filepath.Join("data", "cora", "3", "eval", "hasCat_truth.txt"), l.TruthPath("cora", "3", "hasCat"))
	assert.Equal(t, filepath.Join("data", "cora", "3", "eval", "hasCat_obs.txt"), l.ObservedPath("cora", "3", "hasCat"))
	assert.Equal(t, filepath.Join("data", "cora", "3", "eval", "hasCat_targets.txt"), l.TargetPath("cora", "3", "hasCat"))
}
