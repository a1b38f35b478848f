package pve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirCache_Contains(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img-1.tar"), []byte("x"), 0o644))

	cache := NewDirCache(dir, newFakeRunner())

	found, err := cache.Contains("img-1.tar")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = cache.Contains("img-2.tar")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDirCache_DefaultDir(t *testing.T) {
	t.Parallel()
	cache := NewDirCache("", newFakeRunner())
	assert.Equal(t, DefaultCacheDir, cache.dir)
}

func TestDirCache_Download(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	cache := NewDirCache(t.TempDir(), runner)

	require.NoError(t, cache.Download(context.Background(), "pool-a", "img-1.tar"))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pveam download pool-a img-1.tar", runner.calls[0])
}

func TestDirCache_DownloadFailure(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pveam", Result{}, &CommandError{
		Command:  "pveam download pool-a img-1.tar",
		ExitCode: 255,
		Stderr:   "404 Not Found",
	})
	cache := NewDirCache(t.TempDir(), runner)

	err := cache.Download(context.Background(), "pool-a", "img-1.tar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404 Not Found")
}
