package pve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultCacheDir is where the storage tooling keeps downloaded template
// images for directory-backed pools.
const DefaultCacheDir = "/var/lib/vz/template/cache"

// DirCache implements ImageCache with a filesystem probe of the cache
// directory and pveam for downloads.
type DirCache struct {
	dir    string
	runner Runner
}

// NewDirCache returns an ImageCache over the given cache directory.
// An empty dir selects [DefaultCacheDir].
func NewDirCache(dir string, runner Runner) *DirCache {
	if dir == "" {
		dir = DefaultCacheDir
	}
	return &DirCache{dir: dir, runner: runner}
}

// Contains implements ImageCache by checking for the exact filename.
func (c *DirCache) Contains(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(c.dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to probe template cache: %w", err)
}

// Download implements ImageCache via pveam.
func (c *DirCache) Download(ctx context.Context, storage, name string) error {
	if _, err := c.runner.Run(ctx, "pveam", "download", storage, name); err != nil {
		return fmt.Errorf("failed to download template %q to %s: %w", name, storage, err)
	}
	return nil
}
