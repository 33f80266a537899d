// ABOUTME: Byte source abstraction for clip loading
// ABOUTME: Filesystem, fs.FS bundle, and in-memory stores
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store retrieves the raw bytes of a named resource. A zero-length
// result is treated as a failed load by all callers, so stores report
// it as an error.
type Store interface {
	Load(name string) ([]byte, error)
}

// Dir is a Store rooted at a filesystem directory. An empty root reads
// paths as given.
type Dir string

// Load reads the named file below the root.
func (d Dir) Load(name string) ([]byte, error) {
	path := name
	if d != "" {
		path = filepath.Join(string(d), name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	return data, nil
}

// FS wraps an fs.FS, typically an embed.FS carrying bundled assets.
type FS struct {
	fsys fs.FS
}

// NewFS creates a store over the given filesystem.
func NewFS(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

// Load reads the named entry from the bundle.
func (f FS) Load(name string) ([]byte, error) {
	if f.fsys == nil {
		return nil, fmt.Errorf("asset store is not set")
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("asset %s is empty", name)
	}
	return data, nil
}

// Map is an in-memory store keyed by name, mainly for tests.
type Map map[string][]byte

// Load returns the stored bytes for name.
func (m Map) Load(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("asset %s not found", name)
	}
	return data, nil
}
