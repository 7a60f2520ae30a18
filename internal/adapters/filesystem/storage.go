package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BlobFile implements ports.BlobStore as a single JSON file on disk.
type BlobFile struct {
	path string
}

// NewBlobFile creates a blob store at the given file path.
func NewBlobFile(path string) *BlobFile {
	return &BlobFile{path: ExpandHome(path)}
}

// Load returns the file contents, or nil when the file does not exist yet.
func (b *BlobFile) Load() ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return raw, nil
}

// Save writes the whole blob, creating parent directories as needed.
func (b *BlobFile) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// DataDir implements ports.FileAdapter over a directory on disk. Adapter
// paths are slash-separated and relative to the root.
type DataDir struct {
	root string
}

// NewDataDir creates a file adapter rooted at the given directory.
func NewDataDir(root string) *DataDir {
	return &DataDir{root: ExpandHome(root)}
}

func (d *DataDir) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// Exists reports whether a file or directory exists at path.
func (d *DataDir) Exists(path string) (bool, error) {
	_, err := os.Stat(d.abs(path))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Read returns the contents of the file at path.
func (d *DataDir) Read(path string) ([]byte, error) {
	return os.ReadFile(d.abs(path))
}

// Write replaces the file at path.
func (d *DataDir) Write(path string, data []byte) error {
	return os.WriteFile(d.abs(path), data, 0644)
}

// Remove deletes the file at path.
func (d *DataDir) Remove(path string) error {
	return os.Remove(d.abs(path))
}

// Mkdir creates the directory at path, including parents.
func (d *DataDir) Mkdir(path string) error {
	return os.MkdirAll(d.abs(path), 0755)
}

// List returns the names of the files directly inside dir.
func (d *DataDir) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(d.abs(dir))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
