// Package filesystem implements the host ports over a real directory:
// workspace lookups, the plugin data blob and the snapshot data dir.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// Workspace implements ports.Workspace over a workspace root on disk.
type Workspace struct {
	root string
}

// NewWorkspace creates a workspace rooted at the given directory.
func NewWorkspace(root string) *Workspace {
	return &Workspace{root: ExpandHome(root)}
}

// Exists reports whether a document path resolves to a regular file.
func (w *Workspace) Exists(path string) bool {
	info, err := os.Stat(filepath.Join(w.root, filepath.FromSlash(path)))
	return err == nil && info.Mode().IsRegular()
}

// Root returns the expanded workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}
