package tracking

import (
	"strings"

	"github.com/astradev123/obsidian-focus-time/internal/ports"
)

// Reconciler migrates stored records when the host renames documents or
// folders, keeping store keys and record paths consistent. Rename events
// are processed in arrival order with no coalescing.
type Reconciler struct {
	store     *Store
	workspace ports.Workspace
}

// NewReconciler creates a reconciler over the store and host workspace.
func NewReconciler(store *Store, workspace ports.Workspace) *Reconciler {
	return &Reconciler{store: store, workspace: workspace}
}

// HandleDocumentRenamed re-keys the record stored under oldPath to newPath
// and updates its path field. Unknown paths are ignored. The rekey is a
// single committed step: a failed write leaves the old key intact.
func (r *Reconciler) HandleDocumentRenamed(newPath, oldPath string) error {
	rec, ok := r.store.Record(oldPath)
	if !ok {
		return nil
	}
	rec.FilePath = newPath
	return r.store.RekeyRecord(oldPath, newPath, rec)
}

// HandleFolderRenamed migrates every record whose path was the old folder
// or nested under it. A record is only moved when a document actually
// exists at the computed new path; otherwise it is left untouched, since
// the rename event for that sub-path may not have arrived yet or the
// document may have been deleted separately.
func (r *Reconciler) HandleFolderRenamed(newPath, oldPath string) error {
	oldPrefix := strings.TrimSuffix(oldPath, "/")
	newPrefix := strings.TrimSuffix(newPath, "/")

	var firstErr error
	for _, storedPath := range r.store.RecordPaths() {
		migrated, ok := migratedPath(storedPath, oldPrefix, newPrefix)
		if !ok {
			continue
		}
		if !r.workspace.Exists(migrated) {
			continue
		}
		rec, ok := r.store.Record(storedPath)
		if !ok {
			continue
		}
		rec.FilePath = migrated
		if err := r.store.RekeyRecord(storedPath, migrated, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// migratedPath maps a document path across a folder rename, reporting
// whether the path was the folder itself or nested under it. Prefixes
// must arrive without a trailing slash.
func migratedPath(path, oldPrefix, newPrefix string) (string, bool) {
	switch {
	case path == oldPrefix:
		return newPrefix, true
	case strings.HasPrefix(path, oldPrefix+"/"):
		return newPrefix + path[len(oldPrefix):], true
	}
	return "", false
}
