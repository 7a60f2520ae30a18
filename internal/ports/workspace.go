package ports

// Workspace answers existence queries against the host's document tree.
// A record whose path no longer resolves to an existing document is
// treated as deleted by every aggregation.
type Workspace interface {
	Exists(path string) bool
}
