package ports

// BlobStore persists the single plugin data blob (records + settings).
type BlobStore interface {
	// Load returns the stored blob, or nil when nothing has been saved yet.
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileAdapter is the host's file-system access for the snapshot data
// directory. Paths are slash-separated and relative to the adapter root.
type FileAdapter interface {
	Exists(path string) (bool, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Mkdir(path string) error
	Remove(path string) error
	// List returns the names of the files directly inside dir.
	List(dir string) ([]string, error)
}
