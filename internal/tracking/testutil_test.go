package tracking

import (
	"errors"
	"io"
	"log/slog"
	"path"
	"time"
)

// memBlob is an in-memory ports.BlobStore with a save failure toggle.
type memBlob struct {
	data     []byte
	failSave bool
}

func (m *memBlob) Load() ([]byte, error) {
	return m.data, nil
}

func (m *memBlob) Save(data []byte) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.data = append([]byte(nil), data...)
	return nil
}

// memFiles is an in-memory ports.FileAdapter.
type memFiles struct {
	files map[string][]byte
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string][]byte{}}
}

func (m *memFiles) Exists(p string) (bool, error) {
	_, ok := m.files[p]
	return ok, nil
}

func (m *memFiles) Read(p string) ([]byte, error) {
	data, ok := m.files[p]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (m *memFiles) Write(p string, data []byte) error {
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *memFiles) Mkdir(string) error {
	return nil
}

func (m *memFiles) Remove(p string) error {
	if _, ok := m.files[p]; !ok {
		return errors.New("no such file")
	}
	delete(m.files, p)
	return nil
}

func (m *memFiles) List(dir string) ([]string, error) {
	var names []string
	for p := range m.files {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	return names, nil
}

// memWorkspace is a ports.Workspace over a fixed set of paths.
type memWorkspace struct {
	paths map[string]bool
}

func (w *memWorkspace) Exists(p string) bool {
	return w.paths[p]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore() (*Store, *memBlob) {
	blob := &memBlob{}
	store := NewStore(blob, quietLogger())
	if err := store.Load(); err != nil {
		panic(err)
	}
	return store, blob
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
