package store

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/petgoggles/goggles"
)

// FileStore stores uploaded images on the local filesystem. Writes never
// target an existing key because identifiers are allocated uniquely per
// upload, so no locking is needed.
type FileStore struct {
	root string
}

// New creates a FileStore rooted at dir, creating the directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goggles.NewStorageWriteError("could not create upload directory", err)
	}
	return &FileStore{root: dir}, nil
}

// Root returns the configured root directory.
func (s *FileStore) Root() string {
	return s.root
}

// Put writes the image bytes under <id>.<ext>. I/O failures surface as
// storage write errors and are not retried.
func (s *FileStore) Put(id, ext string, data []byte) error {
	path := filepath.Join(s.root, id+"."+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goggles.NewStorageWriteError("could not save file", err)
	}
	return nil
}

// Resolve returns the path of the stored image with the given identifier.
// It probes the canonical extensions in fixed order and returns the first
// match; directory listings are never consulted.
func (s *FileStore) Resolve(id string) (string, error) {
	for _, ext := range goggles.Extensions() {
		path := filepath.Join(s.root, id+"."+ext)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", goggles.NewNotFoundError(id)
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", goggles.NewNotFoundError(id)
}

// Open returns a reader over the stored image bytes and the extension the
// image was found under.
func (s *FileStore) Open(id string) (io.ReadCloser, string, error) {
	path, err := s.Resolve(id)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		// Resolved a moment ago; treat a vanished file as not found.
		return nil, "", goggles.NewNotFoundError(id)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return f, ext, nil
}

var _ goggles.ImageStore = (*FileStore)(nil)
