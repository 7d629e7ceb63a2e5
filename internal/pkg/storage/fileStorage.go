package storage

import (
	"io"
	"os"
	"path/filepath"
)

type FileStorage interface {
	Save(path string, data io.Reader) error
	Get(path string) (io.ReadCloser, error)
	Delete(path string) error
	Exists(path string) bool
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

// Save writes data to a temporary file first and renames it into place, so
// readers never observe a half-written image.
func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath := s.fullPath(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}

func (s *fileStorage) Get(path string) (io.ReadCloser, error) {
	return os.Open(s.fullPath(path))
}

func (s *fileStorage) Delete(path string) error {
	return os.Remove(s.fullPath(path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := os.Stat(s.fullPath(path))
	return err == nil
}

// fullPath keeps every path inside basePath.
func (s *fileStorage) fullPath(path string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+path))
}
