package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/ds124wfegd/roundimage/internal/pkg/storage"
)

func NewImageRepository(storage storage.FileStorage) ImageRepository {
	return &fileImageRepository{storage: storage}
}

func (r *fileImageRepository) Save(image *entity.Image) error {
	data, err := json.Marshal(image)
	if err != nil {
		return err
	}

	return r.storage.Save(metadataPath(image.ID), bytes.NewReader(data))
}

func (r *fileImageRepository) FindByID(id string) (*entity.Image, error) {
	reader, err := r.storage.Get(metadataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", entity.ErrImageNotFound, id)
		}
		return nil, err
	}
	defer reader.Close()

	var image entity.Image
	if err := json.NewDecoder(reader).Decode(&image); err != nil {
		return nil, err
	}

	return &image, nil
}

// Delete removes both the PNG and its metadata. Deleting an unknown id
// reports ErrImageNotFound.
func (r *fileImageRepository) Delete(id string) error {
	found := false
	for _, path := range []string{metadataPath(id), imagePath(id)} {
		err := r.storage.Delete(path)
		switch {
		case err == nil:
			found = true
		case !os.IsNotExist(err):
			return err
		}
	}

	if !found {
		return fmt.Errorf("%w: %s", entity.ErrImageNotFound, id)
	}
	return nil
}

func (r *fileImageRepository) SaveFile(id string, file io.Reader) error {
	return r.storage.Save(imagePath(id), file)
}

func (r *fileImageRepository) OpenFile(id string) (io.ReadCloser, error) {
	reader, err := r.storage.Get(imagePath(id))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", entity.ErrImageNotFound, id)
	}
	return reader, err
}

func imagePath(id string) string {
	return filepath.Join("processed", id+".png")
}

func metadataPath(id string) string {
	return filepath.Join("metadata", id+".json")
}
