package database

import (
	"io"

	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/ds124wfegd/roundimage/internal/pkg/storage"
)

type ImageRepository interface {
	Save(image *entity.Image) error
	FindByID(id string) (*entity.Image, error)
	Delete(id string) error
	SaveFile(id string, file io.Reader) error
	OpenFile(id string) (io.ReadCloser, error)
}

type fileImageRepository struct {
	storage storage.FileStorage
}
