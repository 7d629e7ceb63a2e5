package service

import (
	"io"

	"github.com/ds124wfegd/roundimage/internal/database"
	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/ds124wfegd/roundimage/internal/pkg/processor"
)

type ImageService interface {
	RoundImage(id string, src io.Reader, opts entity.Options) (*entity.Image, error)
	GetImage(id string) (*entity.Image, error)
	OpenImage(id string) (io.ReadCloser, error)
	DeleteImage(id string) error
}

type imageService struct {
	repo      database.ImageRepository
	processor processor.ImageProcessor
}

func NewImageService(repo database.ImageRepository, processor processor.ImageProcessor) ImageService {
	return &imageService{
		repo:      repo,
		processor: processor,
	}
}
