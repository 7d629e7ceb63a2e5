package service

import (
	"bytes"
	"io"

	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/sirupsen/logrus"
)

const statusCompleted = "completed"

// RoundImage rounds src synchronously and stores the PNG with its metadata.
func (s *imageService) RoundImage(id string, src io.Reader, opts entity.Options) (*entity.Image, error) {
	var buf bytes.Buffer
	result, err := s.processor.Round(src, &buf, opts)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveFile(id, &buf); err != nil {
		return nil, err
	}

	image := &entity.Image{
		ID:       id,
		Status:   statusCompleted,
		Width:    result.Width,
		Height:   result.Height,
		RadiusPx: result.RadiusPx,
		Options:  opts,
	}
	if err := s.repo.Save(image); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"id":        id,
		"width":     result.Width,
		"height":    result.Height,
		"radius_px": result.RadiusPx,
	}).Info("Image rounded")
	return image, nil
}

func (s *imageService) GetImage(id string) (*entity.Image, error) {
	return s.repo.FindByID(id)
}

func (s *imageService) OpenImage(id string) (io.ReadCloser, error) {
	return s.repo.OpenFile(id)
}

func (s *imageService) DeleteImage(id string) error {
	return s.repo.Delete(id)
}
