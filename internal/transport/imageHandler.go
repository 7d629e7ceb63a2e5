package transport

import (
	"github.com/ds124wfegd/roundimage/internal/service"
)

type ImageHandler struct {
	service        service.ImageService
	baseURL        string
	maxUploadBytes int64
}

func NewImageHandler(service service.ImageService, baseURL string, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{service: service, baseURL: baseURL, maxUploadBytes: maxUploadBytes}
}
