package transport

import (
	"errors"
	"io"
	"net/http"

	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/ds124wfegd/roundimage/internal/pkg/options"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// roundRequest mirrors the extended command line form.
type roundRequest struct {
	Radius       string `form:"radius" binding:"required"`
	Unit         string `form:"unit"`
	Shadow       string `form:"shadow"`
	ShadowColor  string `form:"shadow_color"`
	ShadowBlur   string `form:"shadow_blur"`
	ShadowOffset string `form:"shadow_offset"`
	Border       string `form:"border"`
	BorderColor  string `form:"border_color"`
	BorderWidth  string `form:"border_width"`
	BorderStyle  string `form:"border_style"`
}

func (r roundRequest) effects() *options.Effects {
	return &options.Effects{
		ShadowEnabled: r.Shadow,
		ShadowColor:   r.ShadowColor,
		ShadowBlur:    r.ShadowBlur,
		ShadowOffset:  r.ShadowOffset,
		BorderEnabled: r.Border,
		BorderColor:   r.BorderColor,
		BorderWidth:   r.BorderWidth,
		BorderStyle:   r.BorderStyle,
	}
}

func (h *ImageHandler) RoundImage(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var req roundRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := options.Parse(req.Radius, req.Unit, req.effects())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	id := uuid.New().String()
	image, err := h.service.RoundImage(id, src, opts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity.RoundResponse{
		ID:     image.ID,
		Status: image.Status,
		Width:  image.Width,
		Height: image.Height,
		URL:    h.baseURL + "/image/" + image.ID,
	})
}

func (h *ImageHandler) GetImage(c *gin.Context) {
	id := c.Param("id")

	reader, err := h.service.OpenImage(id)
	if err != nil {
		writeError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logrus.Errorf("Failed to stream image %s: %v", id, err)
	}
}

func (h *ImageHandler) GetImageInfo(c *gin.Context) {
	image, err := h.service.GetImage(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, image)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrImageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrDecode),
		errors.Is(err, entity.ErrInvalidArguments),
		errors.Is(err, entity.ErrInvalidColor),
		errors.Is(err, entity.ErrInvalidBorderStyle):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logrus.Errorf("Request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
