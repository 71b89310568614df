package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/metrics"
	"github.com/lostfound/community-api/internal/core/ports"
)

// maxUploadBytes caps a single image payload.
const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler handles generic image uploads for post attachments.
type UploadHandler struct {
	service ports.MediaService
}

func NewUploadHandler(service ports.MediaService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/upload: stores the image and returns its URL.
//
// @Summary      Upload an image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	input, err := readImageUpload(c)
	if err != nil {
		return err
	}

	url, err := h.service.Upload(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ImageUploadsTotal.WithLabelValues("post").Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}

// readImageUpload extracts the "file" part of a multipart form into an
// upload input.
func readImageUpload(c echo.Context) (ports.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return ports.UploadInput{}, echo.NewHTTPError(http.StatusBadRequest, "no file provided")
	}
	if fh.Size > maxUploadBytes {
		return ports.UploadInput{}, echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return ports.UploadInput{}, echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return ports.UploadInput{}, echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	if len(data) > maxUploadBytes {
		return ports.UploadInput{}, echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	return ports.UploadInput{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}
