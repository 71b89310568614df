package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// defaultUploadFolder is the image-store folder hint for post images.
const defaultUploadFolder = "lost-found"

// MediaService forwards image uploads to the hosting collaborator.
type MediaService struct {
	images ports.ImageStore
	logger zerolog.Logger
}

func NewMediaService(images ports.ImageStore, logger zerolog.Logger) *MediaService {
	return &MediaService{images: images, logger: logger}
}

// Upload stores the image and returns its stable URL.
func (s *MediaService) Upload(ctx context.Context, input ports.UploadInput) (string, error) {
	if len(input.Data) == 0 {
		return "", domain.ErrValidation
	}
	if input.Folder == "" {
		input.Folder = defaultUploadFolder
	}

	url, err := s.images.Upload(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("folder", input.Folder).Msg("image upload failed")
		return "", err
	}
	return url, nil
}
