package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// avatarFolder is the image-store folder hint for profile pictures.
const avatarFolder = "lost-found/avatars"

// UserService implements profile operations.
type UserService struct {
	repo   ports.UserRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, images ports.ImageStore, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, images: images, logger: logger}
}

// PublicProfile returns a user by id. The repository never loads the password
// hash for this lookup, so the response cannot leak it.
func (s *UserService) PublicProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile updates the caller's own record. The subject is always the
// verified token identity, so no separate ownership check is needed.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, phone string) error {
	if name == "" || phone == "" {
		return domain.ErrValidation
	}
	return s.repo.UpdateProfile(ctx, userID, name, phone)
}

// SetAvatar uploads the image and persists its URL on the caller's profile.
func (s *UserService) SetAvatar(ctx context.Context, userID string, image ports.UploadInput) (string, error) {
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	if len(image.Data) == 0 {
		return "", domain.ErrValidation
	}

	image.Folder = avatarFolder
	url, err := s.images.Upload(ctx, image)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("avatar upload failed")
		return "", err
	}

	if err := s.repo.SetProfileImage(ctx, userID, url); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", userID).Msg("avatar updated")
	return url, nil
}
