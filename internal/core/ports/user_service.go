package ports

import (
	"context"

	"github.com/lostfound/community-api/internal/core/domain"
)

// UserService defines profile operations.
type UserService interface {
	// PublicProfile returns a user by id with the password hash stripped.
	PublicProfile(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile updates the caller's own name and phone.
	UpdateProfile(ctx context.Context, userID, name, phone string) error
	// SetAvatar uploads the image and stores its URL on the caller's profile.
	SetAvatar(ctx context.Context, userID string, image UploadInput) (string, error)
}
