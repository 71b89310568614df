package ports

import (
	"context"

	"github.com/lostfound/community-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile sets name and phone. domain.ErrUserNotFound when id matches nothing.
	UpdateProfile(ctx context.Context, id, name, phone string) error
	SetProfileImage(ctx context.Context, id, imageURL string) error
	// SetVerified flips the admin-controlled verification flag.
	SetVerified(ctx context.Context, id string, verified bool) error
	// ListWithPostCounts returns every user joined with the number of posts
	// they own, newest first. Password hashes are excluded at the query level.
	ListWithPostCounts(ctx context.Context) ([]domain.UserOverview, error)
}
