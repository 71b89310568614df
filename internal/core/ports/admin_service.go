package ports

import (
	"context"

	"github.com/lostfound/community-api/internal/core/domain"
)

// AdminService defines the moderation operations available to admins only.
// Role enforcement happens at the transport layer; these methods trust their
// caller.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.UserOverview, error)
	ListPosts(ctx context.Context) ([]domain.PostOverview, error)
	// SetUserVerified toggles a user's verification badge.
	SetUserVerified(ctx context.Context, id string, verified bool) error
}
