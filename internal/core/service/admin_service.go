package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// AdminService implements the moderation use cases. Admin-role enforcement is
// the transport layer's job; this service trusts its caller.
type AdminService struct {
	users  ports.UserRepository
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, posts ports.PostRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, posts: posts, logger: logger}
}

// ListUsers returns every user with their post count, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.UserOverview, error) {
	return s.users.ListWithPostCounts(ctx)
}

// ListPosts returns every post with owner name and email, newest first.
func (s *AdminService) ListPosts(ctx context.Context) ([]domain.PostOverview, error) {
	return s.posts.ListWithAuthors(ctx)
}

// SetUserVerified toggles the verification badge of a user.
func (s *AdminService) SetUserVerified(ctx context.Context, id string, verified bool) error {
	if err := s.users.SetVerified(ctx, id, verified); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Bool("verified", verified).Msg("user verification updated")
	return nil
}
