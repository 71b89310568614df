package ports

import (
	"context"
	"time"

	"github.com/lostfound/community-api/internal/core/domain"
)

// ListPostsFilter carries the query parameters for the public feed.
// Only active posts are ever returned by List.
type ListPostsFilter struct {
	Category string // optional: "lost" or "found"; empty or "all" = both
	Search   string // optional: full-text search on title/description/location
	Page     int    // 1-based
	Limit    int    // rows per page
}

// PostRepository defines persistence operations on the posts collection.
type PostRepository interface {
	// Create inserts a new post and returns its generated id.
	Create(ctx context.Context, post *domain.Post) (string, error)
	// FindByIDWithAuthor returns a post joined with its owner's public details.
	FindByIDWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error)
	// IncrementViews adds one to the post's view counter.
	IncrementViews(ctx context.Context, id string) error
	// List returns a page of active posts matching filter plus the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]domain.PostWithAuthor, int64, error)
	// ListByUser returns a user's posts newest first. activeOnly restricts the
	// result to active posts for public profile views.
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Post, error)
	// ListWithAuthors returns every post joined with owner name and email,
	// newest first (admin overview).
	ListWithAuthors(ctx context.Context) ([]domain.PostOverview, error)
	// ExpireOlderThan marks active posts created before cutoff as expired and
	// reports how many were updated.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
