package ports

import (
	"context"
	"time"

	"github.com/lostfound/community-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post. UserID is always
// the verified token identity, never client input.
type CreatePostInput struct {
	Title        string
	Description  string
	Category     string
	ItemType     string
	Location     string
	DateOccurred time.Time
	Images       []string
	ContactInfo  domain.ContactInfo
	UserID       string
}

// ListPostsInput carries the public feed query parameters.
type ListPostsInput struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ListPostsResult is a page of the public feed.
type ListPostsResult struct {
	Posts []domain.PostWithAuthor
	Page  int
	Limit int
	Total int64
	Pages int
}

// PostService defines use-case operations for posts.
type PostService interface {
	// Create persists a new active post and returns its id.
	Create(ctx context.Context, input CreatePostInput) (string, error)
	// List returns the paginated public feed of active posts.
	List(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
	// Get returns a post with its author and increments the view counter.
	Get(ctx context.Context, id string) (*domain.PostWithAuthor, error)
	// ListOwn returns all of the caller's posts regardless of status.
	ListOwn(ctx context.Context, userID string) ([]domain.Post, error)
	// ListPublicByUser returns a user's active posts for public profiles.
	ListPublicByUser(ctx context.Context, userID string) ([]domain.Post, error)
}
