package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PostService implements the post use cases.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create persists a new post owned by input.UserID with status active and a
// zero view counter. At most domain.MaxPostImages images are accepted.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (string, error) {
	if input.UserID == "" {
		return "", domain.ErrUnauthorized
	}
	if len(input.Images) > domain.MaxPostImages {
		return "", domain.ErrValidation
	}

	category := domain.PostCategory(input.Category)
	if category != domain.CategoryLost && category != domain.CategoryFound {
		return "", domain.ErrValidation
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:        input.Title,
		Description:  input.Description,
		Category:     category,
		ItemType:     input.ItemType,
		Location:     input.Location,
		DateOccurred: input.DateOccurred,
		Images:       input.Images,
		ContactInfo:  input.ContactInfo,
		UserID:       input.UserID,
		Status:       domain.StatusActive,
		Views:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	id, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create post")
		return "", err
	}

	s.logger.Info().Str("post_id", id).Str("user_id", input.UserID).Str("category", input.Category).Msg("post created")
	return id, nil
}

// List returns a page of the public feed. Page and limit are normalized to
// sane bounds before hitting the store.
func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	category := input.Category
	if category == "all" {
		category = ""
	}

	posts, total, err := s.repo.List(ctx, ports.ListPostsFilter{
		Category: category,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPostsResult{
		Posts: posts,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}

// Get returns a single post with its author. Each successful read increments
// the view counter exactly once, before the read, so the returned view count
// includes the current visit.
func (s *PostService) Get(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		if err != domain.ErrPostNotFound && err != domain.ErrInvalidID {
			return nil, err
		}
		// fall through: the lookup below reports the definitive error
	}

	post, err := s.repo.FindByIDWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ListOwn returns every post of the authenticated caller, any status.
func (s *PostService) ListOwn(ctx context.Context, userID string) ([]domain.Post, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID, false)
}

// ListPublicByUser returns only active posts, for public profile pages.
func (s *PostService) ListPublicByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	return s.repo.ListByUser(ctx, userID, true)
}
