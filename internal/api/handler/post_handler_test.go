package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/middleware"
	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// stubPostService records inputs and serves canned results.
type stubPostService struct {
	createdID   string
	lastCreate  ports.CreatePostInput
	lastList    ports.ListPostsInput
	listResult  *ports.ListPostsResult
	post        *domain.PostWithAuthor
	posts       []domain.Post
	err         error
}

func (s *stubPostService) Create(_ context.Context, input ports.CreatePostInput) (string, error) {
	s.lastCreate = input
	return s.createdID, s.err
}

func (s *stubPostService) List(_ context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	s.lastList = input
	return s.listResult, s.err
}

func (s *stubPostService) Get(context.Context, string) (*domain.PostWithAuthor, error) {
	return s.post, s.err
}

func (s *stubPostService) ListOwn(context.Context, string) ([]domain.Post, error) {
	return s.posts, s.err
}

func (s *stubPostService) ListPublicByUser(context.Context, string) ([]domain.Post, error) {
	return s.posts, s.err
}

const createPostBody = `{
	"title": "Lost black wallet",
	"description": "Black leather wallet with a red stripe",
	"category": "lost",
	"itemType": "wallet",
	"location": "Central Park",
	"dateOccurred": "2026-08-30T12:00:00Z",
	"images": ["https://img.example.com/1.jpg"],
	"contactInfo": {"phone": "555-0100", "email": "alice@example.com", "preferredContact": "email"}
}`

func TestPostHandler_Create(t *testing.T) {
	svc := &stubPostService{createdID: "post_1"}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/posts", createPostBody)
	c.Set(middleware.ContextUserID, "user_1")
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCreate.UserID != "user_1" {
		t.Fatalf("owner must come from the token identity, got %q", svc.lastCreate.UserID)
	}
	if !strings.Contains(rec.Body.String(), `"post_1"`) {
		t.Fatalf("response must carry the new post id: %s", rec.Body.String())
	}
}

func TestPostHandler_CreateWithoutClaims(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newTestContext(http.MethodPost, "/api/posts", createPostBody)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPostHandler_CreateRejectsTooManyImages(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	body := strings.Replace(createPostBody,
		`"images": ["https://img.example.com/1.jpg"]`,
		`"images": ["1","2","3","4","5","6"]`, 1)
	c, _ := newTestContext(http.MethodPost, "/api/posts", body)
	c.Set(middleware.ContextUserID, "user_1")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPostHandler_List(t *testing.T) {
	svc := &stubPostService{listResult: &ports.ListPostsResult{
		Posts: []domain.PostWithAuthor{{
			Post: domain.Post{
				ID:       "post_1",
				Title:    "Lost black wallet",
				Category: domain.CategoryLost,
				Status:   domain.StatusActive,
				ContactInfo: domain.ContactInfo{
					Phone: "555-0100",
					Email: "alice@example.com",
				},
			},
			Author: domain.PostAuthor{ID: "user_1", Name: "Alice", IsVerified: true},
		}},
		Page:  2,
		Limit: 5,
		Total: 11,
		Pages: 3,
	}}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/posts?category=lost&search=wallet&page=2&limit=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if svc.lastList.Category != "lost" || svc.lastList.Search != "wallet" || svc.lastList.Page != 2 || svc.lastList.Limit != 5 {
		t.Fatalf("query parameters not forwarded: %+v", svc.lastList)
	}

	var resp struct {
		Posts []map[string]json.RawMessage `json:"posts"`
		Pagination struct {
			Page  int   `json:"page"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pagination.Page != 2 || resp.Pagination.Total != 11 || resp.Pagination.Pages != 3 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if len(resp.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(resp.Posts))
	}
	if _, ok := resp.Posts[0]["contactInfo"]; ok {
		t.Fatalf("feed items must not expose contact info")
	}
	if _, ok := resp.Posts[0]["status"]; ok {
		t.Fatalf("feed items must not expose status")
	}
}

func TestPostHandler_Get(t *testing.T) {
	svc := &stubPostService{post: &domain.PostWithAuthor{
		Post: domain.Post{
			ID:     "post_1",
			Title:  "Lost black wallet",
			Status: domain.StatusActive,
			Views:  3,
			ContactInfo: domain.ContactInfo{
				Phone:            "555-0100",
				Email:            "alice@example.com",
				PreferredContact: "email",
			},
		},
		Author: domain.PostAuthor{ID: "user_1", Name: "Alice"},
	}}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/posts/post_1", "")
	c.SetParamNames("id")
	c.SetParamValues("post_1")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"contactInfo"`) {
		t.Fatalf("post detail must include contact info: %s", body)
	}
	if !strings.Contains(body, `"status":"active"`) {
		t.Fatalf("post detail must include status: %s", body)
	}
}

func TestPostHandler_GetUnknownID(t *testing.T) {
	h := NewPostHandler(&stubPostService{err: domain.ErrPostNotFound})

	c, _ := newTestContext(http.MethodGet, "/api/posts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound to propagate, got %v", err)
	}
}

func TestPostHandler_ListOwn(t *testing.T) {
	svc := &stubPostService{posts: []domain.Post{{
		ID:        "post_1",
		Title:     "Lost black wallet",
		Status:    domain.StatusResolved,
		CreatedAt: time.Now(),
	}}}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/posts/user", "")
	c.Set(middleware.ContextUserID, "user_1")
	if err := h.ListOwn(c); err != nil {
		t.Fatalf("list own: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"resolved"`) {
		t.Fatalf("own posts must include non-active statuses: %s", rec.Body.String())
	}
}

func TestPostHandler_ListOwnWithoutClaims(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newTestContext(http.MethodGet, "/api/posts/user", "")
	err := h.ListOwn(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
