package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/metrics"
	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// PostHandler handles post creation and the public feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts. The owner is always the verified token
// identity; ownership is never taken from the request body.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ItemType:     req.ItemType,
		Location:     req.Location,
		DateOccurred: req.DateOccurred,
		Images:       req.Images,
		ContactInfo: domain.ContactInfo{
			Phone:            req.ContactInfo.Phone,
			Email:            req.ContactInfo.Email,
			PreferredContact: req.ContactInfo.PreferredContact,
		},
		UserID: userID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(req.Category).Inc()
	return c.JSON(http.StatusCreated, createPostResponse{ID: id, Message: "Post created successfully"})
}

// List handles GET /api/posts: the anonymous public feed.
//
// @Summary      List active posts
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "lost | found | all"
// @Param        search    query     string  false  "Full-text search"
// @Param        page      query     int     false  "1-based page"
// @Param        limit     query     int     false  "Rows per page"
// @Success      200       {object}  listPostsResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListPostsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	posts := make([]feedPostResponse, 0, len(result.Posts))
	for _, p := range result.Posts {
		posts = append(posts, toFeedPostResponse(p))
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Posts: posts,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.Pages,
		},
	})
}

// Get handles GET /api/posts/:id: anonymous post detail. Each read
// increments the view counter.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PostViewsTotal.Inc()
	return c.JSON(http.StatusOK, toPostDetailResponse(post))
}

// ListOwn handles GET /api/posts/user: the caller's posts, any status.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   ownPostResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/posts/user [get]
func (h *PostHandler) ListOwn(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwnPostResponses(posts))
}

// ListByUser handles GET /api/posts/user/:id: a user's active posts,
// anonymous.
//
// @Summary      List a user's active posts
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {array}   ownPostResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/posts/user/{id} [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	posts, err := h.service.ListPublicByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwnPostResponses(posts))
}
