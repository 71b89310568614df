package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/core/ports"
)

type verifyUserRequest struct {
	// pointer so an explicit false passes the required check
	IsVerified *bool `json:"isVerified" validate:"required"`
}

// AdminHandler handles the moderation endpoints. All routes are mounted
// behind Auth + RequireAdmin.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users: every user with post counts.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.UserOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListPosts handles GET /api/admin/posts: every post with owner details.
//
// @Summary      List all posts
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.PostOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/posts [get]
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// VerifyUser handles PATCH /api/admin/users/:id/verify: toggles the
// verification badge.
//
// @Summary      Set a user's verification flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      verifyUserRequest  true  "New verification state"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/verify [patch]
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	var req verifyUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetUserVerified(c.Request().Context(), c.Param("id"), *req.IsVerified); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User verification status updated"})
}
