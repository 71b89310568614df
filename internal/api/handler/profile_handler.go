package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/metrics"
	"github.com/lostfound/community-api/internal/core/ports"
)

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// ProfileHandler handles public profile reads and self-service profile
// mutations.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/profile/:id: anonymous, password always stripped.
//
// @Summary      Get a public profile
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.service.PublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /api/profile/update. The mutated record is always the
// token's own identity.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "New name and phone"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/profile/update [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateProfile(c.Request().Context(), userID, req.Name, req.Phone); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}

// UploadAvatar handles POST /api/profile/upload-avatar: stores the image and
// persists its URL on the caller's profile.
//
// @Summary      Upload a profile picture
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/profile/upload-avatar [post]
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	input, err := readImageUpload(c)
	if err != nil {
		return err
	}

	url, err := h.service.SetAvatar(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	metrics.ImageUploadsTotal.WithLabelValues("avatar").Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
