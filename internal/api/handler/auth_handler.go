package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/metrics"
	"github.com/lostfound/community-api/internal/api/middleware"
	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// CookieSettings controls the auth-token cookie written on register/login.
type CookieSettings struct {
	// TTL is the cookie max-age, aligned with the token expiry.
	TTL time.Duration
	// Secure marks the cookie HTTPS-only (production).
	Secure bool
}

// AuthHandler handles registration, login, logout and identity lookup.
type AuthHandler struct {
	service ports.AuthService
	cookies CookieSettings
}

func NewAuthHandler(service ports.AuthService, cookies CookieSettings) *AuthHandler {
	return &AuthHandler{service: service, cookies: cookies}
}

// Register creates a new account and signs the caller in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	h.setAuthCookie(c, session.Token)
	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(session.User)})
}

// Login authenticates by email and password and sets the auth cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.setAuthCookie(c, session.Token)
	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(session.User)})
}

// Logout expires the auth cookie. The token itself stays valid until its
// expiry; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me returns the authenticated caller's current record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookies.TTL.Seconds()),
	})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		IsAdmin:      u.IsAdmin,
		IsVerified:   u.IsVerified,
	}
}
