package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/core/auth"
)

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth-token"

// Context keys populated by Auth for downstream handlers.
const (
	ContextUserID  = "userID"
	ContextEmail   = "email"
	ContextIsAdmin = "isAdmin"
)

// Auth verifies the auth-token cookie and injects the token claims into the
// request context. Requests without a valid token get 401.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextIsAdmin, claims.IsAdmin)

			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose token lacks the admin claim. It runs
// after Auth, so a valid identity is already in context.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get(ContextIsAdmin).(bool)
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
