package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/middleware"
)

// ctxUserID extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An empty id means the middleware never
// ran on this route, which is a wiring bug surfaced as 401 rather than a
// silent anonymous write.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
