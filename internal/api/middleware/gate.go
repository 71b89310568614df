package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/metrics"
	"github.com/lostfound/community-api/internal/core/auth"
)

// loginPath is where gated requests are redirected. Unauthorized and
// forbidden outcomes share the same destination.
const loginPath = "/login"

// gateRule protects one path prefix. Rules are independent unions: a path is
// gated when any rule matches it outside its exceptions.
type gateRule struct {
	prefix string
	except []string // prefixes exempt from this rule
	admin  bool     // also require the admin claim
}

// gateRules protects the page-level routes. API routes live under /api and
// never match these prefixes; their handlers enforce auth independently.
var gateRules = []gateRule{
	{prefix: "/profile"},
	{prefix: "/dashboard"},
	{prefix: "/post", except: []string{"/post/create"}},
	{prefix: "/admin", admin: true},
}

// Gate is the coarse, stateless pre-check run before routing. On a gated path
// it requires a valid token cookie (and the admin claim where the rule says
// so) and otherwise redirects to the login page. It consults only the token's
// embedded claims, never the user store.
func Gate(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			needsAuth, needsAdmin := gateRequirements(c.Request().URL.Path)
			if !needsAuth {
				return next(c)
			}

			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c, "no_token")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return redirectToLogin(c, "invalid_token")
			}

			if needsAdmin && !claims.IsAdmin {
				return redirectToLogin(c, "not_admin")
			}

			return next(c)
		}
	}
}

// gateRequirements reports whether path requires authentication and whether
// it additionally requires the admin role.
func gateRequirements(path string) (needsAuth, needsAdmin bool) {
	for _, rule := range gateRules {
		if !strings.HasPrefix(path, rule.prefix) {
			continue
		}
		if excepted(path, rule.except) {
			continue
		}
		needsAuth = true
		if rule.admin {
			needsAdmin = true
		}
	}
	return needsAuth, needsAdmin
}

func excepted(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func redirectToLogin(c echo.Context, reason string) error {
	metrics.GateRedirectsTotal.WithLabelValues(reason).Inc()
	return c.Redirect(http.StatusFound, loginPath)
}
