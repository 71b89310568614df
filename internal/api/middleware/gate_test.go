package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/core/auth"
)

func TestGateRequirements(t *testing.T) {
	tests := []struct {
		path       string
		needsAuth  bool
		needsAdmin bool
	}{
		{path: "/", needsAuth: false},
		{path: "/login", needsAuth: false},
		{path: "/api/posts", needsAuth: false},
		{path: "/api/admin/users", needsAuth: false},
		{path: "/profile", needsAuth: true},
		{path: "/profile/abc123", needsAuth: true},
		{path: "/dashboard", needsAuth: true},
		{path: "/post/abc123", needsAuth: true},
		{path: "/post/create", needsAuth: false},
		{path: "/admin", needsAuth: true, needsAdmin: true},
		{path: "/admin/users", needsAuth: true, needsAdmin: true},
	}

	for _, tt := range tests {
		needsAuth, needsAdmin := gateRequirements(tt.path)
		if needsAuth != tt.needsAuth || needsAdmin != tt.needsAdmin {
			t.Errorf("gateRequirements(%q) = (%v, %v), want (%v, %v)",
				tt.path, needsAuth, needsAdmin, tt.needsAuth, tt.needsAdmin)
		}
	}
}

func runGate(t *testing.T, codec *auth.Codec, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	reachedNext := false
	err := Gate(codec)(func(c echo.Context) error {
		reachedNext = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	return rec, reachedNext
}

func TestGate_RedirectsWithoutToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	rec, reachedNext := runGate(t, codec, "/post/abc123", nil)

	if reachedNext {
		t.Fatalf("handler should not run on a gated path without a token")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != loginPath {
		t.Fatalf("expected redirect to %s, got %s", loginPath, loc)
	}
}

func TestGate_RedirectsOnInvalidToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	rec, reachedNext := runGate(t, codec, "/dashboard", &http.Cookie{Name: AuthCookieName, Value: "garbage"})

	if reachedNext {
		t.Fatalf("handler should not run with an invalid token")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestGate_AllowsPostCreateWithoutToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	rec, reachedNext := runGate(t, codec, "/post/create", nil)

	if !reachedNext {
		t.Fatalf("post creation page should pass the gate without a token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_AdminPrefixRejectsNonAdmin(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	token, err := codec.Issue("user_1", "alice@example.com", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec, reachedNext := runGate(t, codec, "/admin/users", &http.Cookie{Name: AuthCookieName, Value: token})

	if reachedNext {
		t.Fatalf("non-admin token must not pass the admin gate")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestGate_AdminPrefixAllowsAdmin(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	token, err := codec.Issue("admin_1", "admin@example.com", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, reachedNext := runGate(t, codec, "/admin/users", &http.Cookie{Name: AuthCookieName, Value: token})

	if !reachedNext {
		t.Fatalf("admin token should pass the admin gate")
	}
}

func TestGate_ValidTokenPassesGatedPath(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	token, err := codec.Issue("user_1", "alice@example.com", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, reachedNext := runGate(t, codec, "/profile/abc123", &http.Cookie{Name: AuthCookieName, Value: token})

	if !reachedNext {
		t.Fatalf("valid token should pass the gate")
	}
}

func TestGate_IgnoresUngatedPaths(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	for _, path := range []string{"/", "/login", "/api/posts", "/about"} {
		_, reachedNext := runGate(t, codec, path, nil)
		if !reachedNext {
			t.Errorf("path %q should not be gated", path)
		}
	}
}
