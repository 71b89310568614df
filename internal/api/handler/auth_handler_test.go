package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lostfound/community-api/internal/api/middleware"
	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// stubAuthService returns canned sessions for handler tests.
type stubAuthService struct {
	session *ports.AuthSession
	user    *domain.User
	err     error
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*ports.AuthSession, error) {
	return s.session, s.err
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.AuthSession, error) {
	return s.session, s.err
}

func (s *stubAuthService) Me(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			return cookie
		}
	}
	t.Fatalf("auth-token cookie not set")
	return nil
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:         "user_1",
		Email:      "alice@example.com",
		Name:       "Alice",
		Phone:      "555-0100",
		IsAdmin:    false,
		IsVerified: false,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{session: &ports.AuthSession{Token: "signed-token", User: sampleUser()}}
	h := NewAuthHandler(svc, CookieSettings{TTL: 7 * 24 * time.Hour})

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"password123","name":"Alice","phone":"555-0100"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	cookie := authCookie(t, rec)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly || cookie.Path != "/" || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Fatalf("cookie max-age must match the token ttl, got %d", cookie.MaxAge)
	}

	body := rec.Body.String()
	if strings.Contains(body, "password") {
		t.Fatalf("response body must not mention the password: %s", body)
	}

	var resp struct {
		User struct {
			ID         string `json:"id"`
			IsAdmin    bool   `json:"isAdmin"`
			IsVerified bool   `json:"isVerified"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID != "user_1" || resp.User.IsAdmin || resp.User.IsVerified {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_RegisterRejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieSettings{TTL: time.Hour})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"12345","name":"Alice","phone":"555-0100"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrEmailTaken}, CookieSettings{TTL: time.Hour})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"password123","name":"Alice","phone":"555-0100"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{session: &ports.AuthSession{Token: "signed-token", User: sampleUser()}}
	h := NewAuthHandler(svc, CookieSettings{TTL: time.Hour})

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if authCookie(t, rec).Value != "signed-token" {
		t.Fatalf("cookie not set on login")
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, CookieSettings{TTL: time.Hour})

	c, _ := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieSettings{TTL: time.Hour})

	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	cookie := authCookie(t, rec)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("logout must expire the cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: sampleUser()}, CookieSettings{TTL: time.Hour})

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.ContextUserID, "user_1")
	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response body must not mention the password")
	}
}

func TestAuthHandler_MeWithoutClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: sampleUser()}, CookieSettings{TTL: time.Hour})

	c, _ := newTestContext(http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
