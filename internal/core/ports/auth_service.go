package ports

import (
	"context"

	"github.com/lostfound/community-api/internal/core/domain"
)

// RegisterInput carries the four required registration fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthSession is the outcome of a successful register or login: the signed
// token destined for the auth-token cookie plus the sanitized user.
type AuthSession struct {
	Token string
	User  *domain.User
}

// AuthService defines registration, login and identity lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthSession, error)
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	// Me resolves the authenticated caller's current record.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
