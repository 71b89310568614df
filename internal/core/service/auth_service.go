package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lostfound/community-api/internal/core/auth"
	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

// bcryptCost matches the hashing cost used for all stored passwords.
const bcryptCost = 12

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// AuthService implements registration, login and identity lookup.
type AuthService struct {
	repo  ports.UserRepository
	codec *auth.Codec
}

func NewAuthService(repo ports.UserRepository, codec *auth.Codec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Register validates the input, hashes the password, persists the new user
// with isAdmin=false and isVerified=false, and issues a session token.
// Validation failures happen before any store write.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthSession, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Phone == "" {
		return nil, domain.ErrValidation
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		IsAdmin:      false,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(created.ID, created.Email, created.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &ports.AuthSession{Token: token, User: created}, nil
}

// Login checks the credentials and issues a fresh session token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &ports.AuthSession{Token: token, User: user}, nil
}

// Me resolves the current record behind an already verified token identity.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
