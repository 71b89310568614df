// Package auth implements the signed session token carried in the auth-token
// cookie. Tokens are stateless: validity is proven by signature and expiry
// alone, there is no server-side revocation.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lostfound/community-api/internal/core/domain"
)

// DefaultTokenTTL is the token lifetime used when none is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims are the identity facts embedded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Codec issues and verifies session tokens with a process-wide HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls back
// to DefaultTokenTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user's id, email and admin flag
// with an absolute expiry ttl from now.
func (c *Codec) Issue(userID, email string, isAdmin bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
	})
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded claims. Any
// failure (malformed artifact, wrong algorithm, signature mismatch, expiry in
// the past) yields domain.ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// TTL reports the configured token lifetime, used to align the cookie max-age
// with the token expiry.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
