package domain

import "errors"

var (
	// ErrUnauthorized means the request carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the identity is valid but lacks the required role.
	ErrForbidden = errors.New("access forbidden")
	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials is returned on login with a wrong email/password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrValidation covers missing or malformed required fields.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID is returned for identifiers that are not valid object ids.
	ErrInvalidID = errors.New("invalid id")
)
