package domain

import "time"

// User models a registered community member.
//
// PasswordHash is excluded from JSON so the secret can never be serialized by
// a handler; store-level projections additionally strip it from aggregate
// queries.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profileImage,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserOverview is the admin-facing view of a user, including how many posts
// the user has created. The password hash is never part of this projection.
type UserOverview struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profileImage,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	IsVerified   bool      `json:"isVerified"`
	PostCount    int64     `json:"postCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
