package handler

import "time"

type contactInfoRequest struct {
	Phone            string `json:"phone"            validate:"required"`
	Email            string `json:"email"            validate:"required,email"`
	PreferredContact string `json:"preferredContact" validate:"required,oneof=phone email"`
}

type createPostRequest struct {
	Title        string             `json:"title"        validate:"required"`
	Description  string             `json:"description"  validate:"required"`
	Category     string             `json:"category"     validate:"required,oneof=lost found"`
	ItemType     string             `json:"itemType"     validate:"required"`
	Location     string             `json:"location"     validate:"required"`
	DateOccurred time.Time          `json:"dateOccurred" validate:"required"`
	Images       []string           `json:"images"       validate:"max=5"`
	ContactInfo  contactInfoRequest `json:"contactInfo"  validate:"required"`
}

type createPostResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type postAuthorResponse struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsVerified   bool   `json:"isVerified"`
}

// feedPostResponse is the lightweight item used in the public feed. It
// intentionally omits contact info and status to keep payloads small.
type feedPostResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	ItemType     string             `json:"itemType"`
	Location     string             `json:"location"`
	DateOccurred time.Time          `json:"dateOccurred"`
	Images       []string           `json:"images"`
	Views        int64              `json:"views"`
	CreatedAt    time.Time          `json:"createdAt"`
	Author       postAuthorResponse `json:"user"`
}

type contactInfoResponse struct {
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PreferredContact string `json:"preferredContact"`
}

// postDetailResponse is the full single-post view, contact info included.
type postDetailResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	ItemType     string              `json:"itemType"`
	Location     string              `json:"location"`
	DateOccurred time.Time           `json:"dateOccurred"`
	Images       []string            `json:"images"`
	ContactInfo  contactInfoResponse `json:"contactInfo"`
	Status       string              `json:"status"`
	Views        int64               `json:"views"`
	CreatedAt    time.Time           `json:"createdAt"`
	Author       postAuthorResponse  `json:"user"`
}

// ownPostResponse is the flat post view for owner and public profile lists.
type ownPostResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	ItemType     string              `json:"itemType"`
	Location     string              `json:"location"`
	DateOccurred time.Time           `json:"dateOccurred"`
	Images       []string            `json:"images"`
	ContactInfo  contactInfoResponse `json:"contactInfo"`
	Status       string              `json:"status"`
	Views        int64               `json:"views"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listPostsResponse struct {
	Posts      []feedPostResponse `json:"posts"`
	Pagination paginationResponse `json:"pagination"`
}
