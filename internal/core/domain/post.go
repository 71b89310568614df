package domain

import "time"

// PostCategory classifies what kind of report a post is.
type PostCategory string

const (
	CategoryLost  PostCategory = "lost"
	CategoryFound PostCategory = "found"
)

// PostStatus represents the lifecycle state of a post. No transition rules
// are enforced between the three states.
type PostStatus string

const (
	StatusActive   PostStatus = "active"
	StatusResolved PostStatus = "resolved"
	StatusExpired  PostStatus = "expired"
)

// MaxPostImages is the maximum number of images accepted when creating a post.
const MaxPostImages = 5

// ContactInfo is how the poster wants to be reached about an item.
type ContactInfo struct {
	Phone            string `json:"phone" bson:"phone"`
	Email            string `json:"email" bson:"email"`
	PreferredContact string `json:"preferredContact" bson:"preferredContact"`
}

// Post is a lost or found item report. A post always has exactly one owner,
// referenced by UserID.
type Post struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     PostCategory `json:"category"`
	ItemType     string       `json:"itemType"`
	Location     string       `json:"location"`
	DateOccurred time.Time    `json:"dateOccurred"`
	Images       []string     `json:"images"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	UserID       string       `json:"userId"`
	Status       PostStatus   `json:"status"`
	Views        int64        `json:"views"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// PostAuthor is the public author snippet joined onto feed and detail views.
type PostAuthor struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsVerified   bool   `json:"isVerified"`
}

// PostWithAuthor is a post enriched with its owner's public details.
type PostWithAuthor struct {
	Post
	Author PostAuthor `json:"user"`
}

// PostOverview is the admin-facing summary row of the posts collection.
type PostOverview struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  PostCategory `json:"category"`
	Status    PostStatus   `json:"status"`
	Views     int64        `json:"views"`
	UserName  string       `json:"userName"`
	UserEmail string       `json:"userEmail"`
	CreatedAt time.Time    `json:"createdAt"`
}
