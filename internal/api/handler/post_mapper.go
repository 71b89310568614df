package handler

import "github.com/lostfound/community-api/internal/core/domain"

func toAuthorResponse(a domain.PostAuthor) postAuthorResponse {
	return postAuthorResponse{
		ID:           a.ID,
		Name:         a.Name,
		ProfileImage: a.ProfileImage,
		IsVerified:   a.IsVerified,
	}
}

func toContactInfoResponse(ci domain.ContactInfo) contactInfoResponse {
	return contactInfoResponse{
		Phone:            ci.Phone,
		Email:            ci.Email,
		PreferredContact: ci.PreferredContact,
	}
}

func toFeedPostResponse(p domain.PostWithAuthor) feedPostResponse {
	author := toAuthorResponse(p.Author)
	// the feed exposes the author snippet without the raw id
	author.ID = ""
	return feedPostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     string(p.Category),
		ItemType:     p.ItemType,
		Location:     p.Location,
		DateOccurred: p.DateOccurred,
		Images:       p.Images,
		Views:        p.Views,
		CreatedAt:    p.CreatedAt,
		Author:       author,
	}
}

func toPostDetailResponse(p *domain.PostWithAuthor) postDetailResponse {
	return postDetailResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     string(p.Category),
		ItemType:     p.ItemType,
		Location:     p.Location,
		DateOccurred: p.DateOccurred,
		Images:       p.Images,
		ContactInfo:  toContactInfoResponse(p.ContactInfo),
		Status:       string(p.Status),
		Views:        p.Views,
		CreatedAt:    p.CreatedAt,
		Author:       toAuthorResponse(p.Author),
	}
}

func toOwnPostResponses(posts []domain.Post) []ownPostResponse {
	out := make([]ownPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, ownPostResponse{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Category:     string(p.Category),
			ItemType:     p.ItemType,
			Location:     p.Location,
			DateOccurred: p.DateOccurred,
			Images:       p.Images,
			ContactInfo:  toContactInfoResponse(p.ContactInfo),
			Status:       string(p.Status),
			Views:        p.Views,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	return out
}
