package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for mutations that return no resource body.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the sanitized identity payload. There is deliberately no
// password field on this type.
type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
	IsVerified   bool   `json:"isVerified"`
}

type authResponse struct {
	User userResponse `json:"user"`
}
