package dto

// TokenRequest is the identity payload signed into an access token. It is
// trusted as-is; no credential check happens at this layer.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
