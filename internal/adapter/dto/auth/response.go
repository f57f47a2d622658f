package auth

import (
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// AuthResponse represents the authentication response with the session
// token
type AuthResponse struct {
	User        *entities.PublicUser `json:"user"`
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
}

// NewAuthResponse builds the standard auth payload
func NewAuthResponse(user *entities.User, token string) *AuthResponse {
	return &AuthResponse{
		User:        user.ToPublic(),
		AccessToken: token,
		TokenType:   "Bearer",
	}
}
