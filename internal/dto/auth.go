package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
// The user id is carried in the registered subject claim.
type AuthClaims struct {
	Name      string `json:"name,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
