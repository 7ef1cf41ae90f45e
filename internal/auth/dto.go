// AngelaMos | 2026
// dto.go

package auth

import (
	"time"

	"github.com/angelamos/eatgreet/internal/core"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterRequest creates a customer by default; role=admin registers a
// restaurant and must carry its name. The super-admin role is not
// registrable.
type RegisterRequest struct {
	Email          string `json:"email"           validate:"required,email,max=255"`
	Password       string `json:"password"        validate:"required,min=8,max=128"`
	Name           string `json:"name"            validate:"required,min=1,max=100"`
	Role           string `json:"role"            validate:"omitempty,oneof=customer admin"`
	RestaurantName string `json:"restaurant_name" validate:"required_if=Role admin,omitempty,min=1,max=150"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           core.Role `json:"role"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionsResponse struct {
	Sessions []SessionInfo `json:"sessions"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}
