// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/angelamos/eatgreet/internal/core"
)

type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty"            validate:"omitempty,min=1,max=100"`
	RestaurantName *string `json:"restaurant_name,omitempty" validate:"omitempty,min=1,max=150"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           core.Role `json:"role"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RestaurantResponse is the super-admin dashboard view of a tenant.
type RestaurantResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RestaurantName string    `json:"restaurant_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

type ListUsersParams struct {
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Search   string    `json:"search"`
	Role     core.Role `json:"role"`
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		RestaurantName: u.RestaurantDisplayName(),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}

func ToRestaurantResponse(u *User) RestaurantResponse {
	return RestaurantResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		RestaurantName: u.RestaurantDisplayName(),
		CreatedAt:      u.CreatedAt,
	}
}

func ToRestaurantResponseList(users []User) []RestaurantResponse {
	responses := make([]RestaurantResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToRestaurantResponse(&u))
	}
	return responses
}
