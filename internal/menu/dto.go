// AngelaMos | 2026
// dto.go

package menu

import (
	"time"
)

// CreateMenuItemRequest deliberately has no restaurant field: the tenant
// key is stamped from the authenticated principal, never from the body.
type CreateMenuItemRequest struct {
	Name        string       `json:"name"         validate:"required,min=1,max=150"`
	Description string       `json:"description"  validate:"max=1000"`
	Price       float64      `json:"price"        validate:"required,gt=0"`
	CategoryID  string       `json:"category_id"  validate:"required,uuid4"`
	IsAvailable *bool        `json:"is_available,omitempty"`
	IsVeg       bool         `json:"is_veg"`
	Media       []MediaInput `json:"media,omitempty"       validate:"dive"`
	Labels      []string     `json:"labels,omitempty"      validate:"dive,min=1,max=50"`
}

type UpdateMenuItemRequest struct {
	Name        *string      `json:"name,omitempty"         validate:"omitempty,min=1,max=150"`
	Description *string      `json:"description,omitempty"  validate:"omitempty,max=1000"`
	Price       *float64     `json:"price,omitempty"        validate:"omitempty,gt=0"`
	CategoryID  *string      `json:"category_id,omitempty"  validate:"omitempty,uuid4"`
	IsAvailable *bool        `json:"is_available,omitempty"`
	IsVeg       *bool        `json:"is_veg,omitempty"`
	Media       []MediaInput `json:"media,omitempty"        validate:"dive"`
	Labels      []string     `json:"labels,omitempty"       validate:"dive,min=1,max=50"`
}

type MediaInput struct {
	URL  string `json:"url"  validate:"required,url"`
	Kind string `json:"kind" validate:"required,oneof=image video"`
}

type MenuItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   string    `json:"category_id"`
	RestaurantID string    `json:"restaurant_id"`
	IsAvailable  bool      `json:"is_available"`
	IsVeg        bool      `json:"is_veg"`
	Media        []Media   `json:"media"`
	Labels       []string  `json:"labels"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

type ListMenuItemsParams struct {
	RestaurantID string
	CategoryID   string
	OnlyVeg      bool
}

func ToMenuItemResponse(m *MenuItem) MenuItemResponse {
	media := []Media(m.Media)
	if media == nil {
		media = []Media{}
	}
	labels := []string(m.Labels)
	if labels == nil {
		labels = []string{}
	}

	return MenuItemResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		CategoryID:   m.CategoryID,
		RestaurantID: m.RestaurantID,
		IsAvailable:  m.IsAvailable,
		IsVeg:        m.IsVeg,
		Media:        media,
		Labels:       labels,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToMenuItemResponseList(items []MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, 0, len(items))
	for _, m := range items {
		responses = append(responses, ToMenuItemResponse(&m))
	}
	return responses
}

func toMediaList(inputs []MediaInput) MediaList {
	media := make(MediaList, 0, len(inputs))
	for _, in := range inputs {
		media = append(media, Media{URL: in.URL, Kind: in.Kind})
	}
	return media
}
