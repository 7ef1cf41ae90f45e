// AngelaMos | 2026
// service.go

package menu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/eatgreet/internal/core"
	"github.com/angelamos/eatgreet/internal/middleware"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListItems(
	ctx context.Context,
	params ListMenuItemsParams,
) ([]MenuItem, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) CountForRestaurant(
	ctx context.Context,
	restaurantID string,
) (int, error) {
	return s.repo.CountByRestaurant(ctx, restaurantID)
}

// CreateItem stamps the tenant key from the principal unconditionally;
// there is no code path by which a request body can choose an owner.
func (s *Service) CreateItem(
	ctx context.Context,
	principal *middleware.Principal,
	req CreateMenuItemRequest,
) (*MenuItem, error) {
	if principal == nil {
		return nil, fmt.Errorf("create menu item: %w", core.ErrUnauthorized)
	}

	if !principal.Role.CanManageCatalog() {
		return nil, fmt.Errorf("create menu item: %w", core.ErrForbidden)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := &MenuItem{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		RestaurantID: principal.ID,
		IsAvailable:  isAvailable,
		IsVeg:        req.IsVeg,
		Media:        toMediaList(req.Media),
		Labels:       Labels(req.Labels),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem merges the patch onto the current row, then applies it with an
// owner-conditional statement. The read only materializes the patch;
// ownership is enforced atomically by the store, so a concurrent owner
// change cannot slip a write past the check.
func (s *Service) UpdateItem(
	ctx context.Context,
	principal *middleware.Principal,
	id string,
	req UpdateMenuItemRequest,
) (*MenuItem, error) {
	if principal == nil {
		return nil, fmt.Errorf("update menu item: %w", core.ErrUnauthorized)
	}

	if !principal.Role.CanManageCatalog() {
		return nil, fmt.Errorf("update menu item: %w", core.ErrForbidden)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsVeg != nil {
		item.IsVeg = *req.IsVeg
	}
	if req.Media != nil {
		item.Media = toMediaList(req.Media)
	}
	if req.Labels != nil {
		item.Labels = Labels(req.Labels)
	}

	err = s.repo.UpdateOwned(
		ctx,
		item,
		principal.ID,
		principal.Role.IsSuperAdmin(),
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteItem(
	ctx context.Context,
	principal *middleware.Principal,
	id string,
) error {
	if principal == nil {
		return fmt.Errorf("delete menu item: %w", core.ErrUnauthorized)
	}

	if !principal.Role.CanManageCatalog() {
		return fmt.Errorf("delete menu item: %w", core.ErrForbidden)
	}

	return s.repo.DeleteOwned(
		ctx,
		id,
		principal.ID,
		principal.Role.IsSuperAdmin(),
	)
}
