// AngelaMos | 2026
// service.go

package stats

import (
	"context"
	"fmt"

	"github.com/angelamos/eatgreet/internal/core"
)

type MenuCounter interface {
	CountForRestaurant(ctx context.Context, restaurantID string) (int, error)
}

type CategoryCounter interface {
	CountCategories(ctx context.Context) (int, error)
}

type UserCounter interface {
	CountByRole(ctx context.Context, role core.Role) (int, error)
}

// Service computes role-scoped summary counts. Both views are pure reads;
// scoping is the whole design: an admin only ever sees its own tenant's
// menu count, the super-admin sees cross-tenant totals.
type Service struct {
	menu       MenuCounter
	categories CategoryCounter
	users      UserCounter
}

func NewService(
	menu MenuCounter,
	categories CategoryCounter,
	users UserCounter,
) *Service {
	return &Service{
		menu:       menu,
		categories: categories,
		users:      users,
	}
}

// AdminStats returns counts scoped to the requesting tenant. The category
// count is global: categories are shared across tenants.
func (s *Service) AdminStats(
	ctx context.Context,
	restaurantID string,
) (*AdminStatsResponse, error) {
	if restaurantID == "" {
		return nil, fmt.Errorf("admin stats: %w", core.ErrUnauthorized)
	}

	menuCount, err := s.menu.CountForRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	categoryCount, err := s.categories.CountCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	return &AdminStatsResponse{
		MenuItems:    menuCount,
		Categories:   categoryCount,
		TotalOrders:  0,
		Revenue:      0,
		ActiveOrders: 0,
	}, nil
}

// SuperAdminStats returns platform-wide counts grouped by role.
func (s *Service) SuperAdminStats(
	ctx context.Context,
) (*SuperAdminStatsResponse, error) {
	restaurantCount, err := s.users.CountByRole(ctx, core.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("super-admin stats: %w", err)
	}

	customerCount, err := s.users.CountByRole(ctx, core.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("super-admin stats: %w", err)
	}

	return &SuperAdminStatsResponse{
		TotalRestaurants:    restaurantCount,
		TotalCustomers:      customerCount,
		ActiveSubscriptions: restaurantCount,
		MonthlyRevenue:      0,
		UnpaidRestaurants:   0,
	}, nil
}
