// AngelaMos | 2026
// service_test.go

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/angelamos/eatgreet/internal/core"
)

type stubMenuCounter struct {
	counts map[string]int
}

func (s *stubMenuCounter) CountForRestaurant(
	_ context.Context,
	restaurantID string,
) (int, error) {
	return s.counts[restaurantID], nil
}

type stubCategoryCounter struct {
	count int
}

func (s *stubCategoryCounter) CountCategories(_ context.Context) (int, error) {
	return s.count, nil
}

type stubUserCounter struct {
	byRole map[core.Role]int
}

func (s *stubUserCounter) CountByRole(
	_ context.Context,
	role core.Role,
) (int, error) {
	return s.byRole[role], nil
}

func newTestService() *Service {
	return NewService(
		&stubMenuCounter{counts: map[string]int{
			"tenant-a": 3,
			"tenant-b": 5,
		}},
		&stubCategoryCounter{count: 6},
		&stubUserCounter{byRole: map[core.Role]int{
			core.RoleAdmin:    2,
			core.RoleCustomer: 40,
		}},
	)
}

func TestAdminStatsScopedToTenant(t *testing.T) {
	svc := newTestService()

	got, err := svc.AdminStats(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}

	if got.MenuItems != 3 {
		t.Errorf("MenuItems = %d, want tenant-a's 3, not tenant-b's", got.MenuItems)
	}
	if got.Categories != 6 {
		t.Errorf("Categories = %d, want global 6", got.Categories)
	}

	other, err := svc.AdminStats(context.Background(), "tenant-b")
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if other.MenuItems != 5 {
		t.Errorf("MenuItems = %d, want 5", other.MenuItems)
	}
}

func TestAdminStatsRequiresTenant(t *testing.T) {
	svc := newTestService()

	_, err := svc.AdminStats(context.Background(), "")
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestSuperAdminStats(t *testing.T) {
	svc := newTestService()

	got, err := svc.SuperAdminStats(context.Background())
	if err != nil {
		t.Fatalf("SuperAdminStats: %v", err)
	}

	if got.TotalRestaurants != 2 {
		t.Errorf("TotalRestaurants = %d, want 2", got.TotalRestaurants)
	}
	if got.TotalCustomers != 40 {
		t.Errorf("TotalCustomers = %d, want 40", got.TotalCustomers)
	}
	if got.ActiveSubscriptions != 2 {
		t.Errorf("ActiveSubscriptions = %d, want restaurant count", got.ActiveSubscriptions)
	}
}

func TestStatsFieldNames(t *testing.T) {
	admin, err := json.Marshal(AdminStatsResponse{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		"menuItems", "categories", "totalOrders", "revenue", "activeOrders",
	} {
		if !jsonHasKey(t, admin, key) {
			t.Errorf("admin stats payload missing %q", key)
		}
	}

	super, err := json.Marshal(SuperAdminStatsResponse{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		"totalRestaurants", "totalCustomers", "activeSubscriptions",
		"monthlyRevenue", "unpaidRestaurants",
	} {
		if !jsonHasKey(t, super, key) {
			t.Errorf("super-admin stats payload missing %q", key)
		}
	}
}

func jsonHasKey(t *testing.T, data []byte, key string) bool {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, ok := m[key]
	return ok
}
