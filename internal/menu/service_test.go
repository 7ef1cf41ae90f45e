// AngelaMos | 2026
// service_test.go

package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/angelamos/eatgreet/internal/core"
	"github.com/angelamos/eatgreet/internal/middleware"
)

// fakeRepository mirrors the store's ownership semantics: conditional
// writes touch a row only when the owner matches or the bypass flag is
// set, and a miss is classified into not-found vs forbidden.
type fakeRepository struct {
	items map[string]*MenuItem
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*MenuItem)}
}

func (f *fakeRepository) Create(_ context.Context, item *MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context, params ListMenuItemsParams) ([]MenuItem, error) {
	var out []MenuItem
	for _, item := range f.items {
		if params.RestaurantID != "" && item.RestaurantID != params.RestaurantID {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeRepository) CountByRestaurant(_ context.Context, restaurantID string) (int, error) {
	count := 0
	for _, item := range f.items {
		if item.RestaurantID == restaurantID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepository) UpdateOwned(
	_ context.Context,
	item *MenuItem,
	ownerID string,
	bypassOwner bool,
) error {
	existing, ok := f.items[item.ID]
	if !ok {
		return core.ErrNotFound
	}
	if !bypassOwner && existing.RestaurantID != ownerID {
		return core.ErrForbidden
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteOwned(
	_ context.Context,
	id, ownerID string,
	bypassOwner bool,
) error {
	existing, ok := f.items[id]
	if !ok {
		return core.ErrNotFound
	}
	if !bypassOwner && existing.RestaurantID != ownerID {
		return core.ErrForbidden
	}
	delete(f.items, id)
	return nil
}

func adminPrincipal(id string) *middleware.Principal {
	return &middleware.Principal{ID: id, Role: core.RoleAdmin}
}

func superAdminPrincipal() *middleware.Principal {
	return &middleware.Principal{ID: "platform", Role: core.RoleSuperAdmin}
}

func createRequest() CreateMenuItemRequest {
	return CreateMenuItemRequest{
		Name:       "Classic Burger",
		Price:      299,
		CategoryID: "11111111-1111-4111-8111-111111111111",
	}
}

func TestCreateItemStampsOwner(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if item.RestaurantID != "tenant-a" {
		t.Errorf("RestaurantID = %q, want the principal id", item.RestaurantID)
	}
	if !item.IsAvailable {
		t.Error("IsAvailable must default to true")
	}
}

func TestCreateItemRejectsCustomer(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.CreateItem(
		context.Background(),
		&middleware.Principal{ID: "c1", Role: core.RoleCustomer},
		createRequest(),
	)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateItemRejectsNilPrincipal(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.CreateItem(context.Background(), nil, createRequest())
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateItemCrossTenantForbidden(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	owned, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	name := "Hijacked"
	_, err = svc.UpdateItem(
		context.Background(),
		adminPrincipal("tenant-b"),
		owned.ID,
		UpdateMenuItemRequest{Name: &name},
	)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	got, _ := repo.GetByID(context.Background(), owned.ID)
	if got.Name != "Classic Burger" {
		t.Errorf("item mutated despite forbidden update: %q", got.Name)
	}
}

func TestUpdateItemOwnerSucceeds(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	owned, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	price := 349.0
	updated, err := svc.UpdateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		owned.ID,
		UpdateMenuItemRequest{Price: &price},
	)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	if updated.Price != 349 {
		t.Errorf("Price = %v, want 349", updated.Price)
	}
	if updated.Name != "Classic Burger" {
		t.Errorf("unpatched field changed: %q", updated.Name)
	}
}

func TestUpdateItemSuperAdminBypassesOwnership(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	owned, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	available := false
	updated, err := svc.UpdateItem(
		context.Background(),
		superAdminPrincipal(),
		owned.ID,
		UpdateMenuItemRequest{IsAvailable: &available},
	)
	if err != nil {
		t.Fatalf("UpdateItem as super-admin: %v", err)
	}

	if updated.IsAvailable {
		t.Error("patch not applied")
	}
	if updated.RestaurantID != "tenant-a" {
		t.Errorf("ownership reassigned to %q", updated.RestaurantID)
	}
}

func TestUpdateItemMissingIsNotFoundNotForbidden(t *testing.T) {
	svc := NewService(newFakeRepository())

	name := "anything"
	_, err := svc.UpdateItem(
		context.Background(),
		adminPrincipal("tenant-b"),
		"no-such-item",
		UpdateMenuItemRequest{Name: &name},
	)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteItemCrossTenantForbidden(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	owned, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	err = svc.DeleteItem(context.Background(), adminPrincipal("tenant-b"), owned.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	if _, err := repo.GetByID(context.Background(), owned.ID); err != nil {
		t.Error("item deleted despite forbidden request")
	}
}

func TestDeleteItemSuperAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	owned, err := svc.CreateItem(
		context.Background(),
		adminPrincipal("tenant-a"),
		createRequest(),
	)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := svc.DeleteItem(context.Background(), superAdminPrincipal(), owned.ID); err != nil {
		t.Fatalf("DeleteItem as super-admin: %v", err)
	}

	if _, err := repo.GetByID(context.Background(), owned.ID); !errors.Is(err, core.ErrNotFound) {
		t.Error("item still present after delete")
	}
}
