// AngelaMos | 2026
// service_test.go

package category

import (
	"context"
	"errors"
	"testing"

	"github.com/angelamos/eatgreet/internal/core"
)

type fakeRepository struct {
	byID   map[string]*Category
	byName map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   make(map[string]*Category),
		byName: make(map[string]string),
	}
}

func (f *fakeRepository) Create(_ context.Context, category *Category) error {
	if _, exists := f.byName[category.Name]; exists {
		return core.ErrDuplicateKey
	}
	copied := *category
	f.byID[category.ID] = &copied
	f.byName[category.Name] = category.ID
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Category, error) {
	category, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context) ([]Category, error) {
	out := make([]Category, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakeRepository) Update(_ context.Context, category *Category) error {
	existing, ok := f.byID[category.ID]
	if !ok {
		return core.ErrNotFound
	}
	delete(f.byName, existing.Name)
	copied := *category
	f.byID[category.ID] = &copied
	f.byName[category.Name] = category.ID
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	existing, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	delete(f.byName, existing.Name)
	delete(f.byID, id)
	return nil
}

func TestCreateCategoryRecordsCreator(t *testing.T) {
	svc := NewService(newFakeRepository())

	category, err := svc.CreateCategory(
		context.Background(),
		"admin-1",
		CreateCategoryRequest{Name: "Breakfast", Icon: "Egg"},
	)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if category.CreatedBy != "admin-1" {
		t.Errorf("CreatedBy = %q, want admin-1", category.CreatedBy)
	}
	if category.ID == "" {
		t.Error("ID must be assigned")
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.CreateCategory(
		context.Background(),
		"admin-1",
		CreateCategoryRequest{Name: "Drinks", Icon: "Coffee"},
	)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	_, err = svc.CreateCategory(
		context.Background(),
		"admin-2",
		CreateCategoryRequest{Name: "Drinks", Icon: "Cup"},
	)
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

// The taxonomy is shared: there is no ownership check, so an admin may
// edit a category created by someone else.
func TestUpdateCategoryByDifferentAdmin(t *testing.T) {
	svc := NewService(newFakeRepository())

	created, err := svc.CreateCategory(
		context.Background(),
		"admin-1",
		CreateCategoryRequest{Name: "Lunch", Icon: "Utensils"},
	)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	icon := "Fork"
	updated, err := svc.UpdateCategory(
		context.Background(),
		created.ID,
		UpdateCategoryRequest{Icon: &icon},
	)
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}

	if updated.Icon != "Fork" {
		t.Errorf("Icon = %q, want Fork", updated.Icon)
	}
	if updated.Name != "Lunch" {
		t.Errorf("unpatched field changed: %q", updated.Name)
	}
	if updated.CreatedBy != "admin-1" {
		t.Errorf("CreatedBy changed to %q", updated.CreatedBy)
	}
}

func TestUpdateCategoryMissing(t *testing.T) {
	svc := NewService(newFakeRepository())

	name := "anything"
	_, err := svc.UpdateCategory(
		context.Background(),
		"no-such-id",
		UpdateCategoryRequest{Name: &name},
	)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	svc := NewService(newFakeRepository())

	created, err := svc.CreateCategory(
		context.Background(),
		"admin-1",
		CreateCategoryRequest{Name: "Desserts", Icon: "IceCream"},
	)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if err := svc.DeleteCategory(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	if _, err := svc.GetCategory(context.Background(), created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Error("category still present after delete")
	}

	count, err := svc.CountCategories(context.Background())
	if err != nil {
		t.Fatalf("CountCategories: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
