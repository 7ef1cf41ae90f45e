// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/angelamos/eatgreet/internal/core"
)

type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return core.ErrDuplicateKey
	}
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = user.ID
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	user, ok := f.byID[id]
	if !ok || user.IsDeleted() {
		return nil, core.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return f.GetByID(context.Background(), id)
}

func (f *fakeRepository) Update(_ context.Context, user *User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	user, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) IncrementTokenVersion(_ context.Context, id string) error {
	user, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	user.TokenVersion++
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	user, ok := f.byID[id]
	if !ok || user.IsDeleted() {
		return core.ErrNotFound
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ ListUsersParams) ([]User, int, error) {
	out := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		if !u.IsDeleted() {
			out = append(out, *u)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListByRole(_ context.Context, role core.Role) ([]User, error) {
	var out []User
	for _, u := range f.byID {
		if u.Role == role && !u.IsDeleted() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeRepository) CountByRole(_ context.Context, role core.Role) (int, error) {
	users, err := f.ListByRole(context.Background(), role)
	return len(users), err
}

func (f *fakeRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func seedUser(t *testing.T, repo *fakeRepository, id string, role core.Role) *User {
	t.Helper()
	user := &User{
		ID:    id,
		Email: id + "@example.com",
		Name:  id,
		Role:  role,
	}
	if role == core.RoleAdmin {
		name := id + "'s Kitchen"
		user.RestaurantName = &name
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
	return user
}

func TestCreateRoleRules(t *testing.T) {
	tests := []struct {
		name           string
		role           core.Role
		restaurantName string
		wantErr        bool
	}{
		{"customer without restaurant", core.RoleCustomer, "", false},
		{"customer with restaurant", core.RoleCustomer, "Sneaky Diner", true},
		{"admin with restaurant", core.RoleAdmin, "John's Kitchen", false},
		{"admin without restaurant", core.RoleAdmin, "", true},
		{"super-admin cannot self-register", core.RoleSuperAdmin, "", true},
		{"unknown role", core.Role("root"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepository())

			info, err := svc.Create(
				context.Background(),
				"User@Example.COM",
				"hash",
				"Test User",
				tt.role,
				tt.restaurantName,
			)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidInput) {
					t.Errorf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}

			if info.Email != strings.ToLower("User@Example.COM") {
				t.Errorf("email not normalized: %q", info.Email)
			}
			if info.Role != tt.role {
				t.Errorf("Role = %q, want %q", info.Role, tt.role)
			}
		})
	}
}

func TestUpdateUserRestaurantNameRequiresAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	customer := seedUser(t, repo, "cust-1", core.RoleCustomer)

	name := "Not A Restaurant"
	_, err := svc.UpdateUser(
		context.Background(),
		customer.ID,
		UpdateUserRequest{RestaurantName: &name},
	)
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}

	admin := seedUser(t, repo, "admin-1", core.RoleAdmin)
	updated, err := svc.UpdateUser(
		context.Background(),
		admin.ID,
		UpdateUserRequest{RestaurantName: &name},
	)
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.RestaurantName == nil || *updated.RestaurantName != name {
		t.Error("restaurant name not updated for admin")
	}
}

func TestCanDeleteUser(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	superAdmin := seedUser(t, repo, "root-1", core.RoleSuperAdmin)
	otherSuper := seedUser(t, repo, "root-2", core.RoleSuperAdmin)
	admin := seedUser(t, repo, "admin-1", core.RoleAdmin)
	customer := seedUser(t, repo, "cust-1", core.RoleCustomer)

	// Self-deletion is always allowed.
	if err := svc.CanDeleteUser(context.Background(), customer.ID, customer.ID); err != nil {
		t.Errorf("self delete: %v", err)
	}

	// Admins cannot delete other accounts.
	err := svc.CanDeleteUser(context.Background(), admin.ID, customer.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("admin deleting customer: err = %v, want ErrForbidden", err)
	}

	// The super-admin may delete admins and customers.
	if err := svc.CanDeleteUser(context.Background(), superAdmin.ID, admin.ID); err != nil {
		t.Errorf("super-admin deleting admin: %v", err)
	}

	// But never another super-admin.
	err = svc.CanDeleteUser(context.Background(), superAdmin.ID, otherSuper.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("super-admin deleting super-admin: err = %v, want ErrForbidden", err)
	}
}

func TestListRestaurants(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	seedUser(t, repo, "admin-1", core.RoleAdmin)
	seedUser(t, repo, "admin-2", core.RoleAdmin)
	seedUser(t, repo, "cust-1", core.RoleCustomer)
	seedUser(t, repo, "root-1", core.RoleSuperAdmin)

	restaurants, err := svc.ListRestaurants(context.Background())
	if err != nil {
		t.Fatalf("ListRestaurants: %v", err)
	}
	if len(restaurants) != 2 {
		t.Errorf("got %d restaurants, want 2", len(restaurants))
	}
	for _, r := range restaurants {
		if r.Role != core.RoleAdmin {
			t.Errorf("non-admin %q in restaurant list", r.ID)
		}
	}
}

func TestDeleteMeSoftDeletes(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	customer := seedUser(t, repo, "cust-1", core.RoleCustomer)

	if err := svc.DeleteMe(context.Background(), customer.ID); err != nil {
		t.Fatalf("DeleteMe: %v", err)
	}

	if _, err := svc.GetMe(context.Background(), customer.ID); !errors.Is(err, core.ErrNotFound) {
		t.Error("deleted user still resolvable")
	}
}
