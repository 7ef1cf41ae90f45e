// AngelaMos | 2026
// role_test.go

package core

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"customer", RoleCustomer, false},
		{"admin", RoleAdmin, false},
		{"super-admin", RoleSuperAdmin, false},
		{"superadmin", "", true},
		{"Admin", "", true},
		{"", "", true},
		{"root", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tt.input, got)
				continue
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseRole(%q): error = %v, want ErrInvalidInput", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRoleCanManageCatalog(t *testing.T) {
	if RoleCustomer.CanManageCatalog() {
		t.Error("customer must not manage the catalog")
	}
	if !RoleAdmin.CanManageCatalog() {
		t.Error("admin must manage the catalog")
	}
	if !RoleSuperAdmin.CanManageCatalog() {
		t.Error("super-admin must manage the catalog")
	}
}

func TestRoleIsSuperAdmin(t *testing.T) {
	if RoleAdmin.IsSuperAdmin() {
		t.Error("admin must not bypass ownership")
	}
	if !RoleSuperAdmin.IsSuperAdmin() {
		t.Error("super-admin must bypass ownership")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleCustomer.Valid() || !RoleAdmin.Valid() || !RoleSuperAdmin.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("guest").Valid() {
		t.Error("unknown role must be invalid")
	}
	if Role("").Valid() {
		t.Error("zero role must be invalid")
	}
}
