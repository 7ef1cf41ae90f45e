// AngelaMos | 2026
// role.go

package core

import (
	"fmt"
)

// Role is the closed set of principal roles. Authorization logic switches
// on this type; an unparsed string never reaches a check.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	default:
		return "", fmt.Errorf("parse role %q: %w", s, ErrInvalidInput)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// IsSuperAdmin reports whether the role bypasses tenant-ownership checks.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// CanManageCatalog reports whether the role may mutate menu items and
// categories at all. Customers are read-only.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
