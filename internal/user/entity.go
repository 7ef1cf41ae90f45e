// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/eatgreet/internal/core"
)

type User struct {
	ID             string     `db:"id"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	Name           string     `db:"name"`
	Role           core.Role  `db:"role"`
	RestaurantName *string    `db:"restaurant_name"`
	TokenVersion   int        `db:"token_version"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsAdmin() bool {
	return u.Role == core.RoleAdmin
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == core.RoleSuperAdmin
}

// RestaurantDisplayName is empty for non-admin users; only admins carry a
// tenant name.
func (u *User) RestaurantDisplayName() string {
	if u.RestaurantName == nil {
		return ""
	}
	return *u.RestaurantName
}
