// AngelaMos | 2026
// entity.go

package category

import (
	"time"
)

// Category is a global resource shared by every tenant. CreatedBy records
// provenance only; it is never consulted for authorization.
type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
