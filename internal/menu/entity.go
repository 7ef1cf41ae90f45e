// AngelaMos | 2026
// entity.go

package menu

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MenuItem is tenant-scoped: RestaurantID is the owning admin's user id,
// stamped at creation and never writable afterwards.
type MenuItem struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        float64   `db:"price"`
	CategoryID   string    `db:"category_id"`
	RestaurantID string    `db:"restaurant_id"`
	IsAvailable  bool      `db:"is_available"`
	IsVeg        bool      `db:"is_veg"`
	Media        MediaList `db:"media"`
	Labels       Labels    `db:"labels"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// OwnedBy reports whether the item belongs to the given principal id.
func (m *MenuItem) OwnedBy(principalID string) bool {
	return m.RestaurantID == principalID
}

type Media struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

// MediaList stores the ordered media descriptors as a jsonb column.
type MediaList []Media

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		m = MediaList{}
	}
	return json.Marshal(m)
}

func (m *MediaList) Scan(src any) error {
	return scanJSON(src, m, "media")
}

// Labels stores the item's label set as a jsonb column.
type Labels []string

func (l Labels) Value() (driver.Value, error) {
	if l == nil {
		l = Labels{}
	}
	return json.Marshal(l)
}

func (l *Labels) Scan(src any) error {
	return scanJSON(src, l, "labels")
}

func scanJSON(src, dest any, column string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("scan %s: unsupported type %T", column, src)
	}
}
