// AngelaMos | 2026
// repository.go

package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/eatgreet/internal/core"
)

type Repository interface {
	Create(ctx context.Context, item *MenuItem) error
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	List(ctx context.Context, params ListMenuItemsParams) ([]MenuItem, error)
	CountByRestaurant(ctx context.Context, restaurantID string) (int, error)

	// UpdateOwned and DeleteOwned enforce tenant ownership inside the
	// statement itself: the row is touched only when it belongs to
	// ownerID or bypassOwner is set (super-admin). A zero-row result is
	// disambiguated into ErrNotFound vs ErrForbidden.
	UpdateOwned(
		ctx context.Context,
		item *MenuItem,
		ownerID string,
		bypassOwner bool,
	) error
	DeleteOwned(
		ctx context.Context,
		id, ownerID string,
		bypassOwner bool,
	) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const menuItemColumns = `
	id, name, description, price, category_id, restaurant_id,
	is_available, is_veg, media, labels, created_at, updated_at`

func (r *repository) Create(ctx context.Context, item *MenuItem) error {
	query := `
		INSERT INTO menu_items (
			id, name, description, price, category_id, restaurant_id,
			is_available, is_veg, media, labels
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, item, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.RestaurantID,
		item.IsAvailable,
		item.IsVeg,
		item.Media,
		item.Labels,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("create menu item: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create menu item: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*MenuItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM menu_items
		WHERE id = $1`, menuItemColumns)

	var item MenuItem
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get menu item: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	return &item, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListMenuItemsParams,
) ([]MenuItem, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.RestaurantID != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("restaurant_id = $%d", argIdx),
		)
		args = append(args, params.RestaurantID)
		argIdx++
	}

	if params.CategoryID != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("category_id = $%d", argIdx),
		)
		args = append(args, params.CategoryID)
		argIdx++
	}

	if params.OnlyVeg {
		conditions = append(conditions, "is_veg = true")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM menu_items
		%s
		ORDER BY created_at DESC`, menuItemColumns, whereClause)

	var items []MenuItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	return items, nil
}

func (r *repository) CountByRestaurant(
	ctx context.Context,
	restaurantID string,
) (int, error) {
	query := `SELECT COUNT(*) FROM menu_items WHERE restaurant_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, restaurantID); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}

	return count, nil
}

func (r *repository) UpdateOwned(
	ctx context.Context,
	item *MenuItem,
	ownerID string,
	bypassOwner bool,
) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category_id = $5,
		    is_available = $6, is_veg = $7, media = $8, labels = $9,
		    updated_at = NOW()
		WHERE id = $1 AND ($10 OR restaurant_id = $11)
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &item.UpdatedAt, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.IsAvailable,
		item.IsVeg,
		item.Media,
		item.Labels,
		bypassOwner,
		ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r.classifyMiss(ctx, item.ID, "update menu item")
	}
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("update menu item: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("update menu item: %w", err)
	}

	return nil
}

func (r *repository) DeleteOwned(
	ctx context.Context,
	id, ownerID string,
	bypassOwner bool,
) error {
	query := `
		DELETE FROM menu_items
		WHERE id = $1 AND ($2 OR restaurant_id = $3)`

	result, err := r.db.ExecContext(ctx, query, id, bypassOwner, ownerID)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}

	if rows == 0 {
		return r.classifyMiss(ctx, id, "delete menu item")
	}

	return nil
}

// classifyMiss turns a zero-row conditional mutation into the right error:
// a missing id is NotFound, an existing row that failed the ownership
// condition is Forbidden. Existence is checked second so NotFound wins when
// the row vanished concurrently.
func (r *repository) classifyMiss(
	ctx context.Context,
	id, op string,
) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM menu_items WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, core.ErrForbidden)
}

func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
