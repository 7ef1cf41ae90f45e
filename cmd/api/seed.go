// AngelaMos | 2026
// seed.go

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/angelamos/eatgreet/internal/category"
	"github.com/angelamos/eatgreet/internal/core"
	"github.com/angelamos/eatgreet/internal/menu"
	"github.com/angelamos/eatgreet/internal/user"
)

// seedDatabase loads the development fixture set: the platform super-admin,
// one restaurant with two dishes, and the shared category list. It goes
// through the repositories directly because user.Service refuses to mint
// super-admin accounts.
func seedDatabase(
	ctx context.Context,
	db *core.Database,
	logger *slog.Logger,
) error {
	users := user.NewRepository(db.DB)
	categories := category.NewRepository(db.DB)
	menuItems := menu.NewRepository(db.DB)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "admin"
	}

	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	superAdmin := &user.User{
		ID:           uuid.New().String(),
		Email:        "admin@eatgreet.com",
		PasswordHash: passwordHash,
		Name:         "Super Admin",
		Role:         core.RoleSuperAdmin,
	}
	if err := users.Create(ctx, superAdmin); err != nil {
		return fmt.Errorf("seed: create super admin: %w", err)
	}

	restaurantName := "John's Kitchen"
	restaurantAdmin := &user.User{
		ID:             uuid.New().String(),
		Email:          "admin@gmail.com",
		PasswordHash:   passwordHash,
		Name:           "John Doe",
		Role:           core.RoleAdmin,
		RestaurantName: &restaurantName,
	}
	if err := users.Create(ctx, restaurantAdmin); err != nil {
		return fmt.Errorf("seed: create restaurant admin: %w", err)
	}

	categorySeed := []struct {
		name string
		icon string
	}{
		{"Breakfast", "Egg"},
		{"Lunch", "Utensils"},
		{"Dinner", "Moon"},
		{"Drinks", "Coffee"},
		{"Main Course", "UtensilsCrossed"},
		{"Desserts", "IceCream"},
	}

	categoryIDs := make(map[string]string, len(categorySeed))
	for _, c := range categorySeed {
		cat := &category.Category{
			ID:        uuid.New().String(),
			Name:      c.name,
			Icon:      c.icon,
			CreatedBy: superAdmin.ID,
		}
		if err := categories.Create(ctx, cat); err != nil {
			return fmt.Errorf("seed: create category %s: %w", c.name, err)
		}
		categoryIDs[c.name] = cat.ID
	}

	dishes := []*menu.MenuItem{
		{
			ID:           uuid.New().String(),
			Name:         "Classic Burger",
			Description:  "Juicy beef patty with cheese and lettuce",
			Price:        299,
			CategoryID:   categoryIDs["Main Course"],
			RestaurantID: restaurantAdmin.ID,
			IsAvailable:  true,
		},
		{
			ID:           uuid.New().String(),
			Name:         "Pancakes",
			Description:  "Fluffy pancakes with maple syrup",
			Price:        199,
			CategoryID:   categoryIDs["Breakfast"],
			RestaurantID: restaurantAdmin.ID,
			IsAvailable:  true,
		},
	}

	for _, dish := range dishes {
		if err := menuItems.Create(ctx, dish); err != nil {
			return fmt.Errorf("seed: create menu item %s: %w", dish.Name, err)
		}
	}

	logger.Info("seed data loaded",
		"super_admin", superAdmin.Email,
		"restaurant", restaurantName,
		"categories", len(categorySeed),
		"menu_items", len(dishes),
	)

	return nil
}
