// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/eatgreet/internal/auth"
	"github.com/angelamos/eatgreet/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Create registers a new principal. Roles are fixed at creation: customers
// and restaurant admins self-register, the super-admin exists only through
// seeding. Admins must carry a restaurant name, nobody else may.
func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name string,
	role core.Role,
	restaurantName string,
) (*auth.UserInfo, error) {
	switch role {
	case core.RoleCustomer:
		if restaurantName != "" {
			return nil, fmt.Errorf(
				"create user: restaurant name requires admin role: %w",
				core.ErrInvalidInput,
			)
		}
	case core.RoleAdmin:
		if restaurantName == "" {
			return nil, fmt.Errorf(
				"create user: admin requires a restaurant name: %w",
				core.ErrInvalidInput,
			)
		}
	default:
		return nil, fmt.Errorf(
			"create user: role %q cannot self-register: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
	}
	if restaurantName != "" {
		user.RestaurantName = &restaurantName
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.RestaurantName != nil {
		if !user.IsAdmin() {
			return nil, fmt.Errorf(
				"update user: restaurant name requires admin role: %w",
				core.ErrInvalidInput,
			)
		}
		user.RestaurantName = req.RestaurantName
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

// ListRestaurants returns every admin account for the super-admin
// dashboard.
func (s *Service) ListRestaurants(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, core.RoleAdmin)
}

func (s *Service) CountByRole(
	ctx context.Context,
	role core.Role,
) (int, error) {
	return s.repo.CountByRole(ctx, role)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateUserRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	return s.UpdateUser(ctx, userID, req)
}

func (s *Service) DeleteMe(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("delete me: %w", core.ErrUnauthorized)
	}

	return s.repo.SoftDelete(ctx, userID)
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CanDeleteUser: self-deletion is always allowed; otherwise only the
// super-admin may delete accounts, and never another super-admin.
func (s *Service) CanDeleteUser(
	ctx context.Context,
	requesterID, targetID string,
) error {
	if requesterID == targetID {
		return nil
	}

	requester, err := s.repo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	if !requester.IsSuperAdmin() {
		return fmt.Errorf("delete user: %w", core.ErrForbidden)
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.IsSuperAdmin() {
		return fmt.Errorf(
			"cannot delete super-admin users: %w",
			core.ErrForbidden,
		)
	}

	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		RestaurantName: u.RestaurantDisplayName(),
		TokenVersion:   u.TokenVersion,
	}
}

var _ auth.UserProvider = (*Service)(nil)
