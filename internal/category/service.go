// AngelaMos | 2026
// service.go

package category

import (
	"context"

	"github.com/google/uuid"
)

// Categories are deliberately not tenant-scoped: every admin shares one
// catalog taxonomy, and any admin or the super-admin may edit any entry
// regardless of who created it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCategory(
	ctx context.Context,
	id string,
) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) CountCategories(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) CreateCategory(
	ctx context.Context,
	createdBy string,
	req CreateCategoryRequest,
) (*Category, error) {
	category := &Category{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) UpdateCategory(
	ctx context.Context,
	id string,
	req UpdateCategoryRequest,
) (*Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
