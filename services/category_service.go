package services

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/pkg/errors"
)

type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	return categories, errors.Wrap(err, "list categories")
}

func (s *CategoryService) Get(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categories.FindBySlug(ctx, slug)
	return category, errors.Wrapf(err, "get category %s", slug)
}

// EnsureDefaults upserts the built-in catalog, refreshing rows that already exist.
func (s *CategoryService) EnsureDefaults(ctx context.Context) error {
	return errors.Wrap(s.categories.Upsert(ctx, types.GetDefaultCategories()), "seed categories")
}
