package memory

import (
	"context"
	"sort"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
)

type CategoryRepository struct {
	s *Store
}

func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{s: s}
}

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) List(_ context.Context) ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	categories := make([]models.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		categories = append(categories, *category)
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories, nil
}

func (r *CategoryRepository) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	category, ok := r.s.categories[slug]
	if !ok {
		return nil, notFound("Categoria não encontrada")
	}
	copied := *category
	return &copied, nil
}

func (r *CategoryRepository) Upsert(_ context.Context, categories []models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	for _, category := range categories {
		copied := category
		if existing, ok := r.s.categories[category.Slug]; ok {
			copied.ID = existing.ID
		} else {
			copied.ID = r.s.id()
		}
		r.s.categories[category.Slug] = &copied
	}
	return nil
}
