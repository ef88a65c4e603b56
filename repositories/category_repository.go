package repositories

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const categoryNotFound = "Categoria não encontrada"

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Upsert(ctx context.Context, categories []models.Category) error
}

type PostgresCategoryRepository struct {
	db *gorm.DB
}

func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&categories).Error
	return categories, translateError(err, categoryNotFound)
}

func (r *PostgresCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translateError(err, categoryNotFound)
	}
	return &category, nil
}

func (r *PostgresCategoryRepository) Upsert(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "tips", "risk_level", "sort_order"}),
		}).
		Create(&categories).Error
	return translateError(err, categoryNotFound)
}
