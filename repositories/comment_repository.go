package repositories

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"gorm.io/gorm"
)

const commentNotFound = "Comentário não encontrado"

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	UpdateContent(ctx context.Context, id uint, content string) error
	Delete(ctx context.Context, id uint) error
	ListByScam(ctx context.Context, scamID uint, offset, limit int) ([]models.Comment, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Comment, error)
}

type PostgresCommentRepository struct {
	db *gorm.DB
}

func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// Create inserts without checking the scam first; a dangling scam id
// comes back as a foreign key violation.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return translateError(r.db.WithContext(ctx).Omit("Scam", "User").Create(comment).Error, scamNotFound)
}

func (r *PostgresCommentRepository) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		return nil, translateError(err, commentNotFound)
	}
	return &comment, nil
}

func (r *PostgresCommentRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Update("content", content)
	return requireAffected(result, commentNotFound)
}

func (r *PostgresCommentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	return requireAffected(result, commentNotFound)
}

func (r *PostgresCommentRepository) ListByScam(ctx context.Context, scamID uint, offset, limit int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("scam_id = ?", scamID).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, scamNotFound)
	}

	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("scam_id = ?", scamID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, translateError(err, scamNotFound)
	}
	return comments, total, nil
}

func (r *PostgresCommentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&total).Error
	return total, translateError(err, commentNotFound)
}

func (r *PostgresCommentRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("user_id = ?", userID).Count(&total).Error
	return total, translateError(err, commentNotFound)
}

func (r *PostgresCommentRepository) Recent(ctx context.Context, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Scam").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, translateError(err, commentNotFound)
}
