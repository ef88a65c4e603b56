package repositories

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedScamRepository interface {
	Save(ctx context.Context, userID, scamID uint) error
	Unsave(ctx context.Context, userID, scamID uint) error
	IsSaved(ctx context.Context, userID, scamID uint) (bool, error)
}

type PostgresSavedScamRepository struct {
	db *gorm.DB
}

func NewPostgresSavedScamRepository(db *gorm.DB) *PostgresSavedScamRepository {
	return &PostgresSavedScamRepository{db: db}
}

func (r *PostgresSavedScamRepository) Save(ctx context.Context, userID, scamID uint) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SavedScam{UserID: userID, ScamID: scamID}).Error
	return translateError(err, scamNotFound)
}

func (r *PostgresSavedScamRepository) Unsave(ctx context.Context, userID, scamID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND scam_id = ?", userID, scamID).
		Delete(&models.SavedScam{})
	return requireAffected(result, "Denúncia não está salva")
}

func (r *PostgresSavedScamRepository) IsSaved(ctx context.Context, userID, scamID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedScam{}).
		Where("user_id = ? AND scam_id = ?", userID, scamID).
		Count(&count).Error
	return count > 0, translateError(err, scamNotFound)
}
