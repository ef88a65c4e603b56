package repositories

import (
	"context"
	"errors"

	"github.com/alerta-golpe/api-go/models"
	"gorm.io/gorm"
)

type LikeRepository interface {
	// Toggle adds the like when absent and removes it otherwise, returning the new state.
	Toggle(ctx context.Context, scamID, userID uint) (bool, error)
	CountForScam(ctx context.Context, scamID uint) (int64, error)
	CountForOwner(ctx context.Context, ownerID uint) (int64, error)
}

type PostgresLikeRepository struct {
	db *gorm.DB
}

func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Toggle(ctx context.Context, scamID, userID uint) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("scam_id = ? AND user_id = ?", scamID, userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			liked = true
			return tx.Create(&models.Like{ScamID: scamID, UserID: userID}).Error
		}
		if err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if err != nil {
		return false, translateError(err, scamNotFound)
	}
	return liked, nil
}

func (r *PostgresLikeRepository) CountForScam(ctx context.Context, scamID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Where("scam_id = ?", scamID).Count(&total).Error
	return total, translateError(err, scamNotFound)
}

// CountForOwner sums likes received across every scam owned by ownerID.
func (r *PostgresLikeRepository) CountForOwner(ctx context.Context, ownerID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Joins("JOIN scams ON scams.id = likes.scam_id").
		Where("scams.user_id = ?", ownerID).
		Count(&total).Error
	return total, translateError(err, userNotFound)
}
