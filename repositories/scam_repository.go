package repositories

import (
	"context"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/types"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	scamNotFound        = "Denúncia não encontrada"
	ScamAlreadyResolved = "Denúncia já foi marcada como resolvida"
)

// ScamWithCounts is a scam row joined with its owner and relation counters.
type ScamWithCounts struct {
	models.Scam
	OwnerName    string
	OwnerAvatar  *string
	CommentCount int64
	LikeCount    int64
}

type ScamRepository interface {
	Create(ctx context.Context, scam *models.Scam) error
	FindByID(ctx context.Context, id uint) (*models.Scam, error)
	GetDetail(ctx context.Context, id uint) (*ScamWithCounts, error)
	List(ctx context.Context, filter types.ScamFilter, offset, limit int) ([]ScamWithCounts, int64, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	// Resolve closes a scam that is still open; a resolved scam yields Conflict.
	Resolve(ctx context.Context, id uint, note *string, links pq.StringArray, at time.Time) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	Count(ctx context.Context, filter types.ScamFilter) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Scam, error)
	CountByDomain(ctx context.Context, domain string) (int64, error)
	FindByDomain(ctx context.Context, domain string, limit int) ([]models.Scam, error)
}

type PostgresScamRepository struct {
	db *gorm.DB
}

func NewPostgresScamRepository(db *gorm.DB) *PostgresScamRepository {
	return &PostgresScamRepository{db: db}
}

const scamCountColumns = `scams.*,
	users.name AS owner_name,
	users.avatar AS owner_avatar,
	(SELECT COUNT(*) FROM comments WHERE comments.scam_id = scams.id) AS comment_count,
	(SELECT COUNT(*) FROM likes WHERE likes.scam_id = scams.id) AS like_count`

func (r *PostgresScamRepository) filtered(ctx context.Context, filter types.ScamFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Scam{})

	if filter.Category != "" {
		query = query.Where("scams.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("scams.status = ?", filter.Status)
	}
	if filter.Resolved != nil {
		query = query.Where("scams.is_resolved = ?", *filter.Resolved)
	}
	if filter.UserID != nil {
		query = query.Where("scams.user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(scams.title ILIKE ? OR scams.description ILIKE ?)", pattern, pattern)
	}
	if filter.SavedBy != nil {
		query = query.Joins("JOIN saved_scams ON saved_scams.scam_id = scams.id AND saved_scams.user_id = ?", *filter.SavedBy)
	}

	return query
}

func (r *PostgresScamRepository) Create(ctx context.Context, scam *models.Scam) error {
	return translateError(r.db.WithContext(ctx).Omit("User").Create(scam).Error, userNotFound)
}

func (r *PostgresScamRepository) FindByID(ctx context.Context, id uint) (*models.Scam, error) {
	var scam models.Scam
	if err := r.db.WithContext(ctx).First(&scam, id).Error; err != nil {
		return nil, translateError(err, scamNotFound)
	}
	return &scam, nil
}

func (r *PostgresScamRepository) GetDetail(ctx context.Context, id uint) (*ScamWithCounts, error) {
	var rows []ScamWithCounts
	err := r.db.WithContext(ctx).
		Model(&models.Scam{}).
		Select(scamCountColumns).
		Joins("JOIN users ON users.id = scams.user_id").
		Where("scams.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, scamNotFound)
	}
	if len(rows) == 0 {
		return nil, translateError(gorm.ErrRecordNotFound, scamNotFound)
	}
	return &rows[0], nil
}

func (r *PostgresScamRepository) List(ctx context.Context, filter types.ScamFilter, offset, limit int) ([]ScamWithCounts, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, scamNotFound)
	}

	order := "scams.created_at DESC"
	if filter.SavedBy != nil {
		order = "saved_scams.saved_at DESC"
	}

	var rows []ScamWithCounts
	err := r.filtered(ctx, filter).
		Select(scamCountColumns).
		Joins("JOIN users ON users.id = scams.user_id").
		Order(order).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, translateError(err, scamNotFound)
	}
	return rows, total, nil
}

func (r *PostgresScamRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.Scam{}).Where("id = ?", id).Updates(updates)
	return requireAffected(result, scamNotFound)
}

func (r *PostgresScamRepository) Resolve(ctx context.Context, id uint, note *string, links pq.StringArray, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Scam{}).
		Where("id = ? AND is_resolved = ?", id, false).
		Updates(map[string]interface{}{
			"is_resolved":      true,
			"resolved_at":      at,
			"resolution_note":  note,
			"resolution_links": links,
		})
	if result.Error != nil {
		return translateError(result.Error, scamNotFound)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// nothing matched: either the scam is gone or someone resolved it first
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return apperrors.Conflict(ScamAlreadyResolved)
}

func (r *PostgresScamRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Scam{}, id)
	return requireAffected(result, scamNotFound)
}

func (r *PostgresScamRepository) IncrementViews(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Scam{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	return requireAffected(result, scamNotFound)
}

func (r *PostgresScamRepository) Count(ctx context.Context, filter types.ScamFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, translateError(err, scamNotFound)
}

func (r *PostgresScamRepository) Recent(ctx context.Context, limit int) ([]models.Scam, error) {
	var scams []models.Scam
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&scams).Error
	return scams, translateError(err, scamNotFound)
}

func (r *PostgresScamRepository) CountByDomain(ctx context.Context, domain string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Scam{}).
		Where("scammer_domain = ?", domain).
		Count(&total).Error
	return total, translateError(err, scamNotFound)
}

func (r *PostgresScamRepository) FindByDomain(ctx context.Context, domain string, limit int) ([]models.Scam, error) {
	var scams []models.Scam
	err := r.db.WithContext(ctx).
		Where("scammer_domain = ?", domain).
		Order("created_at DESC").
		Limit(limit).
		Find(&scams).Error
	return scams, translateError(err, scamNotFound)
}
