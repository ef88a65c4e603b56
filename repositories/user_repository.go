package repositories

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/types"
	"gorm.io/gorm"
)

const userNotFound = "Usuário não encontrado"

// UserWithCounts is a user row plus its relation counters.
type UserWithCounts struct {
	models.User
	ScamCount    int64
	CommentCount int64
	LikeCount    int64
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	LinkGoogle(ctx context.Context, id uint, googleID string, avatar *string) error
	List(ctx context.Context, offset, limit int) ([]UserWithCounts, int64, error)
	GetWithCounts(ctx context.Context, id uint) (*UserWithCounts, error)
	UpdateProfile(ctx context.Context, id uint, patch types.UserPatch) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
	SetActive(ctx context.Context, id uint, active bool) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.User, error)
}

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userCountColumns = `users.*,
	(SELECT COUNT(*) FROM scams WHERE scams.user_id = users.id) AS scam_count,
	(SELECT COUNT(*) FROM comments WHERE comments.user_id = users.id) AS comment_count,
	(SELECT COUNT(*) FROM likes WHERE likes.user_id = users.id) AS like_count`

func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error, userNotFound)
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateError(err, userNotFound)
	}
	return &user, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err, userNotFound)
	}
	return &user, nil
}

func (r *PostgresUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, translateError(err, userNotFound)
	}
	return &user, nil
}

func (r *PostgresUserRepository) LinkGoogle(ctx context.Context, id uint, googleID string, avatar *string) error {
	updates := map[string]interface{}{"google_id": googleID}
	if avatar != nil {
		updates["avatar"] = gorm.Expr("COALESCE(avatar, ?)", *avatar)
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return requireAffected(result, userNotFound)
}

func (r *PostgresUserRepository) List(ctx context.Context, offset, limit int) ([]UserWithCounts, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, userNotFound)
	}

	var rows []UserWithCounts
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(userCountColumns).
		Order("users.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, translateError(err, userNotFound)
	}
	return rows, total, nil
}

func (r *PostgresUserRepository) GetWithCounts(ctx context.Context, id uint) (*UserWithCounts, error) {
	var rows []UserWithCounts
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(userCountColumns).
		Where("users.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, userNotFound)
	}
	if len(rows) == 0 {
		return nil, translateError(gorm.ErrRecordNotFound, userNotFound)
	}
	return &rows[0], nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uint, patch types.UserPatch) error {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Avatar != nil {
		updates["avatar"] = *patch.Avatar
	}
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return requireAffected(result, userNotFound)
}

func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash)
	return requireAffected(result, userNotFound)
}

func (r *PostgresUserRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	return requireAffected(result, userNotFound)
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, translateError(err, userNotFound)
}

func (r *PostgresUserRepository) Recent(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, translateError(err, userNotFound)
}
