package memory

import (
	"context"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
)

const userNotFound = "Usuário não encontrado"

type UserRepository struct {
	s *Store
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return apperrors.Conflict("Registro já existe")
		}
		if user.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *user.GoogleID {
			return apperrors.Conflict("Registro já existe")
		}
	}

	if user.ID == 0 {
		user.ID = r.s.id()
	}
	r.s.stamp(&user.CreatedAt, &user.UpdatedAt)
	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

func (r *UserRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	for _, user := range r.s.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, notFound(userNotFound)
}

func (r *UserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *UserRepository) LinkGoogle(_ context.Context, id uint, googleID string, avatar *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return notFound(userNotFound)
	}
	user.GoogleID = &googleID
	if user.Avatar == nil && avatar != nil {
		value := *avatar
		user.Avatar = &value
	}
	return nil
}

func (r *UserRepository) withCounts(user *models.User) repositories.UserWithCounts {
	row := repositories.UserWithCounts{User: *user}
	for _, scam := range r.s.scams {
		if scam.UserID == user.ID {
			row.ScamCount++
		}
	}
	for _, comment := range r.s.comments {
		if comment.UserID == user.ID {
			row.CommentCount++
		}
	}
	for _, like := range r.s.likes {
		if like.UserID == user.ID {
			row.LikeCount++
		}
	}
	return row
}

func (r *UserRepository) List(_ context.Context, offset, limit int) ([]repositories.UserWithCounts, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, 0, r.s.Fail
	}

	rows := make([]repositories.UserWithCounts, 0, len(r.s.users))
	for _, user := range r.s.users {
		rows = append(rows, r.withCounts(user))
	}
	newestFirst(rows,
		func(u repositories.UserWithCounts) time.Time { return u.CreatedAt },
		func(u repositories.UserWithCounts) uint { return u.ID })

	return page(rows, offset, limit), int64(len(rows)), nil
}

func (r *UserRepository) GetWithCounts(_ context.Context, id uint) (*repositories.UserWithCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	user, ok := r.s.users[id]
	if !ok {
		return nil, notFound(userNotFound)
	}
	row := r.withCounts(user)
	return &row, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id uint, patch types.UserPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	user, ok := r.s.users[id]
	if !ok {
		return notFound(userNotFound)
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Bio != nil {
		bio := *patch.Bio
		user.Bio = &bio
	}
	if patch.Avatar != nil {
		avatar := *patch.Avatar
		user.Avatar = &avatar
	}
	user.UpdatedAt = r.s.tick()
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id uint, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	user, ok := r.s.users[id]
	if !ok {
		return notFound(userNotFound)
	}
	user.Password = hash
	return nil
}

func (r *UserRepository) SetActive(_ context.Context, id uint, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	user, ok := r.s.users[id]
	if !ok {
		return notFound(userNotFound)
	}
	user.IsActive = active
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	return int64(len(r.s.users)), nil
}

func (r *UserRepository) Recent(_ context.Context, limit int) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	users := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, *user)
	}
	newestFirst(users,
		func(u models.User) time.Time { return u.CreatedAt },
		func(u models.User) uint { return u.ID })
	return page(users, 0, limit), nil
}

// SetAdmin flips the admin flag. Accounts are promoted out of band, so the
// repository interface has no equivalent.
func (s *Store) SetAdmin(id uint, admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.IsAdmin = admin
	}
}
