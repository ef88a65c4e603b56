package memory

import (
	"context"
	"time"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
)

const commentNotFound = "Comentário não encontrado"

type CommentRepository struct {
	s *Store
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{s: s}
}

var _ repositories.CommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.scams[comment.ScamID]; !ok {
		return foreignKey(scamNotFound)
	}
	if _, ok := r.s.users[comment.UserID]; !ok {
		return foreignKey(userNotFound)
	}
	if comment.ID == 0 {
		comment.ID = r.s.id()
	}
	r.s.stamp(&comment.CreatedAt, &comment.UpdatedAt)
	stored := *comment
	stored.User = models.User{}
	stored.Scam = models.Scam{}
	r.s.comments[comment.ID] = &stored
	return nil
}

// hydrate copies a stored comment and fills its associations.
func (r *CommentRepository) hydrate(comment *models.Comment, withScam bool) models.Comment {
	copied := *comment
	if user, ok := r.s.users[comment.UserID]; ok {
		copied.User = *user
	}
	if withScam {
		if scam, ok := r.s.scams[comment.ScamID]; ok {
			copied.Scam = *scam
		}
	}
	return copied
}

func (r *CommentRepository) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, notFound(commentNotFound)
	}
	hydrated := r.hydrate(comment, false)
	return &hydrated, nil
}

func (r *CommentRepository) UpdateContent(_ context.Context, id uint, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	comment, ok := r.s.comments[id]
	if !ok {
		return notFound(commentNotFound)
	}
	comment.Content = content
	comment.UpdatedAt = r.s.tick()
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.comments[id]; !ok {
		return notFound(commentNotFound)
	}
	delete(r.s.comments, id)
	return nil
}

func (r *CommentRepository) sorted(match func(*models.Comment) bool, withScam bool) []models.Comment {
	comments := []models.Comment{}
	for _, comment := range r.s.comments {
		if match(comment) {
			comments = append(comments, r.hydrate(comment, withScam))
		}
	}
	newestFirst(comments,
		func(c models.Comment) time.Time { return c.CreatedAt },
		func(c models.Comment) uint { return c.ID })
	return comments
}

func (r *CommentRepository) ListByScam(_ context.Context, scamID uint, offset, limit int) ([]models.Comment, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, 0, r.s.Fail
	}
	comments := r.sorted(func(c *models.Comment) bool { return c.ScamID == scamID }, false)
	return page(comments, offset, limit), int64(len(comments)), nil
}

func (r *CommentRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	return int64(len(r.s.comments)), nil
}

func (r *CommentRepository) CountByUser(_ context.Context, userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	var total int64
	for _, comment := range r.s.comments {
		if comment.UserID == userID {
			total++
		}
	}
	return total, nil
}

func (r *CommentRepository) Recent(_ context.Context, limit int) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	comments := r.sorted(func(*models.Comment) bool { return true }, true)
	return page(comments, 0, limit), nil
}
