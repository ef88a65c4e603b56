package memory

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
)

type LikeRepository struct {
	s *Store
}

func (s *Store) Likes() *LikeRepository {
	return &LikeRepository{s: s}
}

var _ repositories.LikeRepository = (*LikeRepository)(nil)

func (r *LikeRepository) Toggle(_ context.Context, scamID, userID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return false, r.s.Fail
	}
	for id, like := range r.s.likes {
		if like.ScamID == scamID && like.UserID == userID {
			delete(r.s.likes, id)
			return false, nil
		}
	}
	if _, ok := r.s.scams[scamID]; !ok {
		return false, foreignKey(scamNotFound)
	}
	if _, ok := r.s.users[userID]; !ok {
		return false, foreignKey(userNotFound)
	}

	like := &models.Like{ID: r.s.id(), ScamID: scamID, UserID: userID, CreatedAt: r.s.tick()}
	r.s.likes[like.ID] = like
	return true, nil
}

func (r *LikeRepository) CountForScam(_ context.Context, scamID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	var total int64
	for _, like := range r.s.likes {
		if like.ScamID == scamID {
			total++
		}
	}
	return total, nil
}

func (r *LikeRepository) CountForOwner(_ context.Context, ownerID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	var total int64
	for _, like := range r.s.likes {
		if scam, ok := r.s.scams[like.ScamID]; ok && scam.UserID == ownerID {
			total++
		}
	}
	return total, nil
}
