package memory

import (
	"context"

	"github.com/alerta-golpe/api-go/repositories"
)

type SavedScamRepository struct {
	s *Store
}

func (s *Store) SavedScams() *SavedScamRepository {
	return &SavedScamRepository{s: s}
}

var _ repositories.SavedScamRepository = (*SavedScamRepository)(nil)

func (r *SavedScamRepository) Save(_ context.Context, userID, scamID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.scams[scamID]; !ok {
		return foreignKey(scamNotFound)
	}
	key := savedKey{userID: userID, scamID: scamID}
	if _, ok := r.s.saved[key]; !ok {
		r.s.saved[key] = r.s.tick()
	}
	return nil
}

func (r *SavedScamRepository) Unsave(_ context.Context, userID, scamID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	key := savedKey{userID: userID, scamID: scamID}
	if _, ok := r.s.saved[key]; !ok {
		return notFound("Denúncia não está salva")
	}
	delete(r.s.saved, key)
	return nil
}

func (r *SavedScamRepository) IsSaved(_ context.Context, userID, scamID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return false, r.s.Fail
	}
	_, ok := r.s.saved[savedKey{userID: userID, scamID: scamID}]
	return ok, nil
}
