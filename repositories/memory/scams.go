package memory

import (
	"context"
	"strings"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/lib/pq"
)

const scamNotFound = "Denúncia não encontrada"

type ScamRepository struct {
	s *Store
}

func (s *Store) Scams() *ScamRepository {
	return &ScamRepository{s: s}
}

var _ repositories.ScamRepository = (*ScamRepository)(nil)

func (r *ScamRepository) Create(_ context.Context, scam *models.Scam) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.users[scam.UserID]; !ok {
		return foreignKey(userNotFound)
	}
	if scam.ID == 0 {
		scam.ID = r.s.id()
	}
	if scam.Status == "" {
		scam.Status = models.ScamStatusPending
	}
	r.s.stamp(&scam.CreatedAt, &scam.UpdatedAt)
	stored := *scam
	stored.User = models.User{}
	r.s.scams[scam.ID] = &stored
	return nil
}

func (r *ScamRepository) FindByID(_ context.Context, id uint) (*models.Scam, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	scam, ok := r.s.scams[id]
	if !ok {
		return nil, notFound(scamNotFound)
	}
	copied := *scam
	return &copied, nil
}

func (r *ScamRepository) withCounts(scam *models.Scam) repositories.ScamWithCounts {
	row := repositories.ScamWithCounts{Scam: *scam}
	if owner, ok := r.s.users[scam.UserID]; ok {
		row.OwnerName = owner.Name
		row.OwnerAvatar = owner.Avatar
	}
	for _, comment := range r.s.comments {
		if comment.ScamID == scam.ID {
			row.CommentCount++
		}
	}
	for _, like := range r.s.likes {
		if like.ScamID == scam.ID {
			row.LikeCount++
		}
	}
	return row
}

func (r *ScamRepository) GetDetail(_ context.Context, id uint) (*repositories.ScamWithCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	scam, ok := r.s.scams[id]
	if !ok {
		return nil, notFound(scamNotFound)
	}
	row := r.withCounts(scam)
	return &row, nil
}

func (r *ScamRepository) matches(scam *models.Scam, filter types.ScamFilter) bool {
	if filter.Category != "" && scam.Category != filter.Category {
		return false
	}
	if filter.Status != "" && scam.Status != filter.Status {
		return false
	}
	if filter.Resolved != nil && scam.IsResolved != *filter.Resolved {
		return false
	}
	if filter.UserID != nil && scam.UserID != *filter.UserID {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(scam.Title), needle) &&
			!strings.Contains(strings.ToLower(scam.Description), needle) {
			return false
		}
	}
	if filter.SavedBy != nil {
		if _, ok := r.s.saved[savedKey{userID: *filter.SavedBy, scamID: scam.ID}]; !ok {
			return false
		}
	}
	return true
}

func (r *ScamRepository) List(_ context.Context, filter types.ScamFilter, offset, limit int) ([]repositories.ScamWithCounts, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, 0, r.s.Fail
	}

	rows := []repositories.ScamWithCounts{}
	for _, scam := range r.s.scams {
		if r.matches(scam, filter) {
			rows = append(rows, r.withCounts(scam))
		}
	}

	created := func(row repositories.ScamWithCounts) time.Time { return row.CreatedAt }
	if filter.SavedBy != nil {
		userID := *filter.SavedBy
		created = func(row repositories.ScamWithCounts) time.Time {
			return r.s.saved[savedKey{userID: userID, scamID: row.ID}]
		}
	}
	newestFirst(rows, created, func(row repositories.ScamWithCounts) uint { return row.ID })

	return page(rows, offset, limit), int64(len(rows)), nil
}

func (r *ScamRepository) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	scam, ok := r.s.scams[id]
	if !ok {
		return notFound(scamNotFound)
	}

	for column, value := range updates {
		switch column {
		case "title":
			scam.Title = value.(string)
		case "description":
			scam.Description = value.(string)
		case "category":
			scam.Category = value.(models.ScamCategory)
		case "status":
			scam.Status = value.(models.ScamStatus)
		case "scammer_website":
			scam.ScammerWebsite = value.(*string)
		case "scammer_domain":
			scam.ScammerDomain = value.(*string)
		case "scammer_phone":
			scam.ScammerPhone = value.(*string)
		case "amount_lost":
			scam.AmountLost = value.(*float64)
		case "evidence":
			scam.Evidence = value.(pq.StringArray)
		}
	}
	scam.UpdatedAt = r.s.tick()
	return nil
}

func (r *ScamRepository) Resolve(_ context.Context, id uint, note *string, links pq.StringArray, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	scam, ok := r.s.scams[id]
	if !ok {
		return notFound(scamNotFound)
	}
	if scam.IsResolved {
		return apperrors.Conflict(repositories.ScamAlreadyResolved)
	}

	scam.IsResolved = true
	scam.ResolvedAt = &at
	scam.ResolutionNote = note
	scam.ResolutionLinks = links
	scam.UpdatedAt = r.s.tick()
	return nil
}

func (r *ScamRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.scams[id]; !ok {
		return notFound(scamNotFound)
	}
	delete(r.s.scams, id)

	for commentID, comment := range r.s.comments {
		if comment.ScamID == id {
			delete(r.s.comments, commentID)
		}
	}
	for likeID, like := range r.s.likes {
		if like.ScamID == id {
			delete(r.s.likes, likeID)
		}
	}
	for reportID, report := range r.s.reports {
		if report.ScamID == id {
			delete(r.s.reports, reportID)
		}
	}
	for key := range r.s.saved {
		if key.scamID == id {
			delete(r.s.saved, key)
		}
	}
	return nil
}

func (r *ScamRepository) IncrementViews(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	scam, ok := r.s.scams[id]
	if !ok {
		return notFound(scamNotFound)
	}
	scam.Views++
	return nil
}

func (r *ScamRepository) Count(_ context.Context, filter types.ScamFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	var total int64
	for _, scam := range r.s.scams {
		if r.matches(scam, filter) {
			total++
		}
	}
	return total, nil
}

func (r *ScamRepository) Recent(_ context.Context, limit int) ([]models.Scam, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	scams := make([]models.Scam, 0, len(r.s.scams))
	for _, scam := range r.s.scams {
		copied := *scam
		if owner, ok := r.s.users[scam.UserID]; ok {
			copied.User = *owner
		}
		scams = append(scams, copied)
	}
	newestFirst(scams,
		func(s models.Scam) time.Time { return s.CreatedAt },
		func(s models.Scam) uint { return s.ID })
	return page(scams, 0, limit), nil
}

func (r *ScamRepository) byDomain(domain string) []models.Scam {
	scams := []models.Scam{}
	for _, scam := range r.s.scams {
		if scam.ScammerDomain != nil && *scam.ScammerDomain == domain {
			scams = append(scams, *scam)
		}
	}
	newestFirst(scams,
		func(s models.Scam) time.Time { return s.CreatedAt },
		func(s models.Scam) uint { return s.ID })
	return scams
}

func (r *ScamRepository) CountByDomain(_ context.Context, domain string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	return int64(len(r.byDomain(domain))), nil
}

func (r *ScamRepository) FindByDomain(_ context.Context, domain string, limit int) ([]models.Scam, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return page(r.byDomain(domain), 0, limit), nil
}
