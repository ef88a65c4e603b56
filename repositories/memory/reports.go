package memory

import (
	"context"
	"time"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
)

type ReportRepository struct {
	s *Store
}

func (s *Store) Reports() *ReportRepository {
	return &ReportRepository{s: s}
}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

func (r *ReportRepository) Create(_ context.Context, report *models.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.scams[report.ScamID]; !ok {
		return foreignKey(scamNotFound)
	}
	if _, ok := r.s.users[report.UserID]; !ok {
		return foreignKey(userNotFound)
	}
	if report.ID == 0 {
		report.ID = r.s.id()
	}
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}
	r.s.stamp(&report.CreatedAt, &report.UpdatedAt)
	stored := *report
	stored.Scam = models.Scam{}
	stored.User = models.User{}
	r.s.reports[report.ID] = &stored
	return nil
}

func (r *ReportRepository) CountByStatus(_ context.Context, status models.ReportStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}
	var total int64
	for _, report := range r.s.reports {
		if report.Status == status {
			total++
		}
	}
	return total, nil
}

func (r *ReportRepository) ListByStatus(_ context.Context, status models.ReportStatus) ([]models.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	reports := []models.Report{}
	for _, report := range r.s.reports {
		if report.Status != status {
			continue
		}
		copied := *report
		if scam, ok := r.s.scams[report.ScamID]; ok {
			copied.Scam = *scam
		}
		if user, ok := r.s.users[report.UserID]; ok {
			copied.User = *user
		}
		reports = append(reports, copied)
	}
	newestFirst(reports,
		func(r models.Report) time.Time { return r.CreatedAt },
		func(r models.Report) uint { return r.ID })
	return reports, nil
}

func (r *ReportRepository) UpdateStatus(_ context.Context, id uint, status models.ReportStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	report, ok := r.s.reports[id]
	if !ok {
		return notFound("Relatório não encontrado")
	}
	report.Status = status
	report.UpdatedAt = r.s.tick()
	return nil
}
