package repositories

import (
	"context"

	"github.com/alerta-golpe/api-go/models"
	"gorm.io/gorm"
)

const reportNotFound = "Relatório não encontrado"

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error)
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) error
}

type PostgresReportRepository struct {
	db *gorm.DB
}

func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) Create(ctx context.Context, report *models.Report) error {
	return translateError(r.db.WithContext(ctx).Omit("Scam", "User").Create(report).Error, scamNotFound)
}

func (r *PostgresReportRepository) CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).Where("status = ?", status).Count(&total).Error
	return total, translateError(err, reportNotFound)
}

func (r *PostgresReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Preload("Scam").
		Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, translateError(err, reportNotFound)
}

func (r *PostgresReportRepository) UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Report{}).Where("id = ?", id).Update("status", status)
	return requireAffected(result, reportNotFound)
}
