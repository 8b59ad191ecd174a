package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

type ReportRepository interface {
	Create(ctx context.Context, r *model.Report) error
	ListByType(ctx context.Context, t model.ReportType) ([]*model.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepository{db: db} }

func (r *reportRepository) Create(ctx context.Context, rep *model.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reportRepository) ListByType(ctx context.Context, t model.ReportType) ([]*model.Report, error) {
	var out []*model.Report
	err := r.db.WithContext(ctx).
		Where("report_type = ?", t).
		Order("timestamp DESC").Order("report_id DESC").
		Find(&out).Error
	return out, err
}
