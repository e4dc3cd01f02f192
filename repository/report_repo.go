package repository

import (
	"context"
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
)

// ReportRepository is the post-repair report repository
type ReportRepository struct {
	*EntityRepository[models.Report]
}

func NewReportRepository(gateway dal.Gateway, log logger.Logger) *ReportRepository {
	return &ReportRepository{
		EntityRepository: NewEntityRepository(gateway, Endpoint{
			Collection: CollectionReports,
			Path:       "/reports",
			ListKey:    "reports",
			ItemKey:    "report",
		}, func(r models.Report) models.ID { return r.ID }, log),
	}
}

func (r *ReportRepository) Create(ctx context.Context, input *models.CreateReportInput) (*models.Report, error) {
	return r.EntityRepository.Create(ctx, input)
}

func (r *ReportRepository) Update(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error) {
	return r.EntityRepository.Update(ctx, id, input)
}
