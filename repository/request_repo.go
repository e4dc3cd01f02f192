package repository

import (
	"context"
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"net/http"
)

// RequestRepository is the maintenance request repository
type RequestRepository struct {
	*EntityRepository[models.MaintenanceRequest]
}

func NewRequestRepository(gateway dal.Gateway, log logger.Logger) *RequestRepository {
	return &RequestRepository{
		EntityRepository: NewEntityRepository(gateway, Endpoint{
			Collection: CollectionRequests,
			Path:       "/requests",
			ListKey:    "requests",
			ItemKey:    "request",
		}, func(r models.MaintenanceRequest) models.ID { return r.ID }, log),
	}
}

func (r *RequestRepository) Create(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error) {
	return r.EntityRepository.Create(ctx, input)
}

func (r *RequestRepository) Update(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error) {
	return r.EntityRepository.Update(ctx, id, input)
}

// UpdateStatus sends a lifecycle status change
func (r *RequestRepository) UpdateStatus(ctx context.Context, id models.ID, status models.RequestStatus) (*models.MaintenanceRequest, error) {
	return r.Action(ctx, http.MethodPatch, id, "status", &models.StatusChange{Status: status})
}

// Assign sets the technician and moves the request to ASSIGNED in one call
func (r *RequestRepository) Assign(ctx context.Context, id models.ID, technicianID models.ID) (*models.MaintenanceRequest, error) {
	return r.Action(ctx, http.MethodPatch, id, "assign", &models.Assignment{
		TechnicianID: technicianID,
		Status:       models.RequestStatusAssigned,
	})
}
