package services

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"strings"
)

// RequestService handles request creation, explicit edits and deletion
type RequestService struct {
	requestRepo  repository.RequestRepositoryInterface
	elevatorRepo repository.ReaderInterface[models.Elevator]
	refresher    CollectionRefresher
	logger       logger.Logger
}

func NewRequestService(
	requestRepo repository.RequestRepositoryInterface,
	elevatorRepo repository.ReaderInterface[models.Elevator],
	refresher CollectionRefresher,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		elevatorRepo: elevatorRepo,
		refresher:    refresher,
		logger:       logger,
	}
}

func (s *RequestService) GetRequest(ctx context.Context, id models.ID) (*models.MaintenanceRequest, error) {
	return s.requestRepo.Get(ctx, id)
}

// CreateRequest validates the input, defaults the location from the elevator
// and refreshes the request views once the backend accepted it
func (s *RequestService) CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error) {
	if input == nil {
		return nil, models.NewGuardFailure(models.ErrValidation, "request payload is required")
	}
	input.Description = strings.TrimSpace(input.Description)
	input.AccessDetails = strings.TrimSpace(input.AccessDetails)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Location == nil {
		input.Location = s.elevatorLocation(ctx, input.ElevatorID)
	}

	created, err := s.requestRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, repository.CollectionRequests)
	return created, nil
}

// UpdateRequest applies an explicit edit. Status and technician only change
// through the lifecycle operations.
func (s *RequestService) UpdateRequest(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error) {
	if input == nil {
		return nil, models.NewGuardFailure(models.ErrValidation, "request payload is required")
	}
	if input.Status != "" {
		return nil, models.NewGuardFailure(models.ErrStatusNotEditable, "status changes go through a transition")
	}
	if !input.AssignedTechnicianID.IsZero() {
		return nil, models.NewGuardFailure(models.ErrStatusNotEditable, "technicians are set through assignment")
	}
	input.Description = strings.TrimSpace(input.Description)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated, err := s.requestRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, repository.CollectionRequests)
	return updated, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id models.ID) error {
	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx, repository.CollectionRequests)
	return nil
}

// elevatorLocation returns the coordinates of an elevator, nil when unknown
func (s *RequestService) elevatorLocation(ctx context.Context, id models.ID) *models.Location {
	if elevator, ok := s.elevatorRepo.Lookup(id); ok {
		return elevator.DefaultLocation()
	}
	elevator, err := s.elevatorRepo.Get(ctx, id)
	if err != nil {
		s.logger.Warnf("Could not load elevator %s for default location: %v", id, err)
		return nil
	}
	return elevator.DefaultLocation()
}

func (s *RequestService) refresh(ctx context.Context, collection string) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.RefreshCollection(ctx, collection); err != nil {
		s.logger.Warnf("Failed to refresh %s views after write: %v", collection, err)
	}
}
