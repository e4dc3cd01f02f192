package services

import (
	"context"
	"elevatorops-console/infrastructure"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"slices"
	"time"
)

// transitions lists the status changes an operator may request. COMPLETED and
// CANCELLED each have exactly one reopen target.
var transitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestStatusPending:    {models.RequestStatusAssigned, models.RequestStatusCancelled},
	models.RequestStatusAssigned:   {models.RequestStatusOnWay, models.RequestStatusCancelled},
	models.RequestStatusOnWay:      {models.RequestStatusInProgress, models.RequestStatusCancelled},
	models.RequestStatusInProgress: {models.RequestStatusCompleted, models.RequestStatusCancelled},
	models.RequestStatusCompleted:  {models.RequestStatusInProgress},
	models.RequestStatusCancelled:  {models.RequestStatusPending},
}

// RequestLifecycleService guards maintenance request status changes
type RequestLifecycleService struct {
	requestRepo repository.RequestRepositoryInterface
	refresher   CollectionRefresher
	notifier    infrastructure.Notifier
	logger      logger.Logger
	now         func() time.Time
}

func NewRequestLifecycleService(
	requestRepo repository.RequestRepositoryInterface,
	refresher CollectionRefresher,
	notifier infrastructure.Notifier,
	logger logger.Logger,
) *RequestLifecycleService {
	if notifier == nil {
		notifier = infrastructure.NopNotifier{}
	}
	return &RequestLifecycleService{
		requestRepo: requestRepo,
		refresher:   refresher,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// CanTransition reports whether from -> to is in the transition table
func (s *RequestLifecycleService) CanTransition(from, to models.RequestStatus) bool {
	return slices.Contains(transitions[from], to)
}

// AllowedTransitions returns the targets reachable from a status through Transition.
// ASSIGNED is never listed because it is reached through Assign.
func (s *RequestLifecycleService) AllowedTransitions(from models.RequestStatus) []models.RequestStatus {
	var out []models.RequestStatus
	for _, to := range transitions[from] {
		if to != models.RequestStatusAssigned {
			out = append(out, to)
		}
	}
	return out
}

// Transition moves a request to a new status. Invalid targets are rejected
// before any write reaches the backend.
func (s *RequestLifecycleService) Transition(ctx context.Context, id models.ID, to models.RequestStatus, actor models.Actor) (*models.MaintenanceRequest, error) {
	if to == models.RequestStatusAssigned {
		return nil, models.NewGuardFailure(models.ErrAssignRequired, "a request is assigned by choosing a technician")
	}

	current, err := s.current(ctx, id)
	if err != nil {
		return nil, err
	}
	from := current.Status
	if !s.CanTransition(from, to) {
		s.logger.Warnf("Rejected transition %s -> %s for request %s", from, to, id)
		return nil, models.NewGuardFailure(models.ErrInvalidTransition, "cannot move request from %s to %s", from, to)
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, id, to)
	if err != nil {
		s.logger.Errorf("Failed to update status of request %s: %v", id, err)
		return nil, err
	}
	if updated == nil {
		copied := *current
		copied.Status = to
		updated = &copied
	}

	s.afterTransition(ctx, updated, from, actor)
	return updated, nil
}

// Assign sets the technician of a PENDING request and moves it to ASSIGNED
func (s *RequestLifecycleService) Assign(ctx context.Context, id models.ID, technicianID models.ID, actor models.Actor) (*models.MaintenanceRequest, error) {
	if technicianID.IsZero() {
		return nil, models.NewGuardFailure(models.ErrTechnicianRequired, "a technician must be selected")
	}

	current, err := s.current(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.RequestStatusPending {
		return nil, models.NewGuardFailure(models.ErrNotPending, "only pending requests can be assigned, request is %s", current.Status)
	}

	updated, err := s.requestRepo.Assign(ctx, id, technicianID)
	if err != nil {
		s.logger.Errorf("Failed to assign request %s to technician %s: %v", id, technicianID, err)
		return nil, err
	}
	if updated == nil {
		copied := *current
		updated = &copied
	}
	// the backend may echo the record without the fields it just set
	updated.Status = models.RequestStatusAssigned
	if updated.AssignedTechnicianID.IsZero() {
		updated.AssignedTechnicianID = technicianID
	}

	s.afterTransition(ctx, updated, models.RequestStatusPending, actor)
	return updated, nil
}

// current returns the resident copy when the request is on screen, so guard
// checks cost no remote call, and reads it from the backend otherwise. The
// backend stays the final authority on the write itself.
func (s *RequestLifecycleService) current(ctx context.Context, id models.ID) (*models.MaintenanceRequest, error) {
	if id.IsZero() {
		return nil, models.NewGuardFailure(models.ErrValidation, "request id is required")
	}
	if resident, ok := s.requestRepo.Lookup(id); ok {
		return &resident, nil
	}
	return s.requestRepo.Get(ctx, id)
}

// afterTransition notifies and resynchronizes views. Neither failure undoes a
// write the backend already accepted.
func (s *RequestLifecycleService) afterTransition(ctx context.Context, req *models.MaintenanceRequest, from models.RequestStatus, actor models.Actor) {
	s.logger.Infof("Request %s moved %s -> %s", req.ID, from, req.Status)

	event := models.StatusEvent{
		RequestID:       req.ID,
		ReferenceNumber: req.ReferenceNumber,
		From:            from,
		To:              req.Status,
		TechnicianID:    req.AssignedTechnicianID,
		Actor:           actor.ID,
		At:              s.now().UTC(),
	}
	if err := s.notifier.PublishStatusChange(ctx, event); err != nil {
		s.logger.Warnf("Failed to publish status change for request %s: %v", req.ID, err)
	}

	if s.refresher == nil {
		return
	}
	if err := s.refresher.RefreshCollection(ctx, repository.CollectionRequests); err != nil {
		s.logger.Warnf("Failed to refresh request views after transition: %v", err)
	}
}
