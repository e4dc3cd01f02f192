package worker

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"fmt"
)

// Service wraps the scheduler for main
type Service struct {
	scheduler *Scheduler
	logger    logger.Logger
}

// NewService creates a new worker service
func NewService(ctx context.Context, cfg *models.Config, target Target, log logger.Logger) (*Service, error) {
	scheduler, err := NewScheduler(ctx, cfg, target, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create background scheduler: %w", err)
	}
	return &Service{scheduler: scheduler, logger: log}, nil
}

// StartInBackground starts cron; jobs run on cron's own goroutines
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting background scheduler")
	return s.scheduler.Start()
}

// Stop stops the background scheduler
func (s *Service) Stop() {
	s.scheduler.Stop()
}

// GetHealthStatus returns the scheduler state for monitoring
func (s *Service) GetHealthStatus() map[string]interface{} {
	jobs := s.scheduler.Status()
	healthy := true
	for _, st := range jobs {
		if st.LastError != "" {
			healthy = false
		}
	}
	return map[string]interface{}{
		"running": s.scheduler.Running(),
		"healthy": healthy,
		"jobs":    jobs,
	}
}
