package services

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Analytics source names reported in DashboardView.Failed
const (
	SourceRequestsByStatus   = "requestsByStatus"
	SourceRequestsByPriority = "requestsByPriority"
	SourceTopClients         = "topClients"
	SourceElevatorHealth     = "elevatorHealth"
)

// DashboardService composes the statistics and analytics sources into one view
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepositoryInterface
	delay         time.Duration
	logger        logger.Logger
}

func NewDashboardService(analyticsRepo repository.AnalyticsRepositoryInterface, delay time.Duration, logger logger.Logger) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		delay:         delay,
		logger:        logger,
	}
}

// Load fetches statistics first, which must succeed, then after the admission
// delay fetches the four analytics sources concurrently. A failed source
// leaves its slice nil and is listed in Failed.
func (s *DashboardService) Load(ctx context.Context) (*models.DashboardView, error) {
	stats, err := s.analyticsRepo.Statistics(ctx)
	if err != nil {
		s.logger.Errorf("Failed to load dashboard statistics: %v", err)
		return nil, err
	}
	view := &models.DashboardView{Statistics: stats}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed []string
	)
	record := func(source string, err error) bool {
		if err == nil {
			return true
		}
		s.logger.Warnf("Dashboard source %s failed: %v", source, err)
		mu.Lock()
		failed = append(failed, source)
		mu.Unlock()
		return false
	}

	// each source reports its own failure and returns nil so none cancels another
	g.Go(func() error {
		res, err := s.analyticsRepo.RequestsByStatus(ctx)
		if record(SourceRequestsByStatus, err) {
			view.RequestsByStatus = nonNil(res)
		}
		return nil
	})
	g.Go(func() error {
		res, err := s.analyticsRepo.RequestsByPriority(ctx)
		if record(SourceRequestsByPriority, err) {
			view.RequestsByPriority = nonNil(res)
		}
		return nil
	})
	g.Go(func() error {
		res, err := s.analyticsRepo.TopClients(ctx)
		if record(SourceTopClients, err) {
			view.TopClients = nonNil(res)
		}
		return nil
	})
	g.Go(func() error {
		res, err := s.analyticsRepo.ElevatorHealth(ctx)
		if record(SourceElevatorHealth, err) {
			view.ElevatorHealth = nonNil(res)
		}
		return nil
	})
	_ = g.Wait()

	view.Failed = sortedSources(failed)
	return view, nil
}

// nonNil keeps a successful empty source distinguishable from a failed one
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

var sourceOrder = []string{SourceRequestsByStatus, SourceRequestsByPriority, SourceTopClients, SourceElevatorHealth}

func sortedSources(failed []string) []string {
	if len(failed) == 0 {
		return nil
	}
	out := make([]string, 0, len(failed))
	for _, name := range sourceOrder {
		for _, f := range failed {
			if f == name {
				out = append(out, name)
			}
		}
	}
	return out
}
