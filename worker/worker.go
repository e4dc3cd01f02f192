package worker

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron"
)

const (
	JobRefresh = "refresh"
	JobSweep   = "sweep"

	jobTimeout = 2 * time.Minute
)

// Target is the session side the scheduler drives
type Target interface {
	RefreshAll(ctx context.Context) error
	SweepIdle() int
}

// Scheduler runs the periodic background refresh and idle session sweep
type Scheduler struct {
	config  *models.Config
	logger  logger.Logger
	target  Target
	cronJob *cron.Cron
	locks   map[string]*jobLock
	status  *statusBook

	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool
}

func NewScheduler(ctx context.Context, cfg *models.Config, target Target, log logger.Logger) (*Scheduler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if target == nil {
		return nil, fmt.Errorf("target cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		config:  cfg,
		logger:  log,
		target:  target,
		cronJob: cron.New(),
		locks: map[string]*jobLock{
			JobRefresh: {},
			JobSweep:   {},
		},
		status: newStatusBook(),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start registers the configured schedules and starts cron. An empty
// schedule leaves its job disabled.
func (s *Scheduler) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler is already running")
	}

	if spec := s.config.RefreshSchedule; spec != "" {
		if err := s.cronJob.AddFunc(spec, func() { s.RunJob(JobRefresh) }); err != nil {
			s.running.Store(false)
			return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
		}
		s.logger.Infof("Background refresh scheduled: %s", spec)
	}
	if spec := s.config.SweepSchedule; spec != "" {
		if err := s.cronJob.AddFunc(spec, func() { s.RunJob(JobSweep) }); err != nil {
			s.running.Store(false)
			return fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
		}
		s.logger.Infof("Idle session sweep scheduled: %s", spec)
	}

	s.cronJob.Start()
	return nil
}

// Stop halts cron and cancels any job in flight
func (s *Scheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.cronJob.Stop()
	s.cancel()
	s.logger.Info("Background scheduler stopped")
}

// RunJob executes one job now. A run that finds the previous one still in
// flight is skipped.
func (s *Scheduler) RunJob(name string) {
	lock, ok := s.locks[name]
	if !ok {
		s.logger.Warnf("Unknown background job %q", name)
		return
	}
	if !lock.acquire() {
		s.status.skipped(name)
		s.logger.Debugf("Background job %s still running, skipping", name)
		return
	}
	defer lock.release()

	defer func() {
		if r := recover(); r != nil {
			s.status.finished(name, time.Now(), fmt.Errorf("panic: %v", r))
			s.logger.Errorf("Background job %s panicked: %v", name, r)
		}
	}()

	started := time.Now()
	var err error
	switch name {
	case JobRefresh:
		ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
		err = s.target.RefreshAll(ctx)
		cancel()
	case JobSweep:
		if n := s.target.SweepIdle(); n > 0 {
			s.logger.Infof("Closed %d idle console sessions", n)
		}
	}
	s.status.finished(name, started, err)

	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"job":      name,
			"duration": time.Since(started).String(),
		}).Warnf("Background job failed: %v", err)
	}
}

// Running reports whether cron has been started
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Status returns a copy of the per-job run records
func (s *Scheduler) Status() map[string]JobStatus {
	return s.status.snapshot()
}
