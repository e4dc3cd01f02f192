package console

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"elevatorops-console/view"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids
	ErrSessionNotFound = errors.New("session not found")
	ErrScreenNotFound  = errors.New("screen not found")
)

// Manager owns the open console sessions
type Manager struct {
	repos       repository.RepositoryContainerInterface
	registry    *view.Registry
	config      *models.Config
	logger      logger.Logger
	idleTimeout time.Duration
	now         func() time.Time

	mu         sync.RWMutex
	workspaces map[string]*Workspace
}

func NewManager(repos repository.RepositoryContainerInterface, registry *view.Registry, cfg *models.Config, log logger.Logger) *Manager {
	return &Manager{
		repos:       repos,
		registry:    registry,
		config:      cfg,
		logger:      log,
		idleTimeout: cfg.SessionIdleTimeout,
		now:         time.Now,
		workspaces:  make(map[string]*Workspace),
	}
}

// Open creates a workspace with a fresh set of screens
func (m *Manager) Open() *Workspace {
	id := uuid.New().String()
	w := newWorkspace(id, m.repos, m.registry, m.config, m.logger, m.now())

	m.mu.Lock()
	m.workspaces[id] = w
	m.mu.Unlock()

	m.logger.Infof("Opened console session %s", id)
	return w
}

// Get returns a workspace and marks it as used
func (m *Manager) Get(id string) (*Workspace, error) {
	m.mu.RLock()
	w, ok := m.workspaces[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	w.touch(m.now())
	return w, nil
}

// Close removes a workspace and unregisters its screens
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	w, ok := m.workspaces[id]
	delete(m.workspaces, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	w.close()
	m.logger.Infof("Closed console session %s", id)
	return nil
}

// SweepIdle closes sessions unused for longer than the idle timeout
func (m *Manager) SweepIdle() int {
	if m.idleTimeout <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var idle []*Workspace
	for id, w := range m.workspaces {
		if w.LastSeen().Before(cutoff) {
			idle = append(idle, w)
			delete(m.workspaces, id)
		}
	}
	m.mu.Unlock()

	for _, w := range idle {
		w.close()
	}
	if len(idle) > 0 {
		m.logger.Infof("Swept %d idle console sessions", len(idle))
	}
	return len(idle)
}

// Count returns the number of open sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.workspaces)
}

// RefreshAll refreshes every collection that has at least one open screen
func (m *Manager) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, collection := range m.registry.Collections() {
		if err := m.registry.RefreshCollection(ctx, collection); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
