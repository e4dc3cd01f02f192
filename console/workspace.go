package console

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"elevatorops-console/view"
	"sync"
	"time"
)

// Screen names addressable by the UI
const (
	ScreenRequests    = "requests"
	ScreenReports     = "reports"
	ScreenClients     = "clients"
	ScreenElevators   = "elevators"
	ScreenContracts   = "contracts"
	ScreenTechnicians = "technicians"
)

// Screen is the non-generic surface of a view engine
type Screen interface {
	view.Refresher
	Params() models.ViewParams
	Mode() view.PagingMode
	SetSearchTerm(s string)
	SetStatusFilter(v string)
	SetPriorityFilter(v string)
	SetSortKey(k string)
	GoToPage(ctx context.Context, n int) error
	Sync(ctx context.Context) error
	Retry(ctx context.Context) error
	Err() error
	DismissError()
	Snapshot() view.Snapshot
}

// ScreenUpdate is a partial change of view parameters; nil fields are kept
type ScreenUpdate struct {
	Search   *string `json:"search"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Sort     *string `json:"sort"`
	Page     *int    `json:"page"`
}

// Workspace holds the screens of one console session. Screens are never shared
// between workspaces.
type Workspace struct {
	ID        string
	CreatedAt time.Time

	screens    map[string]Screen
	unregister []func()

	mu       sync.Mutex
	lastSeen time.Time
}

func newWorkspace(id string, repos repository.RepositoryContainerInterface, registry *view.Registry, cfg *models.Config, log logger.Logger, now time.Time) *Workspace {
	log = log.WithFields(map[string]interface{}{"session": id})

	screens := map[string]Screen{
		ScreenRequests:    view.NewEngine(view.RequestScreen(repos.GetRequestRepository(), cfg.RequestsPageSize, cfg.RequestsFetchLimit), log),
		ScreenReports:     view.NewEngine(view.ReportScreen(repos.GetReportRepository(), cfg.ReportsPageSize), log),
		ScreenClients:     view.NewEngine(view.ClientScreen(repos.GetClientRepository(), cfg.DefaultPageSize), log),
		ScreenElevators:   view.NewEngine(view.ElevatorScreen(repos.GetElevatorRepository(), cfg.DefaultPageSize), log),
		ScreenContracts:   view.NewEngine(view.ContractScreen(repos.GetContractRepository(), cfg.DefaultPageSize), log),
		ScreenTechnicians: view.NewEngine(view.TechnicianScreen(repos.GetTechnicianRepository(), cfg.DefaultPageSize), log),
	}

	w := &Workspace{
		ID:        id,
		CreatedAt: now,
		screens:   screens,
		lastSeen:  now,
	}
	for _, s := range screens {
		w.unregister = append(w.unregister, registry.Register(s))
	}
	return w
}

// Screen returns the named screen
func (w *Workspace) Screen(name string) (Screen, bool) {
	s, ok := w.screens[name]
	return s, ok
}

// LastSeen returns the last time the workspace was used
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) close() {
	for _, unregister := range w.unregister {
		unregister()
	}
	w.unregister = nil
}

// Apply changes the parameters of a screen, then fetches if the change made
// the resident data stale. The page is applied last so it is not reset by a
// filter change in the same update. Each update costs at most one fetch.
func Apply(ctx context.Context, s Screen, u ScreenUpdate) error {
	if u.Search != nil {
		s.SetSearchTerm(*u.Search)
	}
	if u.Status != nil {
		s.SetStatusFilter(*u.Status)
	}
	if u.Priority != nil {
		s.SetPriorityFilter(*u.Priority)
	}
	if u.Sort != nil {
		s.SetSortKey(*u.Sort)
	}
	// a server page move already carries the new filters in its one fetch
	if u.Page != nil && s.Mode() == view.ServerPaging {
		return s.GoToPage(ctx, *u.Page)
	}
	if err := s.Sync(ctx); err != nil {
		return err
	}
	if u.Page != nil {
		return s.GoToPage(ctx, *u.Page)
	}
	return nil
}
