package view

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"maps"
	"slices"
	"strings"
	"sync"
)

// PagingMode decides what a page means for one screen
type PagingMode int

const (
	// ClientPaging slices a fully resident collection
	ClientPaging PagingMode = iota
	// ServerPaging requests each page from the backend
	ServerPaging
)

func (m PagingMode) String() string {
	if m == ServerPaging {
		return "server"
	}
	return "client"
}

// FetchFunc is the list operation an engine pulls from
type FetchFunc[T any] func(ctx context.Context, q models.ListQuery) (*models.Page[T], error)

// Accessors expose the record fields used for local search, filtering and sorting
type Accessors[T any] struct {
	SearchFields []func(T) string
	Status       func(T) string
	Priority     func(T) string
	Sorts        map[string]Comparator[T]
}

// RemoteFilters marks filters the backend applies itself. They are forwarded in
// the list query and not applied again locally.
type RemoteFilters struct {
	Search   bool
	Status   bool
	Priority bool
}

// Options configure an Engine
type Options[T any] struct {
	Collection string
	Fetch      FetchFunc[T]
	Defaults   models.ViewParams
	Accessors  Accessors[T]
	Mode       PagingMode
	Remote     RemoteFilters
	// FetchLimit is sent as the limit in client paging mode, 0 leaves it to the backend
	FetchLimit int
}

// Engine is the collection view controller of one screen. It owns the view
// parameters and the resident page it fetched, and derives the projection
// from both on demand.
type Engine[T any] struct {
	opts   Options[T]
	logger logger.Logger

	mu           sync.Mutex
	params       models.ViewParams
	extra        map[string]string
	resident     *models.Page[T]
	loaded       bool
	appliedQuery models.ListQuery
	lastQuery    *models.ListQuery
	seq          uint64
	applied      uint64
	err          error
}

// NewEngine creates an engine with the default parameters and an empty resident page
func NewEngine[T any](opts Options[T], log logger.Logger) *Engine[T] {
	return &Engine[T]{
		opts: opts,
		logger: log.WithFields(map[string]interface{}{
			"screen": opts.Collection,
			"paging": opts.Mode.String(),
		}),
		params:   opts.Defaults.Normalized(),
		resident: &models.Page[T]{Items: []T{}},
	}
}

// Collection returns the collection this engine displays
func (e *Engine[T]) Collection() string {
	return e.opts.Collection
}

// Mode returns the paging mode
func (e *Engine[T]) Mode() PagingMode {
	return e.opts.Mode
}

// Params returns a copy of the current view parameters
func (e *Engine[T]) Params() models.ViewParams {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

func (e *Engine[T]) SetSearchTerm(s string) {
	e.update(func(p *models.ViewParams) { p.SearchTerm = strings.TrimSpace(s) })
}

func (e *Engine[T]) SetStatusFilter(v string) {
	e.update(func(p *models.ViewParams) { p.StatusFilter = v })
}

func (e *Engine[T]) SetPriorityFilter(v string) {
	e.update(func(p *models.ViewParams) { p.PriorityFilter = v })
}

// SetSortKey selects a sort key. Unknown keys keep the resident order.
func (e *Engine[T]) SetSortKey(k string) {
	e.update(func(p *models.ViewParams) { p.SortKey = k })
}

// update applies a parameter change and goes back to the first page
func (e *Engine[T]) update(change func(p *models.ViewParams)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	change(&e.params)
	e.params.Page = 1
	e.params = e.params.Normalized()
}

// GoToPage moves to clamp(n, 1, totalPages). In client mode this only slices the
// resident set. In server mode the page is fetched unless it is already resident
// for the current filters.
func (e *Engine[T]) GoToPage(ctx context.Context, n int) error {
	e.mu.Lock()
	totalPages := e.totalPagesLocked()
	e.params.Page = clampPage(n, totalPages)
	q := e.queryLocked()
	applied := e.appliedQuery
	applied.Page = q.Page
	needFetch := e.opts.Mode == ServerPaging &&
		(!e.loaded || e.resident.Page != e.params.Page || !sameQuery(q, applied))
	e.mu.Unlock()

	if !needFetch {
		return nil
	}
	return e.fetch(ctx, q)
}

// Sync fetches only when the current parameters made the resident data stale,
// i.e. a remote filter or the server page changed since the last applied fetch
func (e *Engine[T]) Sync(ctx context.Context) error {
	e.mu.Lock()
	q := e.queryLocked()
	stale := !e.loaded || !sameQuery(q, e.appliedQuery)
	e.mu.Unlock()

	if !stale {
		return nil
	}
	return e.fetch(ctx, q)
}

// Refresh re-issues the fetch and replaces the resident page wholesale. A non-nil
// extra replaces the additional query parameters kept for later fetches.
func (e *Engine[T]) Refresh(ctx context.Context, extra map[string]string) error {
	e.mu.Lock()
	if extra != nil {
		e.extra = maps.Clone(extra)
	}
	q := e.queryLocked()
	e.mu.Unlock()

	return e.fetch(ctx, q)
}

// Retry re-issues the last fetch exactly as it was sent
func (e *Engine[T]) Retry(ctx context.Context) error {
	e.mu.Lock()
	var q models.ListQuery
	if e.lastQuery != nil {
		q = *e.lastQuery
	} else {
		q = e.queryLocked()
	}
	e.mu.Unlock()

	return e.fetch(ctx, q)
}

// Mutate runs a write and refreshes after it completes. A failed write leaves
// the resident page as it was and is returned unchanged.
func (e *Engine[T]) Mutate(ctx context.Context, write func(ctx context.Context) error) error {
	if err := write(ctx); err != nil {
		e.logger.Warnf("Write failed, keeping resident data: %v", err)
		return err
	}
	return e.Refresh(ctx, nil)
}

// Err returns the error marker of the last failed fetch
func (e *Engine[T]) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// DismissError clears the error marker
func (e *Engine[T]) DismissError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = nil
}

// Loaded reports whether at least one fetch was applied
func (e *Engine[T]) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

func (e *Engine[T]) fetch(ctx context.Context, q models.ListQuery) error {
	e.mu.Lock()
	e.seq++
	seq := e.seq
	e.lastQuery = &q
	e.mu.Unlock()

	page, err := e.pull(ctx, q)

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq <= e.applied {
		e.logger.Debugf("Discarding stale response (seq %d <= %d)", seq, e.applied)
		return err
	}
	e.applied = seq

	if err != nil {
		e.err = err
		e.logger.Warnf("Fetch failed, keeping %d resident items: %v", len(e.resident.Items), err)
		return err
	}
	if page == nil {
		page = &models.Page[T]{}
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	e.resident = page
	e.appliedQuery = q
	e.loaded = true
	e.err = nil
	if e.opts.Mode == ServerPaging && page.Page > 0 {
		e.params.Page = page.Page
	}
	e.params.Page = clampPage(e.params.Page, e.totalPagesLocked())
	return nil
}

// pull runs one fetch. In client mode a backend that caps its page size below
// the total is asked for the remaining pages, and the merged set becomes the
// resident collection. A failed follow-up page fails the whole pull.
func (e *Engine[T]) pull(ctx context.Context, q models.ListQuery) (*models.Page[T], error) {
	first, err := e.opts.Fetch(ctx, q)
	if err != nil || first == nil || e.opts.Mode != ClientPaging {
		return first, err
	}
	if len(first.Items) == 0 || first.Total <= len(first.Items) {
		return first, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = len(first.Items)
	}
	pages := first.TotalPages
	if pages <= 1 {
		pages = models.TotalPagesFor(first.Total, limit)
	}

	all := slices.Clone(first.Items)
	for n := 2; n <= pages && len(all) < first.Total; n++ {
		next := q
		next.Page = n
		next.Limit = limit
		page, err := e.opts.Fetch(ctx, next)
		if err != nil {
			return nil, err
		}
		if page == nil || len(page.Items) == 0 {
			break
		}
		all = append(all, page.Items...)
	}
	if len(all) < first.Total {
		e.logger.Warnf("Backend reported %d items but served %d", first.Total, len(all))
	}
	return &models.Page[T]{Items: all, Total: len(all), Page: 1, Limit: len(all), TotalPages: 1}, nil
}

// queryLocked builds the list query for the current parameters
func (e *Engine[T]) queryLocked() models.ListQuery {
	q := models.ListQuery{Extra: maps.Clone(e.extra)}
	if e.opts.Mode == ServerPaging {
		q.Page = e.params.Page
		q.Limit = e.params.PageSize
	} else {
		q.Limit = e.opts.FetchLimit
	}
	if e.opts.Remote.Search {
		q.Search = e.params.SearchTerm
	}
	if e.opts.Remote.Status {
		q.Status = e.params.StatusFilter
	}
	if e.opts.Remote.Priority {
		q.Priority = e.params.PriorityFilter
	}
	return q
}

func (e *Engine[T]) totalPagesLocked() int {
	if e.opts.Mode == ServerPaging {
		return e.resident.TotalPages
	}
	return models.TotalPagesFor(len(e.filterLocked()), e.params.PageSize)
}

// Projection returns the filtered, sorted and paginated view of the resident page
func (e *Engine[T]) Projection() models.Projection[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.projectionLocked()
}

func (e *Engine[T]) projectionLocked() models.Projection[T] {
	items := e.filterLocked()
	if order, ok := e.opts.Accessors.Sorts[e.params.SortKey]; ok {
		slices.SortStableFunc(items, order)
	}

	if e.opts.Mode == ServerPaging {
		return models.Projection[T]{
			Items:      items,
			Total:      e.resident.Total,
			Page:       clampPage(e.params.Page, e.resident.TotalPages),
			TotalPages: e.resident.TotalPages,
		}
	}

	total := len(items)
	totalPages := models.TotalPagesFor(total, e.params.PageSize)
	page := clampPage(e.params.Page, totalPages)
	start := min((page-1)*e.params.PageSize, total)
	end := min(start+e.params.PageSize, total)
	return models.Projection[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// filterLocked returns a fresh slice of the resident items passing the local filters
func (e *Engine[T]) filterLocked() []T {
	term := strings.ToLower(e.params.SearchTerm)
	status := e.params.StatusFilter
	priority := e.params.PriorityFilter
	acc := e.opts.Accessors

	out := make([]T, 0, len(e.resident.Items))
	for _, item := range e.resident.Items {
		if !e.opts.Remote.Status && status != models.FilterAll && acc.Status != nil && acc.Status(item) != status {
			continue
		}
		if !e.opts.Remote.Priority && priority != models.FilterAll && acc.Priority != nil && acc.Priority(item) != priority {
			continue
		}
		if !e.opts.Remote.Search && term != "" && !matches(item, term, acc.SearchFields) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches[T any](item T, term string, fields []func(T) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}

func clampPage(n, totalPages int) int {
	return max(1, min(n, max(1, totalPages)))
}

func sameQuery(a, b models.ListQuery) bool {
	return a.Page == b.Page && a.Limit == b.Limit && a.Search == b.Search &&
		a.Status == b.Status && a.Priority == b.Priority && maps.Equal(a.Extra, b.Extra)
}
