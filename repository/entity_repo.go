package repository

import (
	"context"
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
)

// Endpoint describes where an entity lives on the backend and how its
// payloads are keyed
type Endpoint struct {
	Collection   string // registry name, e.g. "requests"
	Path         string // e.g. "/requests"
	ListKey      string // e.g. "requests" for data.requests
	ItemKey      string // e.g. "request" for data.request
	UpdateMethod string // defaults to PATCH
}

// EntityRepository is the CRUD repository shared by every entity. It owns the
// resident collection, which is replaced wholesale on each successful list.
type EntityRepository[T any] struct {
	gateway  dal.Gateway
	endpoint Endpoint
	idOf     func(T) models.ID
	logger   logger.Logger

	seq      atomic.Uint64
	mu       sync.RWMutex
	applied  uint64
	resident *models.Page[T]
}

// NewEntityRepository creates a repository for one endpoint
func NewEntityRepository[T any](gateway dal.Gateway, endpoint Endpoint, idOf func(T) models.ID, log logger.Logger) *EntityRepository[T] {
	if endpoint.UpdateMethod == "" {
		endpoint.UpdateMethod = http.MethodPatch
	}
	return &EntityRepository[T]{
		gateway:  gateway,
		endpoint: endpoint,
		idOf:     idOf,
		logger:   log.WithFields(map[string]interface{}{"collection": endpoint.Collection}),
		resident: &models.Page[T]{Items: []T{}},
	}
}

// Collection returns the registry name of this repository
func (r *EntityRepository[T]) Collection() string {
	return r.endpoint.Collection
}

// List fetches a page and replaces the resident collection. A response that
// arrives after a newer one was applied is returned to its caller but not made
// resident.
func (r *EntityRepository[T]) List(ctx context.Context, q models.ListQuery) (*models.Page[T], error) {
	seq := r.seq.Add(1)

	env, err := r.gateway.Send(ctx, http.MethodGet, r.endpoint.Path, dal.RequestOptions{Query: q.Values()})
	if err != nil {
		r.logger.Errorf("Failed to list %s: %v", r.endpoint.Collection, err)
		return nil, normalizeFailure(err)
	}

	page, matched := NormalizeList[T](env, r.endpoint.ListKey)
	if !matched {
		r.logger.Warnf("Unrecognized list shape for %s, treating as empty", r.endpoint.Collection)
	}

	r.mu.Lock()
	if seq > r.applied {
		r.applied = seq
		r.resident = page
	} else {
		r.logger.Debugf("Discarding stale %s list response (seq %d <= %d)", r.endpoint.Collection, seq, r.applied)
	}
	r.mu.Unlock()

	r.logger.Debugf("Listed %d %s (total %d)", len(page.Items), r.endpoint.Collection, page.Total)
	return page, nil
}

// Get fetches one record
func (r *EntityRepository[T]) Get(ctx context.Context, id models.ID) (*T, error) {
	if id.IsZero() {
		return nil, models.NewGuardFailure(models.ErrValidation, "%s id is required", r.endpoint.ItemKey)
	}
	env, err := r.gateway.Send(ctx, http.MethodGet, r.itemPath(id), dal.RequestOptions{})
	if err != nil {
		r.logger.Errorf("Failed to get %s %s: %v", r.endpoint.ItemKey, id, err)
		return nil, normalizeFailure(err)
	}
	item, ok := NormalizeItem[T](env, r.endpoint.ItemKey)
	if !ok {
		r.logger.Warnf("Unrecognized %s payload for id %s", r.endpoint.ItemKey, id)
		return nil, &models.Failure{
			Kind:    models.ErrorKindShapeMismatch,
			Message: fmt.Sprintf("%s %s not found", r.endpoint.ItemKey, id),
			Err:     models.ErrNotFound,
		}
	}
	return item, nil
}

// Lookup finds a record in the resident collection without a remote call
func (r *EntityRepository[T]) Lookup(id models.ID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.resident.Items {
		if r.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Resident returns a copy of the resident collection
func (r *EntityRepository[T]) Resident() *models.Page[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := *r.resident
	cp.Items = append([]T(nil), r.resident.Items...)
	return &cp
}

// Create posts a new record. The returned item is nil when the backend only
// acknowledges the write.
func (r *EntityRepository[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	return r.write(ctx, http.MethodPost, r.endpoint.Path, body, "create")
}

// Update sends an edit for one record
func (r *EntityRepository[T]) Update(ctx context.Context, id models.ID, body interface{}) (*T, error) {
	if id.IsZero() {
		return nil, models.NewGuardFailure(models.ErrValidation, "%s id is required", r.endpoint.ItemKey)
	}
	return r.write(ctx, r.endpoint.UpdateMethod, r.itemPath(id), body, "update")
}

// Delete removes one record
func (r *EntityRepository[T]) Delete(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return models.NewGuardFailure(models.ErrValidation, "%s id is required", r.endpoint.ItemKey)
	}
	_, err := r.write(ctx, http.MethodDelete, r.itemPath(id), nil, "delete")
	return err
}

// Action posts to a sub-resource of one record, e.g. /requests/7/status
func (r *EntityRepository[T]) Action(ctx context.Context, method string, id models.ID, action string, body interface{}) (*T, error) {
	if id.IsZero() {
		return nil, models.NewGuardFailure(models.ErrValidation, "%s id is required", r.endpoint.ItemKey)
	}
	return r.write(ctx, method, r.itemPath(id)+"/"+action, body, action)
}

func (r *EntityRepository[T]) write(ctx context.Context, method, path string, body interface{}, op string) (*T, error) {
	r.logger.Infof("Sending %s %s", op, path)

	env, err := r.gateway.Send(ctx, method, path, dal.RequestOptions{Body: body})
	if err != nil {
		r.logger.Errorf("Failed to %s %s: %v", op, r.endpoint.ItemKey, err)
		return nil, normalizeFailure(err)
	}
	if !WriteSucceeded(env) {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = fmt.Sprintf("%s %s was not acknowledged", r.endpoint.ItemKey, op)
		}
		r.logger.Warnf("Backend did not acknowledge %s on %s", op, path)
		return nil, &models.Failure{
			Kind:       models.ErrorKindRemoteRejected,
			Message:    msg,
			StatusCode: env.StatusCode,
			Err:        models.ErrWriteNotAcknowledged,
		}
	}

	r.invalidate()
	item, _ := NormalizeItem[T](env, r.endpoint.ItemKey)
	r.logger.Infof("%s %s succeeded", r.endpoint.ItemKey, op)
	return item, nil
}

// invalidate drops the resident collection after an accepted write, together
// with any list response still in flight from before it. Lookups miss until
// the next list.
func (r *EntityRepository[T]) invalidate() {
	r.mu.Lock()
	r.applied = max(r.applied, r.seq.Load())
	r.resident = &models.Page[T]{Items: []T{}}
	r.mu.Unlock()
}

func (r *EntityRepository[T]) itemPath(id models.ID) string {
	return r.endpoint.Path + "/" + url.PathEscape(id.String())
}

// normalizeFailure makes sure nothing but *models.Failure leaves a repository
func normalizeFailure(err error) error {
	var f *models.Failure
	if errors.As(err, &f) {
		return f
	}
	return &models.Failure{
		Kind:    models.ErrorKindTransport,
		Message: err.Error(),
		Err:     err,
	}
}
