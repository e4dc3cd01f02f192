package view

import "elevatorops-console/models"

// Snapshot is the serializable state of one screen
type Snapshot struct {
	Collection string            `json:"collection"`
	Paging     string            `json:"paging"`
	Params     models.ViewParams `json:"params"`
	Projection interface{}       `json:"projection"`
	Loaded     bool              `json:"loaded"`
	Error      string            `json:"error,omitempty"`
}

// Snapshot captures params, projection and error marker together
func (e *Engine[T]) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	projection := e.projectionLocked()
	s := Snapshot{
		Collection: e.opts.Collection,
		Paging:     e.opts.Mode.String(),
		Params:     e.params,
		Projection: projection,
		Loaded:     e.loaded,
	}
	s.Params.Page = projection.Page
	if e.err != nil {
		s.Error = e.err.Error()
	}
	return s
}
