package worker

import (
	"sync"
	"time"
)

// JobStatus records the outcome of a background job
type JobStatus struct {
	Runs         int           `json:"runs"`
	Skipped      int           `json:"skipped"`
	Failures     int           `json:"failures"`
	LastRun      *time.Time    `json:"lastRun,omitempty"`
	LastDuration time.Duration `json:"lastDuration"`
	LastError    string        `json:"lastError,omitempty"`
}

type statusBook struct {
	mu   sync.Mutex
	jobs map[string]*JobStatus
	now  func() time.Time
}

func newStatusBook() *statusBook {
	return &statusBook{jobs: make(map[string]*JobStatus), now: time.Now}
}

func (b *statusBook) entry(name string) *JobStatus {
	st, ok := b.jobs[name]
	if !ok {
		st = &JobStatus{}
		b.jobs[name] = st
	}
	return st
}

func (b *statusBook) finished(name string, started time.Time, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.entry(name)
	st.Runs++
	st.LastRun = &started
	st.LastDuration = b.now().Sub(started)
	st.LastError = ""
	if err != nil {
		st.Failures++
		st.LastError = err.Error()
	}
}

func (b *statusBook) skipped(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry(name).Skipped++
}

func (b *statusBook) snapshot() map[string]JobStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]JobStatus, len(b.jobs))
	for name, st := range b.jobs {
		out[name] = *st
	}
	return out
}
