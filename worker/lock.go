package worker

import "sync/atomic"

// jobLock keeps one run of a job in flight at a time
type jobLock struct {
	held atomic.Bool
}

func (l *jobLock) acquire() bool {
	return l.held.CompareAndSwap(false, true)
}

func (l *jobLock) release() {
	l.held.Store(false)
}
