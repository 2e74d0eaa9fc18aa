package model

import (
	"sync/atomic"
)

// CancelToken is a cooperative stop flag shared between the party requesting
// cancellation and the run observing it. It is set once and never reset; a
// token serves exactly one run.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a token in the not-cancelled state.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel requests cancellation. Safe to call from any goroutine and more than
// once.
func (t *CancelToken) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Cancelled reports whether cancellation has been requested. A nil token never
// cancels.
func (t *CancelToken) Cancelled() bool {
	if t == nil {
		return false
	}
	return t.cancelled.Load()
}
