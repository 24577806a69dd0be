// Package lifecycle delivers the two application signals remonitor reacts to:
// "fully started" and "about to stop". Each fires at most once per run, in
// that order, on the caller's goroutine.
package lifecycle

import (
	"context"
	"errors"
)

var (
	ErrAlreadyStarted     = errors.New("lifecycle: already started")
	ErrAlreadyStopped     = errors.New("lifecycle: already stopped")
	ErrStoppedBeforeStart = errors.New("lifecycle: start after stop")
)

// Handler reacts to a lifecycle signal.
type Handler func(ctx context.Context)

type phase int

const (
	phaseNew phase = iota
	phaseStarted
	phaseStopped
)

// Hooks holds the registered handlers and the current phase. The zero value
// is ready to use. Hooks is not safe for concurrent use.
type Hooks struct {
	started  []Handler
	stopping []Handler
	phase    phase
}

// OnStarted registers fn to run when the application has fully started.
func (h *Hooks) OnStarted(fn Handler) {
	if fn != nil {
		h.started = append(h.started, fn)
	}
}

// OnStopping registers fn to run when the application is about to stop.
func (h *Hooks) OnStopping(fn Handler) {
	if fn != nil {
		h.stopping = append(h.stopping, fn)
	}
}

// Start runs the started handlers in registration order.
func (h *Hooks) Start(ctx context.Context) error {
	switch h.phase {
	case phaseStarted:
		return ErrAlreadyStarted
	case phaseStopped:
		return ErrStoppedBeforeStart
	}
	h.phase = phaseStarted
	for _, fn := range h.started {
		fn(ctx)
	}
	return nil
}

// Stop runs the stopping handlers in registration order. Stopping without a
// prior Start is allowed.
func (h *Hooks) Stop(ctx context.Context) error {
	if h.phase == phaseStopped {
		return ErrAlreadyStopped
	}
	h.phase = phaseStopped
	for _, fn := range h.stopping {
		fn(ctx)
	}
	return nil
}
