package game

import (
	"context"
	"errors"
	"sync/atomic"
)

// State is the lifecycle state of a Scheduler.
type State int32

const (
	StateIdle      State = iota // not yet started
	StateRunning                // driving frames
	StateCancelled              // terminal; no further frames
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// ErrSchedulerStarted is returned when Start or Run is called on a running scheduler.
var ErrSchedulerStarted = errors.New("scheduler: already running")

// Refresh delivers display refresh signals.
type Refresh interface {
	// Wait blocks until the next display refresh. It returns false once the
	// host can no longer present frames.
	Wait() bool
}

// Scheduler drives one frame per display refresh until cancelled.
// Frames run on the caller's goroutine; only Cancel may be called from elsewhere.
type Scheduler struct {
	state  atomic.Int32
	frames atomic.Int64
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() int64 {
	return s.frames.Load()
}

// Start moves an idle scheduler to running. Starting a cancelled scheduler
// is a no-op; it will not run any frame.
func (s *Scheduler) Start() error {
	if s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil
	}
	if s.State() == StateRunning {
		return ErrSchedulerStarted
	}
	return nil
}

// Cancel stops the scheduler. A frame already in progress completes; no
// further frame starts. Safe to call more than once and from any goroutine.
func (s *Scheduler) Cancel() {
	s.state.Store(int32(StateCancelled))
}

// Tick runs one frame unless the scheduler or ctx has been cancelled.
// It reports whether the frame ran. Hosts that own their refresh loop call
// Tick once per refresh; everyone else uses Run.
func (s *Scheduler) Tick(ctx context.Context, frame func()) bool {
	if ctx.Err() != nil {
		s.Cancel()
	}
	if s.State() != StateRunning {
		return false
	}
	frame()
	s.frames.Add(1)
	return true
}

// Run starts the scheduler and runs frame once per refresh until Cancel is
// called, ctx is done, or refresh reports the host is gone. It returns nil
// in all of those cases.
func (s *Scheduler) Run(ctx context.Context, refresh Refresh, frame func()) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Cancel()

	for s.State() == StateRunning {
		if !refresh.Wait() {
			return nil
		}
		if !s.Tick(ctx, frame) {
			return nil
		}
	}
	return nil
}
