package game

import (
	"context"
	"errors"
	"testing"
)

// countingRefresh reports n refreshes, then reports the host gone.
type countingRefresh struct {
	n     int
	waits int
}

func (r *countingRefresh) Wait() bool {
	r.waits++
	return r.waits <= r.n
}

func TestSchedulerRunsUntilRefreshStops(t *testing.T) {
	s := NewScheduler()
	if s.State() != StateIdle {
		t.Fatalf("new scheduler state = %v, want idle", s.State())
	}

	frames := 0
	if err := s.Run(context.Background(), &countingRefresh{n: 5}, func() { frames++ }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 5 {
		t.Errorf("ran %d frames, want 5", frames)
	}
	if s.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", s.Frames())
	}
	if s.State() != StateCancelled {
		t.Errorf("state after Run = %v, want cancelled", s.State())
	}
}

func TestSchedulerCancelInFrameFinishesFrame(t *testing.T) {
	s := NewScheduler()

	frames := 0
	finished := false
	err := s.Run(context.Background(), &countingRefresh{n: 100}, func() {
		frames++
		if frames == 3 {
			s.Cancel()
			finished = true
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !finished {
		t.Error("in-flight frame did not complete")
	}
	if frames != 3 {
		t.Errorf("ran %d frames, want 3 (no frame after cancel)", frames)
	}
}

func TestSchedulerCancelBeforeRun(t *testing.T) {
	s := NewScheduler()
	s.Cancel()

	frames := 0
	if err := s.Run(context.Background(), &countingRefresh{n: 10}, func() { frames++ }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 0 {
		t.Errorf("cancelled scheduler ran %d frames", frames)
	}
	if s.State() != StateCancelled {
		t.Errorf("state = %v, want cancelled", s.State())
	}
}

func TestSchedulerCancelIdempotent(t *testing.T) {
	s := NewScheduler()
	s.Cancel()
	s.Cancel()
	if s.State() != StateCancelled {
		t.Errorf("state = %v, want cancelled", s.State())
	}
}

func TestSchedulerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler()

	frames := 0
	err := s.Run(ctx, &countingRefresh{n: 100}, func() {
		frames++
		if frames == 2 {
			cancel()
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 2 {
		t.Errorf("ran %d frames, want 2", frames)
	}
}

func TestSchedulerStartTwice(t *testing.T) {
	s := NewScheduler()
	if err := s.Start(); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrSchedulerStarted) {
		t.Errorf("second Start = %v, want ErrSchedulerStarted", err)
	}
	if err := s.Run(context.Background(), &countingRefresh{n: 1}, func() {}); !errors.Is(err, ErrSchedulerStarted) {
		t.Errorf("Run on running scheduler = %v, want ErrSchedulerStarted", err)
	}
}

func TestSchedulerTick(t *testing.T) {
	s := NewScheduler()
	ctx := context.Background()

	ran := 0
	if s.Tick(ctx, func() { ran++ }) {
		t.Error("idle scheduler ticked")
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if !s.Tick(ctx, func() { ran++ }) {
		t.Error("running scheduler did not tick")
	}
	s.Cancel()
	if s.Tick(ctx, func() { ran++ }) {
		t.Error("cancelled scheduler ticked")
	}
	if ran != 1 {
		t.Errorf("ran %d frames, want 1", ran)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateCancelled, "cancelled"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
