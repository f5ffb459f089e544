package core

import (
	"context"
	"errors"
	"sync"

	"chinook-browser/internal/core/model"
)

type State int

const (
	StateLoading State = iota
	StateFound
	StateNotFound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not_found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the visible fetch state of one screen instance. Exactly one
// state holds at a time; View is meaningful only under StateFound and Err
// only under StateNotFound/StateFailed.
type Outcome[VM any] struct {
	State State
	View  VM
	Err   error
}

// Screen owns the visible outcome for one detail view and guards it against
// two hazards of interactive navigation: a slow stale response overwriting a
// newer request's result, and a load resolving after the screen is torn
// down. Each Show supersedes the previous one; superseded loads are
// cancelled and their results discarded on arrival.
type Screen[VM any] struct {
	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	outcome Outcome[VM]
}

func NewScreen[VM any]() *Screen[VM] {
	return &Screen[VM]{outcome: Outcome[VM]{State: StateLoading}}
}

// Show starts loading a new view, resetting the visible outcome to Loading.
// The returned channel closes when this particular load has settled — its
// result committed, or discarded as stale.
func (s *Screen[VM]) Show(ctx context.Context, load func(context.Context) (VM, error)) <-chan struct{} {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.outcome = Outcome[VM]{State: StateLoading}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		view, err := load(loadCtx)
		cancel()
		s.commit(seq, view, err)
	}()
	return done
}

// commit applies a load result only if no newer Show has superseded it.
func (s *Screen[VM]) commit(seq uint64, view VM, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	switch {
	case err == nil:
		s.outcome = Outcome[VM]{State: StateFound, View: view}
	case errors.Is(err, model.ErrNotFound):
		s.outcome = Outcome[VM]{State: StateNotFound, Err: err}
	default:
		s.outcome = Outcome[VM]{State: StateFailed, Err: err}
	}
}

// Outcome returns the currently visible outcome.
func (s *Screen[VM]) Outcome() Outcome[VM] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Close tears the screen down. The in-flight load, if any, is cancelled, and
// any late resolution becomes a no-op.
func (s *Screen[VM]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
