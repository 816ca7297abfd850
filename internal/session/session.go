package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jpalmerr/purrboard/internal/scheduler"
	"github.com/jpalmerr/purrboard/internal/view"
)

const noticeTimer = "notice"

// Config describes how a page behaves once mounted.
type Config struct {
	// ImageCount is the number of carousel images. Must be positive.
	ImageCount int

	// Facts is the pool the fun fact is drawn from.
	Facts []string

	// AdvanceInterval is the time between automatic carousel advances.
	AdvanceInterval time.Duration

	// ProgressInterval is the time between progress bar ticks.
	ProgressInterval time.Duration

	// FactInterval is the time between fun fact rotations.
	FactInterval time.Duration

	// NoticeDelay is how long the like acknowledgment stays visible after
	// the most recent like.
	NoticeDelay time.Duration

	// Seed makes fun fact rotation deterministic when non-zero.
	Seed uint64

	// Logger receives lifecycle and panic logs. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config) validate() error {
	if c.ImageCount <= 0 {
		return errors.New("at least one image is required")
	}
	if c.AdvanceInterval <= 0 || c.ProgressInterval <= 0 || c.FactInterval <= 0 {
		return errors.New("timer intervals must be positive")
	}
	if c.NoticeDelay <= 0 {
		return errors.New("notice delay must be positive")
	}
	return nil
}

// Sink receives every state change of a session and is told when the
// session is gone.
//
// Publish is called with the session lock held, in state order, and must
// not block.
type Sink interface {
	Publish(id string, snap view.Snapshot, at time.Time)
	Retire(id string)
}

// Session is one mounted page: its view state plus the timers driving it.
//
// Every timer callback and user action locks the session, applies one view
// operation, publishes the resulting snapshot and unlocks, so handlers run
// to completion one at a time. After [Session.Unmount] the state is frozen.
type Session struct {
	id        string
	mountedAt time.Time
	cfg       Config
	sink      Sink
	logger    *slog.Logger
	sched     *scheduler.Scheduler
	rng       *rand.Rand

	mu        sync.Mutex
	view      *view.View
	unmounted bool
	// noticeGen identifies the most recent like; older dismissals are stale.
	noticeGen uint64

	unmountOnce sync.Once
}

// Mount creates a page in its initial state and starts its timers.
//
// The initial snapshot is published before Mount returns. Cancelling ctx
// stops the periodic timers; call [Session.Unmount] to release everything.
func Mount(ctx context.Context, id string, cfg Config, sink Sink) (*Session, error) {
	if id == "" {
		return nil, errors.New("session id cannot be empty")
	}
	if sink == nil {
		return nil, errors.New("sink cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	v, err := view.New(cfg.ImageCount, cfg.Facts)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Session{
		id:        id,
		mountedAt: time.Now(),
		cfg:       cfg,
		sink:      sink,
		logger:    logger.With("session", id),
		rng:       rand.New(rand.NewPCG(seed, seed>>1|1)),
		view:      v,
	}

	s.sched, err = scheduler.NewScheduler([]scheduler.Job{
		{Name: "advance", Interval: cfg.AdvanceInterval, Run: func(time.Time) { s.Next() }},
		{Name: "progress", Interval: cfg.ProgressInterval, Run: func(time.Time) { s.tick() }},
		{Name: "fact", Interval: cfg.FactInterval, Run: func(time.Time) { s.rotateFact() }},
	}, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s.mu.Lock()
	s.publishLocked()
	s.mu.Unlock()

	s.sched.Start(ctx)
	s.logger.Debug("page mounted")
	return s, nil
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// MountedAt returns when the page was mounted.
func (s *Session) MountedAt() time.Time {
	return s.mountedAt
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() view.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Snapshot()
}

// Next advances the carousel and resets its progress.
func (s *Session) Next() {
	s.update(func(v *view.View) bool {
		v.Advance()
		return true
	})
}

// Prev rewinds the carousel and resets its progress.
func (s *Session) Prev() {
	s.update(func(v *view.View) bool {
		v.Rewind()
		return true
	})
}

// Like records a like, shows the acknowledgment and (re)schedules its
// dismissal. Only the most recent like's dismissal stays pending.
func (s *Session) Like() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmounted {
		return
	}
	count := s.view.Like()
	s.noticeGen++
	gen := s.noticeGen
	s.publishLocked()
	s.sched.Debounce(noticeTimer, s.cfg.NoticeDelay, func() { s.dismiss(gen) })
	s.logger.Debug("like recorded", "likes", count)
}

// SwitchTab selects a panel. It returns [view.ErrUnknownTab] for an unknown
// tab, in which case nothing changes.
func (s *Session) SwitchTab(tab view.Tab) error {
	var err error
	s.update(func(v *view.View) bool {
		before := v.Snapshot().Version
		err = v.SwitchTab(tab)
		return err == nil && v.Snapshot().Version != before
	})
	return err
}

// NoticePending reports whether a notice dismissal is scheduled.
func (s *Session) NoticePending() bool {
	return s.sched.Pending(noticeTimer)
}

// Unmount cancels every timer of the page, waits for running callbacks and
// retires the session from its sink. It is idempotent.
func (s *Session) Unmount() {
	s.unmountOnce.Do(func() {
		s.mu.Lock()
		s.unmounted = true
		s.mu.Unlock()

		// callbacks blocked on s.mu observe unmounted and return
		s.sched.Stop()
		s.sink.Retire(s.id)
		s.logger.Debug("page unmounted", "lifetime", time.Since(s.mountedAt).String())
	})
}

func (s *Session) tick() {
	s.update((*view.View).Tick)
}

func (s *Session) rotateFact() {
	s.update(func(v *view.View) bool {
		return v.RotateFact(s.rng.IntN)
	})
}

// dismiss hides the notice unless a like newer than gen has been recorded
// since. A dismissal that fired while that like held the lock is dropped.
func (s *Session) dismiss(gen uint64) {
	s.update(func(v *view.View) bool {
		if s.noticeGen != gen {
			return false
		}
		return v.Dismiss()
	})
}

// update applies fn and publishes when it reports a change.
func (s *Session) update(fn func(v *view.View) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmounted {
		return
	}
	if fn(s.view) {
		s.publishLocked()
	}
}

func (s *Session) publishLocked() {
	s.sink.Publish(s.id, s.view.Snapshot(), time.Now())
}
