package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is a unit of periodic work.
type Job struct {
	// Name identifies the job in logs.
	Name string

	// Interval is the time between runs. The first run happens one
	// interval after Start, never immediately.
	Interval time.Duration

	// Run performs the work. It receives the tick time.
	Run func(now time.Time)
}

// Scheduler runs periodic jobs and replaceable one-shot timers for a
// single owner, and releases all of them together.
//
// Each job gets its own ticker goroutine, so job clocks are independent of
// each other. One-shot timers registered with [Scheduler.Debounce] follow
// last-trigger-wins semantics: scheduling a name again replaces the pending
// timer for that name.
//
// After [Scheduler.Stop] returns, no job or timer callback is running and
// none will run again.
//
// All methods are safe for concurrent use.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool

	// one-shot timers by name; gen guards against a fired timer whose
	// slot was replaced before its callback acquired the lock
	timers map[string]*time.Timer
	gen    map[string]uint64
}

// NewScheduler creates a [Scheduler] for the given jobs.
//
// Jobs with a non-positive interval or a nil Run are rejected. Nothing runs
// until [Scheduler.Start] is called.
func NewScheduler(jobs []Job, logger *slog.Logger) (*Scheduler, error) {
	for i, j := range jobs {
		if j.Interval <= 0 {
			return nil, fmt.Errorf("job %d (%s): interval must be positive", i, j.Name)
		}
		if j.Run == nil {
			return nil, fmt.Errorf("job %d (%s): run function is required", i, j.Name)
		}
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	cp := make([]Job, len(jobs))
	copy(cp, jobs)

	return &Scheduler{
		jobs:   cp,
		logger: logger,
		timers: make(map[string]*time.Timer),
		gen:    make(map[string]uint64),
	}, nil
}

// Start launches one ticker goroutine per job.
//
// Start is non-blocking and idempotent. If Stop was called first, Start is a
// no-op. If ctx is nil, context.Background() is used. Cancelling ctx stops
// the periodic jobs; call Stop to also release pending one-shot timers and
// wait for goroutines.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(runCtx, job)
	}
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// a tick may be ready in the same select as cancellation
			if ctx.Err() != nil {
				return
			}
			s.safeRun(job.Name, func() { job.Run(now) })
		}
	}
}

// Stop cancels every job and pending timer and waits for running callbacks
// to return.
//
// Stop is idempotent and safe to call before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.cancel != nil {
			s.cancel()
		}
		for name, t := range s.timers {
			t.Stop()
			delete(s.timers, name)
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Debounce runs fn once after delay, replacing any pending timer registered
// under the same name. It is a no-op after Stop.
func (s *Scheduler) Debounce(name string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if t, ok := s.timers[name]; ok {
		t.Stop()
	}
	s.gen[name]++
	gen := s.gen[name]

	s.timers[name] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.stopped || s.gen[name] != gen {
			s.mu.Unlock()
			return
		}
		delete(s.timers, name)
		s.wg.Add(1)
		s.mu.Unlock()

		defer s.wg.Done()
		s.safeRun(name, fn)
	})
}

// Cancel drops the pending timer registered under name, if any.
func (s *Scheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[name]; ok {
		t.Stop()
		delete(s.timers, name)
		s.gen[name]++
	}
}

// Pending reports whether a timer is registered under name and has not
// fired yet.
func (s *Scheduler) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[name]
	return ok
}

// safeRun calls fn with panic recovery.
// A panic is logged with a correlation ID and the full stack; the job keeps
// its schedule.
func (s *Scheduler) safeRun(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled job panic",
				"correlation_id", uuid.NewString(),
				"job", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
