package purrboard

import (
	"log/slog"
	"time"

	"github.com/jpalmerr/purrboard/internal/store"
	"github.com/jpalmerr/purrboard/internal/view"
)

// sink publishes the pages mounted with one content generation into a
// store and to the state callbacks.
type sink struct {
	store     store.Store
	images    []Image
	stored    []store.Image
	callbacks []func(State)
	logger    *slog.Logger
}

func (b *Board) newSink(st store.Store, c Content) *sink {
	return &sink{
		store:     st,
		images:    c.Images,
		stored:    toStoreImages(c.Images),
		callbacks: b.stateCallbacks,
		logger:    b.logger,
	}
}

// Publish stores the snapshot first, then invokes callbacks.
func (s *sink) Publish(id string, snap view.Snapshot, at time.Time) {
	s.store.Update(store.FromView(id, snap, s.stored, at))

	if len(s.callbacks) == 0 {
		return
	}
	state := s.toState(id, snap, at)
	for _, cb := range s.callbacks {
		invokeCallbackSafe(cb, state, s.logger)
	}
}

// Retire forgets the page and ends its subscriptions.
func (s *sink) Retire(id string) {
	s.store.Delete(id)
}

func (s *sink) toState(id string, snap view.Snapshot, at time.Time) State {
	st := State{
		Session:       id,
		Version:       snap.Version,
		Likes:         snap.Likes,
		ImageIndex:    snap.ImageIndex,
		Progress:      snap.Progress,
		FunFact:       snap.FunFact,
		NoticeVisible: snap.NoticeVisible,
		Tab:           Tab(snap.Tab),
		UpdatedAt:     at,
	}
	if snap.ImageIndex >= 0 && snap.ImageIndex < len(s.images) {
		st.Image = s.images[snap.ImageIndex]
	}
	return st
}

// invokeCallbackSafe calls a state callback with panic recovery.
// Panics are logged but do not propagate.
func invokeCallbackSafe(cb func(State), state State, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("state callback panicked",
				"panic", r,
				"session", state.Session,
			)
		}
	}()
	cb(state)
}
