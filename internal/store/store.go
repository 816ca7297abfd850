package store

import "time"

// Snapshot is the published state of one mounted page.
//
// Snapshot is the storage representation of view state, optimized for JSON
// serialization (used by the REST API and SSE). It is decoupled from the
// view package's types to allow independent evolution.
type Snapshot struct {
	// Session is the ID of the mounted page this snapshot belongs to.
	Session string `json:"session"`

	// Version increases by one on every state change within a session.
	Version uint64 `json:"version"`

	// Likes is the number of likes recorded since mount.
	Likes int `json:"likes"`

	// ImageIndex is the position of the current carousel image.
	ImageIndex int `json:"image_index"`

	// ImageCount is the number of carousel images.
	ImageCount int `json:"image_count"`

	// ImageURL is the URL of the current carousel image.
	ImageURL string `json:"image_url"`

	// Caption is the caption of the current carousel image.
	Caption string `json:"caption"`

	// Progress is the carousel progress in [0,100].
	Progress int `json:"progress"`

	// FunFact is the current fun fact, empty before the first rotation.
	FunFact string `json:"fun_fact"`

	// NoticeVisible reports whether the like acknowledgment is shown.
	NoticeVisible bool `json:"notice_visible"`

	// Tab is the active panel ("facts" or "breeds").
	Tab string `json:"tab"`

	// UpdatedAt is when the state change happened.
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines the interface for storing and subscribing to page snapshots.
//
// Store implementations must be safe for concurrent access. The pub/sub
// mechanism allows each rendering layer to follow exactly one mounted page.
type Store interface {
	// Update stores a snapshot and notifies the subscribers of its session.
	// The snapshot is keyed by Session, so later updates replace earlier ones.
	Update(snap Snapshot)

	// Get returns the latest snapshot of a session.
	Get(session string) (Snapshot, bool)

	// GetAll returns the latest snapshot of every session.
	// The returned slice is a copy; modifications do not affect the store.
	GetAll() []Snapshot

	// Delete forgets a session and closes all of its subscriptions.
	Delete(session string)

	// Subscribe returns a channel that receives the session's snapshots.
	// The returned channel has a buffer; slow consumers may miss updates.
	// Caller must call Unsubscribe when done to prevent resource leaks.
	Subscribe(session string) <-chan Snapshot

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan Snapshot)
}
