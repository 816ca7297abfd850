package view

import (
	"errors"
	"fmt"
)

// MaxProgress is the value at which the carousel progress bar saturates.
const MaxProgress = 100

// ErrUnknownTab is returned by [View.SwitchTab] for a tab name other than
// [TabFacts] or [TabBreeds].
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies one of the two static panels.
type Tab string

const (
	// TabFacts shows the feline facts list. It is the default tab.
	TabFacts Tab = "facts"

	// TabBreeds shows the popular breeds list.
	TabBreeds Tab = "breeds"
)

// ParseTab converts a tab name into a [Tab].
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabFacts, TabBreeds:
		return Tab(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
}

// Snapshot is an immutable copy of the view state at one point in time.
type Snapshot struct {
	Version       uint64
	Likes         int
	ImageIndex    int
	ImageCount    int
	Progress      int
	FunFact       string
	NoticeVisible bool
	Tab           Tab
}

// View holds the ephemeral state of one mounted page.
//
// View is a plain state machine: it owns no timers and performs no I/O.
// It is not safe for concurrent use; callers serialize access.
type View struct {
	imageCount int
	facts      []string

	version  uint64
	likes    int
	index    int
	progress int
	fact     string
	notice   bool
	tab      Tab
}

// New creates a [View] in its initial state: first image, empty progress,
// no likes, hidden notice, facts tab, no fun fact selected yet.
//
// imageCount must be positive.
func New(imageCount int, facts []string) (*View, error) {
	if imageCount <= 0 {
		return nil, errors.New("at least one image is required")
	}
	cp := make([]string, len(facts))
	copy(cp, facts)
	return &View{
		imageCount: imageCount,
		facts:      cp,
		tab:        TabFacts,
	}, nil
}

// Advance moves to the next image, wrapping after the last one, and resets
// the progress bar.
func (v *View) Advance() {
	v.index = (v.index + 1) % v.imageCount
	v.progress = 0
	v.version++
}

// Rewind moves to the previous image, wrapping to the last one from the
// first, and resets the progress bar.
func (v *View) Rewind() {
	v.index = (v.index - 1 + v.imageCount) % v.imageCount
	v.progress = 0
	v.version++
}

// Tick advances the progress bar by one step. It reports whether the state
// changed; a tick at [MaxProgress] is a no-op.
func (v *View) Tick() bool {
	if v.progress >= MaxProgress {
		return false
	}
	v.progress++
	v.version++
	return true
}

// RotateFact replaces the current fun fact with a random one. intn must
// return a uniformly distributed value in [0, n). It reports whether a fact
// was selected; with no facts configured it is a no-op.
func (v *View) RotateFact(intn func(n int) int) bool {
	fact, ok := PickFact(v.facts, intn)
	if !ok {
		return false
	}
	v.fact = fact
	v.version++
	return true
}

// Like records one like and shows the acknowledgment notice. It returns the
// new like count. Scheduling the notice dismissal is the caller's job.
func (v *View) Like() int {
	v.likes++
	v.notice = true
	v.version++
	return v.likes
}

// Dismiss hides the acknowledgment notice. It reports whether the notice
// was visible.
func (v *View) Dismiss() bool {
	if !v.notice {
		return false
	}
	v.notice = false
	v.version++
	return true
}

// SwitchTab selects the given panel. Other state is never touched.
func (v *View) SwitchTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	if v.tab == tab {
		return nil
	}
	v.tab = tab
	v.version++
	return nil
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() Snapshot {
	return Snapshot{
		Version:       v.version,
		Likes:         v.likes,
		ImageIndex:    v.index,
		ImageCount:    v.imageCount,
		Progress:      v.progress,
		FunFact:       v.fact,
		NoticeVisible: v.notice,
		Tab:           v.tab,
	}
}

// PickFact returns a uniformly random element of facts, with replacement.
// It returns false when facts is empty.
func PickFact(facts []string, intn func(n int) int) (string, bool) {
	if len(facts) == 0 {
		return "", false
	}
	return facts[intn(len(facts))], true
}
