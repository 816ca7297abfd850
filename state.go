package purrboard

import "time"

// Tab identifies one of the two static panels of the page.
type Tab string

const (
	// TabFacts shows the feline facts list. It is selected at mount.
	TabFacts Tab = "facts"

	// TabBreeds shows the popular breeds list.
	TabBreeds Tab = "breeds"
)

// String returns the string representation of the tab.
// This implements the fmt.Stringer interface.
func (t Tab) String() string {
	return string(t)
}

// State is the view state of one mounted page after a change.
//
// State is a value copy; holding on to it never observes later changes.
type State struct {
	// Session identifies the mounted page.
	Session string

	// Version increases by one on every change within a session.
	Version uint64

	// Likes is the number of likes recorded since mount.
	Likes int

	// ImageIndex is the position of the current carousel image.
	ImageIndex int

	// Image is the current carousel image.
	Image Image

	// Progress is the carousel progress in [0,100].
	Progress int

	// FunFact is the current fun fact, empty until the first rotation.
	FunFact string

	// NoticeVisible reports whether the like acknowledgment is shown.
	NoticeVisible bool

	// Tab is the active panel.
	Tab Tab

	// UpdatedAt is when the change happened.
	UpdatedAt time.Time
}
