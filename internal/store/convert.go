package store

import (
	"time"

	"github.com/jpalmerr/purrboard/internal/view"
)

// Image is a carousel entry as shown to the rendering layers.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// FromView converts a view snapshot of session into its storage
// representation. images is the carousel the session was mounted with; an
// index outside of it leaves the image fields empty.
func FromView(session string, snap view.Snapshot, images []Image, at time.Time) Snapshot {
	out := Snapshot{
		Session:       session,
		Version:       snap.Version,
		Likes:         snap.Likes,
		ImageIndex:    snap.ImageIndex,
		ImageCount:    snap.ImageCount,
		Progress:      snap.Progress,
		FunFact:       snap.FunFact,
		NoticeVisible: snap.NoticeVisible,
		Tab:           string(snap.Tab),
		UpdatedAt:     at,
	}
	if snap.ImageIndex >= 0 && snap.ImageIndex < len(images) {
		out.ImageURL = images[snap.ImageIndex].URL
		out.Caption = images[snap.ImageIndex].Caption
	}
	return out
}
