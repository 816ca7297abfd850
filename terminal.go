package purrboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpalmerr/purrboard/internal/store"
	"github.com/jpalmerr/purrboard/internal/tui"
)

// RunTerminal mounts a single page and draws it in the terminal until the
// user quits or ctx is cancelled. The page is unmounted before RunTerminal
// returns.
//
// opts are passed to the Bubble Tea program, for example to redirect its
// input and output.
//
// Returns nil when the user quits or ctx is cancelled.
func (b *Board) RunTerminal(ctx context.Context, opts ...tea.ProgramOption) error {
	if ctx.Err() != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// a single page mounts right away, so the runtime is not reloaded and
	// the page and its panels share one content
	st := store.NewMemoryStore()
	mgr, content, err := b.newRuntime(st, false)
	if err != nil {
		return err
	}
	defer b.stopRuntime(mgr)

	page, err := mgr.Mount(ctx)
	if err != nil {
		return fmt.Errorf("failed to mount page: %w", err)
	}
	defer mgr.Unmount(page.ID())

	updates := st.Subscribe(page.ID())
	defer st.Unsubscribe(updates)

	initial, ok := st.Get(page.ID())
	if !ok {
		return errNoSnapshot
	}

	model := tui.New(tui.Options{
		Content:      toTUIContent(content),
		Page:         page,
		Initial:      initial,
		Updates:      updates,
		ReduceMotion: b.reduceMotion,
	})

	b.logger.Info("terminal page mounted", "session", page.ID())
	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err = tea.NewProgram(model, programOpts...).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal page failed: %w", err)
	}
	b.logger.Info("terminal page closed", "session", page.ID(), "likes", latestLikes(st, page.ID(), initial))
	return nil
}

func latestLikes(st store.Store, id string, fallback store.Snapshot) int {
	if snap, ok := st.Get(id); ok {
		return snap.Likes
	}
	return fallback.Likes
}

func toTUIContent(c Content) tui.Content {
	out := tui.Content{
		Title:   c.Title,
		Tagline: c.Tagline,
		Facts:   c.Facts,
		Breeds:  make([]tui.Breed, len(c.Breeds)),
	}
	for i, br := range c.Breeds {
		out.Breeds[i] = tui.Breed{Name: br.Name, Description: br.Description}
	}
	return out
}
