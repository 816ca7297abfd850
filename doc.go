// Package purrboard renders a decorative cat page: an auto-advancing image
// carousel with a progress bar, a rotating fun fact, facts and breeds
// panels, and a like button with a short-lived acknowledgment.
//
// PurrBoard is designed as an SDK-first library. The page is configured
// with functional options and rendered either in a browser, where every
// connected tab mounts its own page, or in the terminal.
//
// # Quick Start
//
// Serve the stock page with graceful shutdown:
//
//	board, _ := purrboard.New()
//
//	// Set up graceful shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	board.Serve(ctx) // blocks until context is cancelled
//
// Or draw it in the terminal:
//
//	board.RunTerminal(ctx)
//
// # Configuration
//
// PurrBoard uses the functional options pattern for configuration:
//
//	cat, _ := purrboard.NewImage("https://example.com/cat.jpg", "Nap time")
//	board, err := purrboard.New(
//	    purrboard.WithTitle("Office Cats"),
//	    purrboard.WithImages(cat),
//	    purrboard.WithAdvanceInterval(8 * time.Second),
//	    purrboard.WithNoticeDelay(2 * time.Second),
//	    purrboard.WithPort(9090),
//	)
//
// # Page Lifecycle
//
// Mounting a page starts three independent timers: the carousel advance,
// the progress tick and the fun fact rotation. A like shows an
// acknowledgment that is hidden once the notice delay has passed since the
// most recent like. Unmounting cancels every timer; no state changes after
// that. Likes are never stored.
//
// # Architecture
//
// PurrBoard consists of several internal packages (under internal/):
//
//   - internal/view: The page state machine
//   - internal/scheduler: Periodic and debounced timers with cancel-all
//   - internal/session: Mounted pages and their manager
//   - internal/store: Latest snapshot per page with pub/sub
//   - internal/transition: Enter, exit and hover transitions
//   - internal/server: HTTP page, REST actions and Server-Sent Events
//   - internal/tui: Bubble Tea terminal page
//   - dashboard: Embedded page template
//
// The internal packages are not part of the public API and may change
// without notice.
package purrboard
