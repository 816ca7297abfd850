package purrboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jpalmerr/purrboard/dashboard"
	"github.com/jpalmerr/purrboard/internal/server"
	"github.com/jpalmerr/purrboard/internal/session"
	"github.com/jpalmerr/purrboard/internal/store"
)

const (
	defaultAdvanceInterval  = 5 * time.Second
	defaultProgressInterval = 50 * time.Millisecond
	defaultFactInterval     = 10 * time.Second
	defaultNoticeDelay      = 3 * time.Second
	defaultPort             = 8080
)

// Board renders the cat page.
//
// A Board owns the page's content and timings. Every page it mounts, one
// per browser connection in [Board.Serve] or a single one in
// [Board.RunTerminal], has its own isolated state. It is created using
// [New] with functional options.
//
// The typical lifecycle is:
//
//	board, err := purrboard.New(purrboard.WithPort(9090))
//	if err != nil {
//	    slog.Error("failed to create board", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	board.Serve(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type Board struct {
	content          atomic.Pointer[Content]
	advanceInterval  time.Duration
	progressInterval time.Duration
	factInterval     time.Duration
	noticeDelay      time.Duration
	port             int
	seed             uint64
	reduceMotion     bool
	logger           *slog.Logger
	stateCallbacks   []func(State)

	// reloadMu serializes reloads against runtimes starting and stopping
	reloadMu sync.Mutex
	runtimes map[*session.Manager]store.Store
}

// New creates a new [Board] instance with the given options.
//
// Every option has a default:
//   - Content: [DefaultContent]
//   - Advance interval: 5 seconds
//   - Progress interval: 50 milliseconds
//   - Fact interval: 10 seconds
//   - Notice delay: 3 seconds
//   - Port: 8080
//
// Returns an error if any option is invalid.
//
// Example:
//
//	board, err := purrboard.New(
//	    purrboard.WithTitle("Cats of the Office"),
//	    purrboard.WithAdvanceInterval(8 * time.Second),
//	)
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{
		content:          DefaultContent(),
		advanceInterval:  defaultAdvanceInterval,
		progressInterval: defaultProgressInterval,
		factInterval:     defaultFactInterval,
		noticeDelay:      defaultNoticeDelay,
		port:             defaultPort,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.content.Validate(); err != nil {
		return nil, err
	}
	if cfg.port < 1 || cfg.port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.port)
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &Board{
		advanceInterval:  cfg.advanceInterval,
		progressInterval: cfg.progressInterval,
		factInterval:     cfg.factInterval,
		noticeDelay:      cfg.noticeDelay,
		port:             cfg.port,
		seed:             cfg.seed,
		reduceMotion:     cfg.reduceMotion,
		logger:           logger,
		stateCallbacks:   cfg.stateCallbacks,
		runtimes:         make(map[*session.Manager]store.Store),
	}
	content := cfg.content.clone()
	b.content.Store(&content)
	return b, nil
}

// Content returns a copy of the content used for new mounts.
func (b *Board) Content() Content {
	return b.content.Load().clone()
}

// Port returns the configured HTTP port.
func (b *Board) Port() int {
	return b.port
}

// Reload replaces the content used for pages mounted from now on. Pages
// that are already mounted keep the content they were mounted with.
//
// Returns an error if the content is invalid, in which case nothing changes.
func (b *Board) Reload(c Content) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c = c.clone()

	b.reloadMu.Lock()
	defer b.reloadMu.Unlock()

	b.content.Store(&c)
	for mgr, st := range b.runtimes {
		if err := mgr.Reconfigure(b.sessionConfig(c), b.newSink(st, c)); err != nil {
			return fmt.Errorf("failed to apply content: %w", err)
		}
	}
	b.logger.Info("content reloaded",
		"images", len(c.Images),
		"facts", len(c.Facts),
		"breeds", len(c.Breeds),
	)
	return nil
}

// Serve mounts one page per browser connection and serves them over HTTP.
//
// Serve is a blocking call that runs until the provided context is
// cancelled. During execution:
//
//   - The page is available at http://localhost:<port>
//   - Each Server-Sent Events connection mounts its own page; disconnecting
//     unmounts it
//   - State changes are pushed to the browser as they happen
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server
// fails to start.
func (b *Board) Serve(ctx context.Context) error {
	b.logger.Info("purrboard starting", "images", len(b.Content().Images))
	b.logger.Info("page available", "url", fmt.Sprintf("http://localhost:%d", b.port))

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	st := store.NewMemoryStore()
	mgr, _, err := b.startRuntime(st)
	if err != nil {
		return err
	}
	defer b.stopRuntime(mgr)

	httpServer := server.NewServer(st, mgr, server.Options{
		Port:         b.port,
		Assets:       dashboard.Assets,
		Content:      b.serverContent,
		ReduceMotion: b.reduceMotion,
		Logger:       b.logger,
	})
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	b.logger.Info("purrboard stopped")
	return nil
}

// startRuntime creates a session manager publishing into st and registers
// it for reloads. The content it mounts with is returned.
func (b *Board) startRuntime(st store.Store) (*session.Manager, Content, error) {
	return b.newRuntime(st, true)
}

// newRuntime creates a session manager publishing into st with the current
// content. An untracked runtime keeps that content for every mount, and
// [Board.Reload] leaves it alone.
func (b *Board) newRuntime(st store.Store, track bool) (*session.Manager, Content, error) {
	b.reloadMu.Lock()
	defer b.reloadMu.Unlock()

	c := *b.content.Load()
	mgr, err := session.NewManager(b.sessionConfig(c), b.newSink(st, c))
	if err != nil {
		return nil, Content{}, fmt.Errorf("failed to create session manager: %w", err)
	}
	if track {
		b.runtimes[mgr] = st
	}
	return mgr, c.clone(), nil
}

// stopRuntime unmounts every page of mgr.
func (b *Board) stopRuntime(mgr *session.Manager) {
	b.reloadMu.Lock()
	delete(b.runtimes, mgr)
	b.reloadMu.Unlock()

	mgr.Close()
}

func (b *Board) sessionConfig(c Content) session.Config {
	return session.Config{
		ImageCount:       len(c.Images),
		Facts:            c.Facts,
		AdvanceInterval:  b.advanceInterval,
		ProgressInterval: b.progressInterval,
		FactInterval:     b.factInterval,
		NoticeDelay:      b.noticeDelay,
		Seed:             b.seed,
		Logger:           b.logger,
	}
}

func (b *Board) serverContent() server.Content {
	c := b.content.Load()
	out := server.Content{
		Title:   c.Title,
		Tagline: c.Tagline,
		Images:  toStoreImages(c.Images),
		Facts:   append([]string(nil), c.Facts...),
		Breeds:  make([]server.Breed, len(c.Breeds)),
	}
	for i, br := range c.Breeds {
		out.Breeds[i] = server.Breed{Name: br.Name, Description: br.Description}
	}
	return out
}

func toStoreImages(images []Image) []store.Image {
	out := make([]store.Image, len(images))
	for i, img := range images {
		out[i] = store.Image{URL: img.url, Caption: img.caption}
	}
	return out
}

// errNoSnapshot is returned when a freshly mounted page has not published.
var errNoSnapshot = errors.New("mounted page has no snapshot")
