package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jpalmerr/purrboard/internal/session"
	"github.com/jpalmerr/purrboard/internal/store"
	"github.com/jpalmerr/purrboard/internal/transition"
	"github.com/jpalmerr/purrboard/internal/view"
)

const (
	// sseWriteTimeout is the maximum time allowed for a single SSE write operation.
	// This prevents goroutine leaks when clients are slow or disconnected.
	// Must be <= shutdown timeout to ensure clean shutdown.
	sseWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second

	pageTemplate = "assets/index.gohtml"
)

// Sessions mounts and tracks the pages served to browsers.
type Sessions interface {
	Mount(ctx context.Context) (*session.Session, error)
	Get(id string) (*session.Session, bool)
	Unmount(id string) bool
	Len() int
}

// Breed is a popular breed entry.
type Breed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Content is the static part of the page.
type Content struct {
	Title   string        `json:"title"`
	Tagline string        `json:"tagline"`
	Images  []store.Image `json:"images"`
	Facts   []string      `json:"facts"`
	Breeds  []Breed       `json:"breeds"`
}

// Options configures a [Server].
type Options struct {
	// Port is the TCP port to listen on. Zero picks a free port.
	Port int

	// Assets holds the page template. The page route is not registered
	// when nil.
	Assets fs.FS

	// Content returns the content rendered for new page loads.
	Content func() Content

	// ReduceMotion renders every transition at rest.
	ReduceMotion bool

	Logger *slog.Logger
}

// Server handles HTTP requests for the cat page and its API.
//
// Server provides these endpoints:
//   - GET /: Renders the embedded page template
//   - GET /api/content: Returns the static content as JSON
//   - GET /api/sse: Mounts a page and streams its snapshots via Server-Sent Events
//   - GET /api/sessions/{id}: Returns the latest snapshot of a mounted page
//   - POST /api/sessions/{id}/{like,next,prev}: Performs a page action
//   - POST /api/sessions/{id}/tab/{tab}: Switches the active panel
//   - GET /api/health: Reports liveness and the number of mounted pages
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	store    store.Store
	sessions Sessions
	opts     Options
	logger   *slog.Logger

	page func() (*template.Template, error)

	mu         sync.Mutex
	httpServer *http.Server
	addr       net.Addr
}

// NewServer creates a new HTTP [Server].
//
// The server is not started until [Server.Start] is called.
func NewServer(st store.Store, sessions Sessions, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Content == nil {
		opts.Content = func() Content { return Content{} }
	}

	s := &Server{
		store:    st,
		sessions: sessions,
		opts:     opts,
		logger:   logger,
	}
	s.page = sync.OnceValues(func() (*template.Template, error) {
		return template.ParseFS(s.opts.Assets, pageTemplate)
	})
	return s
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/content", s.handleContent)
	mux.HandleFunc("GET /api/sse", s.handleSSE)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleSnapshot)
	mux.HandleFunc("POST /api/sessions/{id}/like", s.action(func(p *session.Session) error {
		p.Like()
		return nil
	}))
	mux.HandleFunc("POST /api/sessions/{id}/next", s.action(func(p *session.Session) error {
		p.Next()
		return nil
	}))
	mux.HandleFunc("POST /api/sessions/{id}/prev", s.action(func(p *session.Session) error {
		p.Prev()
		return nil
	}))
	mux.HandleFunc("POST /api/sessions/{id}/tab/{tab}", s.handleTab)

	if s.opts.Assets != nil {
		mux.HandleFunc("GET /{$}", s.handlePage)
	}
	return mux
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown with a 5-second
// timeout.
//
// Returns an error if the server fails to bind to the configured port.
func (s *Server) Start(ctx context.Context) error {
	// create listener first to verify port availability synchronously
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.opts.Port))
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.opts.Port, err)
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end with ctx, so streaming handlers exit on shutdown
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.mu.Lock()
	s.httpServer = httpServer
	s.addr = ln.Addr()
	s.mu.Unlock()

	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// Addr returns the address the server listens on, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

type pageStyles struct {
	Hero    template.CSS
	Tagline template.CSS
	Image   template.CSS
	Toast   template.CSS
	Like    template.CSS
	Items   []template.CSS
}

type pageData struct {
	Content
	ReduceMotion bool
	Styles       pageStyles
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.page()
	if err != nil {
		s.logger.Error("failed to parse page template", "error", err)
		http.Error(w, "Page not found", http.StatusInternalServerError)
		return
	}

	content := s.opts.Content()
	data := pageData{
		Content:      content,
		ReduceMotion: s.opts.ReduceMotion,
		Styles:       buildStyles(max(len(content.Facts), len(content.Breeds))),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", "error", err)
	}
}

func buildStyles(items int) pageStyles {
	st := pageStyles{
		Hero:    transition.Style(transition.Hero()),
		Tagline: transition.Style(transition.Tagline()),
		Image:   transition.Style(transition.Image()),
		Toast:   transition.Style(transition.Toast()),
		Like:    transition.Style(transition.LikeButton()),
		Items:   make([]template.CSS, items),
	}
	for i := range st.Items {
		st.Items[i] = transition.Style(transition.ListItem(i))
	}
	return st
}

func (s *Server) handleContent(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.opts.Content())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// action wraps a page action into a handler that responds with the
// resulting snapshot.
func (s *Server) action(fn func(*session.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		p, ok := s.sessions.Get(id)
		if !ok {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}

		if err := fn(p); err != nil {
			if errors.Is(err, view.ErrUnknownTab) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			s.logger.Error("page action failed", "session", id, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snap, ok := s.store.Get(id)
		if !ok {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		s.writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	s.action(func(p *session.Session) error {
		tab, err := view.ParseTab(r.PathValue("tab"))
		if err != nil {
			return err
		}
		return p.SwitchTab(tab)
	})(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// handleSSE mounts a page for the connection and streams its snapshots via
// Server-Sent Events until the client goes away or the server shuts down.
// The page is unmounted when the handler returns.
//
// The handler uses write deadlines to prevent goroutine leaks when clients are
// slow or disconnected. Without deadlines, a blocked Fprintf call would prevent
// the handler from detecting context cancellation or channel closure.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	// check if flushing is supported
	if _, ok := w.(http.Flusher); !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	p, err := s.sessions.Mount(r.Context())
	if err != nil {
		s.logger.Warn("failed to mount page", "error", err)
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}
	id := p.ID()
	defer s.sessions.Unmount(id)

	ch := s.store.Subscribe(id)
	defer s.store.Unsubscribe(ch)

	rc := http.NewResponseController(w)

	// track if write deadlines are supported (may not be for some ResponseWriter impls)
	deadlinesSupported := true

	writeEvent := func(event string, data []byte) error {
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
				// deadline not supported by underlying connection, continue without
				s.logger.Warn("sse write deadlines not supported", "error", err)
				deadlinesSupported = false
			}
		}

		if event != "" {
			if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}

		// ResponseController.Flush respects the write deadline
		return rc.Flush()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.logger.Debug("sse client connected", "session", id)
	defer s.logger.Debug("sse client disconnected", "session", id)

	hello, err := json.Marshal(map[string]string{"session": id})
	if err != nil {
		return
	}
	if err := writeEvent("mount", hello); err != nil {
		return
	}

	// the initial snapshot was published before the subscription existed
	var (
		sent    uint64
		hasSent bool
	)
	if snap, ok := s.store.Get(id); ok {
		data, err := json.Marshal(snap)
		if err != nil {
			return
		}
		if err := writeEvent("", data); err != nil {
			return
		}
		sent, hasSent = snap.Version, true
	}

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if hasSent && snap.Version <= sent {
				continue
			}
			data, err := json.Marshal(snap)
			if err != nil {
				continue
			}
			if err := writeEvent("", data); err != nil {
				return
			}
			sent, hasSent = snap.Version, true

		case <-r.Context().Done():
			// request context is derived from server context via BaseContext,
			// so this fires on both client disconnect AND server shutdown
			return
		}
	}
}
