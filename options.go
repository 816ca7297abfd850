package purrboard

import (
	"errors"
	"log/slog"
	"time"
)

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
	content          Content
	advanceInterval  time.Duration
	progressInterval time.Duration
	factInterval     time.Duration
	noticeDelay      time.Duration
	port             int
	seed             uint64
	reduceMotion     bool
	logger           *slog.Logger
	stateCallbacks   []func(State)
}

// Option is a function that configures a [Board] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
type Option func(*boardConfig) error

// WithContent replaces the whole static content of the page.
//
// Title and tagline fall back to the defaults when empty. Returns an error
// if the content has no images or contains invalid entries.
func WithContent(c Content) Option {
	return func(cfg *boardConfig) error {
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.content = c.clone()
		return nil
	}
}

// WithImages replaces the carousel images.
//
// Returns an error if no images are given.
//
// Example:
//
//	a, _ := purrboard.NewImage("https://example.com/a.jpg", "Nap time")
//	b, _ := purrboard.NewImage("https://example.com/b.jpg", "Play time")
//	board, err := purrboard.New(purrboard.WithImages(a, b))
func WithImages(images ...Image) Option {
	return func(cfg *boardConfig) error {
		c := cfg.content
		c.Images = images
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.content = c.clone()
		return nil
	}
}

// WithFacts replaces the facts shown in the facts panel, which are also
// the pool the fun fact is drawn from.
func WithFacts(facts ...string) Option {
	return func(cfg *boardConfig) error {
		c := cfg.content
		c.Facts = facts
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.content = c.clone()
		return nil
	}
}

// WithBreeds replaces the entries of the breeds panel.
func WithBreeds(breeds ...Breed) Option {
	return func(cfg *boardConfig) error {
		c := cfg.content
		c.Breeds = breeds
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.content = c.clone()
		return nil
	}
}

// WithTitle sets the page title shown in the hero header and browser tab.
//
// If not specified, defaults to "Discover the World of Cats".
func WithTitle(title string) Option {
	return func(cfg *boardConfig) error {
		if title == "" {
			return errors.New("title cannot be empty")
		}
		cfg.content.Title = title
		return nil
	}
}

// WithTagline sets the line shown under the title.
func WithTagline(tagline string) Option {
	return func(cfg *boardConfig) error {
		if tagline == "" {
			return errors.New("tagline cannot be empty")
		}
		cfg.content.Tagline = tagline
		return nil
	}
}

// WithAdvanceInterval sets how often the carousel advances on its own.
// Defaults to 5 seconds.
//
// Returns an error if the duration is zero or negative.
func WithAdvanceInterval(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("advance interval must be positive")
		}
		cfg.advanceInterval = d
		return nil
	}
}

// WithProgressInterval sets how often the progress bar grows by one step.
// Defaults to 50 milliseconds.
//
// Returns an error if the duration is zero or negative.
func WithProgressInterval(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("progress interval must be positive")
		}
		cfg.progressInterval = d
		return nil
	}
}

// WithFactInterval sets how often a new fun fact is drawn.
// Defaults to 10 seconds.
//
// Returns an error if the duration is zero or negative.
func WithFactInterval(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("fact interval must be positive")
		}
		cfg.factInterval = d
		return nil
	}
}

// WithNoticeDelay sets how long the like acknowledgment stays visible after
// the most recent like. Defaults to 3 seconds.
//
// Returns an error if the duration is zero or negative.
func WithNoticeDelay(d time.Duration) Option {
	return func(cfg *boardConfig) error {
		if d <= 0 {
			return errors.New("notice delay must be positive")
		}
		cfg.noticeDelay = d
		return nil
	}
}

// WithPort sets the HTTP port used by [Board.Serve].
//
// The page will be available at http://localhost:<port>.
// Defaults to 8080 if not specified.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *boardConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithSeed makes fun fact rotation deterministic. Every page mounted by
// the board draws the same sequence of facts. Zero keeps rotation random.
func WithSeed(seed uint64) Option {
	return func(cfg *boardConfig) error {
		cfg.seed = seed
		return nil
	}
}

// WithReducedMotion renders every transition at rest, in the browser and
// in the terminal.
func WithReducedMotion(reduce bool) Option {
	return func(cfg *boardConfig) error {
		cfg.reduceMotion = reduce
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Board instance.
//
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithStateCallback registers a function to be called on every state change
// of every mounted page.
//
// Multiple callbacks may be registered; they execute in registration order.
//
// IMPORTANT: Callbacks must be non-blocking. They run synchronously while
// the page is locked, so a slow callback delays that page's timers and
// actions. Dispatch long-running work to a separate goroutine.
//
// Panics within callbacks are recovered and logged.
//
// Example:
//
//	board, err := purrboard.New(
//	    purrboard.WithStateCallback(func(s purrboard.State) {
//	        if s.Likes == 100 {
//	            log.Printf("page %s reached 100 likes", s.Session)
//	        }
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithStateCallback(cb func(State)) Option {
	return func(cfg *boardConfig) error {
		if cb == nil {
			return nil
		}
		cfg.stateCallbacks = append(cfg.stateCallbacks, cb)
		return nil
	}
}
