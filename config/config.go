// Package config provides YAML configuration parsing for PurrBoard.
//
// This package enables running PurrBoard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: Office Cats
//	port: 8080
//
//	timings:
//	  advance_interval: 5s
//	  notice_delay: 3s
//
//	log:
//	  level: info
//	  file: /var/log/purrboard.log
//
//	images:
//	  - url: ${CAT_CDN:-https://example.com}/tabby.jpg
//	    caption: A curious tabby
//
//	facts:
//	  - Cats spend 70% of their lives sleeping.
//
//	breeds:
//	  - name: Siamese
//	    description: Known for their distinctive coloring and vocal nature.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// minProgressInterval keeps the progress bar from flooding subscribers.
	minProgressInterval = 10 * time.Millisecond

	// minCycleInterval is the shortest carousel or fun fact interval.
	minCycleInterval = 100 * time.Millisecond
)

// Defaults applied by [Parse] for missing values.
const (
	DefaultPort             = 8080
	DefaultAdvanceInterval  = 5 * time.Second
	DefaultProgressInterval = 50 * time.Millisecond
	DefaultFactInterval     = 10 * time.Second
	DefaultNoticeDelay      = 3 * time.Second
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultLogMaxSizeMB     = 10
	DefaultLogMaxBackups    = 3
	DefaultLogMaxAgeDays    = 14
)

// Config is the root configuration structure for PurrBoard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the page title. Empty uses the stock title.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Title string `yaml:"title"`

	// Tagline is the line under the title. Empty uses the stock tagline.
	// Supports environment variable substitution.
	Tagline string `yaml:"tagline"`

	// Port is the HTTP server port. Defaults to 8080.
	Port int `yaml:"port"`

	// ReduceMotion renders every transition at rest.
	ReduceMotion bool `yaml:"reduce_motion"`

	// Seed makes fun fact rotation deterministic. 0 keeps it random.
	Seed uint64 `yaml:"seed"`

	// Timings configures the page timers.
	Timings TimingsConfig `yaml:"timings"`

	// Log configures logging for the purrboard binary.
	Log LogConfig `yaml:"log"`

	// Images are the carousel entries. Empty uses the stock images.
	Images []ImageConfig `yaml:"images"`

	// Facts are the facts panel entries and the fun fact pool.
	// Empty uses the stock facts.
	Facts []string `yaml:"facts"`

	// Breeds are the breeds panel entries. Empty uses the stock breeds.
	Breeds []BreedConfig `yaml:"breeds"`
}

// TimingsConfig holds the page timer durations.
// Accepts duration strings like "5s", "1m", "50ms".
type TimingsConfig struct {
	// AdvanceInterval is the time between carousel advances. Defaults to 5s.
	AdvanceInterval Duration `yaml:"advance_interval"`

	// ProgressInterval is the time between progress steps. Defaults to 50ms.
	ProgressInterval Duration `yaml:"progress_interval"`

	// FactInterval is the time between fun fact rotations. Defaults to 10s.
	FactInterval Duration `yaml:"fact_interval"`

	// NoticeDelay is how long the like acknowledgment stays after the most
	// recent like. Defaults to 3s.
	NoticeDelay Duration `yaml:"notice_delay"`
}

// LogConfig configures the logger built by [NewLogger].
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`

	// Format is json or text. Defaults to json.
	Format string `yaml:"format"`

	// File redirects logs to a rotated file when set.
	File string `yaml:"file"`

	// MaxSizeMB is the size at which the log file is rotated. Defaults to 10.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept. Defaults to 3.
	MaxBackups int `yaml:"max_backups"`

	// MaxAgeDays is how long rotated files are kept. Defaults to 14.
	MaxAgeDays int `yaml:"max_age_days"`
}

// ImageConfig defines a single carousel image.
type ImageConfig struct {
	// URL is loaded by the browser only.
	// Supports environment variable substitution.
	URL string `yaml:"url"`

	// Caption is shown under the image.
	Caption string `yaml:"caption"`
}

// BreedConfig defines a single entry of the breeds panel.
type BreedConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in the title, tagline and image URLs.
// Defaults are applied for the port, timings and log settings. Empty
// content lists are left empty; [BuildOptions] keeps the stock content for
// them.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}

	t := &c.Timings
	if t.AdvanceInterval == 0 {
		t.AdvanceInterval = Duration(DefaultAdvanceInterval)
	}
	if t.ProgressInterval == 0 {
		t.ProgressInterval = Duration(DefaultProgressInterval)
	}
	if t.FactInterval == 0 {
		t.FactInterval = Duration(DefaultFactInterval)
	}
	if t.NoticeDelay == 0 {
		t.NoticeDelay = Duration(DefaultNoticeDelay)
	}

	l := &c.Log
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if l.Format == "" {
		l.Format = DefaultLogFormat
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = DefaultLogMaxBackups
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = DefaultLogMaxAgeDays
	}
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	var err error
	if c.Title, err = expandEnvVars(c.Title); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	if c.Tagline, err = expandEnvVars(c.Tagline); err != nil {
		return fmt.Errorf("tagline: %w", err)
	}

	if err := c.Timings.validate(); err != nil {
		return err
	}
	if err := c.Log.validate(); err != nil {
		return err
	}

	for i := range c.Images {
		img := &c.Images[i]

		if img.URL == "" {
			return fmt.Errorf("images[%d]: url is required", i)
		}
		expanded, err := expandEnvVars(img.URL)
		if err != nil {
			return fmt.Errorf("images[%d]: url: %w", i, err)
		}
		img.URL = expanded

		parsedURL, err := url.Parse(img.URL)
		if err != nil {
			return fmt.Errorf("images[%d]: invalid url: %w", i, err)
		}
		if parsedURL.Scheme == "" {
			return fmt.Errorf("images[%d]: url must have a scheme (http:// or https://)", i)
		}
		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			return fmt.Errorf("images[%d]: url scheme must be http or https, got %q", i, parsedURL.Scheme)
		}
		if parsedURL.Host == "" {
			return fmt.Errorf("images[%d]: url must have a host", i)
		}
	}

	for i, f := range c.Facts {
		if f == "" {
			return fmt.Errorf("facts[%d]: text is required", i)
		}
	}

	for i, b := range c.Breeds {
		if b.Name == "" {
			return fmt.Errorf("breeds[%d]: name is required", i)
		}
	}

	return nil
}

func (t TimingsConfig) validate() error {
	checks := []struct {
		name string
		d    Duration
		min  time.Duration
	}{
		{"timings.advance_interval", t.AdvanceInterval, minCycleInterval},
		{"timings.progress_interval", t.ProgressInterval, minProgressInterval},
		{"timings.fact_interval", t.FactInterval, minCycleInterval},
		{"timings.notice_delay", t.NoticeDelay, 0},
	}
	for _, c := range checks {
		if c.d.Duration() <= 0 {
			return fmt.Errorf("%s must be positive, got %s", c.name, c.d.Duration())
		}
		if c.d.Duration() < c.min {
			return fmt.Errorf("%s must be at least %s, got %s", c.name, c.min, c.d.Duration())
		}
	}
	return nil
}

func (l LogConfig) validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", l.Level)
	}
	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", l.Format)
	}
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return errors.New("log rotation settings cannot be negative")
	}
	return nil
}
