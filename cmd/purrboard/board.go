package main

import (
	"fmt"
	"log/slog"

	"github.com/jpalmerr/purrboard"
	"github.com/jpalmerr/purrboard/config"
)

// loadConfig loads the config file at path. An empty path yields the
// defaults, so every command works without a config file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(nil)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newBoard creates a Board from cfg logging to logger.
func newBoard(cfg *config.Config, logger *slog.Logger) (*purrboard.Board, error) {
	opts, err := config.BuildOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build options: %w", err)
	}
	opts = append(opts, purrboard.WithLogger(logger))

	board, err := purrboard.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create PurrBoard: %w", err)
	}
	return board, nil
}

// reloadContent applies the content of a changed config file to board.
// Timings and port changes need a restart.
func reloadContent(board *purrboard.Board, logger *slog.Logger) func(*config.Config) {
	return func(cfg *config.Config) {
		content, err := config.BuildContent(cfg)
		if err != nil {
			logger.Error("config reload rejected", "error", err)
			return
		}
		if err := board.Reload(content); err != nil {
			logger.Error("config reload rejected", "error", err)
		}
	}
}
