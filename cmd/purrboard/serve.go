package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jpalmerr/purrboard/config"
)

const (
	shutdownTimeout = 10 * time.Second
)

// serveCmd starts the PurrBoard page server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page in the browser",
	Long: `Start the PurrBoard page server.

The server will:
  - Load configuration from the specified YAML file, or use the defaults
  - Serve the page on the configured port
  - Mount an independent page for every connected browser tab

With --watch, edits to the config file replace the content shown by pages
mounted afterwards. Timings and port changes need a restart.

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  purrboard serve
  purrboard serve -c config.yaml --watch
  purrboard serve --config /etc/purrboard/config.yaml --port 9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file")
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port, overrides the config file")
	serveCmd.Flags().Bool("watch", false, "reload content when the config file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && configFile == "" {
		return errors.New("--watch requires --config")
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	logger, closer := config.NewLogger(cfg.Log, os.Stderr)
	defer closer.Close()

	board, err := newBoard(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("config loaded",
		"images", len(board.Content().Images),
		"facts", len(board.Content().Facts),
		"breeds", len(board.Content().Breeds),
	)
	logger.Info("starting server",
		"port", board.Port(),
		"advance_interval", cfg.Timings.AdvanceInterval.Duration().String(),
		"watch", watch,
	)

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return board.Serve(gctx)
	})
	if watch {
		g.Go(func() error {
			return config.Watch(gctx, configFile, logger, reloadContent(board, logger))
		})
	}

	// start server - blocks until context cancelled
	errChan := make(chan error, 1)
	go func() {
		errChan <- g.Wait()
	}()

	// wait for server to finish
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(shutdownTimeout):
			logger.Warn("shutdown timed out",
				"timeout", shutdownTimeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
