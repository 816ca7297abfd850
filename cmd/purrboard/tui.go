package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/purrboard/config"
)

// tuiCmd draws the page in the terminal.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Draw the page in the terminal",
	Long: `Draw the PurrBoard page in the terminal.

Images are shown by caption and address; everything else behaves as in the
browser. Logs go to the file configured under log.file and are discarded
otherwise.

Keys:
  left/h, right/l  previous / next image
  space, enter     like
  tab, 1, 2        switch panel
  ?                full help
  q, esc           quit

Example:
  purrboard tui
  purrboard tui -c config.yaml`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringP("config", "c", "", "path to config file")
}

func runTUI(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	// never log to the screen the page is drawn on
	logger, closer := config.NewLogger(cfg.Log, io.Discard)
	defer closer.Close()

	board, err := newBoard(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return board.RunTerminal(ctx)
}
