// Package main is the entry point for the purrboard CLI.
//
// PurrBoard can be run either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	purrboard serve -c config.yaml     # Serve the page in the browser
//	purrboard tui                      # Draw the page in the terminal
//	purrboard validate -c config.yaml  # Validate configuration
//	purrboard version                  # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "purrboard",
	Short: "A cat page for the browser and the terminal",
	Long: `PurrBoard renders a decorative cat page.

It shows an auto-advancing image carousel with a progress bar, a rotating
fun fact, facts and breeds panels, and a like button. Each browser tab gets
its own page; the terminal gets one too.

Quick start:
  1. Run: purrboard serve
  2. Open http://localhost:8080 in your browser
  3. Or run: purrboard tui

Example config:
  title: Office Cats
  timings:
    advance_interval: 8s
  images:
    - url: https://example.com/tabby.jpg
      caption: A curious tabby`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this purrboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "purrboard %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
