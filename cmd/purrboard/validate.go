package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/purrboard"
	"github.com/jpalmerr/purrboard/config"
	"github.com/jpalmerr/purrboard/internal/probe"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a PurrBoard configuration file without starting the server.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

With --probe, every carousel image is also requested to make sure a
browser will be able to show it.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  purrboard validate -c config.yaml
  purrboard validate --config /etc/purrboard/config.yaml
  purrboard validate -c config.yaml --probe --probe-timeout 10s`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
	validateCmd.Flags().Bool("probe", false, "check that every image can be loaded")
	validateCmd.Flags().Duration("probe-timeout", 5*time.Second, "timeout per image probe")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	content, err := config.BuildContent(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	t := cfg.Timings
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Title:    %s\n", content.Title)
	fmt.Fprintf(out, "  Port:     %d\n", cfg.Port)
	fmt.Fprintf(out, "  Timings:  advance %s, progress %s, fact %s, notice %s\n",
		t.AdvanceInterval.Duration(), t.ProgressInterval.Duration(),
		t.FactInterval.Duration(), t.NoticeDelay.Duration())
	fmt.Fprintf(out, "  Content:  %d images, %d facts, %d breeds\n",
		len(content.Images), len(content.Facts), len(content.Breeds))

	if probeImages, _ := cmd.Flags().GetBool("probe"); probeImages {
		timeout, _ := cmd.Flags().GetDuration("probe-timeout")
		return probeContent(cmd, content, timeout)
	}
	return nil
}

// probeContent requests every image of content and reports the ones a
// browser could not show.
func probeContent(cmd *cobra.Command, content purrboard.Content, timeout time.Duration) error {
	urls := make([]string, len(content.Images))
	for i, img := range content.Images {
		urls[i] = img.URL()
	}

	client := probe.NewClient()
	defer client.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := client.Check(ctx, urls, timeout)

	out := cmd.OutOrStdout()
	failed := 0
	for i, r := range results {
		switch {
		case r.OK():
			fmt.Fprintf(out, "  ok    images[%d] %s (%s)\n", i, r.URL, r.Latency.Round(time.Millisecond))
		case r.Error != nil:
			failed++
			fmt.Fprintf(out, "  FAIL  images[%d] %s: %v\n", i, r.URL, r.Error)
		default:
			failed++
			fmt.Fprintf(out, "  FAIL  images[%d] %s: status %d, content type %q\n", i, r.URL, r.StatusCode, r.ContentType)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images cannot be shown", failed, len(results))
	}
	return nil
}
