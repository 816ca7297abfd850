package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmerr/purrboard"
)

func main() {
	// start placeholder image server (see image_server.go)
	go StartImageServer(":9999")
	time.Sleep(100 * time.Millisecond)

	captions := []string{"Ginger on the windowsill", "Midnight prowler", "Cream puff", "Russian blue at rest"}
	var images []purrboard.Image
	for i, caption := range captions {
		img, err := purrboard.NewImage(fmt.Sprintf("http://localhost:9999/cat/%d.png", i), caption)
		if err != nil {
			slog.Error("failed to create image", "error", err)
			os.Exit(1)
		}
		images = append(images, img)
	}

	// this one 404s: the browser hides it and keeps the caption
	missing, _ := purrboard.NewImage("http://localhost:9999/cat/missing.png", "The cat that got away")
	images = append(images, missing)

	board, err := purrboard.New(
		purrboard.WithTitle("PurrBoard Demo"),
		purrboard.WithImages(images...),
		purrboard.WithAdvanceInterval(4*time.Second),
		purrboard.WithPort(8080),
		purrboard.WithStateCallback(func(s purrboard.State) {
			if s.Likes > 0 && s.Likes%10 == 0 && s.NoticeVisible {
				slog.Info("like milestone", "session", s.Session, "likes", s.Likes)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create purrboard", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════════════════╗")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   PurrBoard Demo                                      ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Open http://localhost:8080 in your browser          ║")
	fmt.Println("  ║   Every tab gets its own page and like counter        ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Images:                                             ║")
	fmt.Println("  ║   • 4 placeholders from the local image server        ║")
	fmt.Println("  ║   • 1 missing image to show the fallback              ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Press Ctrl+C to stop                                ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := board.Serve(ctx); err != nil {
		slog.Error("purrboard error", "error", err)
		os.Exit(1)
	}
}
