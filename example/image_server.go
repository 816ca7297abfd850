package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// palette holds one coat color per placeholder image.
var palette = []color.RGBA{
	{R: 0xd9, G: 0x8c, B: 0x3f, A: 0xff}, // ginger
	{R: 0x3b, G: 0x3b, B: 0x3b, A: 0xff}, // black
	{R: 0xe8, G: 0xe0, B: 0xd0, A: 0xff}, // cream
	{R: 0x8a, G: 0x8f, B: 0x99, A: 0xff}, // blue
}

// StartImageServer serves placeholder images at /cat/<n>.png, one per
// palette color, and a /cat/missing.png that always fails so the broken
// image fallback can be seen.
// Call this in a goroutine before creating the board.
func StartImageServer(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cat/{n}", func(w http.ResponseWriter, r *http.Request) {
		num, ok := strings.CutSuffix(r.PathValue("n"), ".png")
		idx, err := strconv.Atoi(num)
		if !ok || err != nil || idx < 0 || idx >= len(palette) {
			http.NotFound(w, r)
			return
		}

		// simulate a slow image host
		time.Sleep(150 * time.Millisecond)

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "max-age=3600")
		_, _ = w.Write(placeholder(palette[idx]))
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("image server error", "error", err)
	}
}

// placeholder draws a solid 640x480 image with a lighter band where a
// caption would sit.
func placeholder(c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	band := color.RGBA{R: c.R/2 + 0x7f, G: c.G/2 + 0x7f, B: c.B/2 + 0x7f, A: 0xff}
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			if y > 400 {
				img.SetRGBA(x, y, band)
			} else {
				img.SetRGBA(x, y, c)
			}
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
