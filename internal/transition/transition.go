package transition

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"
)

// Frame is the visual state of a node at one instant. X and Y are offsets
// in CSS pixels from the node's resting position.
type Frame struct {
	Opacity float64
	Scale   float64
	X       float64
	Y       float64
}

// Rest is the frame of a fully shown node at its resting position.
var Rest = Frame{Opacity: 1, Scale: 1}

// Spec describes how a node enters (From to To) and, optionally, how it
// looks while hovered.
type Spec struct {
	From     Frame
	To       Frame
	Hover    *Frame
	Duration time.Duration
	Delay    time.Duration
}

// Total returns the time from mount until the node settles.
func (s Spec) Total() time.Duration {
	return s.Delay + s.Duration
}

// Done reports whether the transition has settled at elapsed.
func (s Spec) Done(elapsed time.Duration) bool {
	return elapsed >= s.Total()
}

// Progress returns the eased completion in [0,1] at elapsed.
func (s Spec) Progress(elapsed time.Duration) float64 {
	if elapsed <= s.Delay {
		if s.Duration <= 0 && elapsed == s.Delay {
			return 1
		}
		return 0
	}
	if s.Duration <= 0 || elapsed >= s.Total() {
		return 1
	}
	t := float64(elapsed-s.Delay) / float64(s.Duration)
	return EaseOutCubic(t)
}

// At returns the interpolated frame at elapsed.
func (s Spec) At(elapsed time.Duration) Frame {
	p := s.Progress(elapsed)
	return Frame{
		Opacity: lerp(s.From.Opacity, s.To.Opacity, p),
		Scale:   lerp(s.From.Scale, s.To.Scale, p),
		X:       lerp(s.From.X, s.To.X, p),
		Y:       lerp(s.From.Y, s.To.Y, p),
	}
}

// Reverse returns the exit transition: the node leaves toward From.
func (s Spec) Reverse() Spec {
	r := s
	r.From, r.To = s.To, s.From
	r.Delay = 0
	return r
}

// EaseOutCubic maps t in [0,1] onto a decelerating curve.
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	u := 1 - t
	return 1 - u*u*u
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

const (
	enterDuration = 500 * time.Millisecond
	itemDuration  = 300 * time.Millisecond
	itemStagger   = 100 * time.Millisecond
)

// Hero is the page title: it drops in from above while fading in.
func Hero() Spec {
	return Spec{
		From:     Frame{Opacity: 0, Scale: 1, Y: -50},
		To:       Rest,
		Duration: enterDuration,
	}
}

// Tagline fades in after the title has landed.
func Tagline() Spec {
	return Spec{
		From:     Frame{Opacity: 0, Scale: 1},
		To:       Rest,
		Duration: enterDuration,
		Delay:    enterDuration,
	}
}

// Image zooms the carousel image in. Its reverse is used when an image
// leaves.
func Image() Spec {
	return Spec{
		From:     Frame{Opacity: 0, Scale: 0.8},
		To:       Rest,
		Duration: enterDuration,
	}
}

// ListItem slides the i-th fact or breed in from the left, staggered by
// position.
func ListItem(i int) Spec {
	if i < 0 {
		i = 0
	}
	return Spec{
		From:     Frame{Opacity: 0, Scale: 1, X: -50},
		To:       Rest,
		Duration: itemDuration,
		Delay:    time.Duration(i) * itemStagger,
	}
}

// Toast rises the like acknowledgment from below. Its reverse drops it
// back out.
func Toast() Spec {
	return Spec{
		From:     Frame{Opacity: 0, Scale: 1, Y: 50},
		To:       Rest,
		Duration: itemDuration,
	}
}

// LikeButton has no entrance; it grows slightly while hovered.
func LikeButton() Spec {
	return Spec{
		From:     Rest,
		To:       Rest,
		Hover:    &Frame{Opacity: 1, Scale: 1.05},
		Duration: 200 * time.Millisecond,
	}
}

// Style renders s as CSS custom properties consumed by the page's
// stylesheet.
func Style(s Spec) template.CSS {
	var b strings.Builder
	writeFrame(&b, "from", s.From)
	writeFrame(&b, "to", s.To)
	if s.Hover != nil {
		writeFrame(&b, "hover", *s.Hover)
	}
	fmt.Fprintf(&b, "--duration:%dms;--delay:%dms;", s.Duration.Milliseconds(), s.Delay.Milliseconds())
	// only numbers and fixed property names are written
	return template.CSS(b.String())
}

func writeFrame(b *strings.Builder, prefix string, f Frame) {
	fmt.Fprintf(b, "--%s-opacity:%s;--%s-scale:%s;--%s-x:%spx;--%s-y:%spx;",
		prefix, num(f.Opacity),
		prefix, num(f.Scale),
		prefix, num(f.X),
		prefix, num(f.Y))
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
