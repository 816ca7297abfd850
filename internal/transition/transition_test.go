package transition

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestSpec_At(t *testing.T) {
	s := Hero()

	if got := s.At(0); got != s.From {
		t.Errorf("At(0) = %+v, want %+v", got, s.From)
	}
	if got := s.At(s.Total()); got != Rest {
		t.Errorf("At(total) = %+v, want %+v", got, Rest)
	}

	mid := s.At(250 * time.Millisecond)
	if mid.Opacity <= 0 || mid.Opacity >= 1 {
		t.Errorf("mid opacity = %v, want in (0,1)", mid.Opacity)
	}
	if mid.Y >= 0 || mid.Y <= -50 {
		t.Errorf("mid y = %v, want in (-50,0)", mid.Y)
	}
}

func TestSpec_DelayHoldsFromFrame(t *testing.T) {
	s := Tagline()

	if got := s.At(400 * time.Millisecond); got.Opacity != 0 {
		t.Errorf("opacity during delay = %v, want 0", got.Opacity)
	}
	if s.Done(900 * time.Millisecond) {
		t.Error("tagline done before delay + duration")
	}
	if !s.Done(time.Second) {
		t.Error("tagline not done at delay + duration")
	}
}

func TestListItem_Staggered(t *testing.T) {
	for i := 0; i < 5; i++ {
		s := ListItem(i)
		if want := time.Duration(i) * 100 * time.Millisecond; s.Delay != want {
			t.Errorf("ListItem(%d).Delay = %v, want %v", i, s.Delay, want)
		}
		if s.From.X != -50 {
			t.Errorf("ListItem(%d).From.X = %v, want -50", i, s.From.X)
		}
	}
	if ListItem(-3).Delay != 0 {
		t.Error("negative index should not produce a negative delay")
	}
}

func TestSpec_Reverse(t *testing.T) {
	s := Toast()
	r := s.Reverse()

	if r.From != s.To || r.To != s.From {
		t.Errorf("Reverse swapped frames wrong: %+v", r)
	}
	if got := r.At(r.Total()); got.Y != 50 || got.Opacity != 0 {
		t.Errorf("exit ends at %+v, want below and hidden", got)
	}
}

func TestStyle(t *testing.T) {
	css := string(Style(Hero()))

	for _, want := range []string{
		"--from-opacity:0;",
		"--from-y:-50px;",
		"--to-opacity:1;",
		"--to-scale:1;",
		"--duration:500ms;",
		"--delay:0ms;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("Style(Hero()) = %q, missing %q", css, want)
		}
	}
	if strings.Contains(css, "--hover") {
		t.Error("hero has no hover frame")
	}

	hover := string(Style(LikeButton()))
	if !strings.Contains(hover, "--hover-scale:1.05;") {
		t.Errorf("Style(LikeButton()) = %q, missing hover scale", hover)
	}

	item := string(Style(ListItem(3)))
	if !strings.Contains(item, "--delay:300ms;") {
		t.Errorf("Style(ListItem(3)) = %q, missing stagger delay", item)
	}
}

func TestStatic_Apply(t *testing.T) {
	node := "Siamese\nTalkative and social."
	if got := (Static{}).Apply(node, ListItem(4), 0); got != node {
		t.Errorf("Static.Apply = %q, want unchanged", got)
	}
}

func TestTerminal_HiddenBeforeDelayKeepsShape(t *testing.T) {
	node := "Maine Coon\nGentle giant"
	got := Terminal{}.Apply(node, ListItem(2), 50*time.Millisecond)

	if strings.TrimSpace(got) != "" {
		t.Errorf("node visible during delay: %q", got)
	}
	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(node, "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("line count = %d, want %d", len(gotLines), len(wantLines))
	}
	for i := range wantLines {
		if lipgloss.Width(gotLines[i]) != lipgloss.Width(wantLines[i]) {
			t.Errorf("line %d width = %d, want %d", i, lipgloss.Width(gotLines[i]), lipgloss.Width(wantLines[i]))
		}
	}
}

func TestTerminal_SlidesIn(t *testing.T) {
	node := "Persian"
	got := Terminal{}.Apply(node, ListItem(0), 150*time.Millisecond)

	if !strings.Contains(got, node) {
		t.Fatalf("node missing mid-slide: %q", got)
	}
	if !strings.HasPrefix(got, " ") {
		t.Errorf("node not indented mid-slide: %q", got)
	}
}

func TestTerminal_SettledIsUnchanged(t *testing.T) {
	node := "Bengal"
	for _, s := range []Spec{Hero(), Tagline(), Image(), ListItem(4), Toast(), LikeButton()} {
		if got := (Terminal{}).Apply(node, s, s.Total()); got != node {
			t.Errorf("settled node = %q, want %q", got, node)
		}
	}
}

func TestFor(t *testing.T) {
	if _, ok := For(true).(Static); !ok {
		t.Error("reduced motion should use Static")
	}
	if _, ok := For(false).(Terminal); !ok {
		t.Error("full motion should use Terminal")
	}
}
