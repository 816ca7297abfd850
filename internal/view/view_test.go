package view

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testFacts = []string{"one", "two", "three", "four", "five"}

func newTestView(t *testing.T, images int) *View {
	t.Helper()
	v, err := New(images, testFacts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

func TestNew_InitialState(t *testing.T) {
	v := newTestView(t, 3)

	want := Snapshot{ImageCount: 3, Tab: TabFacts}
	if diff := cmp.Diff(want, v.Snapshot()); diff != "" {
		t.Errorf("initial Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_NoImages(t *testing.T) {
	if _, err := New(0, testFacts); err == nil {
		t.Error("New(0) expected error, got nil")
	}
}

func TestNew_CopiesFacts(t *testing.T) {
	facts := []string{"a"}
	v, err := New(1, facts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	facts[0] = "mutated"

	v.RotateFact(func(int) int { return 0 })
	if got := v.Snapshot().FunFact; got != "a" {
		t.Errorf("FunFact = %q, want %q", got, "a")
	}
}

func TestLike_CountsEveryClick(t *testing.T) {
	for _, n := range []int{1, 2, 10, 250} {
		v := newTestView(t, 3)
		for i := 0; i < n; i++ {
			v.Like()
		}
		if got := v.Snapshot().Likes; got != n {
			t.Errorf("after %d likes Likes = %d", n, got)
		}
	}
}

func TestLike_ShowsNotice(t *testing.T) {
	v := newTestView(t, 3)

	if got := v.Like(); got != 1 {
		t.Errorf("Like() = %d, want 1", got)
	}
	if !v.Snapshot().NoticeVisible {
		t.Error("NoticeVisible = false after Like()")
	}

	if !v.Dismiss() {
		t.Error("Dismiss() = false, want true for a visible notice")
	}
	if v.Snapshot().NoticeVisible {
		t.Error("NoticeVisible = true after Dismiss()")
	}
	if v.Dismiss() {
		t.Error("second Dismiss() = true, want false")
	}
}

func TestAdvance_Wraps(t *testing.T) {
	tests := []struct {
		name     string
		images   int
		advances int
		want     int
	}{
		{"single advance", 3, 1, 1},
		{"full cycle", 3, 3, 0},
		{"cycle and one", 5, 6, 1},
		{"one image", 1, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestView(t, tt.images)
			for i := 0; i < tt.advances; i++ {
				v.Advance()
			}
			if got := v.Snapshot().ImageIndex; got != tt.want {
				t.Errorf("ImageIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRewind_WrapsFromFirst(t *testing.T) {
	v := newTestView(t, 5)
	v.Rewind()
	if got := v.Snapshot().ImageIndex; got != 4 {
		t.Errorf("ImageIndex = %d, want 4", got)
	}
	v.Rewind()
	if got := v.Snapshot().ImageIndex; got != 3 {
		t.Errorf("ImageIndex = %d, want 3", got)
	}
}

func TestImageChange_ResetsProgress(t *testing.T) {
	for name, change := range map[string]func(*View){
		"advance": (*View).Advance,
		"rewind":  (*View).Rewind,
	} {
		t.Run(name, func(t *testing.T) {
			v := newTestView(t, 3)
			for i := 0; i < 42; i++ {
				v.Tick()
			}
			change(v)
			if got := v.Snapshot().Progress; got != 0 {
				t.Errorf("Progress = %d after %s, want 0", got, name)
			}
		})
	}
}

func TestTick_Saturates(t *testing.T) {
	v := newTestView(t, 3)
	for i := 0; i < MaxProgress; i++ {
		if !v.Tick() {
			t.Fatalf("Tick() #%d = false, want true", i+1)
		}
	}
	before := v.Snapshot()
	for i := 0; i < 10; i++ {
		if v.Tick() {
			t.Fatal("Tick() at max = true, want false")
		}
	}
	after := v.Snapshot()
	if after.Progress != MaxProgress {
		t.Errorf("Progress = %d, want %d", after.Progress, MaxProgress)
	}
	if after.Version != before.Version {
		t.Errorf("Version changed on saturated tick: %d -> %d", before.Version, after.Version)
	}
}

func TestRotateFact_PicksFromList(t *testing.T) {
	v := newTestView(t, 3)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		if !v.RotateFact(rng.IntN) {
			t.Fatal("RotateFact() = false with facts configured")
		}
		if got := v.Snapshot().FunFact; !slices.Contains(testFacts, got) {
			t.Fatalf("FunFact = %q, not in fact list", got)
		}
	}
}

func TestRotateFact_NoFacts(t *testing.T) {
	v, err := New(1, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if v.RotateFact(func(int) int { return 0 }) {
		t.Error("RotateFact() = true with no facts")
	}
	if got := v.Snapshot().FunFact; got != "" {
		t.Errorf("FunFact = %q, want empty", got)
	}
}

func TestPickFact_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	counts := make(map[string]int)
	const draws = 10000

	for i := 0; i < draws; i++ {
		fact, ok := PickFact(testFacts, rng.IntN)
		if !ok {
			t.Fatal("PickFact() ok = false")
		}
		counts[fact]++
	}

	// each fact should land near draws/len(facts)
	expected := draws / len(testFacts)
	for _, f := range testFacts {
		if c := counts[f]; c < expected*8/10 || c > expected*12/10 {
			t.Errorf("fact %q drawn %d times, want about %d", f, c, expected)
		}
	}
}

func TestSwitchTab_LeavesOtherStateAlone(t *testing.T) {
	v := newTestView(t, 3)
	v.Like()
	v.Advance()
	v.Tick()
	before := v.Snapshot()

	if err := v.SwitchTab(TabBreeds); err != nil {
		t.Fatalf("SwitchTab() error = %v", err)
	}
	after := v.Snapshot()

	if after.Tab != TabBreeds {
		t.Errorf("Tab = %q, want %q", after.Tab, TabBreeds)
	}
	if after.Likes != before.Likes || after.ImageIndex != before.ImageIndex || after.Progress != before.Progress {
		t.Errorf("SwitchTab changed state: before %+v, after %+v", before, after)
	}
}

func TestSwitchTab_SameTabNoVersionBump(t *testing.T) {
	v := newTestView(t, 3)
	before := v.Snapshot().Version
	if err := v.SwitchTab(TabFacts); err != nil {
		t.Fatalf("SwitchTab() error = %v", err)
	}
	if got := v.Snapshot().Version; got != before {
		t.Errorf("Version = %d, want %d", got, before)
	}
}

func TestSwitchTab_Unknown(t *testing.T) {
	v := newTestView(t, 3)
	err := v.SwitchTab("photos")
	if !errors.Is(err, ErrUnknownTab) {
		t.Errorf("SwitchTab(photos) error = %v, want ErrUnknownTab", err)
	}
	if got := v.Snapshot().Tab; got != TabFacts {
		t.Errorf("Tab = %q, want %q", got, TabFacts)
	}
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"facts", TabFacts, false},
		{"breeds", TabBreeds, false},
		{"", "", true},
		{"Facts", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTab(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersion_Monotonic(t *testing.T) {
	v := newTestView(t, 2)
	last := v.Snapshot().Version
	ops := []func(){
		v.Advance,
		v.Rewind,
		func() { v.Tick() },
		func() { v.Like() },
		func() { v.Dismiss() },
		func() { _ = v.SwitchTab(TabBreeds) },
		func() { v.RotateFact(func(int) int { return 1 }) },
	}
	for i, op := range ops {
		op()
		got := v.Snapshot().Version
		if got <= last {
			t.Errorf("op %d: Version = %d, want > %d", i, got, last)
		}
		last = got
	}
}
