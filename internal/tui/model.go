package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jpalmerr/purrboard/internal/store"
	"github.com/jpalmerr/purrboard/internal/transition"
	"github.com/jpalmerr/purrboard/internal/view"
)

const (
	frameInterval = time.Second / 30
	defaultWidth  = 80
	maxWidth      = 100

	loadingFact = "Loading a fun fact..."
)

// Page is the mounted page the screen drives.
type Page interface {
	Next()
	Prev()
	Like()
	SwitchTab(tab view.Tab) error
}

// Breed is a popular breed entry.
type Breed struct {
	Name        string
	Description string
}

// Content is the static part of the page.
type Content struct {
	Title   string
	Tagline string
	Facts   []string
	Breeds  []Breed
}

// Options configures a [Model].
type Options struct {
	Content Content

	// Page receives the user's actions.
	Page Page

	// Initial is the page's state at mount.
	Initial store.Snapshot

	// Updates delivers the page's snapshots. The screen quits when it is
	// closed.
	Updates <-chan store.Snapshot

	// ReduceMotion draws every node at rest.
	ReduceMotion bool

	// Locale formats the like count. Defaults to English.
	Locale language.Tag

	// Now is the clock used for transitions. Defaults to time.Now.
	Now func() time.Time
}

type snapshotMsg store.Snapshot

type closedMsg struct{}

type frameMsg time.Time

// Model is the Bubble Tea model of the terminal page.
type Model struct {
	content  Content
	page     Page
	updates  <-chan store.Snapshot
	snap     store.Snapshot
	animator transition.Animator
	motion   bool
	now      func() time.Time
	printer  *message.Printer

	keys   keyMap
	help   help.Model
	bar    progress.Model
	styles styles
	width  int
	items  map[view.Tab][]string

	mountedAt time.Time
	imageAt   time.Time
	tabAt     time.Time

	toastShown   bool
	toastLeaving bool
	toastAt      time.Time

	ticking  bool
	quitting bool
}

// New creates the screen for one mounted page.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}

	start := now()
	m := Model{
		content:   opts.Content,
		page:      opts.Page,
		updates:   opts.Updates,
		snap:      opts.Initial,
		animator:  transition.For(opts.ReduceMotion),
		motion:    !opts.ReduceMotion,
		now:       now,
		printer:   message.NewPrinter(locale),
		keys:      defaultKeyMap(),
		help:      help.New(),
		bar:       progress.New(progress.WithDefaultGradient()),
		styles:    defaultStyles(),
		mountedAt: start,
		imageAt:   start,
		tabAt:     start,
	}
	if m.snap.Tab == "" {
		m.snap.Tab = string(view.TabFacts)
	}
	m.toastShown = m.snap.NoticeVisible
	m.toastAt = start
	// Init starts the first frame
	m.ticking = m.motion
	m.resize(defaultWidth)
	return m
}

// Init starts listening for snapshots and, unless motion is reduced, runs
// the entrance transitions.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForSnapshot()}
	if m.motion {
		cmds = append(cmds, frame())
	}
	return tea.Batch(cmds...)
}

func (m Model) waitForSnapshot() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		if updates == nil {
			return nil
		}
		snap, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles keys, snapshots and animation frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		m.apply(store.Snapshot(msg))
		frames := m.startFrames()
		return m, tea.Batch(m.waitForSnapshot(), frames)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case frameMsg:
		if m.animating() {
			return m, frame()
		}
		m.ticking = false
		if m.toastLeaving {
			m.toastShown, m.toastLeaving = false, false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.page.Prev()
	case key.Matches(msg, m.keys.Next):
		m.page.Next()
	case key.Matches(msg, m.keys.Like):
		m.page.Like()
	case key.Matches(msg, m.keys.Toggle):
		next := view.TabBreeds
		if view.Tab(m.snap.Tab) == view.TabBreeds {
			next = view.TabFacts
		}
		_ = m.page.SwitchTab(next)
	case key.Matches(msg, m.keys.Facts):
		_ = m.page.SwitchTab(view.TabFacts)
	case key.Matches(msg, m.keys.Breeds):
		_ = m.page.SwitchTab(view.TabBreeds)
	}
	return m, nil
}

// apply takes a snapshot, restarting the transitions of the nodes it
// changes. Snapshots older than the current one are dropped.
func (m *Model) apply(snap store.Snapshot) {
	if snap.Version < m.snap.Version {
		return
	}
	now := m.now()
	if snap.ImageIndex != m.snap.ImageIndex {
		m.imageAt = now
	}
	if snap.Tab != m.snap.Tab {
		m.tabAt = now
	}
	switch {
	case snap.NoticeVisible && (!m.toastShown || m.toastLeaving):
		m.toastShown, m.toastLeaving, m.toastAt = true, false, now
	case !snap.NoticeVisible && m.toastShown && !m.toastLeaving:
		if m.motion {
			m.toastLeaving, m.toastAt = true, now
		} else {
			m.toastShown = false
		}
	}
	m.snap = snap
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return frame()
}

// animating reports whether any node is mid-transition.
func (m Model) animating() bool {
	if !m.motion {
		return false
	}
	now := m.now()
	if !transition.Tagline().Done(now.Sub(m.mountedAt)) {
		return true
	}
	if !transition.Image().Done(now.Sub(m.imageAt)) {
		return true
	}
	if n := len(m.items[view.Tab(m.snap.Tab)]); n > 0 && !transition.ListItem(n-1).Done(now.Sub(m.tabAt)) {
		return true
	}
	if m.toastShown && !transition.Toast().Done(now.Sub(m.toastAt)) {
		return true
	}
	return false
}

func (m *Model) resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = min(width, maxWidth)
	m.help.Width = m.width
	m.bar.Width = m.width - 4
	m.items = renderItems(m.content, m.width-6)
}

// renderItems renders the list entries of both panels as markdown.
func renderItems(c Content, wrap int) map[view.Tab][]string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)

	md := func(src, fallback string) string {
		if err != nil {
			return fallback
		}
		out, rerr := r.Render(src)
		if rerr != nil {
			return fallback
		}
		return strings.Trim(out, "\n")
	}

	items := map[view.Tab][]string{
		view.TabFacts:  make([]string, len(c.Facts)),
		view.TabBreeds: make([]string, len(c.Breeds)),
	}
	for i, f := range c.Facts {
		items[view.TabFacts][i] = md("* "+f, "• "+f)
	}
	for i, b := range c.Breeds {
		items[view.TabBreeds][i] = md("* **"+b.Name+":** "+b.Description, "• "+b.Name+": "+b.Description)
	}
	return items
}

// View renders the page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	now := m.now()
	sections := []string{
		m.viewHero(now),
		m.viewCarousel(now),
		m.viewFunFact(),
		m.viewPanel(now),
		m.viewLike(),
	}
	if m.toastShown {
		sections = append(sections, m.viewToast(now))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHero(now time.Time) string {
	s := m.styles
	elapsed := now.Sub(m.mountedAt)
	title := m.animator.Apply(s.Title.Render(m.content.Title), transition.Hero(), elapsed)
	tagline := m.animator.Apply(s.Tagline.Render(m.content.Tagline), transition.Tagline(), elapsed)
	return s.Hero.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Center, title, tagline))
}

func (m Model) viewCarousel(now time.Time) string {
	s := m.styles

	var dots strings.Builder
	for i := 0; i < m.snap.ImageCount; i++ {
		if i > 0 {
			dots.WriteString(" ")
		}
		if i == m.snap.ImageIndex {
			dots.WriteString("●")
		} else {
			dots.WriteString("○")
		}
	}

	image := lipgloss.JoinVertical(lipgloss.Left,
		s.Caption.Render("🐱 "+m.snap.Caption),
		s.URL.Render(m.snap.ImageURL),
	)
	image = m.animator.Apply(image, transition.Image(), now.Sub(m.imageAt))

	box := s.Carousel.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		image,
		s.Dots.Render(dots.String()),
	))
	bar := m.bar.ViewAs(float64(m.snap.Progress) / float64(view.MaxProgress))
	return lipgloss.JoinVertical(lipgloss.Left, box, " "+bar)
}

func (m Model) viewFunFact() string {
	s := m.styles
	if m.snap.FunFact == "" {
		return s.FunFact.Render(s.Loading.Render(loadingFact))
	}
	return s.FunFact.Width(m.width - 2).Render("Did you know? " + m.snap.FunFact)
}

func (m Model) viewPanel(now time.Time) string {
	s := m.styles
	active := view.Tab(m.snap.Tab)

	tab := func(t view.Tab, label string) string {
		if t == active {
			return s.TabActive.Render(label)
		}
		return s.TabIdle.Render(label)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		tab(view.TabFacts, "1 Feline Facts"),
		tab(view.TabBreeds, "2 Popular Breeds"),
	)

	title, desc := "Feline Facts", "Interesting tidbits about our furry friends"
	if active == view.TabBreeds {
		title, desc = "Popular Cat Breeds", "Some well-known feline friends"
	}

	lines := []string{s.CardTitle.Render(title), s.CardDesc.Render(desc)}
	elapsed := now.Sub(m.tabAt)
	for i, item := range m.items[active] {
		lines = append(lines, m.animator.Apply(item, transition.ListItem(i), elapsed))
	}
	card := s.Card.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Left, bar, card)
}

func (m Model) viewLike() string {
	s := m.styles
	label := s.Heart.Render("♥") + " " + m.printer.Sprintf("Like this page (%d)", m.snap.Likes)
	return s.LikeButton.Render(label)
}

func (m Model) viewToast(now time.Time) string {
	s := m.styles
	spec := transition.Toast()
	if m.toastLeaving {
		spec = spec.Reverse()
	}
	toast := s.Toast.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.ToastTitle.Render("Thanks for the love!"),
		"Your appreciation means a lot to our feline friends.",
	))
	return m.animator.Apply(toast, spec, now.Sub(m.toastAt))
}

// Snapshot returns the latest snapshot the screen has drawn.
func (m Model) Snapshot() store.Snapshot {
	return m.snap
}
