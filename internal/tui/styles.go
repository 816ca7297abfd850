package tui

import "github.com/charmbracelet/lipgloss"

var (
	purple     = lipgloss.Color("#7E22CE")
	purpleSoft = lipgloss.Color("#A855F7")
	pink       = lipgloss.Color("#FCE7F3")
	muted      = lipgloss.Color("#6B7280")
	heart      = lipgloss.Color("#EF4444")
)

type styles struct {
	Hero       lipgloss.Style
	Title      lipgloss.Style
	Tagline    lipgloss.Style
	Carousel   lipgloss.Style
	Caption    lipgloss.Style
	URL        lipgloss.Style
	Dots       lipgloss.Style
	FunFact    lipgloss.Style
	Loading    lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	CardDesc   lipgloss.Style
	LikeButton lipgloss.Style
	Heart      lipgloss.Style
	Toast      lipgloss.Style
	ToastTitle lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Hero: lipgloss.NewStyle().
			Background(purple).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(1, 2).
			Align(lipgloss.Center),
		Title:   lipgloss.NewStyle().Bold(true),
		Tagline: lipgloss.NewStyle().Italic(true),
		Carousel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purpleSoft).
			Padding(0, 1),
		Caption: lipgloss.NewStyle().Bold(true),
		URL:     lipgloss.NewStyle().Foreground(muted),
		Dots:    lipgloss.NewStyle().Foreground(purpleSoft),
		FunFact: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(purpleSoft).
			PaddingLeft(1),
		Loading: lipgloss.NewStyle().Foreground(muted).Italic(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(purple).
			Background(pink).
			Padding(0, 2),
		TabIdle: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		CardDesc:  lipgloss.NewStyle().Foreground(muted),
		LikeButton: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
		Heart: lipgloss.NewStyle().Foreground(heart),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(0, 1),
		ToastTitle: lipgloss.NewStyle().Bold(true),
	}
}
