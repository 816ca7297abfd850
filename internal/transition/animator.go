package transition

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Animator applies a transition to a rendered node.
type Animator interface {
	// Apply returns node as it looks elapsed after it was mounted.
	Apply(node string, spec Spec, elapsed time.Duration) string
}

// Static renders every node at rest. It is used when motion is reduced.
type Static struct{}

// Apply returns node unchanged.
func (Static) Apply(node string, _ Spec, _ time.Duration) string {
	return node
}

// Terminal approximates transitions on a character grid. A node is blank
// until it becomes visible, faint while fading in and indented while it
// slides toward its resting column. Vertical motion and scale have no
// terminal equivalent and are ignored.
type Terminal struct {
	// PixelsPerColumn converts horizontal offsets to columns. Defaults
	// to 10.
	PixelsPerColumn float64
}

const (
	hiddenBelow = 0.15
	faintBelow  = 0.6
)

var faint = lipgloss.NewStyle().Faint(true)

// Apply renders node at the frame reached after elapsed. The rendered block
// always keeps node's height so surrounding layout does not jump.
func (t Terminal) Apply(node string, spec Spec, elapsed time.Duration) string {
	f := spec.At(elapsed)
	if f == Rest {
		return node
	}
	if f.Opacity < hiddenBelow {
		return blank(node)
	}

	out := node
	if f.Opacity < faintBelow {
		out = faint.Render(out)
	}
	if cols := t.columns(f.X); cols > 0 {
		out = lipgloss.NewStyle().PaddingLeft(cols).Render(out)
	}
	return out
}

func (t Terminal) columns(x float64) int {
	ppc := t.PixelsPerColumn
	if ppc <= 0 {
		ppc = 10
	}
	return int(math.Round(math.Abs(x) / ppc))
}

// blank replaces every line of node with spaces of the same width.
func blank(node string) string {
	lines := strings.Split(node, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(l))
	}
	return strings.Join(lines, "\n")
}

// For returns the animator matching the motion preference.
func For(reduceMotion bool) Animator {
	if reduceMotion {
		return Static{}
	}
	return Terminal{}
}
