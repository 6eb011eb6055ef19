package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/porschequiz/internal/router"
	"github.com/abhisek/porschequiz/internal/screen"
	"github.com/abhisek/porschequiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const crestArt = `  ╭─────────────╮
  │ ┌────┬────┐ │
  │ │ ≋≋ │ ▲▲ │ │
  │ ├────┼────┤ │
  │ │ ▲▲ │ ≋≋ │ │
  │ └────┴────┘ │
  ╰──╮       ╭──╯
     ╰───────╯`

// headlight frames blink beside the crest
var headlightFrames = []string{"◉", "○"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing over to the quiz.
type WelcomeScreen struct {
	tagline      string
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that shows tagline under the banner and
// replaces itself with the screen produced by next on the first key press.
func New(tagline string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		tagline:     tagline,
		nextFactory: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Accent).Render(crestArt)

	// Phase 2+: headlights beside the crest
	if w.elapsed >= phase1End {
		light := headlightFrames[w.tickCount%len(headlightFrames)]
		lit := lipgloss.NewStyle().Foreground(theme.Secondary).Render(light)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 3 {
			lines[3] = lit + "  " + lines[3] + "  " + lit
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.tagline)
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
