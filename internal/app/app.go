package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/router"
	"github.com/abhisek/porschequiz/internal/screen"
	"github.com/abhisek/porschequiz/internal/screens/game"
	"github.com/abhisek/porschequiz/internal/screens/welcome"
	"github.com/abhisek/porschequiz/internal/ui/layout"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Title     string
	Quiz      game.Quiz
	Projector *projection.Projector
	Logger    logrus.FieldLogger

	// SkipWelcome opens directly on the quiz start screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	title  string
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	gameFactory := func() screen.Screen {
		return game.New(opts.Quiz, opts.Projector)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = gameFactory()
	} else {
		initial = welcome.New(opts.Title, gameFactory)
	}

	return AppModel{
		title:  opts.Title,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	score, total := -1, 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			if s, t, show := sp.HeaderScore(); show {
				score, total = s, t
			}
		}
	}

	header := layout.RenderHeader(m.title, title, score, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	if opts.Quiz == nil || opts.Projector == nil {
		return fmt.Errorf("app: quiz and projector are required")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		return fmt.Errorf("run program: %w", err)
	}
	log.Debug("program exited")
	return nil
}
