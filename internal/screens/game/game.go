// Package game is the quiz screen. It renders start, question and result
// views from a projection of the quiz state and forwards player input to
// the quiz controller.
package game

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/quiz"
	"github.com/abhisek/porschequiz/internal/screen"
	"github.com/abhisek/porschequiz/internal/ui/components"
	"github.com/abhisek/porschequiz/internal/ui/layout"
)

// Quiz is the state machine the screen drives. *quiz.Controller satisfies it.
type Quiz interface {
	projection.Source
	StartQuiz() error
	SelectOption(choice string) error
	RestartQuiz()
}

var _ Quiz = (*quiz.Controller)(nil)

// optionChosenMsg carries the option text the player picked.
type optionChosenMsg struct {
	Option string
}

// actionPressedMsg is sent when the Start or Restart button is pressed.
type actionPressedMsg struct{}

// GameScreen implements screen.Screen for all three quiz screens.
type GameScreen struct {
	quiz      Quiz
	projector *projection.Projector
	keys      keyMap

	frame  projection.Frame
	choice components.MultiChoice
	button components.Button
	errMsg string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.ScoreProvider = (*GameScreen)(nil)

// New creates a GameScreen showing the current state of q.
func New(q Quiz, p *projection.Projector) *GameScreen {
	s := &GameScreen{
		quiz:      q,
		projector: p,
		keys:      defaultKeyMap(),
	}
	s.sync()
	return s
}

func (s *GameScreen) Init() tea.Cmd {
	return nil
}

func (s *GameScreen) Title() string {
	switch s.frame.Screen {
	case quiz.ScreenQuiz:
		return fmt.Sprintf("Question %d", s.frame.Number)
	case quiz.ScreenResult:
		return "Results"
	}
	return ""
}

// HeaderScore shows the running score while a quiz is in progress.
func (s *GameScreen) HeaderScore() (int, int, bool) {
	return s.frame.Score, s.frame.Total, s.frame.Screen == quiz.ScreenQuiz
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch s.frame.Screen {
	case quiz.ScreenQuiz:
		return hints(s.keys.Up, s.keys.Down, s.keys.Number, s.keys.Choose, s.keys.Restart)
	case quiz.ScreenResult:
		restart := s.keys.Start
		restart.SetHelp("Enter", "Restart")
		return hints(restart)
	}
	return hints(s.keys.Start)
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case optionChosenMsg:
		return s.handleChoice(msg.Option)

	case actionPressedMsg:
		return s.handleAction()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.frame.Screen {
	case quiz.ScreenStart:
		s.button, cmd = s.button.Update(msg)

	case quiz.ScreenQuiz:
		if key.Matches(msg, s.keys.Restart) {
			s.quiz.RestartQuiz()
			s.errMsg = ""
			s.sync()
			return s, nil
		}
		s.choice, cmd = s.choice.Update(msg)

	case quiz.ScreenResult:
		if key.Matches(msg, s.keys.Restart) {
			return s.handleAction()
		}
		s.button, cmd = s.button.Update(msg)
	}
	return s, cmd
}

func (s *GameScreen) handleChoice(option string) (screen.Screen, tea.Cmd) {
	if err := s.quiz.SelectOption(option); err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
	}
	s.sync()
	return s, nil
}

func (s *GameScreen) handleAction() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch s.quiz.Screen() {
	case quiz.ScreenStart:
		if err := s.quiz.StartQuiz(); err != nil {
			s.errMsg = err.Error()
		}
	case quiz.ScreenResult:
		s.quiz.RestartQuiz()
	}
	s.sync()
	return s, nil
}

// sync re-projects the quiz state and rebuilds the widgets for it.
func (s *GameScreen) sync() {
	s.frame = s.projector.Project(s.quiz)

	switch s.frame.Screen {
	case quiz.ScreenQuiz:
		s.choice = components.NewMultiChoice(s.frame.Question.Options,
			func(option string) tea.Cmd {
				return func() tea.Msg { return optionChosenMsg{Option: option} }
			})
	default:
		s.button = components.NewButton(s.frame.ActionLabel, true, func() tea.Cmd {
			return func() tea.Msg { return actionPressedMsg{} }
		})
	}
}
