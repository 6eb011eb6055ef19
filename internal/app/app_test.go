package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/porschequiz/internal/bank"
	"github.com/abhisek/porschequiz/internal/gallery"
	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/quiz"
	"github.com/abhisek/porschequiz/internal/screens/game"
	"github.com/abhisek/porschequiz/internal/screens/welcome"
)

func newTestModel(t *testing.T, skipWelcome bool) (AppModel, *quiz.Controller) {
	t.Helper()

	b, err := bank.Default()
	if err != nil {
		t.Fatalf("bank.Default: %v", err)
	}
	g := gallery.Default()
	ctrl, err := quiz.NewController(b.Questions, quiz.WithResultTable(b.Results), quiz.WithImagePicker(g))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	m := newAppModel(Options{
		Title:       b.Title,
		Quiz:        ctrl,
		Projector:   projection.New(b.Title, g),
		SkipWelcome: skipWelcome,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), ctrl
}

func TestStartsOnWelcome(t *testing.T) {
	m, _ := newTestModel(t, false)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestWelcomeHandsOverToGame(t *testing.T) {
	m, _ := newTestModel(t, false)

	updated, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	updated, _ = updated.Update(cmd())
	m = updated.(AppModel)

	if _, ok := m.router.Active().(*game.GameScreen); !ok {
		t.Fatalf("expected game screen, got %T", m.router.Active())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: 'c', Mod: tea.ModCtrl},
		{Code: 'q', Text: "q"},
	} {
		m, _ := newTestModel(t, true)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", msg.String())
		}
	}
}

func TestHeaderShowsScoreDuringQuiz(t *testing.T) {
	m, ctrl := newTestModel(t, true)

	if strings.Contains(m.render(), "Score ") {
		t.Error("score should be hidden on the start screen")
	}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the Start button to emit a command")
	}
	// The button press arrives as a message.
	updated, _ = updated.Update(cmd())
	m = updated.(AppModel)

	if ctrl.Screen() != quiz.ScreenQuiz {
		t.Fatalf("expected quiz screen, got %v", ctrl.Screen())
	}
	view := m.render()
	if !strings.Contains(view, "Score 0/10") {
		t.Error("header should show the running score")
	}
	if !strings.Contains(view, "Porsche Cars Quiz") {
		t.Error("header should show the app title")
	}
}

func TestTooSmall(t *testing.T) {
	m, _ := newTestModel(t, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(AppModel)

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestRunRequiresQuiz(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected an error without a quiz")
	}
}
