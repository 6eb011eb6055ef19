package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/porschequiz/internal/bank"
	"github.com/abhisek/porschequiz/internal/gallery"
	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/quiz"
)

func newTestPlayer(t *testing.T, input string) (*Player, *quiz.Controller, *bytes.Buffer) {
	t.Helper()

	b, err := bank.Default()
	require.NoError(t, err)

	g := gallery.New([]gallery.Image{{Name: "coupe", Caption: "911 Carrera", Art: "[car]"}})
	ctrl, err := quiz.NewController(b.Questions, quiz.WithResultTable(b.Results), quiz.WithImagePicker(g))
	require.NoError(t, err)

	var out bytes.Buffer
	p := New(ctrl, projection.New(b.Title, g), strings.NewReader(input), &out)
	return p, ctrl, &out
}

// perfectAnswers answers the embedded bank correctly by option text.
const perfectAnswers = "911\n1931\nTaycan\nHorse\nCayenne\nPorsche\n911 GT3\n305 km/h\nPanamera\nGermany\n"

func TestPlay_PerfectRound(t *testing.T) {
	p, ctrl, out := newTestPlayer(t, "\n"+perfectAnswers+"n\n")

	require.NoError(t, p.Play())

	assert.Equal(t, quiz.ScreenResult, ctrl.Screen())
	assert.Equal(t, 10, ctrl.Score())
	text := out.String()
	assert.Contains(t, text, "Perfect!")
	assert.Contains(t, text, "PORSCHE CARS QUIZ")
	assert.Contains(t, text, "Question 10/10")
	assert.Contains(t, text, "Quiz Finished!")
	assert.Contains(t, text, "Your final score is")
	assert.Contains(t, text, "911 Carrera")
}

func TestPlay_QuitAtStart(t *testing.T) {
	p, ctrl, _ := newTestPlayer(t, "q\n")

	require.NoError(t, p.Play())
	assert.Equal(t, quiz.ScreenStart, ctrl.Screen())
}

func TestPlay_InvalidAnswerReprompts(t *testing.T) {
	p, ctrl, out := newTestPlayer(t, "\n7\nnope\n1\nq\n")

	require.NoError(t, p.Play())

	assert.Equal(t, 1, ctrl.Index())
	assert.Equal(t, 1, ctrl.Score())
	assert.Equal(t, 2, strings.Count(out.String(), "Please pick 1-4."))
}

func TestPlay_InputClosedMidQuiz(t *testing.T) {
	p, ctrl, out := newTestPlayer(t, "\n1\n")

	require.NoError(t, p.Play())
	assert.Equal(t, quiz.ScreenQuiz, ctrl.Screen())
	assert.Contains(t, out.String(), "(input closed)")
}

func TestPlay_RestartAfterResult(t *testing.T) {
	round := "\n" + strings.Repeat("2\n", 10)
	p, ctrl, out := newTestPlayer(t, round+"y\n"+"q\n")

	require.NoError(t, p.Play())

	assert.Equal(t, quiz.ScreenStart, ctrl.Screen())
	assert.Equal(t, 0, ctrl.Score())
	assert.Equal(t, 2, strings.Count(out.String(), "PORSCHE CARS QUIZ"))
}

func TestPlay_OptionNamedQuitIsAnAnswer(t *testing.T) {
	set, err := quiz.NewQuestionSet([]quiz.Question{
		{Text: "Which key ends the game?", Options: []string{"Esc", "q"}, Answer: "q"},
		{Text: "Which engine layout does the 911 use?", Options: []string{"Rear", "Front"}, Answer: "Rear"},
	})
	require.NoError(t, err)
	ctrl, err := quiz.NewController(set)
	require.NoError(t, err)

	var out bytes.Buffer
	p := New(ctrl, projection.New("Keys", nil), strings.NewReader("\nq\nq\n"), &out)
	require.NoError(t, p.Play())

	assert.Equal(t, quiz.ScreenQuiz, ctrl.Screen())
	assert.Equal(t, 1, ctrl.Index())
	assert.Equal(t, 1, ctrl.Score())
}

func TestResolveChoice(t *testing.T) {
	options := []string{"1948", "1950", "1965", "1931"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1931", "1931", true},
		{"2", "1950", true},
		{"4", "1931", true},
		{"5", "", false},
		{"0", "", false},
		{"nope", "", false},
	}
	for _, tt := range tests {
		got, ok := resolveChoice(tt.input, options)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	got, ok := resolveChoice("horse", []string{"Horse", "Eagle"})
	assert.True(t, ok)
	assert.Equal(t, "Horse", got)
}
