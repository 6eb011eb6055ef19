package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/porschequiz/internal/gallery"
	"github.com/abhisek/porschequiz/internal/quiz"
)

type fixedPicker string

func (p fixedPicker) PickImage() string { return string(p) }

func newController(t *testing.T) *quiz.Controller {
	t.Helper()
	set, err := quiz.NewQuestionSet([]quiz.Question{
		{Text: "What is the most iconic Porsche model?", Options: []string{"911", "Cayenne"}, Answer: "911"},
		{Text: "What animal is on the logo?", Options: []string{"Horse", "Bull"}, Answer: "Horse"},
	})
	require.NoError(t, err)
	c, err := quiz.NewController(set, quiz.WithImagePicker(fixedPicker("spyder")))
	require.NoError(t, err)
	return c
}

func TestProject_Start(t *testing.T) {
	c := newController(t)
	f := New("Porsche Cars Quiz", gallery.Default()).Project(c)

	assert.Equal(t, quiz.ScreenStart, f.Screen)
	assert.Equal(t, "Porsche Cars Quiz", f.Title)
	assert.Equal(t, StartLabel, f.ActionLabel)
	assert.Empty(t, f.Question.Text)
}

func TestProject_Quiz(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.StartQuiz())
	require.NoError(t, c.SelectOption("911"))

	f := New("Porsche Cars Quiz", gallery.Default()).Project(c)

	assert.Equal(t, quiz.ScreenQuiz, f.Screen)
	assert.Equal(t, "What animal is on the logo?", f.Question.Text)
	assert.Equal(t, []string{"Horse", "Bull"}, f.Question.Options)
	assert.Equal(t, 2, f.Number)
	assert.Equal(t, 2, f.Total)
	assert.Equal(t, 1, f.Score)
}

func TestProject_Result(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.StartQuiz())
	require.NoError(t, c.SelectOption("911"))
	require.NoError(t, c.SelectOption("Bull"))

	f := New("Porsche Cars Quiz", gallery.Default()).Project(c)

	assert.Equal(t, quiz.ScreenResult, f.Screen)
	assert.Equal(t, ResultHeading, f.Heading)
	assert.Equal(t, "Nice try!", f.Message)
	assert.Equal(t, "Your final score is 1", f.ScoreLine)
	assert.Equal(t, RestartLabel, f.ActionLabel)
	require.True(t, f.HasImage)
	assert.Equal(t, "spyder", f.Image.Name)
}

func TestProject_ResultWithoutGallery(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.StartQuiz())
	require.NoError(t, c.SelectOption("911"))
	require.NoError(t, c.SelectOption("Horse"))

	f := New("Quiz", nil).Project(c)
	assert.False(t, f.HasImage)
	assert.Equal(t, "Your final score is 2", f.ScoreLine)
}

func TestProject_DoesNotMutate(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.StartQuiz())

	p := New("Quiz", gallery.Default())
	for i := 0; i < 3; i++ {
		p.Project(c)
	}

	assert.Equal(t, quiz.ScreenQuiz, c.Screen())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Score())
}
