package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSet builds n questions whose correct answer is always "right".
func testSet(t *testing.T, n int) *QuestionSet {
	t.Helper()
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:    fmt.Sprintf("Question %d?", i+1),
			Options: []string{"right", "wrong", "also wrong", "still wrong"},
			Answer:  "right",
		}
	}
	set, err := NewQuestionSet(qs)
	require.NoError(t, err)
	return set
}

type stubPicker struct {
	images []string
	calls  int
}

func (p *stubPicker) PickImage() string {
	img := p.images[p.calls%len(p.images)]
	p.calls++
	return img
}

func newTestController(t *testing.T, n int, opts ...Option) *Controller {
	t.Helper()
	c, err := NewController(testSet(t, n), opts...)
	require.NoError(t, err)
	return c
}

func TestNewController_InitialState(t *testing.T) {
	c := newTestController(t, 10)

	assert.Equal(t, ScreenStart, c.Screen())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Score())
	assert.Equal(t, 10, c.Total())

	_, ok := c.CurrentQuestion()
	assert.False(t, ok, "no current question on the start screen")
}

func TestNewController_NilSet(t *testing.T) {
	_, err := NewController(nil)
	require.ErrorIs(t, err, ErrInvalidQuestionSet)
}

func TestNewController_InvalidResultTable(t *testing.T) {
	_, err := NewController(testSet(t, 3), WithResultTable(ResultTable{}))
	require.ErrorIs(t, err, ErrInvalidResultTable)
}

func TestStartQuiz(t *testing.T) {
	c := newTestController(t, 3)

	require.NoError(t, c.StartQuiz())
	assert.Equal(t, ScreenQuiz, c.Screen())

	q, ok := c.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Question 1?", q.Text)
}

func TestStartQuiz_RejectedOutsideStart(t *testing.T) {
	c := newTestController(t, 3)
	require.NoError(t, c.StartQuiz())

	err := c.StartQuiz()
	require.ErrorIs(t, err, ErrNotAtStart)
	assert.Equal(t, ScreenQuiz, c.Screen())
}

func TestSelectOption_CorrectAdvances(t *testing.T) {
	c := newTestController(t, 3)
	require.NoError(t, c.StartQuiz())

	require.NoError(t, c.SelectOption("right"))
	assert.Equal(t, 1, c.Score())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, ScreenQuiz, c.Screen())
}

func TestSelectOption_WrongAdvancesWithoutScoring(t *testing.T) {
	c := newTestController(t, 3)
	require.NoError(t, c.StartQuiz())

	require.NoError(t, c.SelectOption("wrong"))
	assert.Equal(t, 0, c.Score())
	assert.Equal(t, 1, c.Index())
}

func TestSelectOption_LastQuestionEntersResult(t *testing.T) {
	picker := &stubPicker{images: []string{"car-a"}}
	c := newTestController(t, 2, WithImagePicker(picker))
	require.NoError(t, c.StartQuiz())

	require.NoError(t, c.SelectOption("right"))
	require.NoError(t, c.SelectOption("right"))

	assert.Equal(t, ScreenResult, c.Screen())
	assert.Equal(t, 2, c.Score())
	assert.Equal(t, 1, c.Index(), "index stays on the last question")
	assert.Equal(t, "car-a", c.ResultImage())
	assert.Equal(t, 1, picker.calls)
}

func TestSelectOption_ScoresPreMutationQuestion(t *testing.T) {
	// Each question has a different answer; answering question 1's answer
	// while on question 1 must score even though the index moves on.
	set, err := NewQuestionSet([]Question{
		{Text: "one", Options: []string{"a", "b"}, Answer: "a"},
		{Text: "two", Options: []string{"a", "b"}, Answer: "b"},
	})
	require.NoError(t, err)
	c, err := NewController(set)
	require.NoError(t, err)
	require.NoError(t, c.StartQuiz())

	require.NoError(t, c.SelectOption("a"))
	assert.Equal(t, 1, c.Score())
	require.NoError(t, c.SelectOption("a"))
	assert.Equal(t, 1, c.Score())
	assert.Equal(t, ScreenResult, c.Screen())
}

func TestSelectOption_RejectedOutsideQuiz(t *testing.T) {
	c := newTestController(t, 1)

	err := c.SelectOption("right")
	require.ErrorIs(t, err, ErrNotInQuiz)
	assert.Equal(t, ScreenStart, c.Screen())
	assert.Equal(t, 0, c.Score())

	require.NoError(t, c.StartQuiz())
	require.NoError(t, c.SelectOption("right"))
	require.Equal(t, ScreenResult, c.Screen())

	// A double tap after the last question must not score again.
	err = c.SelectOption("right")
	require.ErrorIs(t, err, ErrNotInQuiz)
	assert.Equal(t, 1, c.Score())
}

func TestSelectOption_UnknownChoiceRejected(t *testing.T) {
	c := newTestController(t, 3)
	require.NoError(t, c.StartQuiz())

	err := c.SelectOption("not an option")
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Score())
}

func TestScoreBoundAndMonotonicIndex(t *testing.T) {
	const n = 10
	patterns := [][]bool{
		make([]bool, n),
		{true, true, true, true, true, true, true, true, true, true},
		{true, false, true, false, true, false, true, false, true, false},
		{false, false, false, true, true, true, false, true, false, true},
	}

	for i, pattern := range patterns {
		t.Run(fmt.Sprintf("pattern %d", i), func(t *testing.T) {
			c := newTestController(t, n)
			require.NoError(t, c.StartQuiz())

			calls := 0
			prevIndex := c.Index()
			for _, right := range pattern {
				choice := "wrong"
				if right {
					choice = "right"
				}
				require.NoError(t, c.SelectOption(choice))
				calls++

				assert.GreaterOrEqual(t, c.Score(), 0)
				assert.LessOrEqual(t, c.Score(), n)
				if c.Screen() == ScreenQuiz {
					assert.GreaterOrEqual(t, c.Index(), prevIndex)
					prevIndex = c.Index()
				}
			}

			assert.Equal(t, ScreenResult, c.Screen())
			assert.Equal(t, n, calls, "result reached after exactly n answers")
		})
	}
}

func TestRestartQuiz_FromAnyScreen(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"start", func(c *Controller) {}},
		{"mid quiz", func(c *Controller) {
			_ = c.StartQuiz()
			_ = c.SelectOption("right")
			_ = c.SelectOption("right")
		}},
		{"result", func(c *Controller) {
			_ = c.StartQuiz()
			for c.Screen() == ScreenQuiz {
				_ = c.SelectOption("right")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, 3, WithImagePicker(&stubPicker{images: []string{"x"}}))
			tt.setup(c)

			c.RestartQuiz()

			assert.Equal(t, ScreenStart, c.Screen())
			assert.Equal(t, 0, c.Index())
			assert.Equal(t, 0, c.Score())
			assert.Equal(t, "", c.ResultImage())
		})
	}
}

func TestResultImage_PickedOnEveryEntry(t *testing.T) {
	picker := &stubPicker{images: []string{"first", "second"}}
	c := newTestController(t, 1, WithImagePicker(picker))

	for _, want := range []string{"first", "second", "first"} {
		require.NoError(t, c.StartQuiz())
		require.NoError(t, c.SelectOption("right"))
		assert.Equal(t, want, c.ResultImage())
		c.RestartQuiz()
	}
	assert.Equal(t, 3, picker.calls)
}

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	c := newTestController(t, 2)

	var got []Transition
	c.Subscribe(func(tr Transition) { got = append(got, tr) })

	require.NoError(t, c.StartQuiz())
	require.NoError(t, c.SelectOption("right"))
	require.NoError(t, c.SelectOption("wrong"))
	c.RestartQuiz()

	require.Len(t, got, 4)
	assert.Equal(t, ScreenStart, got[0].From)
	assert.Equal(t, ScreenQuiz, got[0].To)
	assert.Nil(t, got[0].Correct)

	require.NotNil(t, got[1].Correct)
	assert.True(t, *got[1].Correct)
	assert.Equal(t, ScreenQuiz, got[1].To)

	require.NotNil(t, got[2].Correct)
	assert.False(t, *got[2].Correct)
	assert.Equal(t, ScreenResult, got[2].To)
	assert.Equal(t, 1, got[2].Score)

	assert.Equal(t, ScreenResult, got[3].From)
	assert.Equal(t, ScreenStart, got[3].To)
}

func TestSubscribe_NoNotificationOnRejectedInput(t *testing.T) {
	c := newTestController(t, 2)
	calls := 0
	c.Subscribe(func(Transition) { calls++ })

	_ = c.SelectOption("right")
	assert.Equal(t, 0, calls)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "start", ScreenStart.String())
	assert.Equal(t, "quiz", ScreenQuiz.String())
	assert.Equal(t, "result", ScreenResult.String())
	assert.Equal(t, "screen(7)", Screen(7).String())
}
