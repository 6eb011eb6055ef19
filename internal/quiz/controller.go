package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAtStart is returned by StartQuiz when the quiz is already running
	// or finished.
	ErrNotAtStart = errors.New("quiz is not on the start screen")

	// ErrNotInQuiz is returned by SelectOption outside the quiz screen.
	ErrNotInQuiz = errors.New("quiz is not accepting answers")

	// ErrUnknownOption is returned by SelectOption for a choice that is not
	// one of the current question's options.
	ErrUnknownOption = errors.New("choice is not an option of the current question")
)

// Screen is one of the three top-level states of a quiz.
type Screen int

const (
	ScreenStart  Screen = iota // Waiting for the player to start
	ScreenQuiz                 // Asking questions
	ScreenResult               // Showing the final score
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// ImagePicker chooses the picture shown on the result screen.
type ImagePicker interface {
	PickImage() string
}

// Transition describes a single state change of the Controller.
type Transition struct {
	From  Screen
	To    Screen
	Index int
	Score int

	// Correct is set for transitions caused by an answer.
	Correct *bool
}

// Listener is notified after every state change.
type Listener func(Transition)

// Option configures a Controller.
type Option func(*Controller)

// WithResultTable replaces the default result table.
func WithResultTable(t ResultTable) Option {
	return func(c *Controller) { c.results = t }
}

// WithImagePicker sets the picker used each time the result screen is entered.
func WithImagePicker(p ImagePicker) Option {
	return func(c *Controller) { c.images = p }
}

// Controller owns the quiz state and is its only mutator.
// It is not safe for concurrent use; the UI loop serializes calls.
type Controller struct {
	set     *QuestionSet
	results ResultTable
	images  ImagePicker

	screen Screen
	index  int
	score  int
	image  string

	listeners []Listener
}

// NewController creates a Controller on the start screen.
func NewController(set *QuestionSet, opts ...Option) (*Controller, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidQuestionSet)
	}
	c := &Controller{
		set:     set,
		results: DefaultResultTable(),
		screen:  ScreenStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.results.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Subscribe registers l to be called after every transition.
func (c *Controller) Subscribe(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// StartQuiz moves from the start screen to the first question.
func (c *Controller) StartQuiz() error {
	if c.screen != ScreenStart {
		return fmt.Errorf("start quiz on %s screen: %w", c.screen, ErrNotAtStart)
	}
	c.screen = ScreenQuiz
	c.notify(Transition{From: ScreenStart, To: ScreenQuiz, Index: c.index, Score: c.score})
	return nil
}

// SelectOption answers the current question. The answer is scored against
// the question at the index held before any mutation; the quiz then either
// advances to the next question or, after the last one, enters the result
// screen.
func (c *Controller) SelectOption(choice string) error {
	if c.screen != ScreenQuiz {
		return fmt.Errorf("select option on %s screen: %w", c.screen, ErrNotInQuiz)
	}
	q, ok := c.set.At(c.index)
	if !ok {
		return fmt.Errorf("question index %d out of range: %w", c.index, ErrNotInQuiz)
	}
	if !q.HasOption(choice) {
		return fmt.Errorf("question %d, choice %q: %w", c.index+1, choice, ErrUnknownOption)
	}

	correct := q.IsCorrect(choice)
	if correct {
		c.score++
	}

	if c.index < c.set.Len()-1 {
		c.index++
		c.notify(Transition{From: ScreenQuiz, To: ScreenQuiz, Index: c.index, Score: c.score, Correct: &correct})
		return nil
	}

	c.screen = ScreenResult
	c.image = ""
	if c.images != nil {
		c.image = c.images.PickImage()
	}
	c.notify(Transition{From: ScreenQuiz, To: ScreenResult, Index: c.index, Score: c.score, Correct: &correct})
	return nil
}

// RestartQuiz resets index and score and returns to the start screen.
// It is valid from any screen.
func (c *Controller) RestartQuiz() {
	from := c.screen
	c.index = 0
	c.score = 0
	c.image = ""
	c.screen = ScreenStart
	c.notify(Transition{From: from, To: ScreenStart})
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// Index returns the zero-based index of the current question.
// Only meaningful on the quiz screen.
func (c *Controller) Index() int { return c.index }

// Score returns the number of correct answers so far.
func (c *Controller) Score() int { return c.score }

// Total returns the number of questions in the set.
func (c *Controller) Total() int { return c.set.Len() }

// Questions returns the question set.
func (c *Controller) Questions() *QuestionSet { return c.set }

// CurrentQuestion returns the question being asked. The second result is
// false outside the quiz screen.
func (c *Controller) CurrentQuestion() (Question, bool) {
	if c.screen != ScreenQuiz {
		return Question{}, false
	}
	return c.set.At(c.index)
}

// ResultMessage classifies the current score.
func (c *Controller) ResultMessage() string {
	return c.results.Classify(c.score)
}

// ResultImage returns the image picked when the result screen was last
// entered, or "" when not on the result screen.
func (c *Controller) ResultImage() string {
	if c.screen != ScreenResult {
		return ""
	}
	return c.image
}

func (c *Controller) notify(t Transition) {
	for _, l := range c.listeners {
		l(t)
	}
}
