package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuestionSet is returned by NewQuestionSet when the questions
// break one of the construction rules.
var ErrInvalidQuestionSet = errors.New("invalid question set")

// Question is a single multiple-choice prompt.
type Question struct {
	Text    string
	Options []string
	Answer  string
}

// IsCorrect reports whether choice matches the question's answer.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// HasOption reports whether choice is one of the question's options.
func (q Question) HasOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

// QuestionSet is an ordered, non-empty, immutable sequence of questions.
type QuestionSet struct {
	questions []Question
}

// NewQuestionSet validates questions and returns a set holding a private copy.
// All problems found are reported together.
func NewQuestionSet(questions []Question) (*QuestionSet, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		qs[i] = Question{Text: q.Text, Options: opts, Answer: q.Answer}
	}
	return &QuestionSet{questions: qs}, nil
}

// Len returns the number of questions.
func (s *QuestionSet) Len() int {
	return len(s.questions)
}

// At returns the question at index i. The returned options slice is a copy.
func (s *QuestionSet) At(i int) (Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, false
	}
	q := s.questions[i]
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q, true
}

// All returns a copy of every question in order.
func (s *QuestionSet) All() []Question {
	out := make([]Question, 0, len(s.questions))
	for i := range s.questions {
		q, _ := s.At(i)
		out = append(out, q)
	}
	return out
}

func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestionSet)
	}

	var errs []string
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i+1)
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, prefix+": empty text")
		}
		if len(q.Options) == 0 {
			errs = append(errs, prefix+": no options")
			continue
		}

		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, prefix+": empty option")
				continue
			}
			seen[opt] = true
		}

		if !seen[q.Answer] {
			errs = append(errs, fmt.Sprintf("%s: answer %q is not one of its options", prefix, q.Answer))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidQuestionSet, strings.Join(errs, "\n  "))
	}
	return nil
}
