// Package bank loads question banks: the questions of a quiz together with
// the table that turns a final score into a message.
package bank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/porschequiz/internal/quiz"
)

// DefaultTitle is used when a bank file does not name itself.
const DefaultTitle = "Porsche Cars Quiz"

//go:embed questions.yaml
var defaultBank []byte

// ErrInvalidBank wraps every parse or validation failure of a bank file.
var ErrInvalidBank = errors.New("invalid question bank")

// Bank is a validated question bank.
type Bank struct {
	Title     string
	Source    string
	Questions *quiz.QuestionSet
	Results   quiz.ResultTable
}

// Warnings lists problems that do not prevent play, such as scores that no
// result tier covers.
func (b *Bank) Warnings() []string {
	var w []string
	if !b.Results.Covers(b.Questions.Len()) {
		w = append(w, fmt.Sprintf("result tiers do not cover every score from 0 to %d; uncovered scores show no message", b.Questions.Len()))
	}
	return w
}

type fileBank struct {
	Title     string         `yaml:"title"`
	Questions []fileQuestion `yaml:"questions"`
	Results   []fileTier     `yaml:"results"`
}

type fileQuestion struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Answer  string   `yaml:"answer"`
}

type fileTier struct {
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
	Message string `yaml:"message"`
}

// Default returns the embedded Porsche bank.
func Default() (*Bank, error) {
	return Parse(defaultBank, "embedded")
}

// Load reads a bank from path. An empty path selects the embedded bank.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a YAML bank. source names it in errors.
func Parse(data []byte, source string) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: decode yaml: %w", ErrInvalidBank, source, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidBank, source, err)
	}

	var fb fileBank
	if err := yaml.Unmarshal(data, &fb); err != nil {
		return nil, fmt.Errorf("%w %s: decode yaml: %w", ErrInvalidBank, source, err)
	}

	questions := make([]quiz.Question, 0, len(fb.Questions))
	for _, q := range fb.Questions {
		questions = append(questions, quiz.Question{
			Text:    q.Text,
			Options: q.Options,
			Answer:  q.Answer,
		})
	}
	set, err := quiz.NewQuestionSet(questions)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidBank, source, err)
	}

	results := quiz.DefaultResultTable()
	if len(fb.Results) > 0 {
		results = make(quiz.ResultTable, 0, len(fb.Results))
		for _, t := range fb.Results {
			results = append(results, quiz.ResultTier{Min: t.Min, Max: t.Max, Message: t.Message})
		}
	}
	if err := results.Validate(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidBank, source, err)
	}

	title := fb.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Bank{
		Title:     title,
		Source:    source,
		Questions: set,
		Results:   results,
	}, nil
}
