// Package projection turns quiz state into a render-ready frame.
// It never mutates the state it reads.
package projection

import (
	"fmt"

	"github.com/abhisek/porschequiz/internal/gallery"
	"github.com/abhisek/porschequiz/internal/quiz"
)

const (
	StartLabel    = "Start Quiz"
	RestartLabel  = "Restart Quiz"
	ResultHeading = "Quiz Finished!"
)

// Source is the read-only view of a quiz the projection needs.
// *quiz.Controller satisfies it.
type Source interface {
	Screen() quiz.Screen
	Index() int
	Score() int
	Total() int
	CurrentQuestion() (quiz.Question, bool)
	ResultMessage() string
	ResultImage() string
}

var _ Source = (*quiz.Controller)(nil)

// Frame describes what a screen should show.
type Frame struct {
	Screen quiz.Screen
	Title  string

	// Start and Result.
	ActionLabel string

	// Quiz.
	Question quiz.Question
	Number   int
	Total    int
	Score    int

	// Result.
	Heading   string
	Message   string
	ScoreLine string
	Image     gallery.Image
	HasImage  bool
}

// Projector resolves image references through a gallery.
type Projector struct {
	title   string
	gallery *gallery.Gallery
}

// New creates a Projector. A nil gallery renders no image.
func New(title string, g *gallery.Gallery) *Projector {
	return &Projector{title: title, gallery: g}
}

// Project builds the frame for the current state of src.
func (p *Projector) Project(src Source) Frame {
	f := Frame{
		Screen: src.Screen(),
		Title:  p.title,
		Total:  src.Total(),
		Score:  src.Score(),
	}

	switch f.Screen {
	case quiz.ScreenStart:
		f.ActionLabel = StartLabel

	case quiz.ScreenQuiz:
		if q, ok := src.CurrentQuestion(); ok {
			f.Question = q
			f.Number = src.Index() + 1
		}

	case quiz.ScreenResult:
		f.Heading = ResultHeading
		f.Message = src.ResultMessage()
		f.ScoreLine = fmt.Sprintf("Your final score is %d", src.Score())
		f.ActionLabel = RestartLabel
		if p.gallery != nil {
			f.Image, f.HasImage = p.gallery.Lookup(src.ResultImage())
		}
	}

	return f
}
