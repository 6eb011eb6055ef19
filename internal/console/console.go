// Package console plays the quiz over plain line-oriented input and output,
// for terminals where the full-screen UI is unavailable.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/quiz"
)

// Quiz is the state machine the console drives.
type Quiz interface {
	projection.Source
	StartQuiz() error
	SelectOption(choice string) error
	RestartQuiz()
}

// Player reads answers from in and writes frames to out.
type Player struct {
	quiz      Quiz
	projector *projection.Projector
	scanner   *bufio.Scanner
	out       io.Writer
}

// New creates a Player.
func New(q Quiz, p *projection.Projector, in io.Reader, out io.Writer) *Player {
	return &Player{
		quiz:      q,
		projector: p,
		scanner:   bufio.NewScanner(in),
		out:       out,
	}
}

// Play runs until the player quits, declines another round or input ends.
func (p *Player) Play() error {
	for {
		frame := p.projector.Project(p.quiz)

		var (
			more bool
			err  error
		)
		switch frame.Screen {
		case quiz.ScreenStart:
			more, err = p.playStart(frame)
		case quiz.ScreenQuiz:
			more, err = p.playQuestion(frame)
		case quiz.ScreenResult:
			more, err = p.playResult(frame)
		default:
			return fmt.Errorf("unknown screen %v", frame.Screen)
		}
		if err != nil || !more {
			return err
		}
	}
}

func (p *Player) playStart(f projection.Frame) (bool, error) {
	p.printf("%s\n", strings.ToUpper(f.Title))
	p.printf("%d questions. Press Enter to %s (q to quit): ", f.Total, strings.ToLower(f.ActionLabel))

	line, ok := p.readLine()
	if !ok || isQuit(line) {
		return false, nil
	}
	return true, p.quiz.StartQuiz()
}

func (p *Player) playQuestion(f projection.Frame) (bool, error) {
	p.printf("\n── Question %d/%d ──\n", f.Number, f.Total)
	p.printf("%s\n", f.Question.Text)
	for i, opt := range f.Question.Options {
		p.printf("  %d) %s\n", i+1, opt)
	}

	for {
		p.printf("\nYour answer: ")
		line, ok := p.readLine()
		if !ok {
			return false, nil
		}

		// An option named "q" is an answer, not a quit.
		choice, ok := resolveChoice(line, f.Question.Options)
		if !ok {
			if isQuit(line) {
				return false, nil
			}
			p.printf("Please pick 1-%d.", len(f.Question.Options))
			continue
		}
		if err := p.quiz.SelectOption(choice); err != nil {
			return false, err
		}
		return true, nil
	}
}

func (p *Player) playResult(f projection.Frame) (bool, error) {
	p.printf("\n%s\n", f.Heading)
	if f.Message != "" {
		p.printf("%s\n", f.Message)
	}
	p.printf("%s\n", f.ScoreLine)
	if f.HasImage {
		p.printf("\n%s\n  %s\n", f.Image.Art, f.Image.Caption)
	}

	p.printf("\n%s? [y/N]: ", f.ActionLabel)
	line, ok := p.readLine()
	if !ok || !isYes(line) {
		return false, nil
	}
	p.quiz.RestartQuiz()
	return true, nil
}

func (p *Player) readLine() (string, bool) {
	if !p.scanner.Scan() {
		p.printf("\n(input closed)\n")
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

func (p *Player) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// resolveChoice accepts the option text itself, ignoring case, or its
// number. Text wins so that numeric options such as years stay reachable.
func resolveChoice(input string, options []string) (string, bool) {
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

func isQuit(s string) bool {
	s = strings.ToLower(s)
	return s == "q" || s == "quit"
}

func isYes(s string) bool {
	s = strings.ToLower(s)
	return s == "y" || s == "yes"
}
