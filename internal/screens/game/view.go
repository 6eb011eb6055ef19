package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/porschequiz/internal/quiz"
	"github.com/abhisek/porschequiz/internal/ui/components"
	"github.com/abhisek/porschequiz/internal/ui/layout"
	"github.com/abhisek/porschequiz/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	var content string
	switch s.frame.Screen {
	case quiz.ScreenQuiz:
		content = s.renderQuiz(width, height)
	case quiz.ScreenResult:
		content = s.renderResult(width, height)
	default:
		content = s.renderStart(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStart renders the title and the Start Quiz button.
func (s *GameScreen) renderStart(width int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.ToUpper(s.frame.Title))
	sections = append(sections, title)

	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%d questions on Stuttgart's finest", s.frame.Total)))
	sections = append(sections, "")
	sections = append(sections, s.button.View())

	if s.errMsg != "" {
		sections = append(sections, "", renderErr(s.errMsg))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderQuiz renders the progress bar, the question card and its options.
func (s *GameScreen) renderQuiz(width, height int) string {
	barWidth := min(width-8, 60)
	progress := components.NewProgressBar(s.frame.Number, s.frame.Total, barWidth)

	cardWidth := min(width-8, 70)
	card := theme.QuestionCard.Width(cardWidth).Render(s.frame.Question.Text)

	var sections []string
	sections = append(sections, progress.View())
	if !layout.IsCompactHeight(height) {
		sections = append(sections, "")
	}
	sections = append(sections, card, "")
	sections = append(sections, s.choice.View())

	if s.errMsg != "" {
		sections = append(sections, renderErr(s.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderResult renders the heading, the tier message, the final score and
// a car picture.
func (s *GameScreen) renderResult(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(s.frame.Heading))
	sections = append(sections, "")

	if s.frame.Message != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(s.frame.Message))
	}
	sections = append(sections, theme.Body.Render(s.frame.ScoreLine))

	if s.frame.HasImage && !layout.IsCompactHeight(height) {
		art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.frame.Image.Art)
		sections = append(sections, "", art, theme.Hint.Render(s.frame.Image.Caption))
	}

	sections = append(sections, "", s.button.View())

	block := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func renderErr(msg string) string {
	return lipgloss.NewStyle().Foreground(theme.Error).Render(msg)
}
