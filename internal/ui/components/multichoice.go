package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/porschequiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It accepts exactly one choice:
// after the first one it ignores further input.
type MultiChoice struct {
	Options  []string
	Selected int
	Chosen   bool
	OnChoose func(option string) tea.Cmd
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, onChoose func(option string) tea.Cmd) MultiChoice {
	return MultiChoice{
		Options:  options,
		OnChoose: onChoose,
	}
}

// Update handles arrow navigation, Enter, and number shortcuts (1-9).
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Chosen || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter", "space":
		return m.choose()
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) && n <= 9 {
		m.Selected = n - 1
		return m.choose()
	}

	return m, nil
}

func (m MultiChoice) choose() (MultiChoice, tea.Cmd) {
	m.Chosen = true
	if m.OnChoose == nil {
		return m, nil
	}
	return m, m.OnChoose(m.Options[m.Selected])
}

// View renders the options, one per line, labelled A, B, C...
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabel(i), opt)

		if i == m.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// optionLabel returns A..Z, then A1.. for longer lists.
func optionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%c%d", 'A'+i%26, i/26)
}
