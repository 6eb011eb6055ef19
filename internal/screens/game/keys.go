package game

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/porschequiz/internal/ui/layout"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Number  key.Binding
	Start   key.Binding
	Restart key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Answer"),
		),
		Number: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Pick"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Restart"),
		),
	}
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Q", Description: "Quit"})
}
