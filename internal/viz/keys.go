package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play      key.Binding
	Forward   key.Binding
	Backward  key.Binding
	Start     key.Binding
	End       key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Algorithm key.Binding
	Order     key.Binding
	Generate  key.Binding
	Theme     key.Binding
	Chart     key.Binding
	Info      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Play: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "step forward"),
	),
	Backward: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "step back"),
	),
	Start: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first step"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last step"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "=", "up"),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_", "down"),
		key.WithHelp("-", "slower"),
	),
	Algorithm: key.NewBinding(
		key.WithKeys("tab", "a"),
		key.WithHelp("tab", "next algorithm"),
	),
	Order: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "next order"),
	),
	Generate: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new data"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Chart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chart"),
	),
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Backward, k.Forward, k.Generate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Forward, k.Backward, k.Start, k.End},
		{k.Faster, k.Slower, k.Algorithm, k.Order, k.Generate},
		{k.Theme, k.Chart, k.Info, k.Help, k.Quit},
	}
}
