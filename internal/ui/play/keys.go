package play

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	Pick    key.Binding
	Type    key.Binding
	Back    key.Binding
	NewGame key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/answer")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-4", "pick")),
		Type:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "type answer")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// phaseKeys narrows the bindings shown in help to the current phase.
type phaseKeys struct {
	keys  keyMap
	phase Phase
}

func (p phaseKeys) ShortHelp() []key.Binding {
	k := p.keys
	switch p.phase {
	case PhaseFailed:
		return []key.Binding{k.Reload, k.Quit}
	case PhaseBoard:
		return []key.Binding{k.Open, k.NewGame, k.Help, k.Quit}
	case PhaseClue:
		return []key.Binding{k.Pick, k.Open, k.Type, k.Back}
	case PhaseResult:
		return []key.Binding{k.Open, k.Back}
	default:
		return []key.Binding{k.Quit}
	}
}

func (p phaseKeys) FullHelp() [][]key.Binding {
	k := p.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Pick, k.Type, k.Back},
		{k.NewGame, k.Reload, k.Help, k.Quit},
	}
}
