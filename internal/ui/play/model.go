package play

import (
	"context"
	"io"

	"clueboard/internal/game"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadFunc fetches the dataset and builds a session. It runs off the UI
// goroutine; until it returns the board is unavailable.
type LoadFunc func(ctx context.Context) (*game.Session, error)

// Options configures the model.
type Options struct {
	Title   string
	NoColor bool
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	ctx     context.Context
	load    LoadFunc
	state   State
	keys    keyMap
	help    help.Model
	input   textinput.Model
	typing  bool
	width   int
	title   string
	noColor bool
}

// NewModel builds a model that loads its dataset on Init.
func NewModel(ctx context.Context, load LoadFunc, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 120
	input.Prompt = "> "
	title := opts.Title
	if title == "" {
		title = "clueboard"
	}
	return Model{
		ctx:     ctx,
		load:    load,
		state:   State{Phase: PhaseLoading, Selected: -1},
		keys:    defaultKeys(),
		help:    help.New(),
		input:   input,
		title:   title,
		noColor: opts.NoColor,
	}
}

// State returns the current game state.
func (m Model) State() State {
	return m.state
}

// loadedMsg carries the dataset load result.
type loadedMsg struct {
	session *game.Session
	err     error
}

// Init starts the dataset load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{err: game.ErrNotLoaded}
		}
		session, err := load(ctx)
		return loadedMsg{session: session, err: err}
	}
}

// Update applies messages to the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case loadedMsg:
		m.state = Loaded(m.state, typed.session, typed.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.handleTyping(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state.Phase {
	case PhaseFailed:
		if key.Matches(msg, m.keys.Reload) {
			m.state.Phase = PhaseLoading
			m.state.Err = nil
			return m, m.loadCmd()
		}
	case PhaseBoard:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.state = Move(m.state, 0, -1)
		case key.Matches(msg, m.keys.Down):
			m.state = Move(m.state, 0, 1)
		case key.Matches(msg, m.keys.Left):
			m.state = Move(m.state, -1, 0)
		case key.Matches(msg, m.keys.Right):
			m.state = Move(m.state, 1, 0)
		case key.Matches(msg, m.keys.Open):
			m.state = Open(m.state)
		case key.Matches(msg, m.keys.NewGame):
			m.state = NewGame(m.state)
		}
	case PhaseClue:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.state = MoveSelection(m.state, -1)
		case key.Matches(msg, m.keys.Down):
			m.state = MoveSelection(m.state, 1)
		case key.Matches(msg, m.keys.Pick):
			m.state = Select(m.state, int(msg.String()[0]-'1'))
		case key.Matches(msg, m.keys.Open):
			m.state = Submit(m.state, "")
		case key.Matches(msg, m.keys.Type):
			m.typing = true
			m.input.Reset()
			cmd := m.input.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Back):
			m.state = Close(m.state)
		}
	case PhaseResult:
		if key.Matches(msg, m.keys.Open) || key.Matches(msg, m.keys.Back) {
			m.state = Close(m.state)
		}
	}
	return m, nil
}

func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.stopTyping()
		return m, nil
	case tea.KeyEnter:
		m.state = Submit(m.state, m.input.Value())
		if m.state.Phase != PhaseClue {
			m.stopTyping()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopTyping() {
	m.typing = false
	m.input.Blur()
	m.input.Reset()
}

// RunOptions configures Run.
type RunOptions struct {
	Load    LoadFunc
	Title   string
	NoColor bool
	Input   io.Reader
	Output  io.Writer
}

// Run starts the full-screen program and blocks until the player quits.
// It returns the final state.
func Run(ctx context.Context, opts RunOptions) (State, error) {
	model := NewModel(ctx, opts.Load, Options{Title: opts.Title, NoColor: opts.NoColor})
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return model.state, err
	}
	if typed, ok := final.(Model); ok {
		return typed.state, nil
	}
	return model.state, nil
}
