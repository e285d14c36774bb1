package play

import (
	"errors"
	"fmt"
	"strings"

	"clueboard/internal/board"
	"clueboard/internal/game"
	"clueboard/internal/render"
)

// Loaded applies the result of the dataset load and starts the first game.
func Loaded(state State, session *game.Session, err error) State {
	if err != nil {
		state.Phase = PhaseFailed
		state.Err = err
		state.Notice = ""
		return state
	}
	state.Session = session
	state.Err = nil
	state.Tracker = game.NewTracker()
	return NewGame(state)
}

// NewGame replaces the board with a fresh sample and starts a new score.
func NewGame(state State) State {
	g, err := state.Session.NewGame()
	if err != nil {
		state.Notice = "The dataset is not loaded yet."
		return state
	}
	state.Tracker = game.NewTracker()
	state.Game = g
	state.Phase = PhaseBoard
	state.Col, state.Row = 0, 0
	state = clearClue(state)
	state.Notice = g.Warning
	return state
}

// Move shifts the board cursor, clamped to the grid.
func Move(state State, dCol, dRow int) State {
	if state.Phase != PhaseBoard || state.Game == nil {
		return state
	}
	cols := len(state.Game.Board.Categories)
	rows := state.Game.Board.Rows()
	if cols == 0 || rows == 0 {
		return state
	}
	state.Col = clamp(state.Col+dCol, 0, cols-1)
	state.Row = clamp(state.Row+dRow, 0, rows-1)
	return state
}

// Open reveals the clue under the cursor and builds its options.
func Open(state State) State {
	if state.Phase != PhaseBoard || state.Game == nil {
		return state
	}
	slot, ok := state.Game.Board.At(state.Col, state.Row)
	if !ok || slot.Empty() {
		state.Notice = "There is no clue here."
		return state
	}
	if state.Answered(slot.ID) {
		state.Notice = "That clue was already played."
		return state
	}
	result, err := state.Session.Choices(slot)
	if err != nil {
		state.Notice = err.Error()
		return state
	}
	state.Phase = PhaseClue
	state.Slot = slot
	state.Options = result.Options
	state.Fallback = result.Fallback
	state.Selected = -1
	state.Notice = ""
	return state
}

// Select highlights option idx.
func Select(state State, idx int) State {
	if state.Phase != PhaseClue || idx < 0 || idx >= len(state.Options) {
		return state
	}
	state.Selected = idx
	state.Notice = ""
	return state
}

// MoveSelection cycles the highlighted option.
func MoveSelection(state State, delta int) State {
	n := len(state.Options)
	if state.Phase != PhaseClue || n == 0 {
		return state
	}
	if state.Selected < 0 {
		if delta > 0 {
			return Select(state, 0)
		}
		return Select(state, n-1)
	}
	return Select(state, ((state.Selected+delta)%n+n)%n)
}

// Submit checks the typed answer, or the highlighted option when typed is
// blank. With neither, the clue stays open and nothing is scored.
func Submit(state State, typed string) State {
	if state.Phase != PhaseClue {
		return state
	}
	chosen := strings.TrimSpace(typed)
	if chosen == "" && state.Selected >= 0 && state.Selected < len(state.Options) {
		chosen = state.Options[state.Selected]
	}
	outcome, err := game.Check(state.Slot, chosen)
	if errors.Is(err, game.ErrNoSelection) {
		state.Notice = "Select an answer first."
		return state
	}
	if err != nil {
		state.Notice = err.Error()
		return state
	}
	tracker := state.Tracker.Clone()
	if err := tracker.Record(outcome); err != nil {
		state.Notice = err.Error()
		return state
	}
	state.Tracker = tracker
	state.Outcome = outcome
	state.Phase = PhaseResult
	state.Notice = ""
	return state
}

// Close returns to the board. Closing an unanswered clue leaves it playable.
func Close(state State) State {
	if state.Phase != PhaseClue && state.Phase != PhaseResult {
		return state
	}
	state.Phase = PhaseBoard
	state = clearClue(state)
	state.Notice = ""
	if state.Tracker.Remaining(state.Game) == 0 {
		answered, correct := state.Tracker.Counts()
		state.Notice = fmt.Sprintf("Board cleared: %d of %d correct, final score %s. Press n for a new game.",
			correct, answered, render.Money(state.Tracker.Score()))
	}
	return state
}

func clearClue(state State) State {
	state.Slot = board.Slot{}
	state.Options = nil
	state.Fallback = false
	state.Selected = -1
	state.Outcome = game.Outcome{}
	return state
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
