// Package play is the interactive terminal board built on Bubble Tea.
package play

import (
	"clueboard/internal/board"
	"clueboard/internal/game"
)

// Phase is the screen the player is on.
type Phase int

const (
	// PhaseLoading waits for the dataset.
	PhaseLoading Phase = iota
	// PhaseFailed shows a load error; the board is unavailable.
	PhaseFailed
	// PhaseBoard shows the grid with a cursor.
	PhaseBoard
	// PhaseClue shows an open clue with its options.
	PhaseClue
	// PhaseResult shows the outcome of the last answer.
	PhaseResult
)

// State is everything the view draws. Transitions live in reducer.go and
// never mutate the tracker of the state they are given, so earlier copies
// keep their score.
type State struct {
	Phase   Phase
	Session *game.Session
	Game    *game.Game
	Tracker *game.Tracker

	Col int
	Row int

	Slot     board.Slot
	Options  []string
	Fallback bool
	// Selected is the highlighted option, or -1.
	Selected int
	Outcome  game.Outcome

	Notice string
	Err    error
}

// Answered reports whether a slot was played in this game.
func (s State) Answered(slotID string) bool {
	return s.Tracker != nil && s.Tracker.Answered(slotID)
}

// Score returns the running score.
func (s State) Score() int {
	if s.Tracker == nil {
		return 0
	}
	return s.Tracker.Score()
}
