package game

import (
	"fmt"
	"strings"
	"time"

	"clueboard/internal/answer"
	"clueboard/internal/board"
	"clueboard/internal/choices"

	"github.com/google/uuid"
)

// Game is one freshly sampled board.
type Game struct {
	ID        string
	Board     board.Board
	StartedAt time.Time
	// Warning is set when fewer categories than requested were eligible.
	Warning string
}

// NewGame samples a new board. Each call replaces the previous board in
// full; the dataset snapshot is reused.
func (s *Session) NewGame() (*Game, error) {
	if !s.Loaded() {
		return nil, ErrNotLoaded
	}
	opts := s.boardOptions()
	g := &Game{
		ID:        uuid.NewString(),
		Board:     board.Build(s.boardClues, opts, s.rng),
		StartedAt: s.opts.Now(),
	}
	g.Warning = ShortBoardWarning(g.Board)
	log := s.log.With("game_id", g.ID)
	log.Info("board built", "categories", len(g.Board.Categories), "short", g.Board.Short())
	if g.Warning != "" {
		log.Warn("degraded board", "eligible", len(g.Board.Categories), "want", g.Board.Want)
	}
	return g, nil
}

// ShortBoardWarning describes a board with fewer columns than requested, or
// returns "" for a full board.
func ShortBoardWarning(b board.Board) string {
	if !b.Short() {
		return ""
	}
	if len(b.Categories) == 0 {
		return "No categories in this dataset cover every board value; the board is empty."
	}
	return fmt.Sprintf("Only %d of %d categories cover every board value; showing a short board.", len(b.Categories), b.Want)
}

// Choices builds the shuffled answer options for a slot.
func (s *Session) Choices(slot board.Slot) (choices.Result, error) {
	if !s.Loaded() {
		return choices.Result{}, ErrNotLoaded
	}
	if slot.Empty() {
		return choices.Result{}, fmt.Errorf("%w: %s", ErrUnknownClue, slot.ID)
	}
	result := choices.Build(*slot.Clue, s.repo, s.rng, s.opts.Choices)
	s.log.Debug("choices built", "clue_id", slot.ID, "options", len(result.Options), "fallback", result.Fallback)
	return result, nil
}

// Outcome is the result of checking one answer.
type Outcome struct {
	SlotID   string `json:"slot_id"`
	Correct  bool   `json:"correct"`
	Delta    int    `json:"delta"`
	Expected string `json:"expected"`
	Chosen   string `json:"chosen"`
	// NearMiss marks a wrong answer that was close to the expected one.
	NearMiss bool `json:"near_miss,omitempty"`
}

// Check compares a chosen or typed answer with the slot's clue. An empty
// answer is rejected with ErrNoSelection and scores nothing.
func Check(slot board.Slot, chosen string) (Outcome, error) {
	if slot.Empty() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownClue, slot.ID)
	}
	if strings.TrimSpace(chosen) == "" {
		return Outcome{}, ErrNoSelection
	}
	expected := slot.Clue.Answer
	out := Outcome{
		SlotID:   slot.ID,
		Correct:  answer.Match(chosen, expected),
		Expected: expected,
		Chosen:   chosen,
	}
	if out.Correct {
		out.Delta = slot.Value
	} else {
		out.Delta = -slot.Value
		out.NearMiss = answer.NearMiss(chosen, expected)
	}
	return out, nil
}
