package game

import "fmt"

// Tracker keeps per-clue outcomes and the running score for one game.
// It belongs to the presentation layer; the core never mutates it.
type Tracker struct {
	score    int
	correct  int
	outcomes map[string]Outcome
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{outcomes: map[string]Outcome{}}
}

// Record stores an outcome and applies its delta. A clue can be recorded once.
func (t *Tracker) Record(out Outcome) error {
	if _, seen := t.outcomes[out.SlotID]; seen {
		return fmt.Errorf("%w: %s", ErrAlreadyAnswered, out.SlotID)
	}
	t.outcomes[out.SlotID] = out
	t.score += out.Delta
	if out.Correct {
		t.correct++
	}
	return nil
}

// Answered reports whether a clue has an outcome.
func (t *Tracker) Answered(slotID string) bool {
	_, ok := t.outcomes[slotID]
	return ok
}

// Outcome returns the stored outcome for a clue.
func (t *Tracker) Outcome(slotID string) (Outcome, bool) {
	out, ok := t.outcomes[slotID]
	return out, ok
}

// Score returns the running total.
func (t *Tracker) Score() int {
	return t.score
}

// Counts returns how many clues were answered and how many correctly.
func (t *Tracker) Counts() (answered, correct int) {
	return len(t.outcomes), t.correct
}

// Clone returns an independent copy. A nil tracker clones to an empty one.
func (t *Tracker) Clone() *Tracker {
	out := NewTracker()
	if t == nil {
		return out
	}
	out.score, out.correct = t.score, t.correct
	for id, outcome := range t.outcomes {
		out.outcomes[id] = outcome
	}
	return out
}

// Remaining counts the filled slots of g that have no outcome yet.
func (t *Tracker) Remaining(g *Game) int {
	if g == nil {
		return 0
	}
	remaining := 0
	for _, category := range g.Board.Categories {
		for _, slot := range category.Slots {
			if !slot.Empty() && !t.Answered(slot.ID) {
				remaining++
			}
		}
	}
	return remaining
}
