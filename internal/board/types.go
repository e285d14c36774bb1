// Package board selects categories and clues for a game board.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"clueboard/internal/clue"
)

// DefaultRound is the dataset round whose clues fill the board.
const DefaultRound = "Jeopardy!"

// DefaultColumns is the number of categories on a full board.
const DefaultColumns = 6

// DefaultLadder is the ascending set of values every board category covers.
var DefaultLadder = []int{200, 400, 600, 800, 1000}

// Slot is one cell of a board column.
type Slot struct {
	ID    string       `json:"id"`
	Value int          `json:"value"`
	Clue  *clue.Record `json:"clue,omitempty"`
}

// Empty reports whether the slot has no clue.
func (s Slot) Empty() bool {
	return s.Clue == nil
}

// Category is one board column with a slot per ladder value.
type Category struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Board is the set of columns for one game.
type Board struct {
	Categories []Category `json:"categories"`
	Want       int        `json:"want"`
}

// Short reports whether fewer categories were eligible than requested.
func (b Board) Short() bool {
	return len(b.Categories) < b.Want
}

// Slot finds a slot by identifier.
func (b Board) Slot(id string) (Slot, bool) {
	for _, category := range b.Categories {
		for _, slot := range category.Slots {
			if slot.ID == id {
				return slot, true
			}
		}
	}
	return Slot{}, false
}

// At returns the slot at a column and row, both zero based.
func (b Board) At(col, row int) (Slot, bool) {
	if col < 0 || col >= len(b.Categories) {
		return Slot{}, false
	}
	slots := b.Categories[col].Slots
	if row < 0 || row >= len(slots) {
		return Slot{}, false
	}
	return slots[row], true
}

// Rows returns the number of slots in the tallest column.
func (b Board) Rows() int {
	rows := 0
	for _, category := range b.Categories {
		rows = max(rows, len(category.Slots))
	}
	return rows
}

// SlotID builds the board-unique identifier for a category and value.
func SlotID(category string, value int) string {
	return fmt.Sprintf("%s|%d", category, value)
}

// ParseSlotID splits an identifier built by SlotID.
func ParseSlotID(id string) (string, int, error) {
	idx := strings.LastIndex(id, "|")
	if idx == -1 {
		return "", 0, fmt.Errorf("invalid clue id %q", id)
	}
	value, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid clue id %q: %w", id, err)
	}
	return id[:idx], value, nil
}
