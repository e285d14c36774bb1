// Package render formats boards for terminals, JSON consumers and print.
package render

import (
	"strconv"
	"strings"

	"clueboard/internal/board"
)

// Document is a board plus the context shown around it.
type Document struct {
	Title   string
	GameID  string
	Board   board.Board
	Warning string
	// ShowAnswers includes the answers in exports.
	ShowAnswers bool
	// Answered marks slots that were already played. May be nil.
	Answered func(slotID string) bool
	Score    int
}

func (d Document) answered(id string) bool {
	return d.Answered != nil && d.Answered(id)
}

// Money formats a clue value as "$1,000", grouping every three digits.
func Money(value int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	digits := strconv.Itoa(value)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String()
}
