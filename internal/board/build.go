package board

import (
	"math/rand/v2"

	"clueboard/internal/clue"
	"clueboard/internal/random"
)

// Options controls the board shape.
type Options struct {
	Columns int
	Ladder  []int
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if len(o.Ladder) == 0 {
		o.Ladder = DefaultLadder
	}
	return o
}

// Group collects clues sharing a category, in encounter order.
type Group struct {
	Name  string
	Clues []clue.Record
}

// Covers reports whether every ladder value appears in the group.
func (g Group) Covers(ladder []int) bool {
	present := make(map[int]struct{}, len(g.Clues))
	for _, record := range g.Clues {
		present[record.Points()] = struct{}{}
	}
	for _, value := range ladder {
		if _, ok := present[value]; !ok {
			return false
		}
	}
	return true
}

// first returns the first clue in encounter order with the given value.
func (g Group) first(value int) *clue.Record {
	for i := range g.Clues {
		if g.Clues[i].Points() == value {
			record := g.Clues[i]
			return &record
		}
	}
	return nil
}

// GroupByCategory groups clues by category. Groups are ordered by the first
// appearance of their category and keep clue order within each group.
func GroupByCategory(clues []clue.Record) []Group {
	index := map[string]int{}
	var groups []Group
	for _, record := range clues {
		idx, ok := index[record.Category]
		if !ok {
			idx = len(groups)
			index[record.Category] = idx
			groups = append(groups, Group{Name: record.Category})
		}
		groups[idx].Clues = append(groups[idx].Clues, record)
	}
	return groups
}

// Eligible keeps the groups that cover the whole ladder.
func Eligible(groups []Group, ladder []int) []Group {
	out := make([]Group, 0, len(groups))
	for _, group := range groups {
		if group.Covers(ladder) {
			out = append(out, group)
		}
	}
	return out
}

// Build samples up to opts.Columns eligible categories at random and fills one
// slot per ladder value with the first matching clue. The board is short when
// fewer categories are eligible; it is never padded.
func Build(clues []clue.Record, opts Options, rng *rand.Rand) Board {
	opts = opts.withDefaults()
	eligible := Eligible(GroupByCategory(clues), opts.Ladder)
	random.Shuffle(rng, eligible)
	if len(eligible) > opts.Columns {
		eligible = eligible[:opts.Columns]
	}

	board := Board{
		Categories: make([]Category, 0, len(eligible)),
		Want:       opts.Columns,
	}
	for _, group := range eligible {
		category := Category{Name: group.Name, Slots: make([]Slot, 0, len(opts.Ladder))}
		for _, value := range opts.Ladder {
			category.Slots = append(category.Slots, Slot{
				ID:    SlotID(group.Name, value),
				Value: value,
				Clue:  group.first(value),
			})
		}
		board.Categories = append(board.Categories, category)
	}
	return board
}
