package render

import (
	"encoding/json"
	"io"
)

type jsonBoard struct {
	GameID     string         `json:"game_id,omitempty"`
	Title      string         `json:"title,omitempty"`
	Warning    string         `json:"warning,omitempty"`
	Short      bool           `json:"short"`
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Name  string     `json:"name"`
	Clues []jsonClue `json:"clues"`
}

type jsonClue struct {
	ID       string `json:"id"`
	Value    int    `json:"value"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Answered bool   `json:"answered,omitempty"`
}

// JSON writes the board as indented JSON. Answers are omitted unless
// doc.ShowAnswers is set.
func JSON(w io.Writer, doc Document) error {
	out := jsonBoard{
		GameID:     doc.GameID,
		Title:      doc.Title,
		Warning:    doc.Warning,
		Short:      doc.Board.Short(),
		Categories: make([]jsonCategory, 0, len(doc.Board.Categories)),
	}
	for _, category := range doc.Board.Categories {
		entry := jsonCategory{Name: category.Name, Clues: make([]jsonClue, 0, len(category.Slots))}
		for _, slot := range category.Slots {
			item := jsonClue{ID: slot.ID, Value: slot.Value, Answered: doc.answered(slot.ID)}
			if !slot.Empty() {
				item.Question = slot.Clue.Question
				if doc.ShowAnswers {
					item.Answer = slot.Clue.Answer
				}
			}
			entry.Clues = append(entry.Clues, item)
		}
		out.Categories = append(out.Categories, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
