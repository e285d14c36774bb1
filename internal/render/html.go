package render

import (
	"context"
	"io"

	"clueboard/internal/board"
)

//go:generate templ generate -f board.templ

// HTML writes a standalone printable page for the board.
func HTML(ctx context.Context, w io.Writer, doc Document) error {
	return BoardPage(doc).Render(ctx, w)
}

func pageTitle(doc Document) string {
	if doc.Title == "" {
		return "Clue board"
	}
	return doc.Title
}

// boardRows transposes the board into table rows. Short columns yield
// empty slots.
func boardRows(b board.Board) [][]board.Slot {
	rows := make([][]board.Slot, b.Rows())
	for r := range rows {
		rows[r] = make([]board.Slot, len(b.Categories))
		for c := range b.Categories {
			rows[r][c], _ = b.At(c, r)
		}
	}
	return rows
}
