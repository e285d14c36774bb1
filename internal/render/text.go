package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerColor   = lipgloss.Color("226")
	valueColor    = lipgloss.Color("214")
	answeredColor = lipgloss.Color("240")
	warningColor  = lipgloss.Color("203")
	borderColor   = lipgloss.Color("27")
)

// Text renders the board as a bordered table, one column per category.
// Played slots are blank. Column headers are numbered for keyboard play.
func Text(doc Document, noColor bool) string {
	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(stylize(doc.Title, noColor, lipgloss.NewStyle().Bold(true)))
		b.WriteString("\n")
	}
	if doc.Warning != "" {
		b.WriteString(stylize("! "+doc.Warning, noColor, lipgloss.NewStyle().Foreground(warningColor)))
		b.WriteString("\n")
	}
	if len(doc.Board.Categories) == 0 {
		b.WriteString("(no board)\n")
		return b.String()
	}

	headers := make([]string, 0, len(doc.Board.Categories))
	for i, category := range doc.Board.Categories {
		headers = append(headers, columnLabel(i)+" "+category.Name)
	}
	rows := make([][]string, 0, doc.Board.Rows())
	for r := 0; r < doc.Board.Rows(); r++ {
		row := make([]string, 0, len(doc.Board.Categories))
		for c := range doc.Board.Categories {
			slot, ok := doc.Board.At(c, r)
			switch {
			case !ok || slot.Empty() || doc.answered(slot.ID):
				row = append(row, "")
			default:
				row = append(row, Money(slot.Value))
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...)
	if noColor {
		t = t.Border(lipgloss.ASCIIBorder())
	} else {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
				if row == table.HeaderRow {
					return style.Bold(true).Foreground(headerColor)
				}
				return style.Foreground(valueColor)
			})
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	if doc.Answered != nil {
		b.WriteString(stylize("Score: "+Money(doc.Score), noColor, lipgloss.NewStyle().Foreground(answeredColor)))
		b.WriteString("\n")
	}
	return b.String()
}

// columnLabel returns the 1-based column number used to pick a category.
func columnLabel(i int) string {
	return "[" + strconv.Itoa(i+1) + "]"
}

func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
