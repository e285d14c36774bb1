package play

import (
	"fmt"
	"strings"

	"clueboard/internal/render"

	"github.com/charmbracelet/lipgloss"
)

const (
	minCellWidth = 10
	maxCellWidth = 20
)

var (
	boardBlue    = lipgloss.Color("19")
	valueGold    = lipgloss.Color("220")
	mutedGray    = lipgloss.Color("242")
	errorRed     = lipgloss.Color("203")
	correctGreen = lipgloss.Color("42")
)

// View renders the current phase.
func (m Model) View() string {
	parts := []string{m.renderHeader()}
	switch m.state.Phase {
	case PhaseLoading:
		parts = append(parts, "Loading clues...")
	case PhaseFailed:
		parts = append(parts, m.style(lipgloss.NewStyle().Foreground(errorRed)).
			Render(fmt.Sprintf("Could not load the dataset: %v", m.state.Err)))
	case PhaseBoard:
		parts = append(parts, m.renderBoard())
	case PhaseClue:
		parts = append(parts, m.renderClue())
	case PhaseResult:
		parts = append(parts, m.renderResult())
	}
	if m.state.Notice != "" {
		parts = append(parts, m.style(lipgloss.NewStyle().Foreground(errorRed)).Render(m.state.Notice))
	}
	parts = append(parts, m.help.View(phaseKeys{keys: m.keys, phase: m.state.Phase}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) renderHeader() string {
	line := m.title
	if m.state.Game != nil {
		line += " | Score: " + render.Money(m.state.Score())
		if m.state.Tracker != nil {
			answered, correct := m.state.Tracker.Counts()
			line += fmt.Sprintf(" | %d/%d correct | %d left", correct, answered, m.state.Tracker.Remaining(m.state.Game))
		}
	}
	return m.style(lipgloss.NewStyle().Bold(true)).Render(line)
}

func (m Model) renderBoard() string {
	b := m.state.Game.Board
	if len(b.Categories) == 0 {
		return "No categories to show."
	}
	width := m.cellWidth(len(b.Categories))
	header := m.style(lipgloss.NewStyle().
		Background(boardBlue).Foreground(lipgloss.Color("255")).Bold(true)).
		Width(width).Height(3).Align(lipgloss.Center).Padding(0, 1)
	cell := m.style(lipgloss.NewStyle().
		Background(boardBlue).Foreground(valueGold).Bold(true)).
		Width(width).Align(lipgloss.Center).Padding(0, 1)
	cursor := cell.Reverse(true)

	columns := make([]string, 0, len(b.Categories))
	for c, category := range b.Categories {
		cells := []string{header.Render(category.Name)}
		for r := 0; r < b.Rows(); r++ {
			slot, ok := b.At(c, r)
			text := ""
			if ok && !slot.Empty() && !m.state.Answered(slot.ID) {
				text = render.Money(slot.Value)
			}
			style := cell
			if c == m.state.Col && r == m.state.Row {
				style = cursor
				if m.noColor {
					text = "[" + text + "]"
				}
			}
			cells = append(cells, style.Render(text))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Center, cells...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderClue() string {
	slot := m.state.Slot
	var lines []string
	lines = append(lines, m.style(lipgloss.NewStyle().Foreground(valueGold).Bold(true)).
		Render(fmt.Sprintf("%s for %s", slot.Clue.Category, render.Money(slot.Value))))
	lines = append(lines, "", wrap(slot.Clue.Question, m.textWidth()), "")
	for i, option := range m.state.Options {
		marker := "  "
		style := m.style(lipgloss.NewStyle())
		if i == m.state.Selected {
			marker = "> "
			style = m.style(lipgloss.NewStyle().Foreground(valueGold).Bold(true))
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, option)))
	}
	if len(m.state.Options) < 4 {
		lines = append(lines, m.style(lipgloss.NewStyle().Foreground(mutedGray)).Render("(not enough answers in the dataset for a full set of options)"))
	}
	if m.typing {
		lines = append(lines, "", m.input.View())
	}
	return m.panel().Render(strings.Join(lines, "\n"))
}

func (m Model) renderResult() string {
	out := m.state.Outcome
	var lines []string
	if out.Correct {
		lines = append(lines, m.style(lipgloss.NewStyle().Foreground(correctGreen).Bold(true)).
			Render(fmt.Sprintf("Correct! +%s", render.Money(out.Delta))))
	} else {
		lines = append(lines, m.style(lipgloss.NewStyle().Foreground(errorRed).Bold(true)).
			Render(fmt.Sprintf("Incorrect. %s", render.Money(out.Delta))))
		if out.NearMiss {
			lines = append(lines, "So close! Check the spelling.")
		}
	}
	lines = append(lines, "", "Answer: "+out.Expected)
	if out.Chosen != "" && !out.Correct {
		lines = append(lines, "You said: "+out.Chosen)
	}
	return m.panel().Render(strings.Join(lines, "\n"))
}

func (m Model) panel() lipgloss.Style {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	if !m.noColor {
		style = style.BorderForeground(boardBlue)
	}
	if w := m.textWidth(); w > 0 {
		style = style.Width(w)
	}
	return style
}

func (m Model) cellWidth(columns int) int {
	if m.width <= 0 || columns == 0 {
		return 14
	}
	w := m.width/columns - 2
	if w < minCellWidth {
		return minCellWidth
	}
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}

func (m Model) textWidth() int {
	if m.width <= 0 {
		return 72
	}
	return min(m.width-6, 96)
}

// style drops colors when color output is disabled.
func (m Model) style(s lipgloss.Style) lipgloss.Style {
	if m.noColor {
		return s.UnsetForeground().UnsetBackground()
	}
	return s
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
