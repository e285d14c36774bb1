package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BoardRound is the round name used by generated datasets.
const BoardRound = "Jeopardy!"

// Ladder is the value ladder every complete generated category covers.
var Ladder = []int{200, 400, 600, 800, 1000}

// DatasetHeader mirrors the column layout of the public clue dump, including
// the stray leading spaces in its header names.
var DatasetHeader = []string{"Show Number", " Air Date", " Round", " Category", " Value", " Question", " Answer"}

// ClueRows builds a header plus rows holding complete categories that cover
// the whole ladder, partial categories that miss the top value, and one
// category from another round.
func ClueRows(complete, partial int) [][]string {
	rows := [][]string{append([]string(nil), DatasetHeader...)}
	show := 1000
	add := func(round, category string, value int, n int) {
		show++
		rows = append(rows, []string{
			fmt.Sprint(show),
			"2004-12-31",
			round,
			category,
			formatValue(value),
			fmt.Sprintf("Clue %d for %s", n, formatValue(value)),
			fmt.Sprintf("Answer %d-%d", n, value),
		})
	}
	n := 0
	for c := 1; c <= complete; c++ {
		n++
		for _, value := range Ladder {
			add(BoardRound, fmt.Sprintf("COMPLETE %d", c), value, n)
		}
	}
	for c := 1; c <= partial; c++ {
		n++
		for _, value := range Ladder[:len(Ladder)-1] {
			add(BoardRound, fmt.Sprintf("PARTIAL %d", c), value, n)
		}
	}
	n++
	for _, value := range Ladder {
		add("Double Jeopardy!", "DOUBLE", value*2, n)
	}
	return rows
}

// ClueCSV renders ClueRows as quoted, comma-delimited text.
func ClueCSV(complete, partial int) string {
	return FormatCSV(ClueRows(complete, partial))
}

// FormatCSV renders rows as comma-delimited text with standard quoting.
func FormatCSV(rows [][]string) string {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	_ = writer.WriteAll(rows)
	return builder.String()
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func formatValue(value int) string {
	if value >= 1000 {
		return fmt.Sprintf("$%d,%03d", value/1000, value%1000)
	}
	return fmt.Sprintf("$%d", value)
}
