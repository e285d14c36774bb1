//go:build cucumber

package cucumber

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"clueboard/internal/testutil"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr %q)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

type boardPayload struct {
	Categories []struct {
		Name  string `json:"name"`
		Clues []struct {
			Value  int    `json:"value"`
			Answer string `json:"answer"`
		} `json:"clues"`
	} `json:"categories"`
}

func (s *featureState) board() (boardPayload, error) {
	var payload boardPayload
	if err := json.Unmarshal(s.stdout.Bytes(), &payload); err != nil {
		return payload, fmt.Errorf("decode board json: %w", err)
	}
	return payload, nil
}

func (s *featureState) theBoardHasCategories(n int) error {
	payload, err := s.board()
	if err != nil {
		return err
	}
	if len(payload.Categories) != n {
		return fmt.Errorf("expected %d categories, got %d", n, len(payload.Categories))
	}
	return nil
}

// everyCategoryCoversTheLadder checks each column holds the ladder in order.
func (s *featureState) everyCategoryCoversTheLadder() error {
	payload, err := s.board()
	if err != nil {
		return err
	}
	for _, category := range payload.Categories {
		if len(category.Clues) != len(testutil.Ladder) {
			return fmt.Errorf("category %s has %d clues", category.Name, len(category.Clues))
		}
		for i, c := range category.Clues {
			if c.Value != testutil.Ladder[i] {
				return fmt.Errorf("category %s row %d has value %d", category.Name, i, c.Value)
			}
		}
	}
	return nil
}

func (s *featureState) noAnswersAreShown() error {
	payload, err := s.board()
	if err != nil {
		return err
	}
	for _, category := range payload.Categories {
		for _, c := range category.Clues {
			if c.Answer != "" {
				return fmt.Errorf("expected answers hidden, got %q", c.Answer)
			}
		}
	}
	return nil
}
