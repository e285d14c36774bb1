package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"clueboard/internal/testutil"
)

func TestValidateReportsDatasetStats(t *testing.T) {
	setupProject(t, testutil.ClueCSV(4, 1))

	code, out, errOut := runCLI(t, "validate")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, want := range []string{
		"Config OK:",
		"Rows: 29",
		"Repository clues: 29",
		"Board-eligible clues (Jeopardy!): 24",
		"Eligible categories: 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
	if errOut != "" {
		t.Fatalf("expected no warnings, got %q", errOut)
	}
}

func TestValidateWarnsOnShortBoard(t *testing.T) {
	setupProject(t, testutil.ClueCSV(2, 1))

	code, _, errOut := runCLI(t, "validate")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "2 of 3 categories") {
		t.Fatalf("expected short board warning, got %q", errOut)
	}
}

func TestValidateFailsOnMissingDataset(t *testing.T) {
	dir := setupProject(t, "")
	code, _, errOut := runCLI(t, "validate", "--dataset", filepath.Join(dir, "missing.csv"))
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "missing.csv") {
		t.Fatalf("expected failing location in error, got %q", errOut)
	}
}

func TestValidateRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".clueboard/config.yml", "version: 1\nboard:\n  categories: -1\n")
	t.Chdir(dir)

	code, _, errOut := runCLI(t, "validate")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Validation failed") {
		t.Fatalf("expected validation failure, got %q", errOut)
	}
}

func TestBoardTextOutput(t *testing.T) {
	setupProject(t, testutil.ClueCSV(4, 0))

	code, out, errOut := runCLI(t, "board")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if strings.Count(out, "COMPLETE") != 3 {
		t.Fatalf("expected three board columns, got %q", out)
	}
	if !strings.Contains(out, "$1,000") {
		t.Fatalf("expected top ladder value, got %q", out)
	}
}

func TestBoardJSONIsReproducibleWithSeed(t *testing.T) {
	setupProject(t, testutil.ClueCSV(6, 0))

	decode := func() []string {
		code, out, errOut := runCLI(t, "board", "--format", "json", "--seed", "42", "--answers")
		if code != ExitOK {
			t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
		}
		var payload struct {
			Categories []struct {
				Name  string `json:"name"`
				Clues []struct {
					Answer string `json:"answer"`
				} `json:"clues"`
			} `json:"categories"`
		}
		if err := json.Unmarshal([]byte(out), &payload); err != nil {
			t.Fatalf("decode board: %v", err)
		}
		var names []string
		for _, category := range payload.Categories {
			if len(category.Clues) != len(testutil.Ladder) {
				t.Fatalf("expected full column, got %d clues", len(category.Clues))
			}
			if category.Clues[0].Answer == "" {
				t.Fatalf("expected answers with --answers")
			}
			names = append(names, category.Name)
		}
		return names
	}

	first, second := decode(), decode()
	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Fatalf("expected same board for same seed, got %v and %v", first, second)
	}
}

func TestBoardShortWarning(t *testing.T) {
	setupProject(t, testutil.ClueCSV(1, 2))

	code, _, errOut := runCLI(t, "board", "--format", "html")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "Only 1 of 3 categories") {
		t.Fatalf("expected short board warning, got %q", errOut)
	}
}

func TestBoardRejectsUnknownFormat(t *testing.T) {
	setupProject(t, testutil.ClueCSV(3, 0))
	code, _, errOut := runCLI(t, "board", "--format", "pdf")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "invalid format") {
		t.Fatalf("expected format error, got %q", errOut)
	}
}

func TestChoicesPrintsOptions(t *testing.T) {
	setupProject(t, testutil.ClueCSV(4, 0))

	code, out, errOut := runCLI(t, "choices", "--category", "complete 1", "--value", "$400")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Answer 1-400") {
		t.Fatalf("expected correct answer among options, got %q", out)
	}
	for _, n := range []string{"1. ", "2. ", "3. ", "4. "} {
		if !strings.Contains(out, n) {
			t.Fatalf("expected option %q, got %q", n, out)
		}
	}
}

func TestChoicesUnknownClue(t *testing.T) {
	setupProject(t, testutil.ClueCSV(3, 0))

	code, _, errOut := runCLI(t, "choices", "--category", "NOPE", "--value", "200")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "No clue") {
		t.Fatalf("expected missing clue error, got %q", errOut)
	}
}

func TestChoicesRequiresFlags(t *testing.T) {
	code, _, _ := runCLI(t, "choices", "--category", "X")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestPlayPlainSession(t *testing.T) {
	setupProject(t, testutil.ClueCSV(4, 0))
	withPlayInput(t, "1 200\n1\nscore\nquit\n")

	code, out, errOut := runCLI(t, "play", "--ui", "plain")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "for $200") {
		t.Fatalf("expected the opened clue, got %q", out)
	}
	if !strings.Contains(out, "of 1 correct") {
		t.Fatalf("expected score after one answer, got %q", out)
	}
}

func TestPlayLiveFallsBackWithoutTerminal(t *testing.T) {
	setupProject(t, testutil.ClueCSV(3, 0))
	withPlayInput(t, "quit\n")

	code, _, errOut := runCLI(t, "play", "--ui", "live")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(errOut, "falling back to plain mode") {
		t.Fatalf("expected fallback warning, got %q", errOut)
	}
}

func TestPlayRejectsUnknownUIMode(t *testing.T) {
	code, _, errOut := runCLI(t, "play", "--ui", "fancy")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", errOut)
	}
}

func TestImportThenPlayFromStore(t *testing.T) {
	dir := setupProject(t, testutil.ClueCSV(4, 1))
	store := filepath.Join(dir, "store.duckdb")

	code, out, errOut := runCLI(t, "import", "--db", store, "--name", "sample", "clues.csv")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Imported 29 clues") {
		t.Fatalf("expected import summary, got %q", out)
	}

	code, out, _ = runCLI(t, "import", "--db", store, "--list", "clues.csv")
	if code != ExitOK {
		t.Fatalf("expected reimport to succeed, got %d", code)
	}
	if !strings.Contains(out, "already stored") || !strings.Contains(out, "sample") {
		t.Fatalf("expected no-op reimport plus listing, got %q", out)
	}

	code, out, errOut = runCLI(t, "validate", "--dataset", store, "--name", "sample")
	if code != ExitOK {
		t.Fatalf("expected store to validate, got %d (stderr %q)", code, errOut)
	}
	if !strings.Contains(out, "Eligible categories: 4") {
		t.Fatalf("expected stats from the store, got %q", out)
	}
}

func TestImportUsage(t *testing.T) {
	code, _, errOut := runCLI(t, "import", "clues.csv")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "--db") {
		t.Fatalf("expected usage error, got %q", errOut)
	}
}
