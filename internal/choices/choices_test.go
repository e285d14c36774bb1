package choices

import (
	"sort"
	"testing"

	"clueboard/internal/answer"
	"clueboard/internal/clue"
	"clueboard/internal/random"
)

func record(category, ans string) clue.Record {
	return clue.Record{Category: category, Question: "q " + ans, Answer: ans}
}

func countMatches(options []string, target string) int {
	n := 0
	for _, option := range options {
		if answer.Match(option, target) {
			n++
		}
	}
	return n
}

func assertDistinct(t *testing.T, options []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, option := range options {
		key := answer.Canonicalize(option)
		if seen[key] {
			t.Fatalf("duplicate option %q in %v", option, options)
		}
		seen[key] = true
	}
}

func TestBuildPrefersSameCategory(t *testing.T) {
	repo := clue.NewRepository([]clue.Record{
		record("RIVERS", "Nile"),
		record("RIVERS", "Amazon"),
		record("RIVERS", "the Amazon"),
		record("RIVERS", "Danube"),
		record("RIVERS", "Volga"),
		record("CITIES", "Paris"),
		record("CITIES", "Rome"),
	})
	correct := record("RIVERS", "Nile")
	rng := random.New(10)
	for i := 0; i < 50; i++ {
		result := Build(correct, repo, rng, Options{})
		if len(result.Options) != 4 {
			t.Fatalf("expected 4 options, got %v", result.Options)
		}
		if result.Fallback {
			t.Fatalf("did not expect fallback")
		}
		if countMatches(result.Options, "Nile") != 1 {
			t.Fatalf("expected correct answer exactly once in %v", result.Options)
		}
		assertDistinct(t, result.Options)
		for _, option := range result.Options {
			if option == "Paris" || option == "Rome" {
				t.Fatalf("expected same-category distractors, got %v", result.Options)
			}
		}
	}
}

func TestBuildFallsBackToRepository(t *testing.T) {
	repo := clue.NewRepository([]clue.Record{
		record("TINY", "Red"),
		record("TINY", "Blue"),
		record("TINY", "<b>red</b>"),
		record("OTHER", "Green"),
		record("OTHER", "Yellow"),
	})
	result := Build(record("TINY", "Red"), repo, random.New(11), Options{})
	if !result.Fallback {
		t.Fatalf("expected fallback to the whole repository")
	}
	if len(result.Options) != 4 {
		t.Fatalf("expected 4 options, got %v", result.Options)
	}
	got := append([]string(nil), result.Options...)
	sort.Strings(got)
	want := []string{"Blue", "Green", "Red", "Yellow"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected options %v, got %v", want, got)
		}
	}
}

func TestBuildDegenerateRepository(t *testing.T) {
	repo := clue.NewRepository([]clue.Record{
		record("ONLY", "Yes"),
		record("ONLY", "No"),
		record("ONLY", "yes!"),
	})
	result := Build(record("ONLY", "Yes"), repo, random.New(12), Options{})
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %v", result.Options)
	}
	if countMatches(result.Options, "Yes") != 1 {
		t.Fatalf("expected correct answer exactly once in %v", result.Options)
	}
}

func TestBuildSkipsEmptyCanonicalAnswers(t *testing.T) {
	repo := clue.NewRepository([]clue.Record{
		record("WORDS", "The"),
		record("WORDS", "An"),
		record("WORDS", "Alpha"),
		record("WORDS", "Beta"),
		record("WORDS", "Gamma"),
		record("WORDS", "Delta"),
	})
	result := Build(record("WORDS", "Alpha"), repo, random.New(13), Options{})
	for _, option := range result.Options {
		if answer.Canonicalize(option) == "" {
			t.Fatalf("unexpected blank option in %v", result.Options)
		}
	}
}

func TestBuildScanLimit(t *testing.T) {
	records := []clue.Record{record("LETTERS", "Correct")}
	for _, ans := range []string{"A1", "B1", "C1", "D1", "E1", "F1"} {
		records = append(records, record("LETTERS", ans))
	}
	repo := clue.NewRepository(records)
	result := Build(record("LETTERS", "Correct"), repo, random.New(14), Options{ScanLimit: 3})
	allowed := map[string]bool{"Correct": true, "A1": true, "B1": true, "C1": true}
	for _, option := range result.Options {
		if !allowed[option] {
			t.Fatalf("option %q beyond scan limit in %v", option, result.Options)
		}
	}
}

func TestBuildShufflesCorrectPosition(t *testing.T) {
	repo := clue.NewRepository([]clue.Record{
		record("C", "w"), record("C", "x"), record("C", "y"), record("C", "z"),
	})
	rng := random.New(15)
	positions := map[int]int{}
	for i := 0; i < 400; i++ {
		result := Build(record("C", "w"), repo, rng, Options{})
		for pos, option := range result.Options {
			if option == "w" {
				positions[pos]++
			}
		}
	}
	for pos := 0; pos < 4; pos++ {
		if positions[pos] < 50 {
			t.Fatalf("correct answer landed at position %d only %d times", pos, positions[pos])
		}
	}
}
