package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"clueboard/internal/board"
	"clueboard/internal/game"
	"clueboard/internal/logger"
	"clueboard/internal/testutil"
	"clueboard/internal/ui/play"
)

func session(complete int) *game.Session {
	return game.NewSession(testutil.ClueRows(complete, 0), "fixture", game.Options{Seed: 5}, logger.Nop())
}

func run(t *testing.T, s *game.Session, input string) (play.State, string) {
	t.Helper()
	var out bytes.Buffer
	state, err := Run(testutil.Context(t, 0), s, Options{In: strings.NewReader(input), Out: &out, NoColor: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return state, out.String()
}

func TestRunShowsBoardAndQuits(t *testing.T) {
	state, out := run(t, session(6), "quit\n")
	if !strings.Contains(out, "[1] ") || !strings.Contains(out, "$1,000") {
		t.Fatalf("expected board in output:\n%s", out)
	}
	if !strings.Contains(out, "Score: $0 (0 of 0 correct)") {
		t.Fatalf("expected score on quit:\n%s", out)
	}
	if state.Phase != play.PhaseBoard {
		t.Fatalf("unexpected phase %v", state.Phase)
	}
}

func TestRunTypedAndPickedAnswers(t *testing.T) {
	// Seeded sessions are reproducible, so a twin session predicts the board.
	twin := session(6)
	g, _ := twin.NewGame()
	slot, _ := g.Board.At(0, 0)

	input := strings.Join([]string{
		"1 200",
		"",
		strings.ToLower(slot.Clue.Answer),
		"1 200",
		"2 $1,000",
		"wrong answer",
		"score",
		"quit",
	}, "\n") + "\n"
	state, out := run(t, session(6), input)
	for _, want := range []string{
		slot.Clue.Question,
		"Select an answer first.",
		"Correct! +$200",
		"That clue was already played.",
		"Incorrect. -$1,000",
		"The answer was:",
		"Score: -$800 (1 of 2 correct)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if state.Score() != -800 {
		t.Fatalf("expected -800, got %d", state.Score())
	}
}

func TestRunPickByNumber(t *testing.T) {
	twin := session(6)
	g, _ := twin.NewGame()
	slot, _ := g.Board.At(2, 1)
	choices, _ := twin.Choices(slot)
	pick := -1
	for i, option := range choices.Options {
		if option == slot.Clue.Answer {
			pick = i + 1
		}
	}
	if pick < 0 {
		t.Fatalf("expected correct answer among options")
	}
	input := "3 400\n" + string(rune('0'+pick)) + "\n"
	state, out := run(t, session(6), input)
	if !strings.Contains(out, "Correct! +$400") || state.Score() != 400 {
		t.Fatalf("expected numbered pick to score:\n%s", out)
	}
}

func TestRunSkipAndNewGame(t *testing.T) {
	state, out := run(t, session(8), "1 600\nskip\nnew\nquit\n")
	if strings.Count(out, "[1] ") < 3 {
		t.Fatalf("expected board after skip and new game:\n%s", out)
	}
	if state.Tracker.Remaining(state.Game) != 30 {
		t.Fatalf("expected skip to leave the clue playable")
	}
}

func TestRunEndsOnEOF(t *testing.T) {
	state, _ := run(t, session(6), "")
	if state.Game == nil {
		t.Fatalf("expected a game to be started")
	}
}

func TestRunRequiresSession(t *testing.T) {
	_, err := Run(context.Background(), nil, Options{In: strings.NewReader("")})
	if !errors.Is(err, game.ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestParsePick(t *testing.T) {
	b := board.Board{Want: 2, Categories: []board.Category{
		{Name: "SCIENCE", Slots: []board.Slot{{ID: "SCIENCE|200", Value: 200}, {ID: "SCIENCE|1000", Value: 1000}}},
		{Name: "SCIENCE FICTION", Slots: []board.Slot{{ID: "SCIENCE FICTION|200", Value: 200}}},
	}}
	cases := []struct {
		line     string
		col, row int
		err      string
	}{
		{line: "1 200", col: 0, row: 0},
		{line: "science $1,000", col: 0, row: 1},
		{line: "Science Fiction 200", col: 1, row: 0},
		{line: "scien 200", err: "ambiguous"},
		{line: "3 200", err: "not on the board"},
		{line: "1 abc", err: "unknown value"},
		{line: "2 1000", err: "no $1,000 clue"},
		{line: "history 200", err: "no category"},
		{line: "200", err: "enter a column"},
	}
	for _, tc := range cases {
		col, row, err := parsePick(b, tc.line)
		if tc.err != "" {
			if err == nil || !strings.Contains(err.Error(), tc.err) {
				t.Fatalf("%q: expected error containing %q, got %v", tc.line, tc.err, err)
			}
			continue
		}
		if err != nil || col != tc.col || row != tc.row {
			t.Fatalf("%q: expected %d,%d got %d,%d (%v)", tc.line, tc.col, tc.row, col, row, err)
		}
	}
}
