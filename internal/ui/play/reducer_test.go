package play

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clueboard/internal/game"
	"clueboard/internal/logger"
	"clueboard/internal/testutil"

	tea "github.com/charmbracelet/bubbletea"
)

func fixtureSession(complete int) *game.Session {
	return game.NewSession(testutil.ClueRows(complete, 1), "fixture", game.Options{Seed: 11}, logger.Nop())
}

func loadedState(t *testing.T, complete int) State {
	t.Helper()
	state := Loaded(State{Phase: PhaseLoading, Selected: -1}, fixtureSession(complete), nil)
	if state.Phase != PhaseBoard {
		t.Fatalf("expected board phase, got %v", state.Phase)
	}
	return state
}

func correctIndex(state State) int {
	for i, option := range state.Options {
		if option == state.Slot.Clue.Answer {
			return i
		}
	}
	return -1
}

// TestLoadedFailure verifies a failed load keeps the board unavailable.
func TestLoadedFailure(t *testing.T) {
	state := Loaded(State{Phase: PhaseLoading}, nil, errors.New("offline"))
	if state.Phase != PhaseFailed || state.Err == nil {
		t.Fatalf("expected failed phase, got %+v", state)
	}
	if next := Open(state); next.Phase != PhaseFailed {
		t.Fatalf("expected open to be a no-op after failure")
	}
	if next := NewGame(state); next.Game != nil || next.Notice == "" {
		t.Fatalf("expected new game to be refused, got %+v", next)
	}
}

// TestLoadedShortBoardNotice verifies the degraded board warning is shown.
func TestLoadedShortBoardNotice(t *testing.T) {
	state := loadedState(t, 3)
	if !strings.Contains(state.Notice, "Only 3 of 6") {
		t.Fatalf("expected short board notice, got %q", state.Notice)
	}
	if len(state.Game.Board.Categories) != 3 {
		t.Fatalf("expected 3 columns")
	}
}

// TestMoveClamps verifies the cursor stays on the grid.
func TestMoveClamps(t *testing.T) {
	state := loadedState(t, 6)
	state = Move(state, -1, -1)
	if state.Col != 0 || state.Row != 0 {
		t.Fatalf("expected clamp at origin, got %d,%d", state.Col, state.Row)
	}
	state = Move(state, 10, 10)
	if state.Col != 5 || state.Row != 4 {
		t.Fatalf("expected clamp at 5,4, got %d,%d", state.Col, state.Row)
	}
}

// TestAnswerFlow walks open, select, submit and close.
func TestAnswerFlow(t *testing.T) {
	state := loadedState(t, 6)
	state = Open(state)
	if state.Phase != PhaseClue || len(state.Options) != 4 || state.Selected != -1 {
		t.Fatalf("expected open clue with 4 options, got %+v", state)
	}

	state = Submit(state, "")
	if state.Phase != PhaseClue || state.Notice != "Select an answer first." {
		t.Fatalf("expected empty submit to be rejected, got %q", state.Notice)
	}
	if state.Tracker.Answered(state.Slot.ID) {
		t.Fatalf("expected rejected submit not to consume the clue")
	}

	state = Select(state, correctIndex(state))
	state = Submit(state, "")
	if state.Phase != PhaseResult || !state.Outcome.Correct || state.Score() != 200 {
		t.Fatalf("expected correct result worth 200, got %+v score %d", state.Outcome, state.Score())
	}
	id := state.Outcome.SlotID

	state = Close(state)
	if state.Phase != PhaseBoard || state.Options != nil {
		t.Fatalf("expected board after close")
	}
	state = Open(state)
	if state.Phase != PhaseBoard || !strings.Contains(state.Notice, "already played") {
		t.Fatalf("expected replay of %s to be refused, got %q", id, state.Notice)
	}
}

// TestReducersLeaveEarlierStatesUntouched verifies scoring and new games do
// not leak into previously returned states.
func TestReducersLeaveEarlierStatesUntouched(t *testing.T) {
	state := Open(loadedState(t, 6))
	before := state
	state = Submit(state, state.Slot.Clue.Answer)
	if state.Score() != 200 {
		t.Fatalf("expected score 200, got %d", state.Score())
	}
	if before.Score() != 0 || before.Answered(state.Outcome.SlotID) {
		t.Fatalf("expected the pre-submit state to keep an empty score")
	}

	scored := Close(state)
	fresh := NewGame(scored)
	if fresh.Score() != 0 || fresh.Tracker == scored.Tracker {
		t.Fatalf("expected a new game to start a new tracker")
	}
	if scored.Score() != 200 {
		t.Fatalf("expected the finished game to keep its score, got %d", scored.Score())
	}
}

// TestTypedAnswer verifies typed answers use canonical matching.
func TestTypedAnswer(t *testing.T) {
	state := loadedState(t, 6)
	state = Move(state, 0, 4)
	state = Open(state)
	typed := strings.ToUpper(state.Slot.Clue.Answer) + "!"
	state = Submit(state, typed)
	if !state.Outcome.Correct || state.Score() != 1000 {
		t.Fatalf("expected typed answer to match, got %+v", state.Outcome)
	}
}

// TestWrongAnswerDeducts verifies a miss subtracts the value.
func TestWrongAnswerDeducts(t *testing.T) {
	state := loadedState(t, 6)
	state = Move(state, 1, 2)
	state = Open(state)
	state = Submit(state, "nothing like it")
	if state.Outcome.Correct || state.Score() != -600 {
		t.Fatalf("expected -600, got %+v score %d", state.Outcome, state.Score())
	}
}

// TestCloseWithoutAnswerKeepsClue verifies backing out leaves the clue open to play.
func TestCloseWithoutAnswerKeepsClue(t *testing.T) {
	state := loadedState(t, 6)
	state = Open(state)
	state = Close(state)
	state = Open(state)
	if state.Phase != PhaseClue {
		t.Fatalf("expected clue to reopen, got %v (%q)", state.Phase, state.Notice)
	}
}

// TestMoveSelectionWraps verifies option cycling.
func TestMoveSelectionWraps(t *testing.T) {
	state := loadedState(t, 6)
	state = Open(state)
	state = MoveSelection(state, -1)
	if state.Selected != 3 {
		t.Fatalf("expected last option, got %d", state.Selected)
	}
	state = MoveSelection(state, 1)
	if state.Selected != 0 {
		t.Fatalf("expected wrap to first option, got %d", state.Selected)
	}
	if next := Select(state, 9); next.Selected != 0 {
		t.Fatalf("expected out of range select to be ignored")
	}
}

// TestBoardClearedNotice verifies the final message after the last clue.
func TestBoardClearedNotice(t *testing.T) {
	state := loadedState(t, 1)
	for row := 0; row < 5; row++ {
		state = Move(state, 0, row-state.Row)
		state = Open(state)
		state = Submit(state, state.Slot.Clue.Answer)
		state = Close(state)
	}
	if !strings.Contains(state.Notice, "Board cleared: 5 of 5 correct, final score $3,000") {
		t.Fatalf("unexpected notice %q", state.Notice)
	}
	state = NewGame(state)
	if state.Score() != 0 || state.Tracker.Remaining(state.Game) != 5 {
		t.Fatalf("expected new game to reset the score")
	}
}

// TestModelKeyFlow drives the Bubble Tea model with messages.
func TestModelKeyFlow(t *testing.T) {
	session := fixtureSession(6)
	model := NewModel(context.Background(), func(context.Context) (*game.Session, error) {
		return session, nil
	}, Options{NoColor: true})

	msg := model.Init()()
	next, _ := model.Update(msg)
	model = next.(Model)
	if model.State().Phase != PhaseBoard {
		t.Fatalf("expected board after load, got %v", model.State().Phase)
	}
	if view := model.View(); !strings.Contains(view, "[$200]") {
		t.Fatalf("expected cursor on first cell:\n%s", view)
	}

	press := func(k tea.KeyMsg) {
		next, _ := model.Update(k)
		model = next.(Model)
	}
	press(tea.KeyMsg{Type: tea.KeyRight})
	press(tea.KeyMsg{Type: tea.KeyEnter})
	if model.State().Phase != PhaseClue || model.State().Col != 1 {
		t.Fatalf("expected clue in column 2, got %+v", model.State())
	}
	press(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range model.State().Slot.Clue.Answer {
		press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	press(tea.KeyMsg{Type: tea.KeyEnter})
	if model.State().Phase != PhaseResult || !model.State().Outcome.Correct {
		t.Fatalf("expected correct typed answer, got %+v", model.State().Outcome)
	}
	if view := model.View(); !strings.Contains(view, "Correct!") {
		t.Fatalf("expected result view:\n%s", view)
	}
	press(tea.KeyMsg{Type: tea.KeyEsc})
	if model.State().Phase != PhaseBoard {
		t.Fatalf("expected board after esc")
	}
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if model.State().Score() != 0 {
		t.Fatalf("expected new game to reset score")
	}
}

// TestModelReload verifies a failed load can be retried.
func TestModelReload(t *testing.T) {
	calls := 0
	model := NewModel(context.Background(), func(context.Context) (*game.Session, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("offline")
		}
		return fixtureSession(6), nil
	}, Options{NoColor: true})
	next, _ := model.Update(model.Init()())
	model = next.(Model)
	if model.State().Phase != PhaseFailed || !strings.Contains(model.View(), "offline") {
		t.Fatalf("expected failure view")
	}
	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = next.(Model)
	if model.State().Phase != PhaseLoading || cmd == nil {
		t.Fatalf("expected reload command")
	}
	next, _ = model.Update(cmd())
	model = next.(Model)
	if model.State().Phase != PhaseBoard || calls != 2 {
		t.Fatalf("expected board after reload, got %v", model.State().Phase)
	}
}
