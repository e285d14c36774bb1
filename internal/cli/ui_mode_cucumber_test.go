//go:build cucumber

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"clueboard/internal/board"
	"clueboard/internal/game"
	"clueboard/internal/render"
	"clueboard/internal/testutil"
	"clueboard/internal/ui/play"
)

// TestPlayUIScenarios runs the play UI feature scenarios.
func TestPlayUIScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "play-ui", "play.feature")
	suite := godog.TestSuite{
		Name:                "play-ui",
		ScenarioInitializer: InitializePlayUIScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializePlayUIScenario wires steps for play UI scenarios.
func InitializePlayUIScenario(ctx *godog.ScenarioContext) {
	state := &playUIScenarioState{}
	orig := isTerminal
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(stream any) bool {
			if stream == stdinMarker {
				return state.stdinTTY
			}
			return state.stdoutTTY
		}
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = orig
		return ctx, nil
	})

	ctx.Step(`^an interactive terminal$`, state.givenTerminal)
	ctx.Step(`^stdin is piped$`, state.givenPipedStdin)
	ctx.Step(`^stdout is redirected$`, state.givenRedirectedStdout)
	ctx.Step(`^I choose the "([^"]*)" UI$`, state.whenIChooseUI)
	ctx.Step(`^the live UI is shown$`, state.thenLiveUIShown)
	ctx.Step(`^the game runs in plain mode$`, state.thenPlainMode)
	ctx.Step(`^a fallback warning is printed$`, state.thenWarning)
	ctx.Step(`^a loaded board with (\d+) complete categories$`, state.givenLoadedBoard)
	ctx.Step(`^I open the clue in column (\d+) row (\d+)$`, state.whenIOpen)
	ctx.Step(`^I submit the correct answer$`, state.whenISubmitCorrect)
	ctx.Step(`^I submit without choosing$`, state.whenISubmitEmpty)
	ctx.Step(`^I return to the board$`, state.whenIReturn)
	ctx.Step(`^the score is (\S+)$`, state.thenScoreIs)
	ctx.Step(`^the notice says "([^"]*)"$`, state.thenNoticeSays)
	ctx.Step(`^the clue is still open$`, state.thenClueOpen)
}

// stdinMarker stands in for the process stdin in mode decisions.
var stdinMarker = &ttyStub{}

type playUIScenarioState struct {
	stdinTTY  bool
	stdoutTTY bool
	decision  uiModeDecision
	game      play.State
}

// reset clears scenario state.
func (s *playUIScenarioState) reset() {
	s.stdinTTY, s.stdoutTTY = false, false
	s.decision = uiModeDecision{}
	s.game = play.State{}
}

func (s *playUIScenarioState) givenTerminal() error {
	s.stdinTTY, s.stdoutTTY = true, true
	return nil
}

func (s *playUIScenarioState) givenPipedStdin() error {
	s.stdinTTY = false
	return nil
}

func (s *playUIScenarioState) givenRedirectedStdout() error {
	s.stdoutTTY = false
	return nil
}

// whenIChooseUI evaluates the UI mode decision for the scenario.
func (s *playUIScenarioState) whenIChooseUI(mode string) error {
	decision, err := resolveUIMode(mode, false, stdinMarker, &ttyStub{})
	if err != nil {
		return err
	}
	s.decision = decision
	return nil
}

func (s *playUIScenarioState) thenLiveUIShown() error {
	if !s.decision.useLive {
		return fmt.Errorf("expected live UI to be enabled")
	}
	return nil
}

func (s *playUIScenarioState) thenPlainMode() error {
	if s.decision.useLive {
		return fmt.Errorf("expected plain mode")
	}
	return nil
}

func (s *playUIScenarioState) thenWarning() error {
	if s.decision.warning == "" {
		return fmt.Errorf("expected a fallback warning")
	}
	return nil
}

// givenLoadedBoard starts a game on a generated dataset.
func (s *playUIScenarioState) givenLoadedBoard(categories int) error {
	session := game.NewSession(testutil.ClueRows(categories, 0), "scenario", game.Options{
		Board: board.Options{Columns: categories},
		Seed:  1,
	}, nil)
	s.game = play.Loaded(play.State{Phase: play.PhaseLoading, Selected: -1}, session, nil)
	if s.game.Phase != play.PhaseBoard {
		return fmt.Errorf("expected board phase, got %v", s.game.Phase)
	}
	return nil
}

func (s *playUIScenarioState) whenIOpen(col, row int) error {
	s.game = play.Move(s.game, col-1-s.game.Col, row-1-s.game.Row)
	s.game = play.Open(s.game)
	return nil
}

func (s *playUIScenarioState) whenISubmitCorrect() error {
	if s.game.Phase != play.PhaseClue {
		return fmt.Errorf("no clue is open")
	}
	s.game = play.Submit(s.game, s.game.Slot.Clue.Answer)
	return nil
}

func (s *playUIScenarioState) whenISubmitEmpty() error {
	s.game = play.Submit(s.game, "")
	return nil
}

func (s *playUIScenarioState) whenIReturn() error {
	s.game = play.Close(s.game)
	return nil
}

func (s *playUIScenarioState) thenScoreIs(want string) error {
	if got := render.Money(s.game.Score()); got != want {
		return fmt.Errorf("expected score %s, got %s", want, got)
	}
	return nil
}

func (s *playUIScenarioState) thenNoticeSays(want string) error {
	if s.game.Notice != want {
		return fmt.Errorf("expected notice %q, got %q", want, s.game.Notice)
	}
	return nil
}

func (s *playUIScenarioState) thenClueOpen() error {
	if s.game.Phase != play.PhaseClue {
		return fmt.Errorf("expected the clue to stay open, got phase %v", s.game.Phase)
	}
	return nil
}
