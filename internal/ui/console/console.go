// Package console is the line-oriented game loop used when the terminal UI
// is unavailable or not wanted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clueboard/internal/board"
	"clueboard/internal/clue"
	"clueboard/internal/game"
	"clueboard/internal/render"
	"clueboard/internal/ui/play"
)

// Options configures Run.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Title   string
	NoColor bool
}

const helpText = `Commands:
  <column> <value>   open a clue, e.g. "2 600" or "science $1,000"
  <number>           pick an option of the open clue
  <text>             type an answer for the open clue
  skip               close the open clue without answering
  board              show the board
  new                start a new game
  score              show the score
  quit               leave the game`

// Run plays games on session until the input ends or the player quits.
// It returns the final state.
func Run(ctx context.Context, session *game.Session, opts Options) (play.State, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	if !session.Loaded() {
		return play.State{}, game.ErrNotLoaded
	}
	reader := bufio.NewReader(opts.In)
	state := play.Loaded(play.State{Phase: play.PhaseLoading, Selected: -1}, session, nil)
	printBoard(out, state, opts)
	printNotice(out, state)

	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		if state.Phase == play.PhaseClue {
			fmt.Fprint(out, "answer> ")
		} else {
			fmt.Fprint(out, "> ")
		}
		line, err := readLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return state, err
		}
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			fmt.Fprintln(out)
			return state, nil
		}
		var quit bool
		state, quit = handle(out, state, strings.TrimSpace(line), opts)
		if quit || errors.Is(err, io.EOF) {
			return state, nil
		}
	}
}

func handle(out io.Writer, state play.State, line string, opts Options) (play.State, bool) {
	switch strings.ToLower(line) {
	case "quit", "q", "exit":
		printScore(out, state)
		return state, true
	case "help", "?":
		fmt.Fprintln(out, helpText)
		return state, false
	case "score":
		printScore(out, state)
		return state, false
	case "board":
		printBoard(out, state, opts)
		return state, false
	case "new":
		state = play.NewGame(state)
		printBoard(out, state, opts)
		printNotice(out, state)
		return state, false
	}

	if state.Phase == play.PhaseClue {
		return answer(out, state, line, opts), false
	}
	if line == "" {
		return state, false
	}
	col, row, err := parsePick(state.Game.Board, line)
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return state, false
	}
	state.Col, state.Row = col, row
	state = play.Open(state)
	if state.Phase != play.PhaseClue {
		printNotice(out, state)
		return state, false
	}
	printClue(out, state)
	return state, false
}

func answer(out io.Writer, state play.State, line string, opts Options) play.State {
	switch strings.ToLower(line) {
	case "skip", "back":
		state = play.Close(state)
		printBoard(out, state, opts)
		return state
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(state.Options) {
		state = play.Select(state, n-1)
		state = play.Submit(state, "")
	} else {
		state = play.Submit(state, line)
	}
	if state.Phase != play.PhaseResult {
		printNotice(out, state)
		return state
	}
	printResult(out, state.Outcome)
	state = play.Close(state)
	printBoard(out, state, opts)
	printNotice(out, state)
	return state
}

// parsePick reads "<column> <value>" where column is a 1-based number or a
// category name, and value is a board value such as 600 or $1,000.
func parsePick(b board.Board, line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, errors.New(`enter a column and a value, e.g. "1 200" (type help for commands)`)
	}
	value := clue.ParseValue(fields[len(fields)-1])
	if value == nil {
		return 0, 0, fmt.Errorf("unknown value %q", fields[len(fields)-1])
	}
	col, err := findColumn(b, strings.Join(fields[:len(fields)-1], " "))
	if err != nil {
		return 0, 0, err
	}
	for row, slot := range b.Categories[col].Slots {
		if slot.Value == *value {
			return col, row, nil
		}
	}
	return 0, 0, fmt.Errorf("no %s clue in %s", render.Money(*value), b.Categories[col].Name)
}

func findColumn(b board.Board, column string) (int, error) {
	if n, err := strconv.Atoi(column); err == nil {
		if n < 1 || n > len(b.Categories) {
			return 0, fmt.Errorf("column %d is not on the board", n)
		}
		return n - 1, nil
	}
	match := -1
	for i, category := range b.Categories {
		name := strings.ToLower(category.Name)
		want := strings.ToLower(column)
		if name == want {
			return i, nil
		}
		if strings.HasPrefix(name, want) {
			if match >= 0 {
				return 0, fmt.Errorf("column %q is ambiguous", column)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("no category %q on the board", column)
	}
	return match, nil
}

func printBoard(out io.Writer, state play.State, opts Options) {
	if state.Game == nil {
		return
	}
	fmt.Fprint(out, render.Text(render.Document{
		Title:    opts.Title,
		Board:    state.Game.Board,
		Answered: state.Answered,
		Score:    state.Score(),
	}, opts.NoColor))
}

func printClue(out io.Writer, state play.State) {
	slot := state.Slot
	fmt.Fprintf(out, "\n%s for %s\n%s\n\n", slot.Clue.Category, render.Money(slot.Value), slot.Clue.Question)
	for i, option := range state.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, option)
	}
	fmt.Fprintln(out, "Pick a number, type an answer, or skip.")
}

func printResult(out io.Writer, outcome game.Outcome) {
	if outcome.Correct {
		fmt.Fprintf(out, "Correct! +%s\n", render.Money(outcome.Delta))
		return
	}
	fmt.Fprintf(out, "Incorrect. %s\n", render.Money(outcome.Delta))
	if outcome.NearMiss {
		fmt.Fprintln(out, "So close! Check the spelling.")
	}
	fmt.Fprintf(out, "The answer was: %s\n", outcome.Expected)
}

func printScore(out io.Writer, state play.State) {
	if state.Tracker == nil {
		return
	}
	answered, correct := state.Tracker.Counts()
	fmt.Fprintf(out, "Score: %s (%d of %d correct)\n", render.Money(state.Score()), correct, answered)
}

func printNotice(out io.Writer, state play.State) {
	if state.Notice != "" {
		fmt.Fprintln(out, state.Notice)
	}
}

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
