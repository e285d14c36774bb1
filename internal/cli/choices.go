package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"clueboard/internal/board"
	"clueboard/internal/clue"
	"clueboard/internal/game"
	"clueboard/internal/render"
)

// runChoices builds the handler for the choices command.
func runChoices(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var common commonFlags
		common.register(flags)
		category := flags.String("category", "", "Clue category")
		rawValue := flags.String("value", "", "Clue value, e.g. 400 or $1,000")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		common.markSet(flags)

		name := strings.TrimSpace(*category)
		if name == "" || strings.TrimSpace(*rawValue) == "" {
			fmt.Fprintln(stderr, "--category and --value are required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		value := clue.ParseValue(*rawValue)
		if value == nil {
			fmt.Fprintf(stderr, "invalid value %q\n", *rawValue)
			return ExitUsage
		}

		env, err := resolveEnvironment(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		defer env.log.Sync()

		session, err := env.loadSession(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Could not load the dataset: %v\n", err)
			return ExitError
		}
		slot, ok := findClue(session, name, *value)
		if !ok {
			fmt.Fprintf(stderr, "No clue in %q worth %s\n", name, render.Money(*value))
			return ExitError
		}
		result, err := session.Choices(slot)
		if err != nil {
			fmt.Fprintf(stderr, "Could not build choices: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "%s for %s\n", slot.Clue.Category, render.Money(slot.Value))
		fmt.Fprintln(stdout, slot.Clue.Question)
		for i, option := range result.Options {
			fmt.Fprintf(stdout, "  %d. %s\n", i+1, option)
		}
		if result.Fallback {
			fmt.Fprintln(stdout, "(some options come from other categories)")
		}
		return ExitOK
	}
}

// findClue prefers the clue on a fresh board and falls back to the first
// repository clue with the same category and value.
func findClue(session *game.Session, category string, value int) (board.Slot, bool) {
	if g, err := session.NewGame(); err == nil {
		for _, column := range g.Board.Categories {
			if !strings.EqualFold(column.Name, category) {
				continue
			}
			for _, slot := range column.Slots {
				if slot.Value == value && !slot.Empty() {
					return slot, true
				}
			}
		}
	}
	for _, record := range session.Repository().Records() {
		if strings.EqualFold(record.Category, category) && record.Points() == value {
			rec := record
			return board.Slot{ID: board.SlotID(rec.Category, value), Value: value, Clue: &rec}, true
		}
	}
	return board.Slot{}, false
}
