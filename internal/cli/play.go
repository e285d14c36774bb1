package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"clueboard/internal/ui/console"
	"clueboard/internal/ui/play"
)

// playInput feeds the plain game loop.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var common commonFlags
		common.register(flags)
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		common.markSet(flags)

		decision, err := resolveUIMode(*uiMode, common.verbose, playInput, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		env, err := resolveEnvironment(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		defer env.log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var final play.State
		if decision.useLive {
			final, err = play.Run(ctx, play.RunOptions{
				Load:    env.loadSession,
				Title:   "clueboard",
				NoColor: *noColor,
				Input:   playInput,
				Output:  stdout,
			})
		} else {
			session, loadErr := env.loadSession(ctx)
			if loadErr != nil {
				fmt.Fprintf(stderr, "Could not load the dataset: %v\n", loadErr)
				return ExitError
			}
			final, err = console.Run(ctx, session, console.Options{
				In:      playInput,
				Out:     stdout,
				Title:   "clueboard",
				NoColor: *noColor || !isTerminal(stdout),
			})
		}
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(stderr, "play failed: %v\n", err)
			return ExitError
		}
		if final.Tracker != nil {
			answered, correct := final.Tracker.Counts()
			env.log.Info("play finished", "answered", answered, "correct", correct, "score", final.Score())
		}
		return ExitOK
	}
}
