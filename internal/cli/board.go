package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"clueboard/internal/render"
)

// runBoard builds the handler for the board command.
func runBoard(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var common commonFlags
		common.register(flags)
		format := flags.String("format", "text", "Output format: text|json|html")
		answers := flags.Bool("answers", false, "Include answers in the output")
		noColor := flags.Bool("no-color", false, "Disable colors in text output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		common.markSet(flags)

		outFormat := strings.ToLower(strings.TrimSpace(*format))
		switch outFormat {
		case "text", "json", "html":
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected text|json|html)\n", *format)
			return ExitUsage
		}

		env, err := resolveEnvironment(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		defer env.log.Sync()

		ctx := context.Background()
		session, err := env.loadSession(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Could not load the dataset: %v\n", err)
			return ExitError
		}
		g, err := session.NewGame()
		if err != nil {
			fmt.Fprintf(stderr, "Could not build a board: %v\n", err)
			return ExitError
		}
		if g.Warning != "" {
			fmt.Fprintf(stderr, "Warning: %s\n", g.Warning)
		}

		doc := render.Document{
			Title:       "clueboard",
			GameID:      g.ID,
			Board:       g.Board,
			Warning:     g.Warning,
			ShowAnswers: *answers,
		}
		switch outFormat {
		case "json":
			err = render.JSON(stdout, doc)
		case "html":
			err = render.HTML(ctx, stdout, doc)
		default:
			_, err = fmt.Fprintln(stdout, render.Text(doc, *noColor || !isTerminal(stdout)))
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write board: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
