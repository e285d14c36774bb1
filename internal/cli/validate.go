package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var common commonFlags
		common.register(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		common.markSet(flags)

		env, err := resolveEnvironment(common, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		defer env.log.Sync()
		if env.loaded.Path == "" {
			fmt.Fprintln(stdout, "Config: built-in defaults (no .clueboard/config.yml found)")
		} else {
			fmt.Fprintf(stdout, "Config OK: %s\n", env.loaded.Path)
		}

		session, err := env.loadSession(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		stats := session.Stats()
		fmt.Fprintf(stdout, "Dataset: %s\n", session.Source)
		fmt.Fprintf(stdout, "Rows: %d\n", stats.Rows)
		fmt.Fprintf(stdout, "Repository clues: %d\n", stats.Repository)
		fmt.Fprintf(stdout, "Board-eligible clues (%s): %d\n", env.options.Round, stats.Eligible)
		fmt.Fprintf(stdout, "Eligible categories: %d\n", stats.EligibleCategories)
		if want := session.Columns(); stats.EligibleCategories < want {
			fmt.Fprintf(stderr, "Warning: %d of %d categories cover every board value; boards will be short.\n",
				stats.EligibleCategories, want)
		}
		return ExitOK
	}
}
