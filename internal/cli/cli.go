package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  clueboard <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"clueboard <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .clueboard/config.yml and a sample dataset", []string{
		"clueboard init [--config <path>] [--no-sample]",
	}, runInit),
	command("validate", "Check the config and report dataset statistics", []string{
		"clueboard validate [--config <path>] [--dataset <location>] [--round <name>]",
	}, runValidate),
	command("board", "Build a board and print it", []string{
		"clueboard board [--config <path>] [--dataset <location>] [--seed <n>] [--round <name>] [--format text|json|html] [--answers]",
	}, runBoard),
	command("choices", "Print the answer options for one clue", []string{
		"clueboard choices --category <name> --value <n> [--config <path>] [--dataset <location>] [--seed <n>]",
	}, runChoices),
	command("play", "Play a game in the terminal", []string{
		"clueboard play [--config <path>] [--dataset <location>] [--seed <n>] [--ui auto|live|plain]",
	}, runPlay),
	command("import", "Store a dataset in a DuckDB file", []string{
		"clueboard import --db <file.duckdb> [--name <name>] [--format csv|json] [--list] <dataset>",
	}, runImport),
}
