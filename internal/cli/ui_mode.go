package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a reader or writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether play runs the full-screen UI. The live UI
// needs a terminal on both ends; verbose logging to stderr forces plain mode.
func resolveUIMode(mode string, verbose bool, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "live", "plain":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if normalized == "plain" {
		return uiModeDecision{}, nil
	}
	if verbose {
		if normalized == "live" {
			return uiModeDecision{warning: "Live UI is disabled with --verbose; using plain mode."}, nil
		}
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdin) && isTerminal(stdout)
	if normalized == "live" && !tty {
		return uiModeDecision{
			warning: "Live UI requested but the terminal is not interactive; falling back to plain mode.",
		}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
