package cli

import (
	"bytes"
	"strings"
	"testing"

	"clueboard/internal/testutil"
)

const projectConfig = `version: 1
dataset:
  file: clues.csv
board:
  categories: 3
game:
  seed: 7
`

// setupProject writes a config plus dataset into a temp dir and changes into it.
func setupProject(t *testing.T, dataset string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "clues.csv", dataset)
	testutil.WriteFile(t, dir, ".clueboard/config.yml", projectConfig)
	t.Chdir(dir)
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func withPlayInput(t *testing.T, input string) {
	t.Helper()
	original := playInput
	playInput = strings.NewReader(input)
	t.Cleanup(func() { playInput = original })
}

func withInitInput(t *testing.T, input string) {
	t.Helper()
	original := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = original })
}
