package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
dataset:
  base: "."
  file: "clues.csv"
board:
  round: "Jeopardy!"
  categories: 6
  ladder: [200, 400, 600, 800, 1000]
choices:
  scan_limit: 0
game:
  seed: 0
log:
  mode: development
  file: ".clueboard/clueboard.log"
`

// sampleClues is a small dataset with enough complete categories for one board.
//
//go:embed sample_clues.csv
var sampleClues string

// SampleDataset returns the bundled sample clue dataset.
func SampleDataset() string {
	return sampleClues
}

// ScaffoldResult lists the files written by Scaffold.
type ScaffoldResult struct {
	ConfigPath  string
	DatasetPath string
}

// Scaffold writes a default config at configPath and, when withSample is set,
// the sample dataset next to the project root.
func Scaffold(configPath string, withSample bool) (ScaffoldResult, error) {
	if configPath == "" {
		return ScaffoldResult{}, fmt.Errorf("config path is required")
	}
	if err := ensureAbsent(configPath, "config"); err != nil {
		return ScaffoldResult{}, err
	}
	result := ScaffoldResult{ConfigPath: configPath}
	if withSample {
		result.DatasetPath = filepath.Join(RootFromConfigPath(configPath), DefaultDatasetFile)
		if err := ensureAbsent(result.DatasetPath, "dataset"); err != nil {
			return ScaffoldResult{}, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write config file: %w", err)
	}
	if withSample {
		if err := os.WriteFile(result.DatasetPath, []byte(sampleClues), 0o644); err != nil {
			return ScaffoldResult{}, fmt.Errorf("write dataset file: %w", err)
		}
	}
	return result, nil
}

func ensureAbsent(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", label, path)
		}
		return fmt.Errorf("%s file already exists at %q", label, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", label, err)
	}
	return nil
}
