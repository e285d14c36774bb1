//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"

	"clueboard/internal/config"
	"clueboard/internal/testutil"
)

// aProjectWithCategories writes a config and generated dataset into a temp
// project and changes into it.
func (s *featureState) aProjectWithCategories(complete, partial int) error {
	dir, err := os.MkdirTemp("", "clueboard-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	if err := os.WriteFile(filepath.Join(dir, config.DefaultDatasetFile), []byte(testutil.ClueCSV(complete, partial)), 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// theConfigIsInvalid replaces the config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	return s.writeConfig(invalidConfigYAML())
}

// theDatasetFileIsMissing removes the project dataset.
func (s *featureState) theDatasetFileIsMissing() error {
	if s.projectDir == "" {
		return fmt.Errorf("project is not set up")
	}
	return os.Remove(filepath.Join(s.projectDir, config.DefaultDatasetFile))
}

// writeConfig persists configuration content to the project config path.
func (s *featureState) writeConfig(contents string) error {
	if s.projectDir == "" {
		return fmt.Errorf("project is not set up")
	}
	path := config.ConfigPath(s.projectDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1
dataset:
  file: "clues.csv"
board:
  round: "Jeopardy!"
  categories: 6
  ladder: [200, 400, 600, 800, 1000]
game:
  seed: 11
`
}

func invalidConfigYAML() string {
	return `version: 2
dataset:
  file: "clues.csv"
`
}
