package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clueboard/internal/dataset"
)

// Loaded is a validated config plus the directory relative paths resolve against.
type Loaded struct {
	Config Config
	// Path is empty when built-in defaults are in use.
	Path    string
	BaseDir string
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. When the search finds nothing the defaults
// are returned with the working directory as base.
func Resolve(path string) (Loaded, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Loaded{}, fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Path: abs, BaseDir: RootFromConfigPath(abs)}, nil
	}

	found, err := FindConfigPath("")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return Loaded{}, err
		}
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return Loaded{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		return Loaded{Config: Default(), BaseDir: wd}, nil
	}
	cfg, err := Load(found)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Config: cfg, Path: found, BaseDir: RootFromConfigPath(found)}, nil
}

// Location joins the dataset base and file name, resolving relative paths
// against baseDir. A path overrides both.
func (d DatasetConfig) Location(baseDir string) string {
	if d.Path != "" {
		if dataset.IsURL(d.Path) || filepath.IsAbs(d.Path) {
			return d.Path
		}
		return filepath.Join(baseDir, d.Path)
	}
	base := d.Base
	if !dataset.IsURL(base) && !filepath.IsAbs(base) {
		base = filepath.Join(baseDir, base)
	}
	return dataset.Locate(base, d.File)
}

// DatasetSpec returns the dataset selection for baseDir.
func (d DatasetConfig) DatasetSpec(baseDir string) dataset.Spec {
	return dataset.Spec{Location: d.Location(baseDir), Format: d.Format, Name: d.Name}
}
