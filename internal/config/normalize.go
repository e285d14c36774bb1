package config

import (
	"strings"

	"clueboard/internal/board"
)

// Defaults used when the config leaves a field unset.
const (
	DefaultDatasetBase = "."
	DefaultDatasetFile = "clues.csv"
	DefaultRound       = board.DefaultRound
	DefaultLogMode     = "development"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims string fields and fills defaults in place.
func Normalize(cfg *Config) {
	cfg.Dataset.Base = strings.TrimSpace(cfg.Dataset.Base)
	cfg.Dataset.File = strings.TrimSpace(cfg.Dataset.File)
	cfg.Dataset.Path = strings.TrimSpace(cfg.Dataset.Path)
	cfg.Dataset.Format = strings.ToLower(strings.TrimSpace(cfg.Dataset.Format))
	cfg.Dataset.Name = strings.TrimSpace(cfg.Dataset.Name)
	if cfg.Dataset.Base == "" {
		cfg.Dataset.Base = DefaultDatasetBase
	}
	if cfg.Dataset.File == "" {
		cfg.Dataset.File = DefaultDatasetFile
	}

	if strings.TrimSpace(cfg.Board.Round) == "" {
		cfg.Board.Round = DefaultRound
	}
	if cfg.Board.Categories == 0 {
		cfg.Board.Categories = board.DefaultColumns
	}
	if len(cfg.Board.Ladder) == 0 {
		cfg.Board.Ladder = append([]int(nil), board.DefaultLadder...)
	}

	cfg.Log.Mode = strings.ToLower(strings.TrimSpace(cfg.Log.Mode))
	if cfg.Log.Mode == "" {
		cfg.Log.Mode = DefaultLogMode
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}
