package config

import (
	"fmt"
	"strings"

	"clueboard/internal/dataset"
)

// Validate checks a normalized config and reports every issue found.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateDataset(cfg.Dataset, collector.add)
	validateBoard(cfg.Board, collector.add)

	if cfg.Choices.ScanLimit < 0 {
		collector.add("choices.scan_limit", "must be >= 0")
	}
	switch cfg.Log.Mode {
	case "development", "dev", "production", "prod":
	default:
		collector.add("log.mode", fmt.Sprintf("unsupported mode %q (expected development|production)", cfg.Log.Mode))
	}

	return collector.result()
}

func validateDataset(cfg DatasetConfig, add issueAdder) {
	if cfg.Format != "" {
		if _, err := dataset.ResolveFormat(cfg.Format, ""); err != nil {
			add("dataset.format", fmt.Sprintf("unsupported format %q (expected csv|json|duckdb)", cfg.Format))
		}
	}
	if cfg.Path == "" && strings.ContainsAny(cfg.File, `/\`) {
		add("dataset.file", "must be a file name; use dataset.base for directories")
	}
	if cfg.Name != "" && cfg.Format != "" && cfg.Format != string(dataset.FormatDuckDB) {
		add("dataset.name", "is only used with format duckdb")
	}
}

func validateBoard(cfg BoardConfig, add issueAdder) {
	if strings.TrimSpace(cfg.Round) == "" {
		add("board.round", "is required")
	}
	if cfg.Categories < 1 {
		add("board.categories", "must be >= 1")
	}
	if len(cfg.Ladder) == 0 {
		add("board.ladder", "must include at least one value")
	}
	for i, value := range cfg.Ladder {
		if value <= 0 {
			add(fmt.Sprintf("board.ladder[%d]", i), "must be > 0")
		}
		if i > 0 && value <= cfg.Ladder[i-1] {
			add(fmt.Sprintf("board.ladder[%d]", i), "must be greater than the previous value")
		}
	}
}
