package config

// Config is the game configuration loaded from .clueboard/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	Dataset DatasetConfig `yaml:"dataset"`
	Board   BoardConfig   `yaml:"board"`
	Choices ChoicesConfig `yaml:"choices"`
	Game    GameConfig    `yaml:"game"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the clue dataset. Path, when set, replaces Base+File.
type DatasetConfig struct {
	Base   string `yaml:"base"`
	File   string `yaml:"file"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Name   string `yaml:"name"`
}

type BoardConfig struct {
	Round      string `yaml:"round"`
	Categories int    `yaml:"categories"`
	Ladder     []int  `yaml:"ladder"`
}

type ChoicesConfig struct {
	ScanLimit int `yaml:"scan_limit"`
}

type GameConfig struct {
	Seed int64 `yaml:"seed"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	File string `yaml:"file"`
}
