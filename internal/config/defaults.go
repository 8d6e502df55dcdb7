package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			InitialLength: 15,
			LinesRatio:    1,
			ColsRatio:     2,
		},
		Pacing: PacingConfig{
			BaseDelayMS: 250,
			SpeedupStep: 5,
		},
		Style: StyleConfig{
			Snake: "green",
			Food:  "red",
			Text:  "default",
			Cell:  "██",
		},
		Storage: StorageConfig{
			HiscoreFile: "snake/snake.dat",
			HistoryDB:   "snake/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
