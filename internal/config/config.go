// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake/internal/core"
)

// Config contains all configuration for a snake session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Style   StyleConfig   `yaml:"style"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines how the board is derived from the terminal.
type BoardConfig struct {
	InitialLength int `yaml:"initial_length"`
	LinesRatio    int `yaml:"lines_ratio"` // Terminal rows per cell
	ColsRatio     int `yaml:"cols_ratio"`  // Terminal columns per cell
}

// PacingConfig defines the score-dependent tick delay.
type PacingConfig struct {
	BaseDelayMS int `yaml:"base_delay_ms"`
	SpeedupStep int `yaml:"speedup_step"`
}

// StyleConfig defines colors by name and the glyph used for a cell.
type StyleConfig struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
	Text  string `yaml:"text"`
	Cell  string `yaml:"cell"`
}

// StorageConfig defines where persistent data lives.
type StorageConfig struct {
	HiscoreFile string `yaml:"hiscore_file"`
	HistoryDB   string `yaml:"history_db"`
}

// Delay returns the pause between ticks for the given score:
// base / (1 + score/step). The delay only shrinks as the score grows.
func (p PacingConfig) Delay(score int) time.Duration {
	base := time.Duration(p.BaseDelayMS) * time.Millisecond
	if p.SpeedupStep <= 0 || score <= 0 {
		return base
	}
	factor := 1 + float64(score)/float64(p.SpeedupStep)
	return time.Duration(float64(base) / factor)
}

// Color resolves a style color name; unknown names fall back to the default color.
func (s StyleConfig) Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}

// Validate reports configuration values the game cannot run with.
// The initial length is deliberately not checked.
func (c Config) Validate() error {
	if c.Board.LinesRatio <= 0 {
		return fmt.Errorf("config: board.lines_ratio must be positive, got %d", c.Board.LinesRatio)
	}
	if c.Board.ColsRatio <= 0 {
		return fmt.Errorf("config: board.cols_ratio must be positive, got %d", c.Board.ColsRatio)
	}
	if c.Pacing.BaseDelayMS <= 0 {
		return fmt.Errorf("config: pacing.base_delay_ms must be positive, got %d", c.Pacing.BaseDelayMS)
	}
	for field, name := range map[string]string{
		"style.snake": c.Style.Snake,
		"style.food":  c.Style.Food,
		"style.text":  c.Style.Text,
	} {
		if name == "" {
			continue
		}
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: %s: unknown color %q", field, name)
		}
	}
	return nil
}
