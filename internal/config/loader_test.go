package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snake/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  initial_length: 4\npacing:\n  base_delay_ms: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.InitialLength != 4 {
		t.Errorf("InitialLength = %d, expected 4", cfg.Board.InitialLength)
	}
	if cfg.Pacing.BaseDelayMS != 100 {
		t.Errorf("BaseDelayMS = %d, expected 100", cfg.Pacing.BaseDelayMS)
	}
	// Unset fields keep their defaults
	if cfg.Board.ColsRatio != 2 || cfg.Pacing.SpeedupStep != 5 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  cols_ratio: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("zero cols_ratio should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero length allowed", func(c *Config) { c.Board.InitialLength = 0 }, false},
		{"zero lines ratio", func(c *Config) { c.Board.LinesRatio = 0 }, true},
		{"negative delay", func(c *Config) { c.Pacing.BaseDelayMS = -1 }, true},
		{"unknown color", func(c *Config) { c.Style.Food = "plaid" }, true},
		{"empty color", func(c *Config) { c.Style.Text = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestPacingDelay(t *testing.T) {
	p := PacingConfig{BaseDelayMS: 250, SpeedupStep: 5}

	tests := []struct {
		score    int
		expected time.Duration
	}{
		{0, 250 * time.Millisecond},
		{5, 125 * time.Millisecond},
		{15, 62500 * time.Microsecond},
		{-3, 250 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := p.Delay(tc.score); got != tc.expected {
			t.Errorf("Delay(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	// Monotonically non-increasing
	prev := p.Delay(0)
	for score := 1; score < 100; score++ {
		d := p.Delay(score)
		if d > prev {
			t.Fatalf("Delay(%d) = %v grew from %v", score, d, prev)
		}
		prev = d
	}

	flat := PacingConfig{BaseDelayMS: 100}
	if flat.Delay(50) != 100*time.Millisecond {
		t.Error("zero speedup step should keep the base delay")
	}
}

func TestStyleColor(t *testing.T) {
	s := Default().Style
	if s.Color(s.Snake) != core.ColorGreen {
		t.Errorf("snake color = %v, expected green", s.Color(s.Snake))
	}
	if s.Color("nonsense") != core.ColorDefault {
		t.Error("unknown color should fall back to default")
	}
}
