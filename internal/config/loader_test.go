package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := BreakoutConfig{}
	if err := Decode(defaultBreakoutYAML, FormatYAML, &cfg); err != nil {
		t.Fatalf("Decode() embedded defaults failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakoutConfig():\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultBlockLayout(t *testing.T) {
	b := DefaultBreakoutConfig().Blocks
	if b.Count() != 30 {
		t.Errorf("Count() = %d, expected 30", b.Count())
	}
	if b.CellWidth() != 110 || b.CellHeight() != 50 {
		t.Errorf("cell = %vx%v, expected 110x50", b.CellWidth(), b.CellHeight())
	}
	if b.BoardWidth() != 660 {
		t.Errorf("BoardWidth() = %v, expected 660", b.BoardWidth())
	}
}

func TestLoadBreakoutSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded defaults.
	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "breakout.yaml"), []byte("ball:\n  speed: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Speed != 250 {
		t.Errorf("local config ignored, ball speed = %v", cfg.Ball.Speed)
	}

	// User config directory wins over the local one.
	userDir := filepath.Join(home, ".breakout", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "breakout.toml"), []byte("[ball]\nspeed = 300.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Speed != 300 {
		t.Errorf("user config ignored, ball speed = %v", cfg.Ball.Speed)
	}
	if cfg.Paddle.Speed != 400 {
		t.Errorf("unset keys should keep defaults, paddle speed = %v", cfg.Paddle.Speed)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "custom.yaml",
			body: "blocks:\n  columns: 4\n  rows: 3\n",
		},
		{
			name: "toml",
			file: "custom.toml",
			body: "[blocks]\ncolumns = 4\nrows = 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadBreakout(path)
			if err != nil {
				t.Fatalf("LoadBreakout() failed: %v", err)
			}
			if cfg.Blocks.Columns != 4 || cfg.Blocks.Rows != 3 {
				t.Errorf("grid = %dx%d, expected 4x3", cfg.Blocks.Columns, cfg.Blocks.Rows)
			}
			if cfg.Blocks.Width != 100 {
				t.Errorf("unset block width should stay 100, got %v", cfg.Blocks.Width)
			}
		})
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	err := ApplyEnvFrom(&cfg, map[string]string{
		"BREAKOUT_BALL_SPEED":     "320",
		"BREAKOUT_PADDLE_LIVES":   "7",
		"BREAKOUT_BLOCKS_COLUMNS": "5",
		"BALL_SPEED":              "999", // missing prefix, ignored
	})
	if err != nil {
		t.Fatalf("ApplyEnvFrom() failed: %v", err)
	}

	if cfg.Ball.Speed != 320 {
		t.Errorf("ball speed = %v, expected 320", cfg.Ball.Speed)
	}
	if cfg.Paddle.Lives != 7 {
		t.Errorf("paddle lives = %d, expected 7", cfg.Paddle.Lives)
	}
	if cfg.Blocks.Columns != 5 {
		t.Errorf("columns = %d, expected 5", cfg.Blocks.Columns)
	}
	if cfg.Paddle.Speed != 400 {
		t.Errorf("unset variables should not change values, paddle speed = %v", cfg.Paddle.Speed)
	}

	if err := ApplyEnvFrom(&cfg, map[string]string{"BREAKOUT_BALL_SPEED": "fast"}); err == nil {
		t.Error("unparsable override should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{name: "zero ball speed", mutate: func(c *BreakoutConfig) { c.Ball.Speed = 0 }, field: "ball.speed"},
		{name: "bad direction", mutate: func(c *BreakoutConfig) { c.Ball.DirX = 0.5 }, field: "ball.dir_x"},
		{name: "no lives", mutate: func(c *BreakoutConfig) { c.Paddle.Lives = 0 }, field: "paddle.lives"},
		{name: "empty grid", mutate: func(c *BreakoutConfig) { c.Blocks.Rows = 0 }, field: "grid"},
		{name: "grid too wide", mutate: func(c *BreakoutConfig) { c.Blocks.Columns = 8 }, field: "grid is"},
		{name: "negative delta", mutate: func(c *BreakoutConfig) { c.Timing.MaxFrameDelta = -1 }, field: "max_frame_delta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %q", err, tt.field)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	p, err := ParsePreset("easy")
	if err != nil {
		t.Fatalf("ParsePreset() failed: %v", err)
	}
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, p)
	if cfg.Paddle.Lives != 5 || cfg.Paddle.Width != 160 {
		t.Errorf("easy preset not applied: %+v", cfg.Paddle)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyNormal)
	if cfg != DefaultBreakoutConfig() {
		t.Error("normal preset should keep defaults")
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}
}

func TestPresetsCenterPaddle(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		wantX  float64
	}{
		{DifficultyNone, 340},
		{DifficultyNormal, 340},
		{DifficultyEasy, 320},
		{DifficultyHard, 355},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tt.preset)
			if cfg.Paddle.X != tt.wantX {
				t.Errorf("paddle X = %v, expected %v", cfg.Paddle.X, tt.wantX)
			}
			if center := cfg.Paddle.X + cfg.Paddle.Width/2; center != cfg.Screen.Width/2 {
				t.Errorf("paddle center = %v, expected %v", center, cfg.Screen.Width/2)
			}
		})
	}
}

func TestLoadAppliesPresetAndValidates(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("BREAKOUT_PADDLE_LIVES", "4")

	cfg, err := Load("", "hard")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Environment overrides win over presets.
	if cfg.Paddle.Lives != 4 {
		t.Errorf("lives = %d, expected env override 4", cfg.Paddle.Lives)
	}
	if cfg.Ball.Speed != 260 {
		t.Errorf("hard preset ball speed = %v, expected 260", cfg.Ball.Speed)
	}

	t.Setenv("BREAKOUT_BALL_SPEED", "-5")
	if _, err := Load("", ""); err == nil {
		t.Error("Load() should reject invalid overrides")
	}
}
