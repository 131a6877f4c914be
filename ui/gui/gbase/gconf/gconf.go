package gconf

import (
	"encoding/json"
	"fmt"
	"os"
	"politicalchess/src/stats"
	"time"
)

const DefaultFile = "politicalchess.json"

type Config struct {
	Theme           string `json:"theme"`             // light/dark
	WindowW         int    `json:"window_w"`          //
	WindowH         int    `json:"window_h"`          //
	SquareSize      int    `json:"square_size"`       // pixels per board square
	ClockMinutes    int    `json:"clock_minutes"`     // per side
	OpponentDelayMs int    `json:"opponent_delay_ms"` // pause before the computer moves
	EndTimeoutSec   int    `json:"end_timeout_sec"`   // 0 waits on the end screen forever
	SpritePath      string `json:"sprite_path"`       // 6x2 piece atlas
	FontPath        string `json:"font_path"`         // empty for the built-in font
	StatsPath       string `json:"stats_path"`        //
	Debug           bool   `json:"debug"`             // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:           "dark",
		WindowW:         800,
		WindowH:         700,
		SquareSize:      70,
		ClockMinutes:    10,
		OpponentDelayMs: 500,
		EndTimeoutSec:   0,
		SpritePath:      "images/ChessPiecesArray.png",
		FontPath:        "",
		StatsPath:       stats.DefaultFile,
		Debug:           false,
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	def := defaultConfig()
	return &def
}

// NewGUIConfig reads file, falling back to defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func (c *Config) Clock() time.Duration {
	return time.Duration(c.ClockMinutes) * time.Minute
}

func (c *Config) OpponentDelay() time.Duration {
	return time.Duration(c.OpponentDelayMs) * time.Millisecond
}

func (c *Config) EndTimeout() time.Duration {
	return time.Duration(c.EndTimeoutSec) * time.Second
}

// BoardSize is the pixel width of the eight squares.
func (c *Config) BoardSize() int {
	return c.SquareSize * 8
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.SquareSize < 20 || c.SquareSize > 200 {
		c.SquareSize = def.SquareSize
	}
	// the board plus the bottom panel must fit
	if c.WindowW < c.BoardSize() || c.WindowH < c.BoardSize()+100 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
		c.SquareSize = def.SquareSize
	}
	if c.ClockMinutes <= 0 {
		c.ClockMinutes = def.ClockMinutes
	}
	if c.OpponentDelayMs < 0 {
		c.OpponentDelayMs = def.OpponentDelayMs
	}
	if c.EndTimeoutSec < 0 {
		c.EndTimeoutSec = 0
	}
	if c.SpritePath == "" {
		c.SpritePath = def.SpritePath
	}
	if c.StatsPath == "" {
		c.StatsPath = def.StatsPath
	}
}
