package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/talgya/combat-theater/internal/hex"
)

type Config struct {
	Logging  LoggingConfig
	Map      MapConfig
	Layout   LayoutConfig
	Movement MovementConfig
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type MapConfig struct {
	Radius      int
	Seed        int64
	ForestLevel float64
	Rivers      int
}

type LayoutConfig struct {
	Orientation string
	CellSize    float64
}

type MovementConfig struct {
	Points int
}

// Load reads an optional .env file, then the environment. Values that fail
// to parse are reported together, each naming its variable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	p := &envParser{}
	config := &Config{
		Logging:  loadLoggingConfig(),
		Map:      loadMapConfig(p),
		Layout:   loadLayoutConfig(p),
		Movement: loadMovementConfig(p),
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// envParser reads typed variables and keeps every parse failure.
type envParser struct {
	errs []error
}

func (p *envParser) Int(key, defaultValue string) int {
	v, err := strconv.Atoi(GetEnv(key, defaultValue))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return v
}

func (p *envParser) Int64(key, defaultValue string) int64 {
	v, err := strconv.ParseInt(GetEnv(key, defaultValue), 10, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return v
}

func (p *envParser) Float(key, defaultValue string) float64 {
	v, err := strconv.ParseFloat(GetEnv(key, defaultValue), 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return v
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      GetEnv("LOG_LEVEL", "info"),
		JSONFormat: GetEnv("LOG_FORMAT", "text") == "json",
	}
}

func loadMapConfig(p *envParser) MapConfig {
	return MapConfig{
		Radius:      p.Int("MAP_RADIUS", "8"),
		Seed:        p.Int64("MAP_SEED", "42"),
		ForestLevel: p.Float("MAP_FOREST_LEVEL", "0.58"),
		Rivers:      p.Int("MAP_RIVERS", "4"),
	}
}

func loadLayoutConfig(p *envParser) LayoutConfig {
	return LayoutConfig{
		Orientation: GetEnv("LAYOUT_ORIENTATION", "pointy"),
		CellSize:    p.Float("LAYOUT_CELL_SIZE", "50"),
	}
}

func loadMovementConfig(p *envParser) MovementConfig {
	return MovementConfig{
		Points: p.Int("MOVE_POINTS", "6"),
	}
}

func (c *Config) validate() error {
	if c.Map.Radius <= 0 {
		return fmt.Errorf("MAP_RADIUS must be positive, got %d", c.Map.Radius)
	}
	if c.Map.ForestLevel < 0 || c.Map.ForestLevel > 1 {
		return fmt.Errorf("MAP_FOREST_LEVEL must lie in [0, 1], got %v", c.Map.ForestLevel)
	}
	if c.Map.Rivers < 0 {
		return fmt.Errorf("MAP_RIVERS must not be negative, got %d", c.Map.Rivers)
	}
	if c.Layout.CellSize <= 0 {
		return fmt.Errorf("LAYOUT_CELL_SIZE must be positive, got %v", c.Layout.CellSize)
	}
	if _, ok := hex.ParseOrientation(c.Layout.Orientation); !ok {
		return fmt.Errorf("LAYOUT_ORIENTATION must be pointy or flat, got %q", c.Layout.Orientation)
	}
	if c.Movement.Points < 0 {
		return fmt.Errorf("MOVE_POINTS must not be negative, got %d", c.Movement.Points)
	}
	return nil
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
