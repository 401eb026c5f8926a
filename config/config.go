// Package config loads run settings from flags, SKIPBO_* environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/signalnine/skipbo-sim/strategy"
)

// Keys shared by flags, environment and config files.
const (
	KeyConfig        = "config"
	KeyGames         = "games"
	KeyDrawStackSize = "draw-stack-size"
	KeyPlayers       = "players"
	KeySeed          = "seed"
	KeyWorkers       = "workers"
	KeyMaxRounds     = "max-rounds"
	KeyRepeat        = "repeat"
	KeyFailFast      = "fail-fast"
	KeyProgress      = "progress"
	KeyOutput        = "output"
	KeyFormat        = "format"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
)

// EnvPrefix is prepended to every key, e.g. SKIPBO_DRAW_STACK_SIZE.
const EnvPrefix = "SKIPBO"

// Config holds everything a run needs.
type Config struct {
	Games         int      `mapstructure:"games"`
	DrawStackSize int      `mapstructure:"draw-stack-size"`
	Players       []string `mapstructure:"players"`
	Seed          uint64   `mapstructure:"seed"` // 0 = time-based
	Workers       int      `mapstructure:"workers"`
	MaxRounds     int      `mapstructure:"max-rounds"`
	Repeat        int      `mapstructure:"repeat"`
	FailFast      bool     `mapstructure:"fail-fast"`
	Progress      bool     `mapstructure:"progress"`
	Output        string   `mapstructure:"output"`
	Format        string   `mapstructure:"format"`
	LogLevel      string   `mapstructure:"log-level"`
	LogFormat     string   `mapstructure:"log-format"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGames, 1000)
	v.SetDefault(KeyDrawStackSize, 20)
	v.SetDefault(KeyPlayers, []string{"simple", "good"})
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyMaxRounds, 10000)
	v.SetDefault(KeyRepeat, 1)
	v.SetDefault(KeyFailFast, false)
	v.SetDefault(KeyProgress, true)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

// Load resolves v into a validated Config. Flags must already be bound.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize splits comma-joined player lists, which is how they arrive
// from the environment and from a single --players value.
func (c *Config) normalize() {
	var players []string
	for _, p := range c.Players {
		for _, name := range strings.Split(p, ",") {
			if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
				players = append(players, name)
			}
		}
	}
	c.Players = players
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate reports the first setting that cannot produce a run.
func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.DrawStackSize <= 0 {
		return fmt.Errorf("draw-stack-size must be positive, got %d", c.DrawStackSize)
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("need at least 2 players, got %d", len(c.Players))
	}
	for _, p := range c.Players {
		if _, err := strategy.New(p); err != nil {
			return fmt.Errorf("players: %w", err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max-rounds must not be negative, got %d", c.MaxRounds)
	}
	if c.Repeat <= 0 {
		return fmt.Errorf("repeat must be positive, got %d", c.Repeat)
	}
	switch c.Format {
	case "", "json", "flatbuffers", "fb":
	default:
		return fmt.Errorf("unknown format %q (want json or flatbuffers)", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log-level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log-format %q (want console or json)", c.LogFormat)
	}
	return nil
}

// OutputFormat is Format, or a guess from the output file's extension.
func (c *Config) OutputFormat() string {
	if c.Format != "" {
		return c.Format
	}
	switch {
	case strings.HasSuffix(c.Output, ".fb"), strings.HasSuffix(c.Output, ".bin"):
		return "flatbuffers"
	default:
		return "json"
	}
}
