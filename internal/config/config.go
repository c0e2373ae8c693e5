package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"textstream/internal/logging"
	"textstream/pkg/textstream"

	"github.com/BurntSushi/toml"
)

const (
	EnvLineSize = "TEXTSTREAM_LINE_SIZE"
	EnvLogLevel = "TEXTSTREAM_LOG_LEVEL"
)

// Config holds the settings of the textstream command.
type Config struct {
	LineSize int
	Strict   bool
	LogLevel string
}

type fileConfig struct {
	LineSize int    `toml:"line_size"`
	Strict   bool   `toml:"strict"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		LineSize: textstream.DefaultLineSize,
		LogLevel: "info",
	}
}

// ParseLineSize parses a decimal line size in 1..=MaxLineSize.
func ParseLineSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &textstream.ConfigError{Value: raw, Err: fmt.Errorf("not a number")}
	}
	if err := textstream.CheckLineSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Load reads a TOML config file on top of the defaults. An empty path yields the defaults.
// Environment overrides are applied afterwards.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("load config (%s): unknown key %q", path, undecoded[0].String())
		}
		if meta.IsDefined("line_size") {
			cfg.LineSize = raw.LineSize
		}
		if meta.IsDefined("strict") {
			cfg.Strict = raw.Strict
		}
		if meta.IsDefined("log_level") {
			cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		if path != "" {
			return Config{}, fmt.Errorf("config (%s): %w", path, err)
		}
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if raw, ok := os.LookupEnv(EnvLineSize); ok && strings.TrimSpace(raw) != "" {
		n, err := ParseLineSize(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLineSize, err)
		}
		cfg.LineSize = n
	}
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		cfg.LogLevel = raw
	}
	return nil
}

func Validate(cfg Config) error {
	if err := textstream.CheckLineSize(cfg.LineSize); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}
