// Package config reads the runtime settings of the ibeam command from the
// environment, optionally seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvMaterials = "IBEAM_MATERIALS"
	EnvWorkers   = "IBEAM_WORKERS"
	EnvLogLevel  = "IBEAM_LOG_LEVEL"
	EnvSeed      = "IBEAM_SEED"
)

// DefaultEnvFile is read when no other dotenv file is named.
const DefaultEnvFile = ".env"

// ErrInvalid is returned for a setting that cannot be parsed.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the runtime settings
type Config struct {
	MaterialsFile string     // JSON material table overlaid on the built-ins, "" for none
	Workers       int        // study worker pool size
	LogLevel      slog.Level // minimum level of the stderr log
	Seed          uint64     // Monte-Carlo seed
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		LogLevel: slog.LevelInfo,
		Seed:     1,
	}
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and parses the settings. A missing
// envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv parses the settings from the process environment.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.MaterialsFile = strings.TrimSpace(os.Getenv(EnvMaterials))

	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%w: %s=%q, want a positive integer", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}

	if v, ok := lookup(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogLevel, v)
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q, want an unsigned integer", ErrInvalid, EnvSeed, v)
		}
		cfg.Seed = n
	}

	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
