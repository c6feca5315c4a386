// Package config loads mazepath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every malformed variable.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvInput         = "MAZEPATH_INPUT"
	EnvOutput        = "MAZEPATH_OUTPUT"
	EnvSolver        = "MAZEPATH_SOLVER"
	EnvLogLevel      = "MAZEPATH_LOG_LEVEL"
	EnvMaxSteps      = "MAZEPATH_MAX_STEPS"
	EnvTimeout       = "MAZEPATH_TIMEOUT"
	EnvHTTPAddr      = "MAZEPATH_HTTP_ADDR"
	EnvGinMode       = "MAZEPATH_GIN_MODE"
	EnvRedisAddr     = "MAZEPATH_REDIS_ADDR"
	EnvRedisPassword = "MAZEPATH_REDIS_PASSWORD"
	EnvRedisDB       = "MAZEPATH_REDIS_DB"
	EnvCacheTTL      = "MAZEPATH_CACHE_TTL"
)

// Config holds the application's configuration values.
type Config struct {
	Input         string        // maze file read by solve and bench
	Output        string        // file the solve command writes
	Solver        string        // default solver name
	LogLevel      slog.Level    // minimum level for the CLI logger
	MaxSteps      int           // per-search step budget, 0 = unlimited
	Timeout       time.Duration // per-search deadline, 0 = none
	HTTPAddr      string        // listen address for serve
	GinMode       string        // gin mode: release, debug or test
	RedisAddr     string        // empty selects the in-memory cache
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Input:    "input.txt",
		Output:   "output.txt",
		Solver:   "bfs",
		LogLevel: slog.LevelInfo,
		MaxSteps: 0,
		Timeout:  30 * time.Second,
		HTTPAddr: ":8080",
		GinMode:  "release",
		CacheTTL: 10 * time.Minute,
	}
}

// Load reads the given .env files (".env" when none are named), then builds
// a Config from the environment. A missing .env file is not an error; values
// already present in the environment win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	c := Default()
	var errs []error

	c.Input = getEnvWithDefault(EnvInput, c.Input)
	c.Output = getEnvWithDefault(EnvOutput, c.Output)
	c.Solver = getEnvWithDefault(EnvSolver, c.Solver)
	c.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, c.HTTPAddr)
	c.GinMode = getEnvWithDefault(EnvGinMode, c.GinMode)
	c.RedisAddr = getEnvWithDefault(EnvRedisAddr, c.RedisAddr)
	c.RedisPassword = getEnvWithDefault(EnvRedisPassword, c.RedisPassword)

	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			errs = append(errs, err)
		}
		c.LogLevel = lvl
	}
	if v, ok := lookup(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalidConfig, EnvMaxSteps, v))
		}
		c.MaxSteps = n
	}
	if v, ok := lookup(EnvRedisDB); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalidConfig, EnvRedisDB, v))
		}
		c.RedisDB = n
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a non-negative duration, got %q", ErrInvalidConfig, EnvTimeout, v))
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvCacheTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a non-negative duration, got %q", ErrInvalidConfig, EnvCacheTTL, v))
		}
		c.CacheTTL = d
	}
	switch c.GinMode {
	case "release", "debug", "test":
	default:
		errs = append(errs, fmt.Errorf("%w: %s must be release, debug or test, got %q", ErrInvalidConfig, EnvGinMode, c.GinMode))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return c, nil
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogLevel, err)
	}
	return lvl, nil
}

// lookup returns a trimmed, non-empty variable.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return defaultValue
}
