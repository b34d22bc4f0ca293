// Package config loads runtime settings from a .env file and the
// environment. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/resepi/internal/catalog"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/reveal"
)

// Environment variable names.
const (
	EnvPageSize        = "RESEPI_PAGE_SIZE"
	EnvRevealThreshold = "RESEPI_REVEAL_THRESHOLD"
	EnvRevealStagger   = "RESEPI_REVEAL_STAGGER"
	EnvRecipesFile     = "RESEPI_RECIPES_FILE"
	EnvChips           = "RESEPI_CHIPS"
	EnvType            = "RESEPI_TYPE"
	EnvLogLevel        = "RESEPI_LOG_LEVEL"
	EnvLogFile         = "RESEPI_LOG_FILE"
	EnvWhisperBin      = "RESEPI_WHISPER_BIN"
	EnvWhisperModel    = "RESEPI_WHISPER_MODEL"
	EnvRecordSecs      = "RESEPI_RECORD_SECS"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every tunable of the browser.
type Config struct {
	PageSize        int
	RevealThreshold float64
	RevealStagger   time.Duration
	RecipesFile     string
	Chips           int
	// Type is "food", "beverage" or "all".
	Type         string
	LogLevel     string
	LogFile      string
	WhisperBin   string
	WhisperModel string
	RecordSecs   int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PageSize:        catalog.DefaultPageSize,
		RevealThreshold: reveal.DefaultThreshold,
		RevealStagger:   reveal.DefaultStagger,
		Chips:           engine.DefaultChipCount,
		Type:            "all",
		LogLevel:        "normal",
		LogFile:         ".resepi-logs/resepi.log",
		WhisperBin:      "whisper-cli",
		WhisperModel:    "bin/ggml-small.bin",
		RecordSecs:      3,
	}
}

// Load reads the given .env files (".env" when none are named), then the
// process environment. Missing .env files are not an error; real
// environment variables win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: not an integer", key, v))
			return
		}
		*dst = n
	}

	num(EnvPageSize, &cfg.PageSize)
	num(EnvChips, &cfg.Chips)
	num(EnvRecordSecs, &cfg.RecordSecs)
	str(EnvRecipesFile, &cfg.RecipesFile)
	str(EnvType, &cfg.Type)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFile, &cfg.LogFile)
	str(EnvWhisperBin, &cfg.WhisperBin)
	str(EnvWhisperModel, &cfg.WhisperModel)

	if v, ok := lookup(EnvRevealThreshold); ok && strings.TrimSpace(v) != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: not a number", EnvRevealThreshold, v))
		} else {
			cfg.RevealThreshold = f
		}
	}
	if v, ok := lookup(EnvRevealStagger); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: not a duration", EnvRevealStagger, v))
		} else {
			cfg.RevealStagger = d
		}
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges. It is called again after flags are applied.
func (c Config) Validate() error {
	var errs []error
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.PageSize))
	}
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		errs = append(errs, fmt.Errorf("reveal threshold must be in (0, 1], got %v", c.RevealThreshold))
	}
	if c.RevealStagger < 0 {
		errs = append(errs, fmt.Errorf("reveal stagger must not be negative, got %s", c.RevealStagger))
	}
	if c.Chips < 0 {
		errs = append(errs, fmt.Errorf("chip count must not be negative, got %d", c.Chips))
	}
	if c.RecordSecs <= 0 {
		errs = append(errs, fmt.Errorf("record seconds must be positive, got %d", c.RecordSecs))
	}
	switch strings.ToLower(c.Type) {
	case "all", "food", "makanan", "beverage", "drink", "minuman":
	default:
		errs = append(errs, fmt.Errorf("type must be food, beverage or all, got %q", c.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
