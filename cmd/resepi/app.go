package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hammamikhairi/resepi/internal/config"
	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/logger"
	"github.com/hammamikhairi/resepi/internal/recipe"
	"github.com/hammamikhairi/resepi/internal/storage"
)

// loadConfig reads .env and the environment, then applies the flags the
// user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("recipes") {
		cfg.RecipesFile = recipesFile
	}
	if flags.Changed("type") {
		cfg.Type = recipeType
	}
	if flags.Changed("page-size") {
		cfg.PageSize = pageSize
	}
	if flags.Changed("chips") {
		cfg.Chips = chipCount
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	switch {
	case quiet:
		cfg.LogLevel = logger.LevelOff.String()
	case verbose:
		cfg.LogLevel = logger.LevelVerbose.String()
	}
	return cfg, cfg.Validate()
}

// openLogger directs logs to cfg.LogFile so the terminal stays clean.
// Third-party packages that use the standard log package are routed
// through the same logger until the returned close func runs.
func openLogger(cfg config.Config, fallback io.Writer) (*logger.Logger, func(), error) {
	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown log level %q", config.ErrInvalid, cfg.LogLevel)
	}

	out := fallback
	closeFn := func() {}
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating log dir: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(fallback, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	log := logger.New(level, out)
	restore := zap.RedirectStdLog(log.Zap())
	return log, func() {
		restore()
		_ = log.Sync()
		closeFn()
	}, nil
}

// openSource builds the recipe collection: the YAML file when one is
// configured, the built-in recipes otherwise.
func openSource(cfg config.Config, log *logger.Logger) (*recipe.MemorySource, error) {
	var opts []recipe.Option
	if t := strings.ToLower(strings.TrimSpace(cfg.Type)); t != "all" {
		rt, err := domain.ParseRecipeType(t)
		if err != nil {
			return nil, err
		}
		opts = append(opts, recipe.WithType(rt))
	}
	if cfg.RecipesFile != "" {
		recipes, err := recipe.LoadFile(cfg.RecipesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, recipe.WithRecipes(recipes))
	}

	src := recipe.NewMemorySource(log, opts...)
	log.Info("loaded recipe collection v%d", src.Version())
	return src, nil
}

// setup performs the wiring every subcommand shares.
func setup(cmd *cobra.Command) (config.Config, *logger.Logger, *recipe.MemorySource, *engine.Controller, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, nil, nil, nil, err
	}
	log, closeLog, err := openLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, nil, nil, nil, err
	}
	src, err := openSource(cfg, log)
	if err != nil {
		closeLog()
		return cfg, nil, nil, nil, nil, err
	}
	ctrl := engine.New(src, storage.NewMemoryStore(log), log,
		engine.WithPageSize(cfg.PageSize),
		engine.WithChipCount(cfg.Chips),
	)
	return cfg, log, src, ctrl, closeLog, nil
}

// commandContext returns the command's context, or Background when the
// command was built without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
