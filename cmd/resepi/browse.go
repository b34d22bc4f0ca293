package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/resepi/internal/conversation"
	"github.com/hammamikhairi/resepi/internal/display"
	"github.com/hammamikhairi/resepi/internal/recipe"
	"github.com/hammamikhairi/resepi/internal/speech"
)

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, log, src, ctrl, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []display.Option{display.WithReveal(cfg.RevealThreshold, cfg.RevealStagger)}

	if voice {
		if _, err := os.Stat(cfg.WhisperModel); err != nil {
			return fmt.Errorf("whisper model not found at %s: %w", cfg.WhisperModel, err)
		}
		if err := os.MkdirAll(speech.DefaultTempDir, 0o755); err != nil {
			return fmt.Errorf("creating dictation dir: %w", err)
		}
		opts = append(opts, display.WithSpeech(speech.NewDictation(cfg.WhisperBin, cfg.WhisperModel, log,
			speech.WithRecordDuration(time.Duration(cfg.RecordSecs)*time.Second),
		)))
		log.Info("voice input enabled (bin=%s, model=%s, %ds)", cfg.WhisperBin, cfg.WhisperModel, cfg.RecordSecs)
	}

	if sound {
		player, err := speech.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, sound disabled: %v", err)
		} else {
			chime := speech.NewChime(player, log)
			defer chime.Wait()
			opts = append(opts, display.WithChime(chime.Play))
		}
	}

	ui := display.NewUI(ctrl, conversation.NewKeywordParser(log), log, opts...)

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.RecipesFile != "" {
		reloader := recipe.NewReloader(cfg.RecipesFile, src, log, recipe.WithOnReload(ui.Reload))
		g.Go(func() error { return reloader.Run(gctx) })
	}

	// Bubble Tea owns the terminal until the user quits.
	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx)
	})

	return g.Wait()
}
