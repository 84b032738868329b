package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-flow/internal/config"
	"github.com/nguyentantai21042004/script-flow/internal/gemini"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
	"github.com/nguyentantai21042004/script-flow/internal/media"
	"github.com/nguyentantai21042004/script-flow/internal/processor"
	"github.com/nguyentantai21042004/script-flow/internal/watcher"
	"github.com/nguyentantai21042004/script-flow/pkg/executor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input directory and process new videos",
	Long: `Monitor the configured input directory and run the full pipeline
for every new video file, with bounded concurrency. Processed
originals are moved to the archived directory.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	log := logger.New(cfg.Logging.Level)

	log.Info(ctx, "========================================")
	log.Info(ctx, "scriptflow pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max concurrent processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Keyframes per video: %d", cfg.Frames.Count)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	exec := executor.New()
	mediaSvc := media.New(cfg, exec, logger.Named(log, "media"))
	ai := gemini.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, logger.Named(log, "gemini"))
	proc := processor.New(cfg, mediaSvc, ai, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, logger.Named(log, "watcher"), cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "scriptflow stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
