package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-flow/internal/gemini"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
	"github.com/nguyentantai21042004/script-flow/internal/media"
	"github.com/nguyentantai21042004/script-flow/internal/processor"
	"github.com/nguyentantai21042004/script-flow/pkg/executor"
)

var processCmd = &cobra.Command{
	Use:   "process <file-or-url>",
	Short: "Run the full pipeline for one video",
	Long: `Run the full pipeline for a single video: extract audio and
keyframes, transcribe, polish the script, analyze the visuals, and
write SRT, markdown and DOCX outputs.

The input may be a local file or an HTTP(S) URL whose content type
is video.

Example:
  scriptflow process recording.mp4
  scriptflow process https://example.com/clip.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp directory: %w", err)
	}

	exec := executor.New()
	mediaSvc := media.New(cfg, exec, logger.Named(log, "media"))
	ai := gemini.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, logger.Named(log, "gemini"))
	proc := processor.New(cfg, mediaSvc, ai, log)

	return proc.Process(ctx, args[0])
}
