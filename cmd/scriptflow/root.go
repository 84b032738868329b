package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-flow/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scriptflow",
	Short: "Turn videos into polished, timestamped scripts",
	Long: `scriptflow extracts a video's audio and keyframes, sends them to
Gemini for transcription, script polishing and vision analysis, and
writes the results as SRT subtitles, markdown and DOCX reports.

Example:
  scriptflow process recording.mp4
  scriptflow process https://example.com/clip.mp4
  scriptflow watch`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional for some commands (like help)
		// Commands that need config will check and error appropriately
		cfg = nil
	}
}

// requireConfig returns the loaded configuration or an error for
// commands that cannot run without one.
func requireConfig() (*config.Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded; ensure %s exists", cfgFile)
	}
	return cfg, nil
}
