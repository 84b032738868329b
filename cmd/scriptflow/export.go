package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/script-flow/internal/report"
	"github.com/nguyentantai21042004/script-flow/internal/transcript"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <subtitle.srt>",
	Short: "Re-export an SRT file as a reading transcript DOCX",
	Long: `Parse a previously written (possibly hand-edited) SRT file and
render it as a clean DOCX reading transcript.

Example:
  scriptflow export output/demo.revised.srt
  scriptflow export demo.srt --out demo.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output DOCX path (default: next to the input)")
}

func runExport(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("read subtitle file: %w", err)
	}

	segments, err := transcript.ParseSRT(string(data))
	if err != nil {
		return fmt.Errorf("parse subtitle file: %w", err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("%s contains no subtitle blocks", srtPath)
	}

	outPath := exportOut
	if outPath == "" {
		outPath = strings.TrimSuffix(srtPath, filepath.Ext(srtPath)) + ".docx"
	}

	title := strings.TrimSuffix(filepath.Base(srtPath), filepath.Ext(srtPath))
	if err := report.TranscriptToDocx(title, segments, outPath); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	fmt.Printf("Exported %d segments to %s\n", len(segments), outPath)
	return nil
}
