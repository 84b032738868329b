package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/script-flow/internal/report"
	"github.com/nguyentantai21042004/script-flow/internal/transcript"
)

// export writes every artifact for one completed run: original and
// revised SRT, and when vision analysis ran, its markdown and DOCX
// forms. Nothing is written unless the whole pipeline succeeded.
func (p *implProcessor) export(ctx context.Context, name string, original, revised []transcript.Segment, analysis string) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	var outputs []string

	write := func(suffix, content string) error {
		path := filepath.Join(p.cfg.Paths.Output, base+suffix)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		outputs = append(outputs, path)
		return nil
	}

	if err := write(".srt", transcript.FormatSRT(original)); err != nil {
		return nil, err
	}
	if err := write(".revised.srt", transcript.FormatSRT(revised)); err != nil {
		return nil, err
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, base+".transcript.docx")
	if err := report.TranscriptToDocx(name, revised, docxPath); err != nil {
		return nil, fmt.Errorf("write transcript docx: %w", err)
	}
	outputs = append(outputs, docxPath)

	if analysis != "" {
		if err := write(".analysis.md", analysis+"\n"); err != nil {
			return nil, err
		}
		analysisDocx := filepath.Join(p.cfg.Paths.Output, base+".analysis.docx")
		if err := report.MarkdownToDocx(name, analysis, analysisDocx); err != nil {
			return nil, fmt.Errorf("write analysis docx: %w", err)
		}
		outputs = append(outputs, analysisDocx)
	}

	p.logger.Debug(ctx, "Exported %d artifacts for %s", len(outputs), name)
	return outputs, nil
}
