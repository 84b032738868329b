package processor

import (
	"context"
	"os"
	"path/filepath"
)

// archive moves a successfully processed input file out of the watch
// directory so it is not picked up again. URL inputs and files
// outside the input directory are left alone. Failures only warn:
// the run itself already succeeded.
func (p *implProcessor) archive(ctx context.Context, input string) {
	dirAbs, err := filepath.Abs(filepath.Dir(input))
	if err != nil {
		p.logger.Warn(ctx, "Skipping archive, cannot resolve %s: %v", input, err)
		return
	}
	inputAbs, err := filepath.Abs(p.cfg.Paths.Input)
	if err != nil {
		p.logger.Warn(ctx, "Skipping archive, cannot resolve input folder: %v", err)
		return
	}
	if dirAbs != inputAbs {
		return
	}

	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		p.logger.Warn(ctx, "Failed to create archived folder: %v", err)
		return
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(input))
	if err := os.Rename(input, dest); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		return
	}

	p.logger.Info(ctx, "Archived original: %s", dest)
}
