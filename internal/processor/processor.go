package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/script-flow/internal/source"
	"github.com/nguyentantai21042004/script-flow/internal/transcript"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// Process orchestrates the whole pipeline for one input. Every error
// is terminal for this run: it is converted to one user-facing
// message and nothing partial is exported.
func (p *implProcessor) Process(ctx context.Context, input string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting pipeline: %s", input)
	p.logger.Info(ctx, "========================================")

	src, err := p.acquire(ctx, input)
	if err != nil {
		return p.fail(ctx, err)
	}
	defer src.Release()

	// The two leaf tasks are independent: no shared state, joined
	// before any collaborator call.
	var (
		payload *wav.Payload
		frames  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var encErr error
		payload, encErr = p.media.EncodeAudio(gctx, src)
		return encErr
	})
	if !src.AudioOnly() {
		g.Go(func() error {
			var frameErr error
			frames, frameErr = p.media.SampleFrames(gctx, src, p.cfg.Frames.Count)
			return frameErr
		})
	}
	if err := g.Wait(); err != nil {
		return p.fail(ctx, err)
	}

	original, err := p.ai.Transcribe(ctx, payload)
	if err != nil {
		return p.fail(ctx, err)
	}

	var (
		revised  []transcript.Segment
		analysis string
	)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var revErr error
		revised, revErr = p.ai.Revise(gctx, original)
		return revErr
	})
	if len(frames) > 0 {
		g.Go(func() error {
			var visErr error
			analysis, visErr = p.ai.AnalyzeVision(gctx, original, frames)
			return visErr
		})
	}
	if err := g.Wait(); err != nil {
		return p.fail(ctx, err)
	}

	outputs, err := p.export(ctx, src.Name, original, revised, analysis)
	if err != nil {
		return p.fail(ctx, err)
	}

	p.archive(ctx, input)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Pipeline completed successfully!")
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// acquire opens the input as a media source.
func (p *implProcessor) acquire(ctx context.Context, input string) (*source.Source, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return source.FromURL(ctx, input, p.cfg.Paths.Temp)
	}
	return source.FromFile(input)
}

// fail logs the terminal error with its user-facing message and
// returns it wrapped. The session itself keeps running.
func (p *implProcessor) fail(ctx context.Context, err error) error {
	msg := UserMessage(err)
	p.logger.Error(ctx, "%s: %v", msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}
