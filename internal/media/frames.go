package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/script-flow/internal/source"
)

// SampleFrames captures count evenly spaced JPEG keyframes. The loop
// is strictly sequential: each capture must finish before the next
// seek is issued, since a single decode surface backs every capture.
func (s *implService) SampleFrames(ctx context.Context, src *source.Source, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("frame count must be at least 1, got %d", count)
	}

	duration, err := s.probeDuration(ctx, src.Path)
	if err != nil {
		return nil, err
	}

	timestamps := frameTimestamps(duration, count)
	s.logger.Debug(ctx, "Sampling %d frames over %.2fs (%s)", count, duration, src.Name)

	frames := make([]string, 0, count)
	for _, ts := range timestamps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		jpeg, err := s.captureFrame(ctx, src.Path, ts)
		if err != nil {
			// Discard everything captured so far.
			return nil, &source.LoadError{
				Reason: fmt.Sprintf("capture frame at %.3fs", ts),
				Err:    err,
			}
		}
		frames = append(frames, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(jpeg))
	}

	s.logger.Info(ctx, "Captured %d keyframes (%s)", len(frames), src.Name)
	return frames, nil
}

// probeDuration returns the container duration in seconds, rejecting
// sources that cannot be opened as playable video.
func (s *implService) probeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	}

	out, err := s.executor.Execute(ctx, s.probePath, args...)
	if err != nil {
		return 0, &source.LoadError{Reason: "cannot open as playable video", Err: err}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || duration <= 0 {
		return 0, &source.LoadError{Reason: fmt.Sprintf("no usable duration (%q)", strings.TrimSpace(out))}
	}

	return duration, nil
}

// captureFrame seeks to ts and exports the settled frame as JPEG.
func (s *implService) captureFrame(ctx context.Context, path string, ts float64) ([]byte, error) {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", strconv.FormatFloat(ts, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-c:v", "mjpeg",
		"pipe:1",
	}

	jpeg, err := s.executor.ExecuteBytes(ctx, s.binaryPath, args...)
	if err != nil {
		return nil, err
	}
	if len(jpeg) == 0 {
		return nil, fmt.Errorf("no frame decoded at %.3fs", ts)
	}
	return jpeg, nil
}

// frameTimestamps spreads count capture times over the duration:
// frame 0 at time 0, then steps of duration/count clamped to not
// exceed the duration.
func frameTimestamps(duration float64, count int) []float64 {
	interval := duration / float64(count)
	timestamps := make([]float64, count)
	t := 0.0
	for i := 0; i < count; i++ {
		timestamps[i] = t
		t += interval
		if t > duration {
			t = duration
		}
	}
	return timestamps
}
