// Package decode turns a media source's audio track into normalized
// PCM float samples.
package decode

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/script-flow/pkg/executor"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// Error signals that the container or codec is unsupported or the
// stream is corrupt. No partial decode is ever returned.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not process audio: %v", e.Err)
	}
	return "could not process audio"
}

func (e *Error) Unwrap() error { return e.Err }

// Decoder decodes one source's audio bytes to a PCM buffer.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (*wav.PCMBuffer, error)
}

// FFmpegDecoder decodes any container ffmpeg understands by piping
// the source through `ffmpeg -f f32le`. The stream keeps its native
// sample rate and channel count, probed first with ffprobe.
type FFmpegDecoder struct {
	executor   executor.Executor
	binaryPath string
	probePath  string
}

// NewFFmpeg creates a decoder backed by the configured ffmpeg and
// ffprobe binaries.
func NewFFmpeg(exec executor.Executor, binaryPath, probePath string) *FFmpegDecoder {
	return &FFmpegDecoder{
		executor:   exec,
		binaryPath: binaryPath,
		probePath:  probePath,
	}
}

// Decode probes the audio stream layout, then decodes it to
// interleaved 32-bit floats and de-interleaves into per-channel
// samples.
func (d *FFmpegDecoder) Decode(ctx context.Context, data []byte) (*wav.PCMBuffer, error) {
	sampleRate, channels, err := d.probe(ctx, data)
	if err != nil {
		return nil, &Error{Err: err}
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", "pipe:0",
		"-vn",
		"-f", "f32le",
		"-acodec", "pcm_f32le",
		"pipe:1",
	}

	raw, err := d.executor.ExecuteInput(ctx, data, d.binaryPath, args...)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("ffmpeg decode: %w", err)}
	}

	buf, err := deinterleaveFloat32(raw, sampleRate, channels)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return buf, nil
}

// probe returns the first audio stream's sample rate and channel count.
func (d *FFmpegDecoder) probe(ctx context.Context, data []byte) (sampleRate, channels int, err error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,channels",
		"-of", "csv=p=0",
		"pipe:0",
	}

	out, err := d.executor.ExecuteInput(ctx, data, d.probePath, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe: %w", err)
	}

	fields := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("ffprobe: unexpected output %q", strings.TrimSpace(string(out)))
	}

	sampleRate, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || sampleRate <= 0 {
		return 0, 0, fmt.Errorf("ffprobe: bad sample rate %q", fields[0])
	}
	channels, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || channels < 1 {
		return 0, 0, fmt.Errorf("ffprobe: bad channel count %q", fields[1])
	}

	return sampleRate, channels, nil
}

// deinterleaveFloat32 splits an interleaved f32le stream into
// per-channel float64 samples. Trailing partial frames are rejected.
func deinterleaveFloat32(raw []byte, sampleRate, channels int) (*wav.PCMBuffer, error) {
	frameBytes := channels * 4
	if len(raw)%frameBytes != 0 {
		return nil, fmt.Errorf("pcm stream length %d is not a whole number of %d-channel frames", len(raw), channels)
	}

	frames := len(raw) / frameBytes
	chans := make([][]float64, channels)
	for ch := range chans {
		chans[ch] = make([]float64, frames)
	}

	pos := 0
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			bits := binary.LittleEndian.Uint32(raw[pos:])
			chans[ch][frame] = float64(math.Float32frombits(bits))
			pos += 4
		}
	}

	return &wav.PCMBuffer{SampleRate: sampleRate, Channels: chans}, nil
}
