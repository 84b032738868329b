package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/script-flow/internal/config"
	"github.com/nguyentantai21042004/script-flow/internal/logger"
	"github.com/nguyentantai21042004/script-flow/internal/media/decode"
	"github.com/nguyentantai21042004/script-flow/internal/source"
	"github.com/nguyentantai21042004/script-flow/internal/transcript"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

type fakeMedia struct {
	payload   *wav.Payload
	frames    []string
	audioErr  error
	framesErr error

	audioCalls  int
	framesCalls int
}

func (f *fakeMedia) EncodeAudio(ctx context.Context, src *source.Source) (*wav.Payload, error) {
	f.audioCalls++
	if f.audioErr != nil {
		return nil, f.audioErr
	}
	return f.payload, nil
}

func (f *fakeMedia) SampleFrames(ctx context.Context, src *source.Source, count int) ([]string, error) {
	f.framesCalls++
	if f.framesErr != nil {
		return nil, f.framesErr
	}
	return f.frames, nil
}

type fakeAI struct {
	segments    []transcript.Segment
	revised     []transcript.Segment
	analysis    string
	reviseErr   error
	visionCalls int
}

func (f *fakeAI) Transcribe(ctx context.Context, payload *wav.Payload) ([]transcript.Segment, error) {
	return f.segments, nil
}

func (f *fakeAI) Revise(ctx context.Context, segments []transcript.Segment) ([]transcript.Segment, error) {
	if f.reviseErr != nil {
		return nil, f.reviseErr
	}
	return f.revised, nil
}

func (f *fakeAI) AnalyzeVision(ctx context.Context, segments []transcript.Segment, frames []string) (string, error) {
	f.visionCalls++
	return f.analysis, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Paths.Input = filepath.Join(root, "input")
	cfg.Paths.Output = filepath.Join(root, "output")
	cfg.Paths.Archived = filepath.Join(root, "archived")
	cfg.Paths.Temp = filepath.Join(root, "temp")
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func writeInputVideo(t *testing.T, cfg *config.Config, name string) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.Input, name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultFakes() (*fakeMedia, *fakeAI) {
	segments := []transcript.Segment{
		{Start: 0, End: 2, Text: "umm hello there"},
		{Start: 2, End: 4, Text: "so this is uh the demo"},
	}
	med := &fakeMedia{
		payload: &wav.Payload{Bytes: []byte("RIFF...."), EncodedText: "UklGRg==", MIMEType: "audio/wav"},
		frames:  []string{"data:image/jpeg;base64,AAE=", "data:image/jpeg;base64,AAI="},
	}
	ai := &fakeAI{
		segments: segments,
		revised: []transcript.Segment{
			{Start: 0, End: 2, Text: "Hello there."},
			{Start: 2, End: 4, Text: "This is the demo."},
		},
		analysis: "# Analysis\n\nA talking head explains a demo.",
	}
	return med, ai
}

func TestProcessSuccess(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	proc := New(cfg, med, ai, logger.New("error"))

	input := writeInputVideo(t, cfg, "demo.mp4")
	if err := proc.Process(context.Background(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, name := range []string{"demo.srt", "demo.revised.srt", "demo.transcript.docx", "demo.analysis.md", "demo.analysis.docx"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.Output, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	srt, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "demo.srt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(srt), "00:00:00,000 --> 00:00:02,000") {
		t.Errorf("srt content = %q", srt)
	}

	// Original moved out of the watch folder.
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Error("input file was not archived")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "demo.mp4")); err != nil {
		t.Errorf("archived copy missing: %v", err)
	}
}

func TestProcessOutsideInputDirNotArchived(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	proc := New(cfg, med, ai, logger.New("error"))

	// A file processed directly, from outside the watch folder, must
	// stay where the user put it.
	elsewhere := t.TempDir()
	input := filepath.Join(elsewhere, "demo.mp4")
	if err := os.WriteFile(input, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := proc.Process(context.Background(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if _, err := os.Stat(input); err != nil {
		t.Errorf("input outside the watch folder was moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "demo.mp4")); !os.IsNotExist(err) {
		t.Error("file outside the watch folder must not be archived")
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	med.audioErr = &decode.Error{Err: fmt.Errorf("unsupported codec")}
	proc := New(cfg, med, ai, logger.New("error"))

	input := writeInputVideo(t, cfg, "bad.mp4")
	err := proc.Process(context.Background(), input)
	if err == nil {
		t.Fatal("Process() should fail")
	}
	if !strings.Contains(err.Error(), "could not process audio") {
		t.Errorf("error %q should carry the user-facing message", err)
	}

	// Nothing exported, nothing archived.
	entries, _ := os.ReadDir(cfg.Paths.Output)
	if len(entries) != 0 {
		t.Errorf("output dir not empty after failure: %v", entries)
	}
	if _, err := os.Stat(input); err != nil {
		t.Error("failed input should stay in place")
	}
}

func TestProcessFrameFailureDiscardsRun(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	med.framesErr = &source.LoadError{Reason: "seek failed"}
	proc := New(cfg, med, ai, logger.New("error"))

	input := writeInputVideo(t, cfg, "clip.mp4")
	err := proc.Process(context.Background(), input)
	if err == nil {
		t.Fatal("Process() should fail")
	}
	if !strings.Contains(err.Error(), "could not load the video source") {
		t.Errorf("error %q should carry the load message", err)
	}
	if ai.visionCalls != 0 {
		t.Error("vision must not run after a frame sampling failure")
	}
}

func TestProcessRevisionMismatch(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	ai.reviseErr = &transcript.FormatMismatchError{Want: 2, Got: 3}
	proc := New(cfg, med, ai, logger.New("error"))

	input := writeInputVideo(t, cfg, "clip.mp4")
	err := proc.Process(context.Background(), input)
	if err == nil {
		t.Fatal("Process() should fail")
	}
	if !strings.Contains(err.Error(), "did not match the transcript") {
		t.Errorf("error %q should carry the mismatch message", err)
	}
}

func TestProcessAudioOnlySkipsFramesAndVision(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	proc := New(cfg, med, ai, logger.New("error"))

	path := filepath.Join(cfg.Paths.Input, "talk.mp3")
	if err := os.WriteFile(path, []byte("mp3"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if med.framesCalls != 0 {
		t.Error("frame sampling must be skipped for audio-only sources")
	}
	if ai.visionCalls != 0 {
		t.Error("vision must be skipped for audio-only sources")
	}

	// The analysis artifacts must not exist without vision output.
	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "talk.analysis.md")); !os.IsNotExist(err) {
		t.Error("analysis markdown should not be written for audio-only runs")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "talk.srt")); err != nil {
		t.Errorf("srt missing: %v", err)
	}
}

func TestProcessMissingInput(t *testing.T) {
	cfg := testConfig(t)
	med, ai := defaultFakes()
	proc := New(cfg, med, ai, logger.New("error"))

	err := proc.Process(context.Background(), filepath.Join(cfg.Paths.Input, "ghost.mp4"))
	if err == nil {
		t.Fatal("Process() should fail for a missing input")
	}
	if !strings.Contains(err.Error(), "could not load the video source") {
		t.Errorf("error %q should carry the load message", err)
	}
	if med.audioCalls != 0 {
		t.Error("no media work should run for a missing input")
	}
}
