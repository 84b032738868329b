package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/script-flow/internal/logger"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clip.mp4", true},
		{"CLIP.MP4", true},
		{"movie.mkv", true},
		{"talk.mp3", true},
		{"voice.wav", true},
		{"notes.txt", false},
		{"clip.mp4.part", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isMediaFile(tt.path); got != tt.want {
				t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherDispatchesNewFile(t *testing.T) {
	dir := t.TempDir()

	var (
		mu      sync.Mutex
		handled []string
	)
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, path)
		mu.Unlock()
		return nil
	}

	w, err := New(dir, handler, logger.New("error"), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watch loop a moment to come up, then drop a file in.
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "new.mp4")
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler was never invoked")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() returned %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if handled[0] != path {
		t.Errorf("handled %q, want %q", handled[0], path)
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	_, err := New("does/not/exist", func(ctx context.Context, p string) error { return nil }, logger.New("error"), 1)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
