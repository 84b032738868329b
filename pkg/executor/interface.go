package executor

import "context"

// Executor runs external media tools (ffmpeg, ffprobe).
type Executor interface {
	// Execute runs a command and returns its stdout as text.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteBytes runs a command and returns its raw stdout, for
	// commands that write binary data (PCM streams, JPEG frames) to
	// a pipe.
	ExecuteBytes(ctx context.Context, name string, args ...string) ([]byte, error)

	// ExecuteInput runs a command feeding input on stdin and returns
	// its raw stdout.
	ExecuteInput(ctx context.Context, input []byte, name string, args ...string) ([]byte, error)
}
