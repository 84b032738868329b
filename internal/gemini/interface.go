package gemini

import (
	"context"

	"github.com/nguyentantai21042004/script-flow/internal/transcript"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// Client is the generative-AI collaborator behind the pipeline. All
// three operations are single-shot: a failure is terminal for the
// run, never retried (API-key rotation on quota errors happens below
// this interface, before any result exists).
type Client interface {
	// Transcribe turns a WAV payload into timestamped segments.
	Transcribe(ctx context.Context, payload *wav.Payload) ([]transcript.Segment, error)

	// Revise polishes segment text. The result has exactly the input
	// segment count with the original time boundaries preserved; any
	// other response shape is rejected.
	Revise(ctx context.Context, segments []transcript.Segment) ([]transcript.Segment, error)

	// AnalyzeVision describes the video from its transcript plus
	// sampled keyframes, returning markdown text.
	AnalyzeVision(ctx context.Context, segments []transcript.Segment, frames []string) (string, error)
}
