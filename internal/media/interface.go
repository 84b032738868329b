package media

import (
	"context"

	"github.com/nguyentantai21042004/script-flow/internal/source"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// Service exposes the two leaf media operations of the pipeline. The
// two are independent: they share no state and may run concurrently
// over the same source.
type Service interface {
	// EncodeAudio decodes the source's audio track and serializes it
	// as a base64-encoded 16-bit PCM WAV payload.
	EncodeAudio(ctx context.Context, src *source.Source) (*wav.Payload, error)

	// SampleFrames captures count evenly time-spaced JPEG stills from
	// the source, returned as data URIs in capture order. count must
	// be at least 1. All-or-nothing: no partial list is returned.
	SampleFrames(ctx context.Context, src *source.Source, count int) ([]string, error)
}
