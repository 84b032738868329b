package processor

import "context"

// Processor runs the whole pipeline for one input: a local video
// path or an HTTP(S) URL.
type Processor interface {
	Process(ctx context.Context, input string) error
}
