package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/script-flow/internal/media"
	"github.com/nguyentantai21042004/script-flow/internal/media/decode"
	"github.com/nguyentantai21042004/script-flow/internal/source"
	"github.com/nguyentantai21042004/script-flow/internal/transcript"
)

// UserMessage maps a pipeline error to the single human-readable
// message shown to the user.
func UserMessage(err error) string {
	var (
		loadErr     *source.LoadError
		decodeErr   *decode.Error
		encodingErr *media.EncodingError
		mismatchErr *transcript.FormatMismatchError
	)

	switch {
	case errors.As(err, &loadErr):
		return "could not load the video source"
	case errors.As(err, &decodeErr):
		return "could not process audio"
	case errors.As(err, &encodingErr):
		return "could not encode audio for transport"
	case errors.As(err, &mismatchErr):
		return "the AI response did not match the transcript"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "processing was cancelled"
	default:
		return "processing failed"
	}
}
