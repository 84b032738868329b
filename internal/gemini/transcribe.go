package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/script-flow/internal/transcript"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

const transcribePrompt = `Transcribe this audio recording into timestamped segments.

Rules:
- Split the speech at natural sentence or phrase boundaries
- Timestamps are seconds from the start of the audio, as numbers
- Keep every spoken word, including filler words
- Reply ONLY with a JSON array of objects: [{"start": 0.0, "end": 2.5, "text": "..."}]`

// Transcribe sends the WAV payload inline and parses the segment
// array out of the JSON response.
func (c *implClient) Transcribe(ctx context.Context, payload *wav.Payload) ([]transcript.Segment, error) {
	c.logger.Info(ctx, "Transcribing %d bytes of audio", len(payload.Bytes))

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(payload.Bytes, payload.MIMEType),
	}

	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	segments, err := parseSegments(text)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	c.logger.Info(ctx, "Transcription produced %d segments", len(segments))
	return segments, nil
}

// parseSegments decodes a JSON segment array and checks its shape.
func parseSegments(text string) ([]transcript.Segment, error) {
	var segments []transcript.Segment
	if err := json.Unmarshal([]byte(stripFences(text)), &segments); err != nil {
		return nil, fmt.Errorf("response is not a segment array: %w", err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("response contains no segments")
	}
	if err := transcript.ValidateAll(segments); err != nil {
		return nil, fmt.Errorf("response segments invalid: %w", err)
	}
	return segments, nil
}
