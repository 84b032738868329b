package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/script-flow/internal/transcript"
)

const revisePrompt = `You are a script editor. Polish the text of each transcript segment below:
remove filler words, fix grammar, keep the speaker's meaning and tone.

Rules:
- Return EXACTLY %d segments, one per input segment, same order
- Do NOT merge, split, add or drop segments
- Do NOT change start or end values
- Reply ONLY with a JSON array of objects: [{"start": ..., "end": ..., "text": "..."}]

Segments:
%s`

// Revise asks the model to polish segment text, then merges it back
// onto the original boundaries. A response whose segment count
// disagrees with the input is rejected as a format mismatch, never
// truncated or padded.
func (c *implClient) Revise(ctx context.Context, segments []transcript.Segment) ([]transcript.Segment, error) {
	encoded, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("revise: encode segments: %w", err)
	}

	prompt := fmt.Sprintf(revisePrompt, len(segments), encoded)
	c.logger.Info(ctx, "Revising %d segments", len(segments))

	text, err := c.generate(ctx, []*genai.Part{genai.NewPartFromText(prompt)}, true)
	if err != nil {
		return nil, fmt.Errorf("revise: %w", err)
	}

	revised, err := parseSegments(text)
	if err != nil {
		return nil, fmt.Errorf("revise: %w", err)
	}

	merged, err := transcript.ApplyRevision(segments, revised)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "Revision complete")
	return merged, nil
}
