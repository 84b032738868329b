package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/script-flow/internal/transcript"
)

const visionPrompt = `These images are keyframes sampled from a video, in time order, and the
text below is its transcript. Describe what the video shows and how the
visuals relate to what is said. Use markdown with a short heading, a
paragraph per notable visual moment, and a closing summary.

Transcript:
%s`

// AnalyzeVision sends the transcript plus the sampled keyframes and
// returns the model's markdown analysis.
func (c *implClient) AnalyzeVision(ctx context.Context, segments []transcript.Segment, frames []string) (string, error) {
	if len(frames) == 0 {
		return "", fmt.Errorf("analyze vision: no keyframes supplied")
	}

	var sb strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&sb, "[%s - %s] %s\n",
			transcript.FormatTimestamp(seg.Start),
			transcript.FormatTimestamp(seg.End),
			seg.Text,
		)
	}

	parts := []*genai.Part{genai.NewPartFromText(fmt.Sprintf(visionPrompt, sb.String()))}
	for i, frame := range frames {
		data, mime, err := decodeDataURI(frame)
		if err != nil {
			return "", fmt.Errorf("analyze vision: frame %d: %w", i, err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mime))
	}

	c.logger.Info(ctx, "Analyzing %d keyframes against %d segments", len(frames), len(segments))

	text, err := c.generate(ctx, parts, false)
	if err != nil {
		return "", fmt.Errorf("analyze vision: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// decodeDataURI splits a data:<mime>;base64,<payload> string back
// into raw bytes and its MIME type.
func decodeDataURI(uri string) ([]byte, string, error) {
	const scheme = "data:"
	if !strings.HasPrefix(uri, scheme) {
		return nil, "", fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(uri[len(scheme):], ",")
	if !ok {
		return nil, "", fmt.Errorf("data URI has no payload")
	}

	mime, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("data URI encoding %q is not base64", encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URI payload: %w", err)
	}
	return data, mime, nil
}
