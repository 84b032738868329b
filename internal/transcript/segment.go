// Package transcript models timestamped transcript segments and
// their SubRip rendering.
package transcript

import "fmt"

// Segment is one timestamped span of transcript text. Start and End
// are seconds from the start of the media.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Validate checks the segment's time boundaries.
func (s Segment) Validate() error {
	if s.Start < 0 {
		return fmt.Errorf("segment start %v is negative", s.Start)
	}
	if s.End <= s.Start {
		return fmt.Errorf("segment end %v is not after start %v", s.End, s.Start)
	}
	return nil
}

// ValidateAll checks every segment of a transcript.
func ValidateAll(segments []Segment) error {
	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return nil
}

// FormatMismatchError signals that a collaborator's response shape
// disagrees with the transcript it was derived from. The response is
// rejected outright, never truncated or padded.
type FormatMismatchError struct {
	Want int
	Got  int
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("revised transcript has %d segments, want %d", e.Got, e.Want)
}

// ApplyRevision merges revised text onto the original transcript.
// The revision must have exactly the original segment count; only
// text is taken from it, the original time boundaries are kept.
func ApplyRevision(original, revised []Segment) ([]Segment, error) {
	if len(revised) != len(original) {
		return nil, &FormatMismatchError{Want: len(original), Got: len(revised)}
	}

	merged := make([]Segment, len(original))
	for i, seg := range original {
		merged[i] = Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  revised[i].Text,
		}
	}
	return merged, nil
}
