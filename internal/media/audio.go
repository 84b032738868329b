package media

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/script-flow/internal/media/decode"
	"github.com/nguyentantai21042004/script-flow/internal/source"
	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// EncodeAudio reads the whole source, decodes its audio track to PCM
// and serializes it as a canonical WAV payload. Decode failures reject
// with *decode.Error, serialization failures with *EncodingError; no
// partial result is ever returned.
func (s *implService) EncodeAudio(ctx context.Context, src *source.Source) (*wav.Payload, error) {
	data, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	dec := s.decoderFor(data)
	buf, err := dec.Decode(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "Decoded audio: %d Hz, %d channels, %d frames",
		buf.SampleRate, len(buf.Channels), buf.FrameCount())

	payload, err := wav.NewPayload(buf)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}

	s.logger.Info(ctx, "Audio encoded: %d wav bytes (%s)", len(payload.Bytes), src.Name)
	return payload, nil
}

// decoderFor picks the in-process MP3 decoder for raw MPEG audio and
// the ffmpeg decoder for everything else.
func (s *implService) decoderFor(data []byte) decode.Decoder {
	if decode.IsMP3(data) {
		return s.mp3Dec
	}
	return s.ffmpegDec
}
