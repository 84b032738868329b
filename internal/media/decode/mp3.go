package decode

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/nguyentantai21042004/script-flow/pkg/wav"
)

// MP3Decoder decodes MP3 audio in-process, without spawning ffmpeg.
// Used for audio-only MP3 sources.
type MP3Decoder struct{}

// NewMP3 creates the native MP3 decoder.
func NewMP3() *MP3Decoder {
	return &MP3Decoder{}
}

// IsMP3 sniffs the first bytes of a source for an ID3 tag or an
// MPEG audio frame sync word.
func IsMP3(data []byte) bool {
	if len(data) < 3 {
		return false
	}
	if bytes.HasPrefix(data, []byte("ID3")) {
		return true
	}
	// Frame sync: 11 set bits, MPEG-1/2 layer III.
	return data[0] == 0xFF && (data[1] == 0xFB || data[1] == 0xFA || data[1] == 0xF3 || data[1] == 0xF2)
}

// Decode converts MP3 bytes to per-channel float samples. go-mp3
// always emits 16-bit little-endian stereo frames.
func (d *MP3Decoder) Decode(ctx context.Context, data []byte) (*wav.PCMBuffer, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("mp3 decode: %w", err)}
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("mp3 decode: %w", err)}
	}

	const channels = 2
	frameBytes := channels * 2
	frames := len(raw) / frameBytes

	left := make([]float64, frames)
	right := make([]float64, frames)
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(raw[i*frameBytes:]))
		r := int16(binary.LittleEndian.Uint16(raw[i*frameBytes+2:]))
		left[i] = float64(l) / 32768
		right[i] = float64(r) / 32768
	}

	return &wav.PCMBuffer{
		SampleRate: dec.SampleRate(),
		Channels:   [][]float64{left, right},
	}, nil
}
