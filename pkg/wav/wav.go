// Package wav serializes decoded PCM audio into the canonical
// 16-bit RIFF/WAVE byte layout consumed by the transcription API.
package wav

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed RIFF/WAVE header length in bytes.
	HeaderSize = 44

	// MIMEType tags every produced payload.
	MIMEType = "audio/wav"

	bitsPerSample = 16
	bytesPerFrame = 2
)

// PCMBuffer holds decoded audio as per-channel normalized float
// samples in [-1, 1]. All channels must have equal length.
type PCMBuffer struct {
	SampleRate int
	Channels   [][]float64
}

// FrameCount returns the per-channel sample count.
func (b *PCMBuffer) FrameCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

func (b *PCMBuffer) validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", b.SampleRate)
	}
	if len(b.Channels) < 1 {
		return fmt.Errorf("at least one channel is required")
	}
	frames := len(b.Channels[0])
	for i, ch := range b.Channels {
		if len(ch) != frames {
			return fmt.Errorf("channel %d has %d samples, want %d", i, len(ch), frames)
		}
	}
	return nil
}

// Payload is a serialized WAV buffer plus its transport encoding.
type Payload struct {
	Bytes       []byte
	EncodedText string
	MIMEType    string
}

// Encode serializes a PCMBuffer into a complete WAV byte sequence:
// a 44-byte little-endian header followed by interleaved 16-bit
// frames (all channels' sample 0, then all channels' sample 1, ...).
func Encode(buf *PCMBuffer) ([]byte, error) {
	if err := buf.validate(); err != nil {
		return nil, fmt.Errorf("invalid pcm buffer: %w", err)
	}

	channels := len(buf.Channels)
	frames := buf.FrameCount()
	dataSize := frames * channels * bytesPerFrame
	out := make([]byte, HeaderSize+dataSize)

	writeHeader(out, buf.SampleRate, channels, dataSize)

	pos := HeaderSize
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			binary.LittleEndian.PutUint16(out[pos:], uint16(quantize(buf.Channels[ch][frame])))
			pos += 2
		}
	}

	return out, nil
}

// NewPayload serializes the buffer and base64-encodes it for transport.
func NewPayload(buf *PCMBuffer) (*Payload, error) {
	raw, err := Encode(buf)
	if err != nil {
		return nil, err
	}
	return &Payload{
		Bytes:       raw,
		EncodedText: base64.StdEncoding.EncodeToString(raw),
		MIMEType:    MIMEType,
	}, nil
}

func writeHeader(out []byte, sampleRate, channels, dataSize int) {
	totalSize := HeaderSize + dataSize

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(totalSize-8))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16) // fmt sub-chunk size
	binary.LittleEndian.PutUint16(out[20:], 1)  // PCM
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(sampleRate*channels*bytesPerFrame))
	binary.LittleEndian.PutUint16(out[32:], uint16(channels*bytesPerFrame))
	binary.LittleEndian.PutUint16(out[34:], bitsPerSample)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(totalSize-HeaderSize))
}

// quantize converts one normalized float sample to int16. The
// asymmetric scale around zero (32768 on the negative side, 32767 on
// the positive) is a wire-format contract and must not be changed to
// a symmetric round.
func quantize(s float64) int16 {
	if s < -1 {
		s = -1
	} else if s > 1 {
		s = 1
	}
	if 0.5+s < 0 {
		return int16(s * 32768)
	}
	return int16(s * 32767)
}

// Header is the decoded view of a WAV header, used to verify
// produced buffers.
type Header struct {
	TotalSize     int
	AudioFormat   int
	ChannelCount  int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataSize      int
}

// ParseHeader reads the fixed 44-byte header back out of a WAV
// byte sequence.
func ParseHeader(raw []byte) (*Header, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("buffer too short for wav header: %d bytes", len(raw))
	}
	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE buffer")
	}
	return &Header{
		TotalSize:     int(binary.LittleEndian.Uint32(raw[4:])) + 8,
		AudioFormat:   int(binary.LittleEndian.Uint16(raw[20:])),
		ChannelCount:  int(binary.LittleEndian.Uint16(raw[22:])),
		SampleRate:    int(binary.LittleEndian.Uint32(raw[24:])),
		ByteRate:      int(binary.LittleEndian.Uint32(raw[28:])),
		BlockAlign:    int(binary.LittleEndian.Uint16(raw[32:])),
		BitsPerSample: int(binary.LittleEndian.Uint16(raw[34:])),
		DataSize:      int(binary.LittleEndian.Uint32(raw[40:])),
	}, nil
}
