package media

import "fmt"

// EncodingError signals that a decoded PCM buffer could not be
// serialized or base64-encoded for transport.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode audio payload: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
