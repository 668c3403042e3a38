package imgio

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a filename extension or a byte
// signature does not match any allowed image format. It is a user-correctable
// rejection, as opposed to a DecodeError which means the bytes claimed a
// supported format but could not be parsed.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeError wraps a failure to parse base64 text or image bytes.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// FetchError reports a failed remote fetch. Status is zero when the request
// never produced a response (network error, timeout).
type FetchError struct {
	URL    string
	Status int
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }
