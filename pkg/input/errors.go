package input

import (
	"errors"
	"fmt"
)

// Common decoding errors.
var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrInvalidUTF8     = errors.New("invalid UTF-8 sequence")
)

// DecodeError reports input that could not be turned into text.
type DecodeError struct {
	Source string
	Offset int // byte offset in the decoded stream
	Err    error
}

func (e *DecodeError) Error() string {
	source := e.Source
	if source == "" {
		source = "<input>"
	}
	return fmt.Sprintf("decode error in %s at byte %d: %v", source, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
