package imgfile

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrLossyContainer    = errors.New("container is lossy and would corrupt scrambled pixels")
	ErrInvalidRaw        = errors.New("invalid raw container")
	ErrInvalidImage      = errors.New("invalid image")
)

// DecodeError is returned when an input file can't be read, or isn't a supported image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when an image can't be written to the output path.
// No output file is left behind when this is returned.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error: %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if an error is a decode error.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsEncodeError checks if an error is an encode error.
func IsEncodeError(err error) bool {
	var ee *EncodeError
	return errors.As(err, &ee)
}
