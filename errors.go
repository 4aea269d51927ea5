package qrai

import (
	"errors"
	"fmt"
)

// MaxImageBytes is the largest accepted encoded image size. Larger
// inputs fail with ImageTooLargeError before any decoding happens.
const MaxImageBytes = 10 << 20

// ErrDecodeFailed reports that every tier of the decode pipeline
// exhausted without finding a QR code. Terminal for that call.
var ErrDecodeFailed = errors.New("no QR code found in image")

// ImageLoadError reports that the input bytes are not a recognisable
// PNG/JPEG or decoded to an invalid frame.
type ImageLoadError struct {
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load image: %v", e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// ImageTooLargeError reports an input exceeding MaxImageBytes.
type ImageTooLargeError struct {
	Size int
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("image too large: %d bytes exceeds maximum %d", e.Size, MaxImageBytes)
}
