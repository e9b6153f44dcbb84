package idx

import (
	"errors"
	"fmt"
)

// IDX header constants for the MNIST image and label files.
const (
	ImageMagic = 2051
	LabelMagic = 2049

	Rows      = 28
	Cols      = 28
	ImageSize = Rows * Cols

	imageHeaderSize = 16
	labelHeaderSize = 8
)

// ImageRecord is one 28x28 grayscale digit in row-major order.
type ImageRecord [ImageSize]byte

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrFormat     = errors.New("idx: bad format")
	ErrTruncated  = errors.New("idx: truncated")
	ErrDimensions = errors.New("idx: unsupported dimensions")
)

// FormatError reports a magic number mismatch or a malformed header field.
type FormatError struct {
	Field string
	Want  int32
	Got   int32
}

func (e *FormatError) Error() string {
	if e.Field == "magic" {
		return fmt.Sprintf("idx: bad magic %d, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("idx: bad %s %d", e.Field, e.Got)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// TruncationError reports a buffer shorter than its header declares.
type TruncationError struct {
	Want int
	Got  int
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("idx: truncated, need %d bytes, have %d", e.Want, e.Got)
}

func (e *TruncationError) Is(target error) bool { return target == ErrTruncated }

// DimensionError reports header row/column counts other than 28x28.
type DimensionError struct {
	Rows, Cols int32
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("idx: image dimensions %dx%d, want %dx%d", e.Rows, e.Cols, Rows, Cols)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimensions }
