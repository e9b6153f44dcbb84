package model

import (
	"errors"

	"github.com/soocke/digit-viewer-go/domain/idx"
)

// Render and selection errors.
var (
	ErrIndexOutOfRange = errors.New("view model: index out of range")
	ErrResolution      = errors.New("view model: target must be 28x28")
	ErrBufferTooSmall  = errors.New("view model: target buffer too small")
)

// Policy decides what Advance and Back do at the ends of the collection.
type Policy int

const (
	// PolicyClamp keeps the index at the first/last image.
	PolicyClamp Policy = iota
	// PolicyWrap cycles around to the other end.
	PolicyWrap
)

func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ViewModel tracks the selected image and renders it into a caller-owned
// RGBA framebuffer. Not safe for concurrent use; all calls come from the UI
// thread.
type ViewModel struct {
	images []idx.ImageRecord
	labels []byte
	index  int
	policy Policy
}

// NewViewModel returns a model selecting the first image. labels may be nil.
func NewViewModel(images []idx.ImageRecord, labels []byte, policy Policy) *ViewModel {
	return &ViewModel{images: images, labels: labels, policy: policy}
}

// Index returns the current selection.
func (m *ViewModel) Index() int { return m.index }

// Len returns the number of images.
func (m *ViewModel) Len() int { return len(m.images) }

// Policy returns the bounding policy.
func (m *ViewModel) Policy() Policy { return m.policy }

// Advance selects the next image.
func (m *ViewModel) Advance() {
	n := len(m.images)
	if n == 0 {
		return
	}
	switch {
	case m.index+1 < n:
		m.index++
	case m.policy == PolicyWrap:
		m.index = 0
	default:
		m.index = n - 1
	}
}

// Back selects the previous image.
func (m *ViewModel) Back() {
	n := len(m.images)
	if n == 0 {
		return
	}
	switch {
	case m.index > 0:
		m.index--
	case m.policy == PolicyWrap:
		m.index = n - 1
	default:
		m.index = 0
	}
}

// Reset selects the first image.
func (m *ViewModel) Reset() { m.index = 0 }

// Current returns the selected image.
func (m *ViewModel) Current() (*idx.ImageRecord, error) {
	if m.index < 0 || m.index >= len(m.images) {
		return nil, ErrIndexOutOfRange
	}
	return &m.images[m.index], nil
}

// Label returns the label of the selected image, if one is known.
func (m *ViewModel) Label() (byte, bool) {
	if m.index < 0 || m.index >= len(m.labels) {
		return 0, false
	}
	return m.labels[m.index], true
}

// Render writes the selected image into buf as [v, v, v, 255] per pixel.
// Only the native 28x28 resolution is supported; scaling for display is the
// caller's job.
func (m *ViewModel) Render(buf []byte, width, height int) error {
	if width != idx.Cols || height != idx.Rows {
		return ErrResolution
	}
	if len(buf) < width*height*4 {
		return ErrBufferTooSmall
	}
	img, err := m.Current()
	if err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			v := img[i]
			p := buf[4*i : 4*i+4]
			p[0], p[1], p[2], p[3] = v, v, v, 0xff
		}
	}
	return nil
}
