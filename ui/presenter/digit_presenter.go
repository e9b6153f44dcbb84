package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/digit-viewer-go/domain/idx"
	"github.com/soocke/digit-viewer-go/ui/images"
)

// DigitModel is the view model surface the presenter drives.
type DigitModel interface {
	Render(buf []byte, width, height int) error
	Advance()
	Back()
	Reset()
	Index() int
	Len() int
	Label() (byte, bool)
}

// DigitView displays a rendered frame and a status line.
type DigitView interface {
	ShowDigit(img *image.RGBA) error
	SetStatus(text string)
}

// SurfaceError reports a display failure during a redraw.
type SurfaceError struct{ Err error }

func (e *SurfaceError) Error() string { return "surface: " + e.Err.Error() }

func (e *SurfaceError) Unwrap() error { return e.Err }

// DigitPresenter renders the selected digit into its own framebuffer and
// pushes it to the view on every redraw.
type DigitPresenter struct {
	model  DigitModel
	view   DigitView
	logger *slog.Logger
	frame  []byte
}

// NewDigitPresenter returns a presenter with a native-resolution framebuffer.
func NewDigitPresenter(model DigitModel, view DigitView, logger *slog.Logger) *DigitPresenter {
	return &DigitPresenter{model: model, view: view, logger: logger, frame: make([]byte, idx.ImageSize*4)}
}

// Redraw renders the current selection and updates the view.
// View failures are returned as *SurfaceError.
func (p *DigitPresenter) Redraw() error {
	if p == nil || p.model == nil || p.view == nil {
		return nil
	}
	if err := p.model.Render(p.frame, idx.Cols, idx.Rows); err != nil {
		return fmt.Errorf("render %d: %w", p.model.Index(), err)
	}
	if err := p.view.ShowDigit(images.FrameImage(p.frame, idx.Cols, idx.Rows)); err != nil {
		return &SurfaceError{Err: err}
	}
	p.view.SetStatus(p.status())
	if p.logger != nil {
		label, ok := p.model.Label()
		p.logger.Debug("redraw", "index", p.model.Index(), "label", label, "labelled", ok)
	}
	return nil
}

func (p *DigitPresenter) status() string {
	label := "?"
	if l, ok := p.model.Label(); ok {
		label = fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("Label: %s   %d/%d", label, p.model.Index()+1, p.model.Len())
}

// Next advances the selection and redraws.
func (p *DigitPresenter) Next() error {
	if p == nil || p.model == nil {
		return nil
	}
	p.model.Advance()
	return p.Redraw()
}

// Prev steps back one image and redraws.
func (p *DigitPresenter) Prev() error {
	if p == nil || p.model == nil {
		return nil
	}
	p.model.Back()
	return p.Redraw()
}

// First jumps to the first image and redraws.
func (p *DigitPresenter) First() error {
	if p == nil || p.model == nil {
		return nil
	}
	p.model.Reset()
	return p.Redraw()
}
