package view

import (
	"errors"
	"fmt"
	"image"

	"github.com/soocke/digit-viewer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// DigitCanvas shows the current digit frame as a Tk photo, upscaled for display.
type DigitCanvas interface {
	Show(img *image.RGBA) error
}

var errNotBuilt = errors.New("view not built")

type digitCanvas struct {
	label     *LabelWidget
	factor    int
	prevPhoto *Img // last Tk photo; deleted when replaced
}

// NewDigitCanvas creates the digit label at row 0 and returns the view.
// factor is the integer display upscale applied to every frame.
func NewDigitCanvas(factor int) DigitCanvas {
	if factor < 1 {
		factor = 1
	}
	photo := NewPhoto(Data(images.EncodePNG(placeholder(factor))))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(0), Column(0), Sticky("nswe"), Padx("0.4m"), Pady("0.4m"))
	return &digitCanvas{label: label, factor: factor, prevPhoto: photo}
}

func placeholder(factor int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 28*factor, 28*factor))
}

// Show replaces the displayed photo. Tk failures surface as errors.
func (v *digitCanvas) Show(img *image.RGBA) (err error) {
	if v == nil || v.label == nil {
		return errNotBuilt
	}
	if img == nil {
		return errors.New("nil frame")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tk photo: %v", r)
		}
	}()
	pngBytes := images.EncodePNG(images.Scale(img, v.factor))
	if len(pngBytes) == 0 {
		return errors.New("png encode failed")
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
	return nil
}
