package images

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FrameImage wraps an RGBA framebuffer of w x h pixels without copying it.
// It returns nil when buf is too short.
func FrameImage(buf []byte, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 || len(buf) < w*h*4 {
		return nil
	}
	return &image.RGBA{Pix: buf[:w*h*4], Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}

// Scale returns a nearest-neighbour upscale of src by an integer factor.
// Each source pixel becomes a factor x factor block. factor < 2 returns src.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	if src == nil || factor < 2 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w*factor, h*factor))
	for y := 0; y < h; y++ {
		srow := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		// build the first scaled row, then copy it factor-1 times
		drow := dst.Pix[y*factor*dst.Stride : y*factor*dst.Stride+dst.Stride]
		for x := 0; x < w; x++ {
			px := srow[4*x : 4*x+4]
			for k := 0; k < factor; k++ {
				copy(drow[4*(x*factor+k):], px)
			}
		}
		for k := 1; k < factor; k++ {
			copy(dst.Pix[(y*factor+k)*dst.Stride:], drow)
		}
	}
	return dst
}

// FitFactor returns the largest integer factor that fits a w x h image
// inside maxW x maxH, never below 1.
func FitFactor(w, h, maxW, maxH int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	f := maxW / w
	if g := maxH / h; g < f {
		f = g
	}
	if f < 1 {
		f = 1
	}
	return f
}
