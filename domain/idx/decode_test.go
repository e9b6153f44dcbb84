package idx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// buildImages returns an IDX3 file with the given header fields followed by pixels.
func buildImages(magic, count, rows, cols int32, pixels []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []int32{magic, count, rows, cols} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(pixels)
	return buf.Bytes()
}

func buildLabels(magic int32, labels []byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, magic)
	_ = binary.Write(&buf, binary.BigEndian, int32(len(labels)))
	buf.Write(labels)
	return buf.Bytes()
}

func blackWhite() []byte {
	px := make([]byte, 2*ImageSize)
	for i := ImageSize; i < len(px); i++ {
		px[i] = 255
	}
	return px
}

func gzipBytes(t *testing.T, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImages_DeclaredCount(t *testing.T) {
	px := make([]byte, 3*ImageSize)
	for i := range px {
		px[i] = byte(i)
	}
	images, err := DecodeImages(buildImages(ImageMagic, 3, Rows, Cols, px))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 records, got %d", len(images))
	}
	for i, img := range images {
		if !bytes.Equal(img[:], px[i*ImageSize:(i+1)*ImageSize]) {
			t.Fatalf("record %d not copied verbatim", i)
		}
	}
}

func TestDecodeImages_IgnoresTrailingBytes(t *testing.T) {
	px := append(make([]byte, ImageSize), 1, 2, 3)
	images, err := DecodeImages(buildImages(ImageMagic, 1, Rows, Cols, px))
	if err != nil || len(images) != 1 {
		t.Fatalf("expected 1 record, got %d err=%v", len(images), err)
	}
}

func TestDecodeImages_BadMagic(t *testing.T) {
	for _, magic := range []int32{0, 2049, 2052, -2051} {
		_, err := DecodeImages(buildImages(magic, 1, Rows, Cols, make([]byte, ImageSize)))
		var fe *FormatError
		if !errors.As(err, &fe) || !errors.Is(err, ErrFormat) {
			t.Fatalf("magic %d: expected FormatError, got %v", magic, err)
		}
		if fe.Got != magic {
			t.Fatalf("magic %d: error reports %d", magic, fe.Got)
		}
	}
}

func TestDecodeImages_NegativeCount(t *testing.T) {
	_, err := DecodeImages(buildImages(ImageMagic, -1, Rows, Cols, nil))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestDecodeImages_Truncated(t *testing.T) {
	px := make([]byte, 2*ImageSize-1)
	_, err := DecodeImages(buildImages(ImageMagic, 2, Rows, Cols, px))
	var te *TruncationError
	if !errors.As(err, &te) {
		t.Fatalf("expected TruncationError, got %v", err)
	}
	if te.Want != 16+2*ImageSize || te.Got != 16+len(px) {
		t.Fatalf("unexpected sizes want=%d got=%d", te.Want, te.Got)
	}
	if _, err := DecodeImages([]byte{0, 0, 8, 3, 0, 0}); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short header: expected TruncationError, got %v", err)
	}
}

func TestDecodeImages_Dimensions(t *testing.T) {
	_, err := DecodeImages(buildImages(ImageMagic, 1, 32, 32, make([]byte, 32*32)))
	var de *DimensionError
	if !errors.As(err, &de) || de.Rows != 32 || de.Cols != 32 {
		t.Fatalf("expected DimensionError 32x32, got %v", err)
	}
}

func TestDecodeLabels(t *testing.T) {
	in := []byte{5, 0, 4, 1, 9, 2}
	labels, err := DecodeLabels(buildLabels(LabelMagic, in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(labels, in) {
		t.Fatalf("labels changed: %v", labels)
	}
	// Everything after the header is returned, regardless of the declared count.
	raw := append(buildLabels(LabelMagic, in), 7)
	labels, _ = DecodeLabels(raw)
	if len(labels) != len(raw)-8 {
		t.Fatalf("expected %d labels, got %d", len(raw)-8, len(labels))
	}
}

func TestDecodeLabels_BadMagic(t *testing.T) {
	_, err := DecodeLabels(buildLabels(ImageMagic, []byte{1}))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if _, err := DecodeLabels([]byte{0, 0, 8, 1}); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short header: expected TruncationError, got %v", err)
	}
}

func TestParse_GzipMatchesRaw(t *testing.T) {
	raw := buildImages(ImageMagic, 2, Rows, Cols, blackWhite())
	lbl := buildLabels(LabelMagic, []byte{3, 8})
	plain, err := Parse(raw, lbl, 0)
	if err != nil {
		t.Fatalf("parse raw: %v", err)
	}
	zipped, err := Parse(gzipBytes(t, raw), gzipBytes(t, lbl), 0)
	if err != nil {
		t.Fatalf("parse gzip: %v", err)
	}
	if len(zipped.Images) != 2 || zipped.Images[1] != plain.Images[1] || !bytes.Equal(zipped.Labels, plain.Labels) {
		t.Fatalf("gzip dataset differs from raw")
	}
}

func TestParse_Limit(t *testing.T) {
	ds, err := Parse(buildImages(ImageMagic, 2, Rows, Cols, blackWhite()), buildLabels(LabelMagic, []byte{3, 8}), 1)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ds.Images) != 1 || len(ds.Labels) != 1 {
		t.Fatalf("expected 1 image and label, got %d/%d", len(ds.Images), len(ds.Labels))
	}
	ds, _ = Parse(buildImages(ImageMagic, 2, Rows, Cols, blackWhite()), nil, 0)
	if ds.Labels != nil {
		t.Fatalf("expected no labels")
	}
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, DefaultImagesFile+".gz")
	lblPath := filepath.Join(dir, DefaultLabelsFile)
	if err := os.WriteFile(imgPath, gzipBytes(t, buildImages(ImageMagic, 2, Rows, Cols, blackWhite())), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lblPath, buildLabels(LabelMagic, []byte{0, 1}), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(imgPath, lblPath, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Images) != 2 || ds.Images[1][0] != 255 || ds.Labels[1] != 1 {
		t.Fatalf("unexpected dataset: %d images labels=%v", len(ds.Images), ds.Labels)
	}

	if _, err := Load(filepath.Join(dir, "missing"), "", 0); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(lblPath, "", 0); !errors.Is(err, ErrFormat) {
		t.Fatalf("labels as images: expected FormatError, got %v", err)
	}
}
