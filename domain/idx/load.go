package idx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Standard MNIST training file names, resolved against the working directory.
const (
	DefaultImagesFile = "train-images-idx3-ubyte"
	DefaultLabelsFile = "train-labels-idx1-ubyte"
)

// Dataset is the decoded image collection with its optional label set.
// Labels may be nil or shorter than Images.
type Dataset struct {
	Images []ImageRecord
	Labels []byte
}

// ReadFile returns the contents of path, gunzipping it when it starts with
// the gzip magic bytes.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f)
}

func readAll(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return gunzipMaybe(raw)
}

func gunzipMaybe(raw []byte) ([]byte, error) {
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		return raw, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadImages reads and decodes an images file.
func LoadImages(path string) ([]ImageRecord, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read images %q: %w", path, err)
	}
	images, err := DecodeImages(b)
	if err != nil {
		return nil, fmt.Errorf("decode images %q: %w", path, err)
	}
	return images, nil
}

// LoadLabels reads and decodes a labels file.
func LoadLabels(path string) ([]byte, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels %q: %w", path, err)
	}
	labels, err := DecodeLabels(b)
	if err != nil {
		return nil, fmt.Errorf("decode labels %q: %w", path, err)
	}
	return labels, nil
}

// Load decodes the dataset from disk. An empty labelsPath skips labels.
// limit > 0 caps the number of images (and labels) kept.
func Load(imagesPath, labelsPath string, limit int) (*Dataset, error) {
	images, err := LoadImages(imagesPath)
	if err != nil {
		return nil, err
	}
	var labels []byte
	if labelsPath != "" {
		if labels, err = LoadLabels(labelsPath); err != nil {
			return nil, err
		}
	}
	return truncate(&Dataset{Images: images, Labels: labels}, limit), nil
}

// Parse decodes an in-memory dataset; either input may be gzip-compressed.
// A nil labels slice skips labels.
func Parse(images, labels []byte, limit int) (*Dataset, error) {
	raw, err := gunzipMaybe(images)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{}
	if ds.Images, err = DecodeImages(raw); err != nil {
		return nil, err
	}
	if labels != nil {
		if raw, err = gunzipMaybe(labels); err != nil {
			return nil, err
		}
		if ds.Labels, err = DecodeLabels(raw); err != nil {
			return nil, err
		}
	}
	return truncate(ds, limit), nil
}

func truncate(ds *Dataset, limit int) *Dataset {
	if limit <= 0 {
		return ds
	}
	if len(ds.Images) > limit {
		ds.Images = ds.Images[:limit]
	}
	if len(ds.Labels) > limit {
		ds.Labels = ds.Labels[:limit]
	}
	return ds
}
