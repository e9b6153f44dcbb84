package source

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/digit-viewer-go/config"
	"github.com/soocke/digit-viewer-go/domain/idx"
	"github.com/soocke/digit-viewer-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func writeImages(t *testing.T, path string, count int) {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range []int32{idx.ImageMagic, int32(count), idx.Rows, idx.Cols} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(make([]byte, count*idx.ImageSize))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Demo(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Demo = true
	ds, err := Load(cfg, discardLogger)
	if err != nil {
		t.Fatalf("demo load: %v", err)
	}
	if len(ds.Images) != 2 || len(ds.Labels) != 2 {
		t.Fatalf("unexpected demo dataset %d/%d", len(ds.Images), len(ds.Labels))
	}
	cfg.LabelsPath = ""
	ds, _ = Load(cfg, discardLogger)
	if ds.Labels != nil {
		t.Fatalf("expected unlabelled demo")
	}
}

func TestLoad_FilesWithoutLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images")
	writeImages(t, path, 3)
	cfg := config.DefaultConfig()
	cfg.ImagesPath = path
	cfg.LabelsPath = ""
	cfg.Limit = 2
	ds, err := Load(cfg, discardLogger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Images) != 2 || ds.Labels != nil {
		t.Fatalf("unexpected dataset %d images labels=%v", len(ds.Images), ds.Labels)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ImagesPath = filepath.Join(t.TempDir(), "missing")
	if _, err := Load(cfg, discardLogger); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestPolicy(t *testing.T) {
	cfg := config.DefaultConfig()
	if Policy(cfg) != model.PolicyClamp {
		t.Fatalf("default should clamp")
	}
	cfg.Bounds = "wrap"
	if Policy(cfg) != model.PolicyWrap {
		t.Fatalf("expected wrap")
	}
}
