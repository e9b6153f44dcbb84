package assets

import (
	_ "embed"

	"github.com/soocke/digit-viewer-go/domain/idx"
)

// DemoImagesIDX contains a two-image IDX3 file (a zero and a one).
//
//go:embed demo-images-idx3-ubyte
var DemoImagesIDX []byte

// DemoLabelsIDX contains the matching IDX1 labels.
//
//go:embed demo-labels-idx1-ubyte
var DemoLabelsIDX []byte

// DemoDataset decodes the embedded demo files. withLabels=false drops the labels.
func DemoDataset(withLabels bool, limit int) (*idx.Dataset, error) {
	var labels []byte
	if withLabels {
		labels = DemoLabelsIDX
	}
	return idx.Parse(DemoImagesIDX, labels, limit)
}
