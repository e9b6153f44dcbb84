package idx

import "encoding/binary"

func readInt32(b []byte, off int) int32 {
	return int32(binary.BigEndian.Uint32(b[off : off+4]))
}

// DecodeImages parses an IDX3 images file. The header must carry magic 2051
// and 28x28 dimensions; every declared record must be present.
func DecodeImages(b []byte) ([]ImageRecord, error) {
	if len(b) < 4 {
		return nil, &TruncationError{Want: imageHeaderSize, Got: len(b)}
	}
	if magic := readInt32(b, 0); magic != ImageMagic {
		return nil, &FormatError{Field: "magic", Want: ImageMagic, Got: magic}
	}
	if len(b) < imageHeaderSize {
		return nil, &TruncationError{Want: imageHeaderSize, Got: len(b)}
	}
	count := readInt32(b, 4)
	if count < 0 {
		return nil, &FormatError{Field: "item count", Got: count}
	}
	rows, cols := readInt32(b, 8), readInt32(b, 12)
	if rows != Rows || cols != Cols {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}
	need := imageHeaderSize + int(count)*ImageSize
	if len(b) < need {
		return nil, &TruncationError{Want: need, Got: len(b)}
	}

	images := make([]ImageRecord, count)
	for i := range images {
		off := imageHeaderSize + i*ImageSize
		copy(images[i][:], b[off:off+ImageSize])
	}
	return images, nil
}

// DecodeLabels parses an IDX1 labels file and returns every byte after the
// 8-byte header, in file order.
func DecodeLabels(b []byte) ([]byte, error) {
	if len(b) < 4 {
		return nil, &TruncationError{Want: labelHeaderSize, Got: len(b)}
	}
	if magic := readInt32(b, 0); magic != LabelMagic {
		return nil, &FormatError{Field: "magic", Want: LabelMagic, Got: magic}
	}
	if len(b) < labelHeaderSize {
		return nil, &TruncationError{Want: labelHeaderSize, Got: len(b)}
	}
	labels := make([]byte, len(b)-labelHeaderSize)
	copy(labels, b[labelHeaderSize:])
	return labels, nil
}
