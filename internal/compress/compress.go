package compress

import (
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Reader wraps a decompression reader
type Reader struct {
	reader io.Reader
	close  func() error
}

// NewReader creates a decompressing reader based on the algorithm
func NewReader(r io.Reader, algorithm string) (*Reader, error) {
	switch algorithm {
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &Reader{reader: zr, close: zr.Close}, nil
	case "zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &Reader{reader: dec, close: func() error {
			dec.Close()
			return nil
		}}, nil
	case "xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		return &Reader{reader: xr, close: nopClose}, nil
	case "none", "":
		// No compression - pass the input through
		return &Reader{reader: r, close: nopClose}, nil
	default:
		return nil, fmt.Errorf("unknown compression algorithm %q", algorithm)
	}
}

// AlgorithmFor picks the algorithm from a file extension
func AlgorithmFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return "gzip"
	case ".zst", ".zstd":
		return "zstd"
	case ".xz":
		return "xz"
	default:
		return "none"
	}
}

// Read reads decompressed data
func (r *Reader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

// Close releases the decompressor; it does not close the underlying reader
func (r *Reader) Close() error {
	return r.close()
}

func nopClose() error {
	return nil
}
