package sbvx

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

// Compression selects the outer wrapper applied around the raw SBVX
// byte stream.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionDeflate
	CompressionZstd
)

// compressionLevel maps a caller-facing integer knob to a flate level:
// <=1 is fastest, >=9 is smallest, anything else is balanced.
func compressionLevel(level int) int {
	switch {
	case level <= 1:
		return flate.BestSpeed
	case level >= 9:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}

// WriteCompressed writes s through Write and wraps the result per
// compression. No Zstd encoder is linked into this build, so
// CompressionZstd falls back to Deflate deterministically: callers
// always get a valid, readable stream, never a silent no-op.
func WriteCompressed(w io.Writer, s *kernel.VoxelSolid, mode Mode, compression Compression, level int) error {
	var raw bytes.Buffer
	if err := Write(&raw, s, mode); err != nil {
		return err
	}

	switch compression {
	case CompressionNone:
		_, err := w.Write(raw.Bytes())
		if err != nil {
			return strerr.Wrap(strerr.IoError, err, "sbvx: write uncompressed stream")
		}
		return nil

	case CompressionDeflate, CompressionZstd:
		fw, err := flate.NewWriter(w, compressionLevel(level))
		if err != nil {
			return strerr.Wrap(strerr.IoError, err, "sbvx: create deflate writer")
		}
		if _, err := fw.Write(raw.Bytes()); err != nil {
			return strerr.Wrap(strerr.IoError, err, "sbvx: deflate write")
		}
		if err := fw.Close(); err != nil {
			return strerr.Wrap(strerr.IoError, err, "sbvx: deflate close")
		}
		return nil

	default:
		return strerr.New(strerr.InvalidArgument, "sbvx: unknown compression %d", compression)
	}
}

// ReadCompressed reverses WriteCompressed. Since CompressionZstd is
// written as Deflate by this build, it is also read back as Deflate.
func ReadCompressed(r io.Reader, compression Compression) (*kernel.VoxelSolid, error) {
	switch compression {
	case CompressionNone:
		return Read(r)

	case CompressionDeflate, CompressionZstd:
		fr := flate.NewReader(r)
		defer fr.Close()
		return Read(fr)

	default:
		return nil, strerr.New(strerr.InvalidArgument, "sbvx: unknown compression %d", compression)
	}
}
