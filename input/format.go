package input

import "bytes"

// Format identifies the compression format of an input stream.
type Format uint8

const (
	// FormatPlain is uncompressed text.
	FormatPlain Format = iota
	// FormatGzip is a gzip stream (RFC 1952).
	FormatGzip
	// FormatZstd is a zstandard stream (RFC 8878).
	FormatZstd
	// FormatXZ is an xz stream.
	FormatXZ
	// FormatBzip2 is a bzip2 stream.
	FormatBzip2
	// FormatLZ4 is an lz4 frame stream.
	FormatLZ4
	// FormatS2 is an s2 or snappy framed stream.
	FormatS2
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatXZ:
		return "xz"
	case FormatBzip2:
		return "bzip2"
	case FormatLZ4:
		return "lz4"
	case FormatS2:
		return "s2"
	default:
		return "unknown"
	}
}

// Magic byte signatures of the supported formats.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	lz4Magic   = []byte{0x04, 0x22, 0x4d, 0x18}

	// Framed snappy and s2 streams both start with a stream identifier
	// chunk; only the body differs.
	s2Magic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// maxMagicLen is the longest prefix DetectFormat inspects.
const maxMagicLen = 10

// DetectFormat sniffs the compression format from the first bytes of a
// stream. A prefix shorter than a signature simply fails that signature's
// match, so truncated or empty input detects as FormatPlain.
func DetectFormat(prefix []byte) Format {
	switch {
	case bytes.HasPrefix(prefix, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(prefix, zstdMagic):
		return FormatZstd
	case bytes.HasPrefix(prefix, xzMagic):
		return FormatXZ
	case bytes.HasPrefix(prefix, bzip2Magic):
		return FormatBzip2
	case bytes.HasPrefix(prefix, lz4Magic):
		return FormatLZ4
	case bytes.HasPrefix(prefix, s2Magic), bytes.HasPrefix(prefix, snappyMagic):
		return FormatS2
	default:
		return FormatPlain
	}
}
