package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   Format
	}{
		{name: "empty", prefix: nil, want: FormatPlain},
		{name: "plain text", prefix: []byte("pause=10 "), want: FormatPlain},
		{name: "gzip", prefix: []byte{0x1f, 0x8b, 0x08, 0x00}, want: FormatGzip},
		{name: "zstd", prefix: []byte{0x28, 0xb5, 0x2f, 0xfd, 0x24}, want: FormatZstd},
		{name: "xz", prefix: []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, want: FormatXZ},
		{name: "bzip2", prefix: []byte("BZh91AY"), want: FormatBzip2},
		{name: "lz4", prefix: []byte{0x04, 0x22, 0x4d, 0x18, 0x64}, want: FormatLZ4},
		{name: "s2", prefix: []byte("\xff\x06\x00\x00S2sTwO rest"), want: FormatS2},
		{name: "snappy", prefix: []byte("\xff\x06\x00\x00sNaPpY rest"), want: FormatS2},
		{name: "truncated gzip magic", prefix: []byte{0x1f}, want: FormatPlain},
		{name: "truncated s2 magic", prefix: []byte("\xff\x06\x00\x00S2"), want: FormatPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.prefix))
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatPlain, "plain"},
		{FormatGzip, "gzip"},
		{FormatZstd, "zstd"},
		{FormatXZ, "xz"},
		{FormatBzip2, "bzip2"},
		{FormatLZ4, "lz4"},
		{FormatS2, "s2"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.String())
	}
}
