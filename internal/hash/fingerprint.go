// Package hash computes xxHash64 fingerprints of rendered output, used to
// assert that repeated runs over the same input produce identical text.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64String computes the xxHash64 of the given string.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint accumulates an xxHash64 digest over a stream of lines. The
// zero value is not usable; construct with NewFingerprint.
type Fingerprint struct {
	digest *xxhash.Digest
	lines  int
	bytes  int
}

// NewFingerprint creates an empty Fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{digest: xxhash.New()}
}

// AddLine folds one line into the digest. The line terminator is included so
// that ["ab", "c"] and ["a", "bc"] produce different fingerprints.
func (f *Fingerprint) AddLine(line string) {
	// Digest.WriteString never returns an error.
	_, _ = f.digest.WriteString(line)
	_, _ = f.digest.WriteString("\n")
	f.lines++
	f.bytes += len(line) + 1
}

// Sum64 returns the current digest value.
func (f *Fingerprint) Sum64() uint64 {
	return f.digest.Sum64()
}

// Lines returns the number of lines folded in so far.
func (f *Fingerprint) Lines() int {
	return f.lines
}

// Bytes returns the number of bytes folded in, line terminators included.
func (f *Fingerprint) Bytes() int {
	return f.bytes
}
