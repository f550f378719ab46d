package bucket

import (
	"fmt"
	"math"

	"github.com/sawanmeister/nvpstat/errs"
)

// Log2 groups values into exponentially growing base-2 buckets. The start
// parameter fixes the width of bucket 0, the catch-all low bucket: every
// value in (0, start') lands there, where start' is start rounded down to a
// power of two. Each following bucket covers the next power-of-two interval.
//
// For start = 64 the layout is
//
//	bucket 0: [0, 64)
//	bucket 1: [64, 128)
//	bucket 2: [128, 256)
//	...
//
// Values <= 0 have no base-2 logarithm and are folded into bucket 0.
type Log2 struct {
	// base is floor(log2(start)) - 1, so that a value v maps to
	// floor(log2(v)) - base and the smallest in-range power of two maps
	// to bucket 1.
	base int
}

var _ Strategy = Log2{}

// NewLog2 creates a base-2 exponential bucketing strategy.
//
// Parameters:
//   - start: width of the catch-all low bucket, must be a positive finite
//     number. Non-powers of two are rounded down to the nearest power of two.
//
// Returns:
//   - Log2: the configured strategy
//   - error: errs.ErrInvalidInitBucket if start is not positive
//
// Example:
//
//	lg, err := bucket.NewLog2(64)
//	if err != nil {
//	    return err
//	}
//	lg.ValueToBucket(63)  // 0
//	lg.ValueToBucket(64)  // 1
//	lg.ValueToBucket(128) // 2
func NewLog2(start float64) (Log2, error) {
	if start <= 0 || math.IsInf(start, 1) || math.IsNaN(start) {
		return Log2{}, fmt.Errorf("%w: got %v, want > 0", errs.ErrInvalidInitBucket, start)
	}

	return Log2{base: int(math.Floor(math.Log2(start))) - 1}, nil
}

// ValueToBucket returns the bucket index for v. Values at or below zero map
// to bucket 0, as does everything below the configured starting width.
func (l Log2) ValueToBucket(v float64) int {
	if v <= 0 {
		return 0
	}

	index := int(math.Floor(math.Log2(v))) - l.base
	if index < 0 {
		return 0
	}

	return index
}

// BucketToRange returns the half-open interval covered by index. Index 0 is
// the catch-all low bucket starting at zero. The index must be non-negative.
func (l Log2) BucketToRange(index int) (low, high float64) {
	if index == 0 {
		return 0, math.Ldexp(1, l.base+1)
	}

	return math.Ldexp(1, index+l.base), math.Ldexp(1, index+l.base+1)
}
