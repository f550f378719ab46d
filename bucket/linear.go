package bucket

import (
	"fmt"
	"math"

	"github.com/sawanmeister/nvpstat/errs"
)

// Linear divides the value axis into fixed-width buckets. Bucket 0 covers
// [0, granularity), bucket 1 covers [granularity, 2*granularity), and so on.
//
// Negative values map to negative indices. The histogram layer keeps such
// samples in its totals but renders only the non-negative range, so feeding
// negative values does not corrupt output.
type Linear struct {
	granularity float64
}

var _ Strategy = Linear{}

// NewLinear creates a fixed-width bucketing strategy.
//
// Parameters:
//   - granularity: bucket width, must be a positive finite number
//
// Returns:
//   - Linear: the configured strategy
//   - error: errs.ErrInvalidGranularity if granularity is not positive
//
// Example:
//
//	lin, err := bucket.NewLinear(5)
//	if err != nil {
//	    return err
//	}
//	lin.ValueToBucket(12) // 2
func NewLinear(granularity float64) (Linear, error) {
	if granularity <= 0 || math.IsInf(granularity, 1) || math.IsNaN(granularity) {
		return Linear{}, fmt.Errorf("%w: got %v, want > 0", errs.ErrInvalidGranularity, granularity)
	}

	return Linear{granularity: granularity}, nil
}

// Granularity returns the configured bucket width.
func (l Linear) Granularity() float64 {
	return l.granularity
}

// maxBucketIndex caps the magnitude of linear bucket indices. Converting a
// float to int is platform-dependent once the value leaves the int range,
// so quotients clamp here first.
const maxBucketIndex = math.MaxInt32

// ValueToBucket returns floor(v / granularity), clamped to ±maxBucketIndex.
func (l Linear) ValueToBucket(v float64) int {
	q := math.Floor(v / l.granularity)
	if q > maxBucketIndex {
		return maxBucketIndex
	}
	if q < -maxBucketIndex {
		return -maxBucketIndex
	}

	return int(q)
}

// BucketToRange returns [index*granularity, (index+1)*granularity).
func (l Linear) BucketToRange(index int) (low, high float64) {
	low = float64(index) * l.granularity

	return low, low + l.granularity
}
