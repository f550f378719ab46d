package bucket

import (
	"fmt"

	"github.com/sawanmeister/nvpstat/errs"
)

// Kind identifies a bucketing strategy variant.
type Kind uint8

const (
	// KindLinear selects fixed-width buckets.
	KindLinear Kind = 1
	// KindLog2 selects exponentially growing base-2 buckets.
	KindLog2 Kind = 2
)

// String returns the command-line spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindLog2:
		return "log2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseKind converts the command-line spelling of a histogram type into its
// Kind. It returns errs.ErrInvalidHistogramKind for any spelling other than
// "linear" or "log2".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear":
		return KindLinear, nil
	case "log2":
		return KindLog2, nil
	default:
		return 0, fmt.Errorf("%w: %q (want \"linear\" or \"log2\")", errs.ErrInvalidHistogramKind, s)
	}
}

// Strategy maps observed values to bucket indices and bucket indices back to
// the value ranges they cover.
//
// Implementations are pure: results depend only on the input and the
// strategy's configuration. Values passed to ValueToBucket must be finite.
type Strategy interface {
	// ValueToBucket returns the index of the bucket that contains v.
	ValueToBucket(v float64) int

	// BucketToRange returns the half-open interval [low, high) covered by
	// the bucket at index.
	BucketToRange(index int) (low, high float64)
}

// New creates the Strategy for the given kind.
//
// Parameters:
//   - kind: KindLinear or KindLog2
//   - granularity: bucket width, used only by KindLinear
//   - start: width of the catch-all low bucket, used only by KindLog2
//
// Returns:
//   - Strategy: the configured strategy
//   - error: errs.ErrInvalidHistogramKind for an unknown kind, or the
//     validation error from the selected constructor
func New(kind Kind, granularity, start float64) (Strategy, error) {
	switch kind {
	case KindLinear:
		s, err := NewLinear(granularity)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindLog2:
		s, err := NewLog2(start)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidHistogramKind, kind)
	}
}
