// Package errs defines the sentinel errors shared across nvpstat packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to attach context while
// keeping errors.Is checks working for callers.
package errs

import "errors"

// Configuration errors. All of them are raised while building a Config,
// before any input is read.
var (
	// ErrNoKeys is returned when an aggregation is configured with zero keys.
	ErrNoKeys = errors.New("no keys selected")

	// ErrDuplicateKey is returned when the same key is selected twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidGranularity is returned for a non-positive linear bucket width.
	ErrInvalidGranularity = errors.New("granularity must be positive")

	// ErrInvalidInitBucket is returned for a non-positive log2 initial bucket size.
	ErrInvalidInitBucket = errors.New("initial bucket size must be positive")

	// ErrInvalidHistogramKind is returned for an unrecognized histogram kind.
	ErrInvalidHistogramKind = errors.New("invalid histogram kind")
)

// Processing errors.
var (
	// ErrValueNotNumeric is returned when a selected key is present in a
	// record but its value does not parse as a finite number.
	ErrValueNotNumeric = errors.New("value is not numeric")

	// ErrRunnerDone is returned when Run is called on a runner that already
	// ran. A runner is single-use even when its pass failed; input sequences
	// are not restartable.
	ErrRunnerDone = errors.New("runner already ran")

	// ErrRunnerNotDone is returned when summaries are requested before the
	// runner has consumed its input to a clean end. There is no partial
	// output, not even after a failed pass.
	ErrRunnerNotDone = errors.New("runner has not consumed its input")
)
