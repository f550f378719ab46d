package aggregate

import (
	"fmt"
	"slices"

	"github.com/sawanmeister/nvpstat/bucket"
	"github.com/sawanmeister/nvpstat/errs"
	"github.com/sawanmeister/nvpstat/histogram"
	"github.com/sawanmeister/nvpstat/internal/options"
)

// Default histogram parameters, matching the tracer tooling this module
// replaces.
const (
	DefaultLinearGranularity = 5.0
	DefaultLog2InitBucket    = 64.0
)

// Option is a functional option for configuring an aggregation run.
type Option = options.Option[*Config]

// Config holds the immutable settings for one aggregation run. Construct
// with NewConfig; a Config that came back without an error is fully
// validated and safe to share.
type Config struct {
	keys             []string
	histogramKind    bucket.Kind
	granularity      float64
	initBucket       float64
	histogramEnabled bool
	omitEmpty        bool
	strictValues     bool
}

// NewConfig creates a Config for the given keys with defaults of a linear
// histogram of granularity 5, empty buckets rendered, and lenient value
// parsing.
//
// Parameters:
//   - keys: field names to aggregate, in output order. Must be non-empty
//     and free of duplicates.
//   - opts: functional options, applied in order
//
// Returns:
//   - *Config: the validated configuration
//   - error: errs.ErrNoKeys, errs.ErrDuplicateKey, or the validation error
//     of the offending option
//
// Example:
//
//	cfg, err := aggregate.NewConfig([]string{"pause"},
//	    aggregate.WithLinearGranularity(10),
//	    aggregate.WithOmitEmptyBuckets(),
//	)
func NewConfig(keys []string, opts ...Option) (*Config, error) {
	if len(keys) == 0 {
		return nil, errs.ErrNoKeys
	}

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
	}

	cfg := &Config{
		keys:             slices.Clone(keys),
		histogramKind:    bucket.KindLinear,
		granularity:      DefaultLinearGranularity,
		initBucket:       DefaultLog2InitBucket,
		histogramEnabled: true,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithHistogramKind selects the bucketing strategy variant.
func WithHistogramKind(kind bucket.Kind) Option {
	return options.New(func(c *Config) error {
		switch kind {
		case bucket.KindLinear, bucket.KindLog2:
			c.histogramKind = kind
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidHistogramKind, kind)
		}
	})
}

// WithLinearGranularity sets the bucket width used by the linear variant.
// The width must be positive.
func WithLinearGranularity(granularity float64) Option {
	return options.New(func(c *Config) error {
		if _, err := bucket.NewLinear(granularity); err != nil {
			return err
		}
		c.granularity = granularity
		return nil
	})
}

// WithLog2InitBucket sets the initial bucket size used by the log2 variant.
// The size must be positive.
func WithLog2InitBucket(start float64) Option {
	return options.New(func(c *Config) error {
		if _, err := bucket.NewLog2(start); err != nil {
			return err
		}
		c.initBucket = start
		return nil
	})
}

// WithoutHistogram disables histograms entirely; categories keep and render
// only the summary statistics.
func WithoutHistogram() Option {
	return options.NoError(func(c *Config) {
		c.histogramEnabled = false
	})
}

// WithOmitEmptyBuckets suppresses zero-count bucket lines in rendered
// histograms.
func WithOmitEmptyBuckets() Option {
	return options.NoError(func(c *Config) {
		c.omitEmpty = true
	})
}

// WithStrictValues makes a non-numeric value for a selected key fail the
// whole run. The default is to skip that single field occurrence.
func WithStrictValues() Option {
	return options.NoError(func(c *Config) {
		c.strictValues = true
	})
}

// Keys returns the configured field names in output order.
func (c *Config) Keys() []string {
	return slices.Clone(c.keys)
}

// HistogramKind returns the configured bucketing variant.
func (c *Config) HistogramKind() bucket.Kind {
	return c.histogramKind
}

// HistogramEnabled reports whether categories carry histograms.
func (c *Config) HistogramEnabled() bool {
	return c.histogramEnabled
}

// StrictValues reports whether a non-numeric value fails the run.
func (c *Config) StrictValues() bool {
	return c.strictValues
}

// Categories builds one Category per configured key. Every category gets its
// own strategy and histogram; nothing is shared, so mutating one category
// can never bleed into another.
func (c *Config) Categories() ([]*Category, error) {
	cats := make([]*Category, 0, len(c.keys))
	for _, key := range c.keys {
		var hist *histogram.Histogram
		if c.histogramEnabled {
			strategy, err := bucket.New(c.histogramKind, c.granularity, c.initBucket)
			if err != nil {
				return nil, err
			}
			hist = histogram.New(strategy, !c.omitEmpty)
		}
		cats = append(cats, newCategory(key, hist, c.strictValues))
	}

	return cats, nil
}
