// Package nvpstat analyzes the name=value pair (NVP) telemetry emitted by
// garbage-collector tracers: it reads line-oriented key=value records,
// aggregates the numeric values of selected keys, and reports per-key
// summary statistics with an optional bucketed histogram of the
// distribution.
//
// It is a one-shot offline analyzer: read the whole input, aggregate, render,
// done. There is no persistence and no incremental output.
//
// # Core Features
//
//   - Per-key count/min/max/avg over every numeric observation
//   - Linear (fixed-width) or log2 (exponential) histogram bucketing
//   - Transparent decompression of gzip, zstd, xz, bzip2, lz4 and s2 traces,
//     sniffed from magic bytes so pipes work the same as files
//   - Lenient tokenizing: malformed tokens and, by default, non-numeric
//     values skip without poisoning the rest of the run
//   - Deterministic output with an xxHash64 checksum over the rendered text
//
// # Basic Usage
//
// Analyzing a trace in one call:
//
//	import "github.com/sawanmeister/nvpstat"
//
//	f, _ := os.Open("gc.trace")
//	defer f.Close()
//
//	err := nvpstat.Analyze(f, os.Stdout, []string{"pause", "external"},
//	    aggregate.WithHistogramKind(bucket.KindLog2),
//	    aggregate.WithLog2InitBucket(64),
//	)
//
// For control over the pass itself (checksums, skip counts, CSV export),
// build a runner instead:
//
//	runner, err := nvpstat.NewRunner([]string{"pause"})
//	if err != nil {
//	    return err
//	}
//
//	src, err := input.Open("gc.trace.gz")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	if err := runner.Run(src); err != nil {
//	    return err
//	}
//	if err := runner.RenderTo(os.Stdout); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the aggregate
// and input packages, covering the common read-aggregate-render flow. For
// fine-grained control use the subpackages directly: aggregate for the
// pipeline, input for stream handling, histogram and bucket for the
// distribution primitives.
package nvpstat

import (
	"io"

	"github.com/sawanmeister/nvpstat/aggregate"
	"github.com/sawanmeister/nvpstat/input"
)

// NewRunner builds a single-use aggregation runner for the given keys.
//
// Parameters:
//   - keys: field names to aggregate, in output order
//   - opts: aggregation options (see aggregate.Option)
//
// Returns:
//   - *aggregate.Runner: the runner, ready for one Run
//   - error: a configuration error; nothing has been read when it is non-nil
//
// Available options:
//   - aggregate.WithHistogramKind(bucket.KindLinear|KindLog2)
//   - aggregate.WithLinearGranularity(width)
//   - aggregate.WithLog2InitBucket(size)
//   - aggregate.WithoutHistogram()
//   - aggregate.WithOmitEmptyBuckets()
//   - aggregate.WithStrictValues()
func NewRunner(keys []string, opts ...aggregate.Option) (*aggregate.Runner, error) {
	cfg, err := aggregate.NewConfig(keys, opts...)
	if err != nil {
		return nil, err
	}

	cats, err := cfg.Categories()
	if err != nil {
		return nil, err
	}

	return aggregate.NewRunner(cats), nil
}

// Analyze reads NVP records from r, aggregates the selected keys, and writes
// one rendered category block per key to w, in key order. Compressed input
// is detected and decompressed transparently.
//
// The configuration is validated before any input is read, so a bad key set
// or histogram parameter never consumes the stream.
//
// Example:
//
//	err := nvpstat.Analyze(os.Stdin, os.Stdout, []string{"pause"},
//	    aggregate.WithLinearGranularity(10),
//	)
func Analyze(r io.Reader, w io.Writer, keys []string, opts ...aggregate.Option) error {
	runner, err := NewRunner(keys, opts...)
	if err != nil {
		return err
	}

	src, err := input.NewSource(r)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := runner.Run(src); err != nil {
		return err
	}

	return runner.RenderTo(w)
}

// AnalyzeFile is Analyze reading from a file path, with "-" (or an empty
// path) selecting standard input.
func AnalyzeFile(path string, w io.Writer, keys []string, opts ...aggregate.Option) error {
	runner, err := NewRunner(keys, opts...)
	if err != nil {
		return err
	}

	src, err := input.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := runner.Run(src); err != nil {
		return err
	}

	return runner.RenderTo(w)
}
