// Package histogram accumulates per-bucket counts of observed values and
// renders them as ordered range/count lines.
//
// A Histogram pairs a bucket.Strategy with a sparse index-to-count map. It
// never materializes empty buckets in state; gaps are filled (or skipped) at
// render time only.
package histogram

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/sawanmeister/nvpstat/bucket"
)

// Histogram counts observations per bucket index.
//
// The zero value is not usable; construct with New. A Histogram is not safe
// for concurrent use.
type Histogram struct {
	strategy  bucket.Strategy
	counts    map[int]int
	total     int
	fillEmpty bool
}

// New creates an empty Histogram that groups values with the given strategy.
//
// Parameters:
//   - strategy: bucketing strategy, must be non-nil
//   - fillEmpty: when true, rendering emits zero-count lines for unpopulated
//     buckets between index 0 and the highest populated index; when false,
//     those buckets are skipped
//
// Example:
//
//	lin, _ := bucket.NewLinear(5)
//	h := histogram.New(lin, true)
//	h.Add(7)
//	lines := h.Lines() // ["[0,5[: 0", "[5,10[: 1"]
func New(strategy bucket.Strategy, fillEmpty bool) *Histogram {
	return &Histogram{
		strategy:  strategy,
		counts:    make(map[int]int),
		fillEmpty: fillEmpty,
	}
}

// Add records one observation of v.
func (h *Histogram) Add(v float64) {
	h.counts[h.strategy.ValueToBucket(v)]++
	h.total++
}

// Total returns the number of observations recorded, including any that the
// strategy mapped to negative bucket indices.
func (h *Histogram) Total() int {
	return h.total
}

// Count returns the number of observations in the bucket at index.
func (h *Histogram) Count(index int) int {
	return h.counts[index]
}

// Lines renders the histogram as one "[low,high[: count" line per bucket,
// from index 0 through the highest populated index, ascending. Unpopulated
// buckets in that range are emitted with a zero count when the histogram was
// built with fillEmpty, and skipped otherwise.
//
// An empty histogram, or one whose observations all landed in negative
// indices, renders as no lines. Negative indices are counted in Total but
// never rendered.
func (h *Histogram) Lines() []string {
	maxIndex := -1
	for index := range h.counts {
		if index > maxIndex {
			maxIndex = index
		}
	}
	if maxIndex < 0 {
		return nil
	}

	if h.fillEmpty {
		lines := make([]string, 0, maxIndex+1)
		for i := 0; i <= maxIndex; i++ {
			lines = append(lines, h.line(i, h.counts[i]))
		}

		return lines
	}

	// Without fillEmpty the output has one line per populated bucket, so
	// walk those instead of the full index range, which a single outlier
	// value can stretch enormously.
	indices := make([]int, 0, len(h.counts))
	for index := range h.counts {
		if index >= 0 {
			indices = append(indices, index)
		}
	}
	slices.Sort(indices)

	lines := make([]string, 0, len(indices))
	for _, i := range indices {
		lines = append(lines, h.line(i, h.counts[i]))
	}

	return lines
}

func (h *Histogram) line(index, count int) string {
	low, high := h.strategy.BucketToRange(index)

	return fmt.Sprintf("[%s,%s[: %d", FormatBound(low), FormatBound(high), count)
}

// Render writes the histogram lines to w, one per line.
func (h *Histogram) Render(w io.Writer) error {
	for _, line := range h.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// FormatBound formats a bucket boundary for display. Integral bounds render
// without a fractional part ("64", not "64.0"); fractional bounds keep the
// shortest exact decimal form ("2.5").
func FormatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
