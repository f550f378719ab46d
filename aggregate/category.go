package aggregate

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sawanmeister/nvpstat/errs"
	"github.com/sawanmeister/nvpstat/histogram"
	"github.com/sawanmeister/nvpstat/nvp"
)

// Category aggregates every numeric observation of one key: the ordered
// value sequence for count/min/max/avg, plus an optional histogram of the
// distribution. Construct through Config.Categories.
type Category struct {
	key          string
	values       []float64
	hist         *histogram.Histogram
	strictValues bool
	skipped      int
}

// Stats summarizes the values observed by a Category. Min, Max and Avg are
// meaningful only when Count > 0.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Avg   float64
}

func newCategory(key string, hist *histogram.Histogram, strictValues bool) *Category {
	return &Category{key: key, hist: hist, strictValues: strictValues}
}

// Key returns the field name this category aggregates.
func (c *Category) Key() string {
	return c.key
}

// Len returns the number of values observed so far.
func (c *Category) Len() int {
	return len(c.values)
}

// Skipped returns the number of field occurrences whose value failed to
// parse and was dropped under lenient parsing.
func (c *Category) Skipped() int {
	return c.skipped
}

// Histogram returns the owned histogram, or nil when histograms are
// disabled.
func (c *Category) Histogram() *histogram.Histogram {
	return c.hist
}

// ProcessRecord folds one parsed record into the category. A record without
// the key is a no-op. A value that does not parse as a finite number is
// dropped and counted in Skipped, or, in strict mode, returned as an error
// wrapping errs.ErrValueNotNumeric.
func (c *Category) ProcessRecord(rec nvp.Record) error {
	raw, ok := rec[c.key]
	if !ok {
		return nil
	}

	v, err := parseValue(raw)
	if err != nil {
		if c.strictValues {
			return fmt.Errorf("key %q: %w", c.key, err)
		}
		c.skipped++
		return nil
	}

	c.values = append(c.values, v)
	if c.hist != nil {
		c.hist.Add(v)
	}

	return nil
}

// Stats computes summary statistics over the observed values.
func (c *Category) Stats() Stats {
	st := Stats{Count: len(c.values)}
	if st.Count == 0 {
		return st
	}

	st.Min = c.values[0]
	st.Max = c.values[0]
	sum := 0.0
	for _, v := range c.values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	st.Avg = sum / float64(st.Count)

	return st
}

// Lines renders the category block: the key name, indented len/min/max/avg
// lines, then the indented histogram lines when one is configured. A
// category with no observations renders only the key and "len: 0"; min, max
// and avg are undefined for it and never printed.
func (c *Category) Lines() []string {
	st := c.Stats()

	lines := make([]string, 0, 8)
	lines = append(lines, c.key, "  len: "+strconv.Itoa(st.Count))
	if st.Count == 0 {
		return lines
	}

	lines = append(lines,
		"  min: "+formatStat(st.Min),
		"  max: "+formatStat(st.Max),
		"  avg: "+formatStat(st.Avg),
	)
	if c.hist != nil {
		for _, line := range c.hist.Lines() {
			lines = append(lines, "  "+line)
		}
	}

	return lines
}

// Render writes the category block to w, one line per row.
func (c *Category) Render(w io.Writer) error {
	for _, line := range c.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// parseValue parses a raw field value as a finite float64. NaN and the
// infinities parse syntactically but are not usable observations, so they
// fail like any other bad value.
func parseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrValueNotNumeric, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", errs.ErrValueNotNumeric, raw)
	}

	return v, nil
}

// formatStat renders a statistic line's number: integral values keep one
// fractional digit ("5.0"), everything else uses the shortest decimal form
// that round-trips ("11.666666666666666").
func formatStat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
