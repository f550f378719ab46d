package aggregate

import (
	"fmt"
	"io"

	"github.com/sawanmeister/nvpstat/errs"
	"github.com/sawanmeister/nvpstat/internal/hash"
	"github.com/sawanmeister/nvpstat/nvp"
)

// LineSource yields input lines one at a time. A source is finite and
// consumed exactly once; there is no rewind.
type LineSource interface {
	// Next returns the next line without its terminator. ok is false once
	// the source is exhausted or has failed.
	Next() (line string, ok bool)

	// Err returns the first read error encountered, or nil after a clean
	// end of input.
	Err() error
}

// Runner drives one end-to-end aggregation pass: consume every input line,
// route each parsed record to every category in order, then render.
//
// A Runner is single-use. The first Run spends it, successful or not; only
// a pass that reaches a clean end of input moves the runner to done, and
// rendering is refused until then.
type Runner struct {
	categories []*Category
	linesRead  int
	started    bool
	done       bool
}

// NewRunner creates a Runner over the given categories. The categories are
// rendered in slice order.
func NewRunner(categories []*Category) *Runner {
	return &Runner{categories: categories}
}

// Run consumes src to exhaustion, feeding every parsed record to every
// category.
//
// Returns:
//   - errs.ErrRunnerDone if the runner was already run
//   - the source's read error if the stream fails mid-pass
//   - the first parse failure, tagged with its line number, when strict
//     value parsing is configured
//
// A failed pass still spends the runner, since rerunning it would
// double-count the lines consumed before the failure. It does not reach
// done: a pass that never saw a clean end of input has no summaries.
func (r *Runner) Run(src LineSource) error {
	if r.started {
		return errs.ErrRunnerDone
	}
	r.started = true

	rec := make(nvp.Record)
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		r.linesRead++

		nvp.SplitInto(line, rec)
		for _, cat := range r.categories {
			if err := cat.ProcessRecord(rec); err != nil {
				return fmt.Errorf("line %d: %w", r.linesRead, err)
			}
		}
	}

	if err := src.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	r.done = true

	return nil
}

// Done reports whether the runner consumed its input to a clean end. A
// failed pass never becomes done.
func (r *Runner) Done() bool {
	return r.done
}

// LinesRead returns the number of input lines consumed.
func (r *Runner) LinesRead() int {
	return r.linesRead
}

// Skipped returns the total number of field occurrences dropped across all
// categories under lenient parsing.
func (r *Runner) Skipped() int {
	total := 0
	for _, cat := range r.categories {
		total += cat.Skipped()
	}

	return total
}

// Categories returns the categories in render order.
func (r *Runner) Categories() []*Category {
	return r.categories
}

// RenderTo writes every category block to w in order. It returns
// errs.ErrRunnerNotDone until a pass has completed cleanly.
func (r *Runner) RenderTo(w io.Writer) error {
	if !r.done {
		return errs.ErrRunnerNotDone
	}

	for _, cat := range r.categories {
		if err := cat.Render(w); err != nil {
			return err
		}
	}

	return nil
}

// Checksum returns the xxHash64 fingerprint of the rendered output without
// writing it anywhere. Runs over identical input and configuration produce
// identical checksums. It returns errs.ErrRunnerNotDone until a pass has
// completed cleanly.
func (r *Runner) Checksum() (uint64, error) {
	if !r.done {
		return 0, errs.ErrRunnerNotDone
	}

	fp := hash.NewFingerprint()
	for _, cat := range r.categories {
		for _, line := range cat.Lines() {
			fp.AddLine(line)
		}
	}

	return fp.Sum64(), nil
}
