// Package aggregate implements the streaming aggregation pipeline: it routes
// parsed records to per-key categories and renders their summaries once the
// input is exhausted.
//
// # Overview
//
// The pipeline has three pieces:
//
//   - Config: immutable settings for one run (selected keys, histogram
//     variant and parameters), built with functional options and validated
//     before any input is read.
//   - Category: per-key aggregator owning the observed values and an
//     optional histogram.
//   - Runner: the single-pass driver. It consumes a LineSource to
//     exhaustion, feeds every record to every category, and only then allows
//     rendering.
//
// # Usage
//
//	cfg, err := aggregate.NewConfig([]string{"pause", "external"},
//	    aggregate.WithHistogramKind(bucket.KindLog2),
//	    aggregate.WithLog2InitBucket(64),
//	)
//	if err != nil {
//	    return err
//	}
//
//	cats, err := cfg.Categories()
//	if err != nil {
//	    return err
//	}
//
//	runner := aggregate.NewRunner(cats)
//	if err := runner.Run(src); err != nil {
//	    return err
//	}
//	if err := runner.RenderTo(os.Stdout); err != nil {
//	    return err
//	}
//
// A Runner is single-use: the first Run spends it and a second returns
// errs.ErrRunnerDone. Rendering is refused with errs.ErrRunnerNotDone until
// a pass completes cleanly; a failed pass leaves the runner spent with no
// summaries. Each Category gets its own histogram from the Config factory;
// no state is shared between categories or carried between runs.
package aggregate
