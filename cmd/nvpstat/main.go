// Command nvpstat summarizes the name=value pair output of a GC tracer.
//
// It reads line-oriented key=value records, aggregates the numeric values of
// the selected keys, and prints per-key statistics with an optional
// histogram:
//
//	$ nvpstat --histogram-type=log2 pause < gc.trace
//	pause
//	  len: 214
//	  min: 0.5
//	  max: 93.0
//	  avg: 12.843
//	  [0,64[: 209
//	  [64,128[: 5
//
// Compressed traces (gzip, zstd, xz, bzip2, lz4, s2) are detected from their
// leading bytes and decompressed on the fly, for files and pipes alike.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/sawanmeister/nvpstat"
	"github.com/sawanmeister/nvpstat/aggregate"
	"github.com/sawanmeister/nvpstat/bucket"
	"github.com/sawanmeister/nvpstat/input"
)

var (
	histogramType    string
	granularity      float64
	initBucket       float64
	omitEmptyBuckets bool
	noHistogram      bool
	inputPath        string
	csvOutput        bool
	strictValues     bool
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "nvpstat [flags] KEY...",
	Short: "Summarize a GC tracer's name=value pair output",
	Long: `nvpstat reads line-oriented key=value telemetry records, extracts the
numeric values of the given keys, and reports count, min, max and average
per key, plus an optional histogram of the value distribution.

Input is consumed once, aggregated in memory, and rendered after the last
line. Compressed input is detected from magic bytes and decompressed
transparently.`,
	Example: `  # pause-time distribution from a live tracer
  d8 --trace-gc-nvp bench.js | nvpstat pause

  # log2 buckets suit heavy-tailed durations
  nvpstat --histogram-type=log2 --log2-histogram-init-bucket=32 pause

  # several keys from a compressed trace, stats only
  nvpstat --input=gc.trace.zst --no-histogram pause external mark`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringVar(&histogramType, "histogram-type", "linear",
		"histogram type to use: linear or log2")
	rootCmd.Flags().Float64Var(&granularity, "linear-histogram-granularity", aggregate.DefaultLinearGranularity,
		"bucket width of the linear histogram")
	rootCmd.Flags().Float64Var(&initBucket, "log2-histogram-init-bucket", aggregate.DefaultLog2InitBucket,
		"initial bucket size of the log2 histogram")
	rootCmd.Flags().BoolVar(&omitEmptyBuckets, "histogram-omit-empty-buckets", false,
		"omit empty histogram buckets")
	rootCmd.Flags().BoolVar(&noHistogram, "no-histogram", false,
		"do not print histograms")
	rootCmd.Flags().StringVar(&inputPath, "input", "-",
		`input file, "-" reads standard input`)
	rootCmd.Flags().BoolVar(&csvOutput, "csv", false,
		"print key,len,min,max,avg rows as CSV instead of text blocks")
	rootCmd.Flags().BoolVar(&strictValues, "strict-values", false,
		"fail on a non-numeric value instead of skipping it")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"report lines read, skipped values and the output checksum on stderr")
}

func run(cmd *cobra.Command, args []string) error {
	kind, err := bucket.ParseKind(histogramType)
	if err != nil {
		return err
	}

	opts := []aggregate.Option{
		aggregate.WithHistogramKind(kind),
		aggregate.WithLinearGranularity(granularity),
		aggregate.WithLog2InitBucket(initBucket),
	}
	if omitEmptyBuckets {
		opts = append(opts, aggregate.WithOmitEmptyBuckets())
	}
	if noHistogram {
		opts = append(opts, aggregate.WithoutHistogram())
	}
	if strictValues {
		opts = append(opts, aggregate.WithStrictValues())
	}

	runner, err := nvpstat.NewRunner(args, opts...)
	if err != nil {
		return err
	}

	src, err := input.Open(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := runner.Run(src); err != nil {
		return err
	}

	// Tee the output through a digest so the verbose checksum covers the
	// bytes actually emitted, CSV or text.
	digest := xxhash.New()
	out := io.MultiWriter(cmd.OutOrStdout(), digest)

	if csvOutput {
		if err := aggregate.WriteCSV(out, runner.Categories()); err != nil {
			return err
		}
	} else if err := runner.RenderTo(out); err != nil {
		return err
	}

	if skipped := runner.Skipped(); skipped > 0 {
		noun := "values"
		if skipped == 1 {
			noun = "value"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "nvpstat: skipped %d non-numeric %s\n", skipped, noun)
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "input: %s (%s), %d lines read, %d values skipped, checksum %016x\n",
			inputPath, src.Format(), runner.LinesRead(), runner.Skipped(), digest.Sum64())
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
