// Package bucket provides the bucketing strategies used to group observed
// values for histogram counting.
//
// A Strategy maps a numeric value to a bucket index and maps a bucket index
// back to the half-open value range [low, high) it covers. Two variants are
// provided:
//
//   - Linear: fixed-width buckets. Uniform resolution, best for metrics with
//     a known, bounded range (object counts, percentages).
//   - Log2: exponentially growing base-2 buckets with a configurable starting
//     width. A handful of buckets spans many orders of magnitude, which suits
//     heavy-tailed distributions such as GC pause durations.
//
// Strategies are pure value types: the index produced for a value depends
// only on the value and the strategy's configuration, never on prior calls.
// They are safe to share and to copy.
//
// # Choosing a variant
//
//	strategy, err := bucket.New(bucket.KindLog2, 0, 64)
//	if err != nil {
//	    return err
//	}
//	idx := strategy.ValueToBucket(90)      // 1
//	lo, hi := strategy.BucketToRange(idx)  // 64, 128
//
// The Log2 variant folds everything below its starting width into bucket 0
// (the catch-all low bucket), so tiny values never fan out into a long tail
// of sub-resolution buckets.
package bucket
