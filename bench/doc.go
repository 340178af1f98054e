// Package bench measures sorting algorithms with an adaptive multi-run
// wall-clock protocol and orchestrates the full suite over one dataset.
//
// What
//
//   - Measure / MeasureRange time a single algorithm invocation with the
//     monotonic clock, repeating the run on small inputs to beat clock
//     granularity:
//
//     size          repeats
//     < 100         10
//     100–999       5
//     1,000–9,999   3
//     ≥ 10,000      1
//
//   - Before every repeat the slice is restored from a private backup
//     taken once at entry, so each repeat sorts the identical input.
//     Per-repeat durations are summed and divided by the repeat count.
//
//   - The reported duration is floored to one microsecond: the harness
//     never reports a zero or negative time, whatever the host clock's
//     resolution.
//
//   - RunAll executes the seven suite descriptors against working copies
//     of one dataset, resetting the metrics before each repeat and
//     averaging comparisons, swaps and moves alongside the duration; one
//     Result per algorithm, the caller's slice untouched.
//
// Why
//
//	A sub-microsecond sort under a coarse clock reads as zero, and a
//	single noisy run misleads. Averaged repeats over restored input give
//	stable, comparable numbers without contaminating the dataset.
//
// Concurrency
//
//	The protocol is strictly sequential: one benchmark at a time, one
//	repeat at a time. Results carry independent metrics per run, so
//	separate RunAll calls never share counters.
//
// Usage
//
//	results, err := bench.RunAll(data, cmp, "numbers", bench.DefaultOptions[int]())
//	if err != nil { ... }
//	for _, r := range results {
//	    fmt.Printf("%s: %v over %d repeats\n", r.Algorithm, r.Duration, r.Repeats)
//	}
package bench
