// Package report turns a batch of benchmark results into human and
// machine readable artifacts.
//
// What:
//   - Report — an identified, timestamped snapshot of one suite run.
//   - WriteYAML — persists a Report as YAML for later comparison.
//   - RenderTable — an aligned console table of the run.
//   - RankByTime / RankByComparisons — ranked views over the entries.
//
// Rankings are stable: algorithms that tie keep their suite order.
package report
