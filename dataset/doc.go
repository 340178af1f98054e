// Package dataset loads, generates and persists the inputs fed to the
// benchmark suite.
//
// What:
//   - Numbers / SaveNumbers — integer datasets in a plain text format:
//     a count header line followed by one integer per line.
//   - Students / SaveStudents — CSV records of students
//     (name,birthdate,neighborhood,city) for stability experiments.
//   - Generate — synthetic integer datasets in four shapes (random,
//     sorted, reversed, duplicated) from a deterministic seed.
//   - Ready-made comparators: CompareInts, ByName, ByNeighborhood.
//
// Why:
//   - Benchmarks need reproducible inputs; a seeded generator and a
//     trivial on-disk format make runs repeatable and diffable.
//
// Loading is tolerant: malformed lines are skipped, not fatal, so a
// hand-edited file with a stray comment still loads.
package dataset
