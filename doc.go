// Package sortlab is your in-memory laboratory for measuring, comparing,
// and dissecting comparison-based sorting algorithms over any element type.
//
// 🚀 What is sortlab?
//
//	A generic benchmarking toolkit that brings together:
//		• Seven classics: Insertion, Bubble, Selection, Shaker, Shell, Quick, Heap
//		• Two renditions of each: an instructional (naive) and a tuned (optimized) one
//		• Exact operation accounting: comparisons, swaps and element moves
//		• An adaptive wall-clock harness that never reports a zero duration
//		• A black-box stability verifier that can falsify the textbooks
//
// ✨ Why choose sortlab?
//
//   - Honest numbers – every comparison flows through one counted wrapper
//   - Deterministic protocol – backup/restore between repeats, averaged results
//   - Pure Go generics – sort any fixed-layout record with a three-way comparator
//   - Library first – the core does no I/O, no logging, no goroutines
//
// Under the hood, everything is organized under these subpackages:
//
//	sorting/   — the algorithm suite, metrics and per-call strategy selection
//	stability/ — empirical relative-order verification for equal-keyed elements
//	bench/     — adaptive multi-run timing harness and the full-suite orchestrator
//	dataset/   — number/record file parsing, synthetic shapes, result persistence
//	report/    — YAML documents and text tables for measurement results
//	cmd/       — the sortlab CLI (run, stability, generate, info)
//
// Quick taste:
//
//	m := sorting.NewMetrics()
//	_ = sorting.Quick(data, cmp, sorting.WithMetrics(m))
//	fmt.Println(m.Comparisons)
//
// Dive into README.md for the measurement methodology and the full
// naive-versus-optimized operation profiles.
//
//	go get github.com/katalvlaran/sortlab
package sortlab
