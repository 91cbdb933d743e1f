// Package testutil provides deterministic helpers for tests and
// benchmarks: a seeded RNG for reproducible byte corpora and a chunker
// for exercising streaming code paths.
package testutil
