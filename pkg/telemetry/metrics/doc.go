// Package metrics exposes Prometheus metrics for watch mode: report runs by
// group and status, extraction and row counts, pass duration, and the
// timestamp of the last completed pass. One-shot report runs do not register
// any metrics.
package metrics
