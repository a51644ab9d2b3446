// Package pipeline orchestrates directory scanning, per-file candidate
// naming, collision resolution, and the rename (or dry-run preview) loop.
//
// Split into discover.go (scanner), runner.go (orchestrator), and stats.go
// (aggregate counters).
package pipeline
