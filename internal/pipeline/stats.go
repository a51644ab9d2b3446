package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total       int  // Eligible files discovered.
	Current     int  // 1-based index of the file being processed.
	Renamed     int  // Files renamed (or previewed, in dry-run).
	Interrupted bool // Run stopped early by a cancelled context.
}
