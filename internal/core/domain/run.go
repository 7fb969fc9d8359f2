package domain

import "time"

// CrawlRun records the outcome of one crawl for the run history.
type CrawlRun struct {
	// ID is a generated unique identifier for the run.
	ID string

	// JQL is the filter query the run crawled.
	JQL string

	// APIVersion is the Jira search API version used (2 or 3).
	APIVersion int

	// Indexed is the number of issues successfully indexed.
	Indexed int

	// Failed is the number of issues that failed mapping or submission.
	Failed int

	// Cursor is the encoded pagination cursor at the point the run
	// stopped. Useful for diagnosing runs cut short by a page fault.
	Cursor string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time
}
