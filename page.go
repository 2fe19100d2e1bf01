package metacheck

import "context"

// ErrorTitle is recorded as a page's title when the page could not be
// fetched. The page still gets a report block so the operator can see
// which URL failed.
const ErrorTitle = "ERROR: Could not fetch page"

// PageMetadata is the per-page result of a metadata check.
// Produced once per scanned URL and never mutated afterwards.
type PageMetadata struct {
	URL         string
	Canonical   string
	Title       string
	Description string
}

// ScanProgress reports progress during a scan.
type ScanProgress struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressDiscovered fires once after the sitemap is parsed.
	// Total holds the full URL count before truncation.
	ProgressDiscovered ProgressType = iota

	// ProgressStarted fires before each page fetch.
	// Completed holds the 1-based page index.
	ProgressStarted

	// ProgressCompleted fires after a page's block has been written.
	ProgressCompleted

	// ProgressFailed fires when a page fetch failed; the block with the
	// error sentinel title has still been written. Err holds the cause.
	ProgressFailed
)

// ScanProgressFunc is called as pages are processed.
type ScanProgressFunc func(ScanProgress)

// ReportWriter streams formatted page blocks to the report.
type ReportWriter interface {
	// WritePage appends the formatted block for page to the report and
	// flushes it to stable storage before returning. Blocks are separated
	// by a blank line; a written block is never rewritten.
	WritePage(page *PageMetadata) error

	// Close releases the underlying file handle.
	Close() error
}

// ReportService opens report writers. The report file must not be created
// until the sitemap has produced at least one URL, so a fatal sitemap
// failure leaves no file behind.
type ReportService interface {
	// Create opens the report for writing, truncating any existing file
	// at the same path.
	Create() (ReportWriter, error)
}

// Pacer spaces successive page requests.
type Pacer interface {
	// Wait blocks until the next request is allowed. The first call never
	// blocks. Returns an error if ctx is canceled or its deadline would
	// pass before the wait completes.
	Wait(ctx context.Context) error
}
