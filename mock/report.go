package mock

import "github.com/fwojciec/metacheck"

var _ metacheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of metacheck.ReportWriter.
type ReportWriter struct {
	WritePageFn func(page *metacheck.PageMetadata) error
	CloseFn     func() error
}

func (w *ReportWriter) WritePage(page *metacheck.PageMetadata) error {
	return w.WritePageFn(page)
}

func (w *ReportWriter) Close() error {
	if w.CloseFn == nil {
		return nil
	}
	return w.CloseFn()
}

var _ metacheck.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of metacheck.ReportService.
type ReportService struct {
	CreateFn func() (metacheck.ReportWriter, error)
}

func (s *ReportService) Create() (metacheck.ReportWriter, error) {
	return s.CreateFn()
}
