package mock

import "github.com/fwojciec/metacheck"

var _ metacheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of metacheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*metacheck.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*metacheck.ExtractResult, error) {
	return e.ExtractFn(html)
}
