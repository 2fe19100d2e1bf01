package mock

import (
	"context"

	"github.com/fwojciec/metacheck"
)

var _ metacheck.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of metacheck.SitemapService.
type SitemapService struct {
	FetchURLsFn func(ctx context.Context, sitemapURL string) ([]string, error)
}

func (s *SitemapService) FetchURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	return s.FetchURLsFn(ctx, sitemapURL)
}
