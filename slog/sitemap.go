package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/metacheck"
)

// Ensure LoggingSitemapService implements metacheck.SitemapService.
var _ metacheck.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   metacheck.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next metacheck.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// FetchURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) FetchURLs(ctx context.Context, sitemapURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap fetch",
			"url", sitemapURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchURLs(ctx, sitemapURL)
}
