package metacheck

import "context"

// SitemapService retrieves the ordered list of page URLs from a sitemap.
type SitemapService interface {
	// FetchURLs downloads the sitemap at sitemapURL and returns the listed
	// page URLs in document order, whitespace-trimmed. Sitemaps declaring
	// the standard, news, or image namespace are probed in that order and
	// the first namespace that yields URLs is used exclusively; a bare
	// (namespace-free) sitemap is handled as a fallback.
	//
	// Returns EUNAVAILABLE for network/HTTP failures and EINVALID for
	// malformed XML. A well-formed sitemap listing no URLs returns an
	// empty slice and no error; deciding whether that is fatal is the
	// caller's business.
	FetchURLs(ctx context.Context, sitemapURL string) ([]string, error)
}
