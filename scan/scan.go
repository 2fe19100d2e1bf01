// Package scan orchestrates a metadata check run. It coordinates sitemap
// fetching, page fetching, metadata extraction, and report writing into a
// single sequential pass over the listed pages.
package scan

import (
	"context"
	"fmt"

	"github.com/fwojciec/metacheck"
)

// Scanner runs a metadata check over the pages listed in a sitemap.
type Scanner struct {
	Sitemaps  metacheck.SitemapService
	Fetcher   metacheck.Fetcher
	Extractor metacheck.Extractor
	Reports   metacheck.ReportService
	Pacer     metacheck.Pacer
}

// Result holds the outcome of a scan.
type Result struct {
	// Pages is the number of report blocks written.
	Pages int

	// Failed is the number of pages recorded with the error sentinel.
	Failed int
}

// Run fetches the sitemap, truncates the URL list to the first limit
// entries, and checks each page in order, streaming one report block per
// page. The report file is only created once the sitemap has yielded URLs.
//
// A page that cannot be fetched is recorded with metacheck.ErrorTitle and
// does not abort the run. A sitemap failure or an empty sitemap is fatal
// and returns before any report output exists.
func (s *Scanner) Run(ctx context.Context, sitemapURL string, limit int, progress metacheck.ScanProgressFunc) (*Result, error) {
	urls, err := s.Sitemaps.FetchURLs(ctx, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("sitemap fetch: %w", err)
	}
	if len(urls) == 0 {
		return nil, metacheck.Errorf(metacheck.ENOTFOUND, "no URLs found in sitemap")
	}

	notify(progress, metacheck.ScanProgress{
		Type:  metacheck.ProgressDiscovered,
		URL:   sitemapURL,
		Total: len(urls),
	})

	if limit < len(urls) {
		urls = urls[:limit]
	}

	report, err := s.Reports.Create()
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}
	defer report.Close()

	result := &Result{}
	for i, pageURL := range urls {
		// The first wait returns immediately; later waits space requests
		// by the configured delay.
		if err := s.Pacer.Wait(ctx); err != nil {
			return nil, err
		}

		notify(progress, metacheck.ScanProgress{
			Type:      metacheck.ProgressStarted,
			URL:       pageURL,
			Completed: i + 1,
			Total:     len(urls),
		})

		page, pageErr := s.checkPage(ctx, pageURL)

		if err := report.WritePage(page); err != nil {
			return nil, fmt.Errorf("writing report block for %s: %w", pageURL, err)
		}
		result.Pages++

		event := metacheck.ScanProgress{
			Type:      metacheck.ProgressCompleted,
			URL:       pageURL,
			Completed: i + 1,
			Total:     len(urls),
		}
		if pageErr != nil {
			result.Failed++
			event.Type = metacheck.ProgressFailed
			event.Err = pageErr
		}
		notify(progress, event)
	}

	return result, nil
}

// checkPage fetches one page and extracts its metadata. Failures are
// absorbed: the returned metadata carries the error sentinel title and
// the cause is returned for progress reporting only.
func (s *Scanner) checkPage(ctx context.Context, pageURL string) (*metacheck.PageMetadata, error) {
	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return &metacheck.PageMetadata{URL: pageURL, Title: metacheck.ErrorTitle}, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return &metacheck.PageMetadata{URL: pageURL, Title: metacheck.ErrorTitle}, err
	}

	return &metacheck.PageMetadata{
		URL:         pageURL,
		Canonical:   extracted.Canonical,
		Title:       extracted.Title,
		Description: extracted.Description,
	}, nil
}

func notify(progress metacheck.ScanProgressFunc, event metacheck.ScanProgress) {
	if progress != nil {
		progress(event)
	}
}
