// Package goquery implements HTML metadata extraction using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/metacheck"
)

// Ensure Extractor implements metacheck.Extractor at compile time.
var _ metacheck.Extractor = (*Extractor)(nil)

// Extractor extracts head metadata from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's canonical URL, title, and meta description.
// First matching element wins; absent elements yield empty fields.
func (e *Extractor) Extract(html string) (*metacheck.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, metacheck.Errorf(metacheck.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &metacheck.ExtractResult{}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		result.Canonical = href
	}

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		result.Description = strings.TrimSpace(content)
	}

	return result, nil
}
