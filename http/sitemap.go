package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/metacheck"
	"golang.org/x/net/html/charset"
)

// sitemapNamespaces are probed in order. The first namespace that yields
// at least one url element with a populated loc child is used exclusively;
// results are never merged across namespaces.
var sitemapNamespaces = []string{
	"http://www.sitemaps.org/schemas/sitemap/0.9",
	"http://www.google.com/schemas/sitemap-news/0.9",
	"http://www.google.com/schemas/sitemap-image/1.1",
}

// Ensure SitemapService implements metacheck.SitemapService.
var _ metacheck.SitemapService = (*SitemapService)(nil)

// SitemapService fetches and parses sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, a client with DefaultTimeout is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &SitemapService{client: client}
}

// FetchURLs downloads the sitemap and extracts the listed page URLs in
// document order.
func (s *SitemapService) FetchURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, metacheck.Errorf(metacheck.EINVALID, "creating sitemap request: %v", err)
	}
	setBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, metacheck.Errorf(metacheck.EUNAVAILABLE, "fetching sitemap: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, metacheck.Errorf(metacheck.EUNAVAILABLE,
			"fetching sitemap: HTTP %d for %s (response headers: %s)",
			resp.StatusCode, sitemapURL, formatHeaders(resp.Header))
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, metacheck.Errorf(metacheck.EUNAVAILABLE, "reading sitemap: %v", err)
	}
	defer body.Close()

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, metacheck.Errorf(metacheck.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, metacheck.Errorf(metacheck.EINVALID, "empty sitemap XML")
	}

	for _, ns := range sitemapNamespaces {
		if urls := collectLocs(root, ns); len(urls) > 0 {
			return urls, nil
		}
	}

	// Fallback: bare sitemap with no namespace declared.
	return collectLocs(root, ""), nil
}

// collectLocs gathers loc values of url elements in the given namespace,
// in document order. An empty ns matches elements without a namespace.
func collectLocs(root *etree.Element, ns string) []string {
	var urls []string
	walk(root, func(el *etree.Element) {
		if el.Tag != "url" || el.NamespaceURI() != ns {
			return
		}
		for _, child := range el.ChildElements() {
			if child.Tag != "loc" || child.NamespaceURI() != ns {
				continue
			}
			if u := strings.TrimSpace(child.Text()); u != "" {
				urls = append(urls, u)
			}
			break
		}
	})
	return urls
}

// walk visits every descendant element of el in document order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	for _, child := range el.ChildElements() {
		fn(child)
		walk(child, fn)
	}
}
