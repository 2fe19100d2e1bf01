// Package http provides HTTP-backed implementations of the metacheck
// fetching services. Requests carry a desktop-browser header set so hosts
// that reject obvious bots still respond.
package http

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// setBrowserHeaders mirrors a desktop Chrome request.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

// decodeBody wraps the response body according to its Content-Encoding.
// Setting Accept-Encoding explicitly disables net/http's transparent
// decompression, so gzip and deflate are handled here.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip response: %w", err)
		}
		return &decodedBody{Reader: gz, underlying: resp.Body}, nil
	case "deflate":
		return &decodedBody{Reader: flate.NewReader(resp.Body), underlying: resp.Body}, nil
	default:
		return resp.Body, nil
	}
}

// decodedBody closes the underlying response body when the decompressed
// stream is closed.
type decodedBody struct {
	io.Reader
	underlying io.ReadCloser
}

func (b *decodedBody) Close() error {
	return b.underlying.Close()
}

// formatHeaders renders response headers for fatal-error diagnostics.
func formatHeaders(h http.Header) string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(h[k], ", "))
	}
	return strings.Join(parts, "; ")
}
