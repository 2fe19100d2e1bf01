package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/metacheck/mock"
	mcslog "github.com/fwojciec/metacheck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_FetchURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			FetchURLsFn: func(ctx context.Context, sitemapURL string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := mcslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.FetchURLs(context.Background(), "https://example.com/sitemap.xml")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap fetch")
		assert.Contains(t, output, "url=https://example.com/sitemap.xml")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			FetchURLsFn: func(ctx context.Context, sitemapURL string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := mcslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.FetchURLs(context.Background(), "https://example.com/sitemap.xml")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sitemap fetch")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
