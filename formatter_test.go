package metacheck_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/metacheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("formats matching page", func(t *testing.T) {
		t.Parallel()

		page := &metacheck.PageMetadata{
			URL:         "https://x.test/p",
			Canonical:   "https://x.test/p",
			Title:       "T",
			Description: "D",
		}

		result := metacheck.FormatPage(page)

		expected := "https://x.test/p\n" +
			"================\n" +
			"match ✓\n" +
			"canonical: https://x.test/p\n" +
			"title: T\n" +
			"desc: D\n"
		assert.Equal(t, expected, result)
	})

	t.Run("underline is exactly as long as the URL", func(t *testing.T) {
		t.Parallel()

		page := &metacheck.PageMetadata{URL: "https://x.test/p"}

		lines := strings.Split(metacheck.FormatPage(page), "\n")

		require.GreaterOrEqual(t, len(lines), 2)
		assert.Equal(t, strings.Repeat("=", len("https://x.test/p")), lines[1])
	})

	t.Run("underline counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		page := &metacheck.PageMetadata{URL: "https://x.test/café"}

		lines := strings.Split(metacheck.FormatPage(page), "\n")

		require.GreaterOrEqual(t, len(lines), 2)
		assert.Equal(t, utf8.RuneCountInString(page.URL), len(lines[1]))
	})

	t.Run("formats mismatch as FAIL", func(t *testing.T) {
		t.Parallel()

		page := &metacheck.PageMetadata{
			URL:       "https://example.com/p",
			Canonical: "https://www.example.com/p",
			Title:     "T",
		}

		result := metacheck.FormatPage(page)

		assert.Contains(t, result, "\nmatch FAIL\n")
	})

	t.Run("formats unreachable page with error sentinel", func(t *testing.T) {
		t.Parallel()

		page := &metacheck.PageMetadata{
			URL:   "https://example.com/down",
			Title: metacheck.ErrorTitle,
		}

		result := metacheck.FormatPage(page)

		expected := "https://example.com/down\n" +
			"========================\n" +
			"match FAIL\n" +
			"canonical: \n" +
			"title: ERROR: Could not fetch page\n" +
			"desc: \n"
		assert.Equal(t, expected, result)
	})
}
