package goquery_test

import (
	"testing"

	"github.com/fwojciec/metacheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all metadata fields", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
  <title>Example Page</title>
  <link rel="canonical" href="https://example.com/page">
  <meta name="description" content="An example page.">
</head>
<body><p>content</p></body>
</html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/page", result.Canonical)
		assert.Equal(t, "Example Page", result.Title)
		assert.Equal(t, "An example page.", result.Description)
	})

	t.Run("missing elements yield empty fields", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.Extract(`<html><head></head><body></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, result.Canonical)
		assert.Empty(t, result.Title)
		assert.Empty(t, result.Description)
	})

	t.Run("first matching element wins", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
  <link rel="canonical" href="https://example.com/first">
  <link rel="canonical" href="https://example.com/second">
  <title>First Title</title>
  <title>Second Title</title>
  <meta name="description" content="first desc">
  <meta name="description" content="second desc">
</head></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/first", result.Canonical)
		assert.Equal(t, "First Title", result.Title)
		assert.Equal(t, "first desc", result.Description)
	})

	t.Run("trims title and description whitespace", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
  <title>
    Padded Title
  </title>
  <meta name="description" content="  padded desc  ">
</head></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Padded Title", result.Title)
		assert.Equal(t, "padded desc", result.Description)
	})

	t.Run("ignores meta tags with other names", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
  <meta name="keywords" content="a,b,c">
  <meta property="og:description" content="social desc">
</head></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Empty(t, result.Description)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		// html.Parse repairs broken markup rather than failing.
		e := goquery.NewExtractor()
		result, err := e.Extract(`<html><head><title>Broken`)

		require.NoError(t, err)
		assert.Equal(t, "Broken", result.Title)
	})
}
