package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/metacheck"
	"github.com/fwojciec/metacheck/fs"
	"github.com/fwojciec/metacheck/goquery"
	mchttp "github.com/fwojciec/metacheck/http"
	"github.com/fwojciec/metacheck/scan"
	mcslog "github.com/fwojciec/metacheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now supplies the timestamp used for derived report paths.
	// Overridable in tests.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("metacheck"),
		kong.Description("Check canonical URL metadata for pages listed in a sitemap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.PageCount <= 0 {
		return fmt.Errorf("page count must be positive, got %d", cli.PageCount)
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire services
	client := &http.Client{Timeout: cli.Timeout}
	sitemaps := mcslog.NewLoggingSitemapService(mchttp.NewSitemapService(client), logger)
	fetcher := mcslog.NewLoggingFetcher(mchttp.NewFetcher(mchttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	outputPath := cli.Output
	if outputPath == "" {
		outputPath = fs.ReportPath(cli.SitemapURL, m.Now())
	}
	reports := fs.NewReportService(outputPath)

	scanner := &scan.Scanner{
		Sitemaps:  sitemaps,
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Reports:   reports,
		Pacer:     scan.NewDelayPacer(time.Duration(cli.Delay * float64(time.Second))),
	}

	fmt.Fprintf(stdout, "Fetching sitemap from: %s\n", cli.SitemapURL)

	progress := func(p metacheck.ScanProgress) {
		switch p.Type {
		case metacheck.ProgressDiscovered:
			fmt.Fprintf(stdout, "Found %d URLs in sitemap\n", p.Total)
			fmt.Fprintf(stdout, "Scraping %d pages...\n", min(cli.PageCount, p.Total))
			fmt.Fprintf(stdout, "Output will be saved to: %s\n", outputPath)
		case metacheck.ProgressStarted:
			fmt.Fprintf(stdout, "Scraping %d/%d: %s\n", p.Completed, p.Total, p.URL)
		case metacheck.ProgressFailed:
			fmt.Fprintf(stderr, "Error fetching %s: %v\n", p.URL, p.Err)
		}
	}

	result, err := scanner.Run(ctx, cli.SitemapURL, cli.PageCount, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nResults saved to: %s\n", outputPath)
	fmt.Fprintf(stdout, "Scraped %d pages successfully\n", result.Pages)

	return nil
}

// newLogger builds the CLI's slog logger on top of a charmbracelet/log
// handler. Service-level logs stay hidden unless --verbose is set; fatal
// and per-page diagnostics are printed directly.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := charmlog.Options{
		ReportTimestamp: true,
		Level:           charmlog.WarnLevel,
	}
	if verbose {
		opts.Level = charmlog.DebugLevel
	}
	return slog.New(charmlog.NewWithOptions(w, opts))
}
