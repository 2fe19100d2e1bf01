// Package fs provides the file-backed report output: default report path
// derivation and an append-only block writer.
package fs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/metacheck"
)

// DefaultReportDir is the directory derived report paths are placed under.
const DefaultReportDir = "output"

var nonWordChars = regexp.MustCompile(`[^\w-]`)

// ReportPath derives a report file path from the sitemap URL's host and
// the given timestamp.
// Example: https://www.example.com/sitemap.xml at 2024-01-02 15:04:05
// → output/example_com_metadata_check_20240102_150405.txt.
//
// A leading "www." is stripped and characters outside [0-9A-Za-z_-]
// become underscores. If the host cannot be determined the domain segment
// is omitted.
func ReportPath(sitemapURL string, now time.Time) string {
	timestamp := now.Format("20060102_150405")

	u, err := url.Parse(sitemapURL)
	if err != nil || u.Host == "" {
		return filepath.Join(DefaultReportDir, fmt.Sprintf("metadata_check_%s.txt", timestamp))
	}

	domain := strings.TrimPrefix(u.Host, "www.")
	domain = nonWordChars.ReplaceAllString(domain, "_")

	return filepath.Join(DefaultReportDir, fmt.Sprintf("%s_metadata_check_%s.txt", domain, timestamp))
}

// Ensure ReportService implements metacheck.ReportService.
var _ metacheck.ReportService = (*ReportService)(nil)

// ReportService opens report writers at a fixed path. Holding the path
// rather than an open file keeps the report from being created before a
// run is known to proceed.
type ReportService struct {
	path string
}

// NewReportService creates a ReportService that writes to path.
func NewReportService(path string) *ReportService {
	return &ReportService{path: path}
}

// Path returns the report file's path.
func (s *ReportService) Path() string {
	return s.path
}

// Create opens the report for writing, truncating any existing file and
// creating parent directories as needed.
func (s *ReportService) Create() (metacheck.ReportWriter, error) {
	return NewReportWriter(s.path)
}

// Ensure ReportWriter implements metacheck.ReportWriter.
var _ metacheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter streams formatted page blocks to a file, one blank line
// between blocks, syncing after each write so a killed run keeps every
// fully processed page.
type ReportWriter struct {
	file    *os.File
	written bool
}

// NewReportWriter creates the report file at path, truncating any
// existing file and creating parent directories as needed.
func NewReportWriter(path string) (*ReportWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &ReportWriter{file: f}, nil
}

// WritePage appends the formatted block for page and flushes it to stable
// storage before returning.
func (w *ReportWriter) WritePage(page *metacheck.PageMetadata) error {
	block := metacheck.FormatPage(page)
	if w.written {
		block = "\n" + block
	}

	if _, err := w.file.WriteString(block); err != nil {
		return err
	}
	w.written = true

	return w.file.Sync()
}

// Close closes the underlying file.
func (w *ReportWriter) Close() error {
	return w.file.Close()
}
