package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	SitemapURL string        `arg:"" help:"URL of the sitemap XML file"`
	PageCount  int           `arg:"" help:"Number of pages to check"`
	Output     string        `short:"o" help:"Output file path (default: derived from the sitemap domain and a timestamp)"`
	Delay      float64       `short:"d" default:"1.0" help:"Delay between page requests in seconds"`
	Timeout    time.Duration `short:"t" default:"30s" help:"HTTP timeout per request"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
}
