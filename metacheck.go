// Package metacheck provides a CLI tool for auditing canonical URL
// metadata across the pages listed in a site's XML sitemap. It fetches
// the sitemap, visits a bounded number of listed pages in order, extracts
// each page's canonical URL, title, and meta description, and streams a
// human-readable report to a timestamped file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/).
package metacheck
