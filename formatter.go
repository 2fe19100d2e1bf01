package metacheck

import (
	"strings"
	"unicode/utf8"
)

// FormatPage renders one page's metadata as a report block. Deterministic
// and pure. The underline is exactly as long as the URL, counted in runes.
//
// Layout:
//
//	<url>
//	<====================>
//	match <✓ or FAIL>
//	canonical: <canonical>
//	title: <title>
//	desc: <description>
func FormatPage(page *PageMetadata) string {
	match := "FAIL"
	if CanonicalMatch(page.URL, page.Canonical) {
		match = "✓"
	}

	var b strings.Builder
	b.WriteString(page.URL)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(page.URL)))
	b.WriteString("\nmatch ")
	b.WriteString(match)
	b.WriteString("\ncanonical: ")
	b.WriteString(page.Canonical)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\ndesc: ")
	b.WriteString(page.Description)
	b.WriteString("\n")
	return b.String()
}
