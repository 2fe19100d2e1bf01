package metacheck

// ExtractResult holds the head metadata extracted from an HTML page.
type ExtractResult struct {
	// Canonical is the href of the first link rel="canonical" element.
	Canonical string

	// Title is the trimmed text of the first title element.
	Title string

	// Description is the trimmed content of the first
	// meta name="description" element.
	Description string
}

// Extractor extracts canonical/title/description metadata from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the page's head metadata.
	// A missing element yields an empty field, not an error.
	Extract(html string) (*ExtractResult, error)
}
