package metacheck

import "net/url"

// CanonicalMatch reports whether canonical points at the same network
// location (host, and port if present) as pageURL. Scheme, path, and
// query are ignored. An empty, hostless, or unparsable canonical never
// matches.
//
// Hosts are compared exactly, with no normalization: "example.com" and
// "www.example.com" do not match.
func CanonicalMatch(pageURL, canonical string) bool {
	if canonical == "" {
		return false
	}

	pu, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	cu, err := url.Parse(canonical)
	if err != nil || cu.Host == "" {
		return false
	}

	return pu.Host == cu.Host
}
