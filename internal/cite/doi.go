// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"
)

var (
	// doiPrefixRe strips a leading "doi:" label, case-insensitive.
	doiPrefixRe = regexp.MustCompile(`(?i)^doi:\s*`)

	// doiURLPrefixRe strips a leading doi.org resolver URL.
	doiURLPrefixRe = regexp.MustCompile(`(?i)^https?://(?:dx\.)?doi\.org/`)

	// bareDomainRe recognizes schemeless URLs like "example.com/path".
	bareDomainRe = regexp.MustCompile(`^[\w-]+(?:\.[\w-]+)+(?:/\S*)?$`)
)

// NormalizeDOI strips a leading "doi:" label and a leading doi.org resolver
// prefix, then trims whitespace. It does not validate DOI shape: anything
// left after stripping is returned as-is.
func NormalizeDOI(raw string) string {
	s := strings.TrimSpace(raw)
	s = doiPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = doiURLPrefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// doiURL renders a DOI as a resolver URL, or empty for an empty DOI.
func doiURL(doi string) string {
	if doi == "" {
		return ""
	}
	return "https://doi.org/" + doi
}

// normalizeURL passes through http(s) URLs, prepends https:// to bare
// domains, and otherwise returns the trimmed input unchanged. It never
// rejects.
func normalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	if bareDomainRe.MatchString(s) {
		return "https://" + s
	}
	return s
}
