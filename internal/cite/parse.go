// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Extraction patterns. Every extractor returns an empty string when its
// pattern misses; none of them can fail.
var (
	doiLabelCapRe = regexp.MustCompile(`(?i)doi:\s*(10\.\S+)`)
	doiOrgCapRe   = regexp.MustCompile(`(?i)doi\.org/(10\.\S+)`)
	urlAnyRe      = regexp.MustCompile(`https?://\S+`)

	numericDateCapRe = regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}(?:[-/]\d{1,2})?)\b`)
	bareYearCapRe    = regexp.MustCompile(`\b(\d{4})\b`)
	pubYearCapRe     = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)
	apaYearCapRe     = regexp.MustCompile(`\((\d{4})[a-z]?\)`)

	accessedAnchorRe = regexp.MustCompile(`(?i)\baccessed\b:?\s*`)

	gbtVIPCapRe = regexp.MustCompile(`(\d+)\((\d+)\)(?:\s*:\s*(\d+(?:\s*[-–—]\s*\d+)?))?`)
	volCapRe    = regexp.MustCompile(`\bvol\.\s*([0-9A-Za-z]+)`)
	noCapRe     = regexp.MustCompile(`\bno\.\s*([0-9A-Za-z]+)`)
	ppCapRe     = regexp.MustCompile(`\bpp\.\s*(\d+(?:\s*[-–—]\s*\d+)?)`)

	quotedTitleCapRe = regexp.MustCompile(`"([^"]{2,300})"`)
	apaTitleCapRe    = regexp.MustCompile(`\([^)]*\d{4}[a-z]?[^)]*\)\.?\s*([^.]+)`)

	apaAuthorCapRe  = regexp.MustCompile(`([A-Z][A-Za-z'-]+),\s*((?:[A-Z]\.\s*)+)`)
	ieeeAuthorCapRe = regexp.MustCompile(`((?:[A-Z]\.\s*)+)([A-Z][A-Za-z'-]+)`)
	gbtAuthorCapRe  = regexp.MustCompile(`([A-Z][A-Za-z'-]+)\s+([A-Z]{1,4})(?:,|$)`)

	apaContainerCapRe = regexp.MustCompile(`^([^,]+?),\s*\d`)
)

// ParseCitation reverse-parses freeform citation text into structured
// fields. A non-empty preferred style skips detection and is reported with
// confidence 1. Extraction is best-effort and independent per field: a
// pattern miss leaves that field empty, and no input can produce an error.
func ParseCitation(raw string, preferred types.CitationStyle) types.ParsedCitationFields {
	c := cleanCitation(raw)
	out := types.ParsedCitationFields{Style: types.StyleUnknown}
	if c.text == "" {
		return out
	}

	if preferred != "" && preferred != types.StyleUnknown {
		out.Style = preferred
		out.Confidence = 1
	} else {
		det := DetectStyle(raw)
		out.Style = det.Style
		out.Confidence = det.Confidence
	}

	text := c.text
	out.DOI = extractDOI(text)
	if out.DOI == "" {
		out.URL = extractLastURL(text)
	}
	out.AccessDate = extractAccessDate(text)
	out.SourceType = inferSourceType(text)
	out.PublishedDate = extractPublishedYear(text, out.Style)
	out.Volume, out.Issue, out.Pages = extractVolumeIssuePages(text)
	out.Title = extractTitle(text, out.Style)
	out.Authors = extractAuthors(text, out.Style)

	// The segment after the title names the container, or the publisher
	// for book-typed records.
	following := extractAfterTitle(text, out.Title, out.Style)
	if out.SourceType == types.SourceBook {
		out.Publisher = following
	} else {
		out.ContainerTitle = following
	}

	return out
}

// extractDOI finds the first DOI in the text, whether labeled ("doi: 10.x")
// or embedded in a resolver URL, and normalizes it.
func extractDOI(text string) string {
	m := doiLabelCapRe.FindStringSubmatch(text)
	if m == nil {
		m = doiOrgCapRe.FindStringSubmatch(text)
	}
	if m == nil {
		return ""
	}
	return NormalizeDOI(strings.TrimRight(m[1], ".,;)]"))
}

// extractLastURL returns the last http(s) URL in the text. Last, not
// first: citations usually end with the link.
func extractLastURL(text string) string {
	matches := urlAnyRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimRight(matches[len(matches)-1], `.,;)]"`)
}

// accessWindow bounds how far past the word "accessed" a date is sought.
const accessWindow = 60

// extractAccessDate pulls the date following the word "accessed". It
// prefers a numeric YYYY-MM[-DD] shape (separators - or /) and falls back
// to a bare 4-digit year, so prose dates like "5 Mar. 2020" still yield
// their year.
func extractAccessDate(text string) string {
	loc := accessedAnchorRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	span := text[loc[1]:]
	if i := strings.IndexAny(span, ";\n"); i >= 0 {
		span = span[:i]
	}
	if len(span) > accessWindow {
		span = span[:accessWindow]
	}

	if m := numericDateCapRe.FindStringSubmatch(span); m != nil {
		return strings.ReplaceAll(m[1], "/", "-")
	}
	if m := bareYearCapRe.FindStringSubmatch(span); m != nil {
		return m[1]
	}
	return ""
}

// inferSourceType reads the source category off explicit markers. Without
// a marker the type stays unset rather than guessed.
func inferSourceType(text string) types.CitationSourceType {
	switch {
	case strings.Contains(text, gbtMarkerWeb):
		return types.SourceWebsite
	case strings.Contains(text, gbtMarkerJournal), volTokenRe.MatchString(text), ppTokenRe.MatchString(text):
		return types.SourceJournal
	case strings.Contains(text, gbtMarkerBook):
		return types.SourceBook
	}
	return ""
}

// extractPublishedYear returns the publication year: for APA the
// parenthesized year after the authors, otherwise the first plausible
// (1800-2099) bare year anywhere in the text.
func extractPublishedYear(text string, style types.CitationStyle) string {
	if style == types.StyleAPA7 {
		if m := apaYearCapRe.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	if m := pubYearCapRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractVolumeIssuePages reads the volume group. GB/T-marked text uses
// the "12(3): 45-67" family; everything else uses "vol. N, no. M, pp. X-Y"
// tokens. The two families are disjoint.
func extractVolumeIssuePages(text string) (volume, issue, pages string) {
	if gbtTypeMarkerRe.MatchString(text) {
		if m := gbtVIPCapRe.FindStringSubmatch(text); m != nil {
			return m[1], m[2], strings.ReplaceAll(m[3], " ", "")
		}
		return "", "", ""
	}

	if m := volCapRe.FindStringSubmatch(text); m != nil {
		volume = m[1]
	}
	if m := noCapRe.FindStringSubmatch(text); m != nil {
		issue = m[1]
	}
	if m := ppCapRe.FindStringSubmatch(text); m != nil {
		pages = strings.ReplaceAll(m[1], " ", "")
	}
	return volume, issue, pages
}

// extractTitle finds the work's title: a double-quoted span when present,
// else the text anchored on the GB/T type marker or the APA year
// parenthesis, depending on style.
func extractTitle(text string, style types.CitationStyle) string {
	if m := quotedTitleCapRe.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(strings.TrimSpace(m[1]), ",.;")
	}

	if style == types.StyleGBT7714 || gbtTypeMarkerRe.MatchString(text) {
		if loc := gbtTypeMarkerRe.FindStringIndex(text); loc != nil {
			seg := text[:loc[0]]
			if i := strings.LastIndex(seg, "."); i >= 0 {
				seg = seg[i+1:]
			}
			return strings.TrimSpace(seg)
		}
	}

	if style == types.StyleAPA7 {
		if m := apaTitleCapRe.FindStringSubmatch(text); m != nil {
			return strings.TrimRight(strings.TrimSpace(m[1]), ",;")
		}
	}

	return fallbackTitle(text, style)
}

// fallbackTitle handles unquoted titles (book citations in MLA, Chicago,
// and IEEE): MLA/Chicago put the title in the second sentence after the
// inverted author block; IEEE chains it after the last comma of the first
// sentence.
func fallbackTitle(text string, style types.CitationStyle) string {
	segs := splitSentences(text)
	switch style {
	case types.StyleMLA9, types.StyleChicago:
		if len(segs) >= 2 {
			return segs[1]
		}
	case types.StyleIEEE:
		if len(segs) >= 1 {
			seg := segs[0]
			if i := strings.LastIndex(seg, ", "); i >= 0 {
				seg = seg[i+2:]
			}
			return strings.TrimSpace(seg)
		}
	}
	return ""
}

// sentenceInitialRe matches single-letter initials ("A.") so sentence
// splitting does not break inside an author list.
var sentenceInitialRe = regexp.MustCompile(`\b([A-Z])\.`)

// sentenceAbbrevs are protected from period splitting.
var sentenceAbbrevs = [][2]string{
	{"et al.", "et al\x00"},
	{"e.g.", "e\x00g\x00"},
	{"i.e.", "i\x00e\x00"},
}

// splitSentences splits citation text at ". " boundaries while protecting
// author initials and common abbreviations.
func splitSentences(text string) []string {
	safe := text
	for _, a := range sentenceAbbrevs {
		safe = strings.ReplaceAll(safe, a[0], a[1])
	}
	safe = sentenceInitialRe.ReplaceAllString(safe, "${1}\x00")

	var out []string
	for _, part := range strings.Split(safe, ". ") {
		part = strings.ReplaceAll(part, "\x00", ".")
		part = strings.TrimSpace(strings.TrimRight(part, "."))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// extractAuthors cuts the author segment off the front of the citation
// using a style-specific boundary, then matches style-specific name pairs.
// MLA, Chicago, and unknown styles go through the generic path, which
// reuses ParseAuthors.
func extractAuthors(text string, style types.CitationStyle) []types.CitationName {
	switch style {
	case types.StyleAPA7:
		seg := text
		if i := strings.Index(seg, "("); i >= 0 {
			seg = seg[:i]
		}
		var names []types.CitationName
		for _, m := range apaAuthorCapRe.FindAllStringSubmatch(seg, -1) {
			names = append(names, types.CitationName{Family: m[1], Given: strings.TrimSpace(m[2])})
		}
		return names
	case types.StyleIEEE:
		seg := text
		if i := strings.Index(seg, `"`); i >= 0 {
			seg = seg[:i]
		} else if i := strings.Index(seg, ","); i >= 0 {
			seg = seg[:i]
		}
		var names []types.CitationName
		for _, m := range ieeeAuthorCapRe.FindAllStringSubmatch(seg, -1) {
			names = append(names, types.CitationName{Given: strings.TrimSpace(m[1]), Family: m[2]})
		}
		return names
	case types.StyleGBT7714:
		seg := text
		if i := strings.Index(seg, "."); i >= 0 {
			seg = seg[:i]
		}
		var names []types.CitationName
		for _, m := range gbtAuthorCapRe.FindAllStringSubmatch(seg, -1) {
			names = append(names, types.CitationName{Family: m[1], Given: m[2]})
		}
		return names
	}
	return genericAuthors(text)
}

// genericAuthorSeps rewrites common author connectors into newlines so the
// segment can be handed to ParseAuthors.
var genericAuthorSeps = strings.NewReplacer(", and ", "\n", " and ", "\n", " & ", "\n", "; ", "\n")

// genericAuthors takes the text before the first period as the author
// block and splits it with ParseAuthors.
func genericAuthors(text string) []types.CitationName {
	seg := text
	if i := strings.Index(seg, "."); i >= 0 {
		seg = seg[:i]
	}
	return ParseAuthors(genericAuthorSeps.Replace(seg))
}

// extractAfterTitle returns the segment immediately following the detected
// title: the container title, or the publisher for books. Bounded by the
// next comma (APA also stops at a period, since its website grammar ends
// the container with one).
func extractAfterTitle(text, title string, style types.CitationStyle) string {
	if title == "" {
		return ""
	}
	idx := strings.Index(text, title)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(title):]

	// Skip the GB/T type marker and the closing punctuation of a quoted
	// or plain title.
	if loc := gbtTypeMarkerRe.FindStringIndex(rest); loc != nil && loc[0] == 0 {
		rest = rest[loc[1]:]
	}
	rest = strings.TrimLeft(rest, `",.] `)

	end := len(rest)
	if i := strings.Index(rest, ","); i >= 0 {
		end = i
	}
	if style == types.StyleAPA7 {
		if m := apaContainerCapRe.FindStringSubmatch(rest); m != nil {
			return strings.TrimSpace(m[1])
		}
		if i := strings.Index(rest, "."); i >= 0 && i < end {
			end = i
		}
	}
	return strings.TrimRight(strings.TrimSpace(rest[:end]), ".")
}
