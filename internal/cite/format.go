// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// warningSet collects missing-field warnings during one formatting call.
// It deduplicates; order is not meaningful.
type warningSet map[types.CitationWarningCode]struct{}

func (w warningSet) add(code types.CitationWarningCode) {
	w[code] = struct{}{}
}

// list returns the collected warnings sorted for deterministic output.
func (w warningSet) list() []types.CitationWarningCode {
	if len(w) == 0 {
		return nil
	}
	out := make([]types.CitationWarningCode, 0, len(w))
	for code := range w {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FormatCitation renders a structured record as a citation string in the
// requested style. It never fails: missing fields degrade to omitted
// segments plus warnings, and an unknown style yields an empty citation.
func FormatCitation(in types.CitationInput, opts types.CitationFormatOptions) types.CitationFormatResult {
	in = normalizeInput(in)
	warns := warningSet{}

	var citation string
	switch in.Style {
	case types.StyleAPA7:
		citation = formatAPA7(in, opts, warns)
	case types.StyleMLA9:
		citation = formatMLA9(in, opts, warns)
	case types.StyleChicago:
		citation = formatChicago(in, opts, warns)
	case types.StyleIEEE:
		citation = formatIEEE(in, opts, warns)
	case types.StyleGBT7714:
		citation = formatGBT7714(in, opts, warns)
	}

	return types.CitationFormatResult{
		Citation: citation,
		Warnings: warns.list(),
	}
}

// normalizeInput trims all scalar fields and normalizes the DOI and URL.
// The engine owns normalization; callers pass raw form values.
func normalizeInput(in types.CitationInput) types.CitationInput {
	in.Title = strings.TrimSpace(in.Title)
	in.ContainerTitle = strings.TrimSpace(in.ContainerTitle)
	in.Publisher = strings.TrimSpace(in.Publisher)
	in.PublishedDate = strings.TrimSpace(in.PublishedDate)
	in.AccessDate = strings.TrimSpace(in.AccessDate)
	in.Volume = strings.TrimSpace(in.Volume)
	in.Issue = strings.TrimSpace(in.Issue)
	in.Pages = strings.TrimSpace(in.Pages)
	in.DOI = NormalizeDOI(in.DOI)
	in.URL = normalizeURL(in.URL)

	authors := make([]types.CitationName, 0, len(in.Authors))
	for _, a := range in.Authors {
		a.Given = strings.TrimSpace(a.Given)
		a.Family = strings.TrimSpace(a.Family)
		if a.Given == "" && a.Family == "" {
			continue
		}
		authors = append(authors, a)
	}
	in.Authors = authors
	return in
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// joinSegments assembles citation segments: each non-empty segment gets
// terminal punctuation, segments join with single spaces, and whitespace
// runs collapse.
func joinSegments(segs []string) string {
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if !endsTerminated(seg) {
			seg += "."
		}
		parts = append(parts, seg)
	}
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(strings.Join(parts, " "), " "))
}

// endsTerminated reports whether a segment already carries terminal
// punctuation, looking through a closing quote if present.
func endsTerminated(seg string) bool {
	seg = strings.TrimRight(seg, `"'”’`)
	if seg == "" {
		return false
	}
	switch seg[len(seg)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// pickLink returns the preferred link for a record: the DOI rendered as a
// resolver URL when present, else the raw URL. Empty when neither exists.
func pickLink(in types.CitationInput) string {
	if in.DOI != "" {
		return doiURL(in.DOI)
	}
	return in.URL
}

// requireAuthorsTitleDate flags the warnings every grammar branch shares
// and returns the parsed publication date (ok=false when absent).
func requireAuthorsTitleDate(in types.CitationInput, warns warningSet) (dateParts, bool) {
	if len(in.Authors) == 0 {
		warns.add(types.WarnMissingAuthors)
	}
	if in.Title == "" {
		warns.add(types.WarnMissingTitle)
	}
	d, ok := parseDateParts(in.PublishedDate)
	if !ok {
		warns.add(types.WarnMissingDate)
	}
	return d, ok
}

// quoted wraps a title in straight double quotes with the closing
// punctuation inside, MLA/Chicago style: `"Title."`.
func quoted(title, terminal string) string {
	if title == "" {
		return ""
	}
	return `"` + title + terminal + `"`
}

// joinComma joins non-empty pieces with ", ".
func joinComma(pieces ...string) string {
	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
