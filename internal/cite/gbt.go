// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// gbtMaxListed is the GB/T 7714 author cap: up to three authors are
// listed; more collapse to the first three plus ", et al.".
const gbtMaxListed = 3

// GB/T 7714 document type markers. The style detector keys on these.
const (
	gbtMarkerJournal = "[J]"
	gbtMarkerBook    = "[M]"
	gbtMarkerWeb     = "[EB/OL]"
)

// gbtName renders one author as "Family AB": family name followed by
// concatenated initials with no punctuation.
func gbtName(n types.CitationName) string {
	inits := bareInitials(n.Given)
	switch {
	case n.Family == "":
		return inits
	case inits == "":
		return n.Family
	default:
		return n.Family + " " + inits
	}
}

// gbtAuthorList joins authors GB/T 7714 style: comma-separated, truncated
// past three.
func gbtAuthorList(names []types.CitationName) string {
	rendered := make([]string, 0, len(names))
	for _, n := range names {
		rendered = append(rendered, gbtName(n))
	}
	if len(rendered) > gbtMaxListed {
		return strings.Join(rendered[:gbtMaxListed], ", ") + ", et al."
	}
	return strings.Join(rendered, ", ")
}

// formatGBT7714 renders the GB/T 7714 grammar. Every title carries a
// bracketed document type marker; dates render numerically; a DOI prints
// as an uppercase "DOI:" clause.
func formatGBT7714(in types.CitationInput, opts types.CitationFormatOptions, warns warningSet) string {
	d, hasDate := requireAuthorsTitleDate(in, warns)
	year := ""
	if hasDate {
		year = strconv.Itoa(d.year)
	}

	segs := []string{gbtAuthorList(in.Authors)}

	link := ""
	if in.DOI != "" {
		link = "DOI: " + in.DOI
	} else if in.URL != "" {
		link = in.URL
	}

	switch in.SourceType {
	case types.SourceJournal:
		segs = append(segs, gbtTitle(in.Title, gbtMarkerJournal))
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		segs = append(segs, joinComma(in.ContainerTitle, year, gbtVolumeIssuePages(in)))
		if link == "" {
			warns.add(types.WarnMissingURL)
		}
		segs = append(segs, link)
	case types.SourceBook:
		segs = append(segs, gbtTitle(in.Title, gbtMarkerBook))
		if in.Publisher == "" {
			warns.add(types.WarnMissingPublisher)
		}
		segs = append(segs, joinComma(in.Publisher, year), link)
	case types.SourceWebsite:
		segs = append(segs, gbtTitle(in.Title, gbtMarkerWeb))
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		date := ""
		if hasDate {
			date = formatNumericDate(d)
		}
		segs = append(segs, joinComma(in.ContainerTitle, date))
		if link == "" {
			warns.add(types.WarnMissingURL)
		}
		segs = append(segs, link)
		if ad, ok := parseDateParts(in.AccessDate); ok {
			segs = append(segs, opts.LabelAccessed+" "+formatNumericDate(ad))
		}
	}

	return joinSegments(segs)
}

// gbtTitle suffixes a non-empty title with its document type marker.
func gbtTitle(title, marker string) string {
	if title == "" {
		return ""
	}
	return title + marker
}

// gbtVolumeIssuePages renders "12(3): 45-67", degrading when parts are
// missing. The extractor recognizes the same shape.
func gbtVolumeIssuePages(in types.CitationInput) string {
	group := ""
	switch {
	case in.Volume != "" && in.Issue != "":
		group = in.Volume + "(" + in.Issue + ")"
	case in.Volume != "":
		group = in.Volume
	case in.Issue != "":
		group = "(" + in.Issue + ")"
	}
	if in.Pages != "" {
		if group != "" {
			return group + ": " + in.Pages
		}
		return in.Pages
	}
	return group
}
