// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// apaMaxListed is the APA 7 author cap: up to 20 authors are listed in
// full; 21 or more collapse to the first 19, an ellipsis, and the last.
const apaMaxListed = 20

// apaName renders one author as "Family, I. I.".
func apaName(n types.CitationName) string {
	inits := initials(n.Given)
	switch {
	case n.Family == "":
		return inits
	case inits == "":
		return n.Family
	default:
		return n.Family + ", " + inits
	}
}

// apaAuthorList joins authors APA 7 style: "&" before the last name, the
// 19+ellipsis+last truncation past twenty authors.
func apaAuthorList(names []types.CitationName) string {
	rendered := make([]string, len(names))
	for i, n := range names {
		rendered[i] = apaName(n)
	}

	switch {
	case len(rendered) == 0:
		return ""
	case len(rendered) == 1:
		return rendered[0]
	case len(rendered) == 2:
		return rendered[0] + " & " + rendered[1]
	case len(rendered) <= apaMaxListed:
		return strings.Join(rendered[:len(rendered)-1], ", ") + ", & " + rendered[len(rendered)-1]
	default:
		return strings.Join(rendered[:apaMaxListed-1], ", ") + ", … " + rendered[len(rendered)-1]
	}
}

// formatAPA7 renders the APA 7 grammar. Titles stay plain; the date sits in
// parentheses right after the authors; the volume-issue group renders as
// "12(3)".
func formatAPA7(in types.CitationInput, opts types.CitationFormatOptions, warns warningSet) string {
	d, hasDate := requireAuthorsTitleDate(in, warns)

	segs := []string{apaAuthorList(in.Authors)}

	if hasDate {
		if in.SourceType == types.SourceWebsite {
			segs = append(segs, "("+formatMonthDayYear(d, opts.MonthsLong)+")")
		} else {
			segs = append(segs, "("+strconv.Itoa(d.year)+")")
		}
	}

	segs = append(segs, in.Title)

	link := pickLink(in)
	switch in.SourceType {
	case types.SourceJournal:
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		segs = append(segs, joinComma(in.ContainerTitle, apaVolumeIssue(in), in.Pages))
		if link == "" {
			warns.add(types.WarnMissingURL)
		}
		segs = append(segs, link)
	case types.SourceBook:
		if in.Publisher == "" {
			warns.add(types.WarnMissingPublisher)
		}
		segs = append(segs, in.Publisher, link)
	case types.SourceWebsite:
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		segs = append(segs, in.ContainerTitle)
		if link == "" {
			warns.add(types.WarnMissingURL)
		} else {
			segs = append(segs, opts.LabelRetrievedFrom+" "+link)
		}
	}

	return joinSegments(segs)
}

// apaVolumeIssue renders the APA volume-issue group: "12(3)", degrading to
// "12" or "(3)" when one half is missing.
func apaVolumeIssue(in types.CitationInput) string {
	switch {
	case in.Volume != "" && in.Issue != "":
		return in.Volume + "(" + in.Issue + ")"
	case in.Volume != "":
		return in.Volume
	case in.Issue != "":
		return "(" + in.Issue + ")"
	}
	return ""
}
