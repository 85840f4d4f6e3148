// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// invertedName renders "Family, Given"; one empty half degrades to the other.
func invertedName(n types.CitationName) string {
	switch {
	case n.Family == "":
		return n.Given
	case n.Given == "":
		return n.Family
	default:
		return n.Family + ", " + n.Given
	}
}

// naturalName renders "Given Family".
func naturalName(n types.CitationName) string {
	return strings.TrimSpace(n.Given + " " + n.Family)
}

// mlaAuthorList joins authors MLA 9 style: the first author inverted, a
// second author in natural order, three or more collapsing to "et al.".
func mlaAuthorList(names []types.CitationName) string {
	switch {
	case len(names) == 0:
		return ""
	case len(names) == 1:
		return invertedName(names[0])
	case len(names) == 2:
		return invertedName(names[0]) + ", and " + naturalName(names[1])
	default:
		return invertedName(names[0]) + ", et al."
	}
}

// formatMLA9 renders the MLA 9 grammar. Article and page titles are
// quoted; dates render day-first with abbreviated months ("5 Mar. 2020").
func formatMLA9(in types.CitationInput, opts types.CitationFormatOptions, warns warningSet) string {
	d, hasDate := requireAuthorsTitleDate(in, warns)
	months := abbrevMonths(opts)

	segs := []string{mlaAuthorList(in.Authors)}

	link := pickLink(in)
	switch in.SourceType {
	case types.SourceJournal:
		segs = append(segs, quoted(in.Title, "."))
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		year := ""
		if hasDate {
			year = strconv.Itoa(d.year)
		}
		segs = append(segs, joinComma(in.ContainerTitle, numberGroup("vol. ", in.Volume), numberGroup("no. ", in.Issue), year, numberGroup("pp. ", in.Pages)))
		if link == "" {
			warns.add(types.WarnMissingURL)
		}
		segs = append(segs, link)
	case types.SourceBook:
		segs = append(segs, in.Title)
		if in.Publisher == "" {
			warns.add(types.WarnMissingPublisher)
		}
		year := ""
		if hasDate {
			year = strconv.Itoa(d.year)
		}
		segs = append(segs, joinComma(in.Publisher, year), link)
	case types.SourceWebsite:
		segs = append(segs, quoted(in.Title, "."))
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		date := ""
		if hasDate {
			date = formatDayMonthYear(d, months)
		}
		if link == "" {
			warns.add(types.WarnMissingURL)
		}
		segs = append(segs, joinComma(in.ContainerTitle, date, link))
		if ad, ok := parseDateParts(in.AccessDate); ok {
			segs = append(segs, opts.LabelAccessed+" "+formatDayMonthYear(ad, months))
		}
	}

	return joinSegments(segs)
}

// numberGroup prefixes a non-empty value with its label ("vol. ", "no. ",
// "pp. "), or renders nothing.
func numberGroup(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}
