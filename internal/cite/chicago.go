// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strconv"
	"strings"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// chicagoAuthorList joins authors Chicago style: the first author inverted,
// the rest in natural order, comma-separated with "and" before the last.
// Unlike MLA there is no et-al. collapse.
func chicagoAuthorList(names []types.CitationName) string {
	if len(names) == 0 {
		return ""
	}
	rendered := make([]string, len(names))
	rendered[0] = invertedName(names[0])
	for i, n := range names[1:] {
		rendered[i+1] = naturalName(n)
	}
	if len(rendered) == 1 {
		return rendered[0]
	}
	return strings.Join(rendered[:len(rendered)-1], ", ") + ", and " + rendered[len(rendered)-1]
}

// formatChicago renders the Chicago (notes-bibliography) grammar. Article
// titles are quoted; dates render month-first with full month names; the
// journal volume-issue group is "12, no. 3 (2020): 45-67".
func formatChicago(in types.CitationInput, opts types.CitationFormatOptions, warns warningSet) string {
	d, hasDate := requireAuthorsTitleDate(in, warns)

	segs := []string{chicagoAuthorList(in.Authors)}

	link := pickLink(in)
	switch in.SourceType {
	case types.SourceJournal:
		segs = append(segs, quoted(in.Title, "."))
		if in.ContainerTitle == "" {
			warns.add(types.WarnMissingContainer)
		}
		segs = append(segs, chicagoJournalGroup(in, d, hasDate))
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
		segs = append(segs, in.ContainerTitle)
		if hasDate {
			segs = append(segs, formatMonthDayYear(d, opts.MonthsLong))
		}
		if ad, ok := parseDateParts(in.AccessDate); ok {
			segs = append(segs, opts.LabelAccessed+" "+formatMonthDayYear(ad, opts.MonthsLong))
		}
		if link == "" {
			warns.add(types.WarnMissingURL)
		} else {
			segs = append(segs, link)
		}
	}

	return joinSegments(segs)
}

// chicagoJournalGroup renders "Container 12, no. 3 (2020): 45-67",
// degrading part by part when fields are missing.
func chicagoJournalGroup(in types.CitationInput, d dateParts, hasDate bool) string {
	var b strings.Builder
	b.WriteString(in.ContainerTitle)
	if in.Volume != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(in.Volume)
	}
	if in.Issue != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("no. " + in.Issue)
	}
	if hasDate {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(" + strconv.Itoa(d.year) + ")")
	}
	if in.Pages != "" {
		b.WriteString(": " + in.Pages)
	}
	return b.String()
}
